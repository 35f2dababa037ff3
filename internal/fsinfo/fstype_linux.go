//go:build linux

package fsinfo

import (
	"os"
	"strings"

	"github.com/jaypipes/ghw"
)

// typeName resolves the filesystem name of the partition mounted closest
// above the current working directory. Returns "" when it cannot be
// determined.
func typeName() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	block, err := ghw.Block()
	if err != nil {
		return ""
	}

	best := ""
	bestLen := -1
	for _, disk := range block.Disks {
		for _, part := range disk.Partitions {
			mp := part.MountPoint
			if mp == "" || part.Type == "" {
				continue
			}
			if !strings.HasSuffix(mp, "/") {
				mp += "/"
			}
			if strings.HasPrefix(cwd+"/", mp) && len(mp) > bestLen {
				best = part.Type
				bestLen = len(mp)
			}
		}
	}

	return best
}
