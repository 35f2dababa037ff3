//go:build windows

package fsinfo

import (
	"os"

	"golang.org/x/sys/windows"
)

func statCwd() (Info, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return Info{}, false
	}

	path, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return Info{}, false
	}

	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(path, &free, &total, &totalFree); err != nil {
		return Info{}, false
	}

	return Info{
		Total:     total,
		Available: free,
		Used:      total - free,
	}, true
}
