//go:build darwin

package fsinfo

import "golang.org/x/sys/unix"

func statCwd() (Info, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(".", &st); err != nil {
		return Info{}, false
	}

	total := uint64(st.Bsize) * st.Blocks
	available := uint64(st.Bsize) * st.Bavail

	return Info{
		Total:     total,
		Available: available,
		Used:      total - available,
		Flags:     int64(st.Flags),
		HasFlags:  true,
		TypeName:  unix.ByteSliceToString(st.Fstypename[:]),
	}, true
}
