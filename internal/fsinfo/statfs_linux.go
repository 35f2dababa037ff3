//go:build linux

package fsinfo

import "golang.org/x/sys/unix"

func statCwd() (Info, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(".", &st); err != nil {
		return Info{}, false
	}

	total := uint64(st.Frsize) * st.Blocks
	available := uint64(st.Frsize) * st.Bavail

	return Info{
		Total:     total,
		Available: available,
		Used:      total - available,
		Flags:     st.Flags,
		HasFlags:  true,
		TypeName:  typeName(),
	}, true
}
