//go:build !linux && !darwin && !windows

package fsinfo

func statCwd() (Info, bool) { return Info{}, false }
