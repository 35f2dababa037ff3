//go:build !windows

package sysinfo

func windowsEdition() string { return "" }
