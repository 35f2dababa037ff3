//go:build windows

package sysinfo

import "golang.org/x/sys/windows/registry"

// windowsEdition reads the installed Windows edition from the registry.
func windowsEdition() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	edition, _, err := k.GetStringValue("EditionID")
	if err != nil {
		return ""
	}
	return edition
}
