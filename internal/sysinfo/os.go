package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// GetOSInfo retrieves and returns key identity information about the host
// operating system. It never fails; fields the platform cannot supply stay
// empty.
func GetOSInfo() OSInfo {
	info := OSInfo{
		Name:    runtime.GOOS,
		Machine: runtime.GOARCH,
	}

	if hi, err := host.Info(); err == nil {
		info.Release = hi.KernelVersion
		info.Version = hi.PlatformVersion
		info.Platform = hi.Platform
		info.Architecture = hi.KernelArch
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.Processor = cpus[0].ModelName
	}

	info.Edition = windowsEdition()

	return info
}
