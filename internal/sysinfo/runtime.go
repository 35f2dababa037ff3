package sysinfo

import (
	"go/version"
	"os"
	"runtime"
)

// GetRuntimeInfo describes the Go environment this binary runs on.
func GetRuntimeInfo() RuntimeInfo {
	exe, _ := os.Executable()

	return RuntimeInfo{
		Version:        runtime.Version(),
		Compiler:       runtime.Compiler,
		Implementation: implementationName(runtime.Compiler),
		Executable:     exe,
		APIVersion:     version.Lang(runtime.Version()),
	}
}

func implementationName(compiler string) string {
	switch compiler {
	case "gc":
		return "gc (standard Go compiler)"
	case "gccgo":
		return "gccgo (GCC Go frontend)"
	default:
		return compiler
	}
}
