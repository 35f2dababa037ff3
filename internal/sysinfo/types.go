package sysinfo

// OSInfo holds identity details about the host operating system. Fields the
// platform cannot supply are left empty.
type OSInfo struct {
	Name         string `json:"name"`
	Release      string `json:"release"`
	Version      string `json:"version"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
	Machine      string `json:"machine"`
	Processor    string `json:"processor"`
	Edition      string `json:"edition,omitempty"`
}

// RuntimeInfo describes the Go toolchain and runtime behind this binary.
type RuntimeInfo struct {
	Version        string `json:"version"`
	Compiler       string `json:"compiler"`
	Implementation string `json:"implementation"`
	Executable     string `json:"executable"`
	APIVersion     string `json:"apiVersion"`
}

// ClockInfo holds the wall-clock readings taken for the report.
type ClockInfo struct {
	UTC      string `json:"utc"`
	Local    string `json:"local"`
	Timezone string `json:"timezone"`
}
