// Package fsinfo reports the capacity of the volume holding the current
// working directory.
package fsinfo

// Info holds byte counts for the volume containing the current working
// directory. Flags carries the raw POSIX mount-flags value and is only
// meaningful when HasFlags is set; TypeName names the filesystem when it can
// be resolved.
type Info struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
	Used      uint64 `json:"used"`
	Flags     int64  `json:"flags,omitempty"`
	HasFlags  bool   `json:"-"`
	TypeName  string `json:"type,omitempty"`
}

// Get queries the volume of the current working directory. ok is false when
// the platform query fails or the platform is unsupported; callers must treat
// that as a normal, displayable outcome.
func Get() (Info, bool) {
	return statCwd()
}
