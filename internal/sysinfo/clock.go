package sysinfo

import "time"

// GetClockInfo reads the current UTC and local wall-clock time along with the
// local timezone abbreviation.
func GetClockInfo() ClockInfo {
	now := time.Now()
	zone, _ := now.Zone()

	return ClockInfo{
		UTC:      now.UTC().Format(time.ANSIC),
		Local:    now.Format(time.ANSIC),
		Timezone: zone,
	}
}
