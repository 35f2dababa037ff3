// Package format holds small helpers for rendering values in the report.
package format

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes converts a byte count to a human readable string, scaling by 1024
// through B, KB, MB, GB and TB. Values of a petabyte and above are reported
// in PB; there is no larger unit.
func Bytes(n uint64) string {
	value := float64(n)
	for _, unit := range byteUnits {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f PB", value)
}
