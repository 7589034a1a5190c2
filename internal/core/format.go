// Package core holds the domain types and the small amount of arithmetic the
// service needs: date-range resolution, unit conversions, and the duration
// formatting used in confirmation messages.
package core

import (
	"fmt"
	"strings"
)

// FormatDurationMillis renders a millisecond duration as hours, minutes and
// seconds, keeping only the non-zero components ("1h30m", "45s"). Values at
// or below zero render as "0s". Purely presentational; the stored value is
// never derived from this.
func FormatDurationMillis(ms int64) string {
	if ms <= 0 {
		return "0s"
	}

	totalSecs := ms / 1000
	hrs := totalSecs / 3600
	mins := (totalSecs % 3600) / 60
	secs := totalSecs % 60

	var b strings.Builder
	if hrs > 0 {
		fmt.Fprintf(&b, "%dh", hrs)
	}
	if mins > 0 {
		fmt.Fprintf(&b, "%dm", mins)
	}
	if secs > 0 {
		fmt.Fprintf(&b, "%ds", secs)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
