// FilePath: internal/simulation/range.go
package simulation

import (
	"strings"
	"time"
)

// Range selects the sampling resolution of a generated series
type Range string

const (
	Range1h  Range = "1h"
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range30d Range = "30d"

	day = 24 * time.Hour
)

// Ranges lists the recognised range keywords
var Ranges = []Range{Range1h, Range24h, Range7d, Range30d}

// ParseRange maps a range keyword onto a Range. Unrecognised input falls
// back to Range24h.
func ParseRange(s string) Range {
	r := Range(strings.TrimSpace(s))
	if r.Valid() {
		return r
	}
	return Range24h
}

// Valid reports whether r is one of the recognised keywords
func (r Range) Valid() bool {
	switch r {
	case Range1h, Range24h, Range7d, Range30d:
		return true
	}
	return false
}

// Step returns the distance between two consecutive readings
func (r Range) Step() time.Duration {
	switch r {
	case Range1h:
		return 5 * time.Minute
	case Range7d:
		return 4 * time.Hour
	case Range30d:
		return day
	default:
		return 30 * time.Minute
	}
}

// Window returns the span a range covers when the caller gives no explicit start
func (r Range) Window() time.Duration {
	switch r {
	case Range1h:
		return time.Hour
	case Range7d:
		return 7 * day
	case Range30d:
		return 30 * day
	default:
		return day
	}
}

func (r Range) String() string {
	return string(r)
}

// Count returns how many readings a window yields at the step of r.
// Steps are whole seconds, so counting in seconds is exact and avoids
// the saturation of time.Time.Sub on very long windows.
func Count(start, end time.Time, r Range) int {
	if start.After(end) {
		return 0
	}
	secs := end.Unix() - start.Unix()
	if end.Nanosecond() < start.Nanosecond() {
		secs--
	}
	return int(secs/int64(r.Step()/time.Second)) + 1
}
