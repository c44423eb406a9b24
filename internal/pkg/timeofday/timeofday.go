package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day expressed as seconds since midnight.
type Clock int

// ParseClock parses an "HH:MM:SS" string (zero padding optional) into a
// Clock. The hour is not range-checked beyond being non-negative so that
// upstream values like "7:5:0" are accepted as the source system emits them.
func ParseClock(s string) (Clock, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, false
	}

	var units [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		units[i] = n
	}
	if units[1] > 59 || units[2] > 59 {
		return 0, false
	}

	return Clock(units[0]*3600 + units[1]*60 + units[2]), true
}

// Duration is a worked interval between two same-day clock readings.
// The zero value carries no duration.
type Duration struct {
	seconds int
	valid   bool
}

// Between computes the worked duration from check-in to check-out. Either
// string being empty or unparsable yields no duration, as does a check-out
// earlier than the check-in; neither case is an error.
func Between(checkIn, checkOut string) Duration {
	if checkIn == "" || checkOut == "" {
		return Duration{}
	}

	in, ok := ParseClock(checkIn)
	if !ok {
		return Duration{}
	}
	out, ok := ParseClock(checkOut)
	if !ok {
		return Duration{}
	}

	seconds := int(out - in)
	if seconds < 0 {
		return Duration{}
	}

	return Duration{seconds: seconds, valid: true}
}

// Valid reports whether the interval carries a duration at all.
func (d Duration) Valid() bool {
	return d.valid
}

// Positive reports whether the interval is strictly longer than zero
// seconds. Only positive durations count toward work-day totals.
func (d Duration) Positive() bool {
	return d.valid && d.seconds > 0
}

// Seconds returns the total worked seconds, 0 when no duration exists.
func (d Duration) Seconds() int {
	if !d.valid {
		return 0
	}
	return d.seconds
}

// String formats the duration as zero-padded "HH:MM:SS", truncating at every
// unit boundary. Returns "" when no duration exists.
func (d Duration) String() string {
	if !d.valid {
		return ""
	}
	return FormatSeconds(d.seconds)
}

// FormatSeconds renders total seconds as zero-padded "HH:MM:SS".
func FormatSeconds(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}

// FormatLabel renders total seconds as an "XhYmZs" display label.
func FormatLabel(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", hrs, mins, secs)
}

// ParseLabel parses an "XhYmZs" label back into total seconds.
func ParseLabel(label string) (int, bool) {
	var hrs, mins, secs int
	if _, err := fmt.Sscanf(label, "%dh %dm %ds", &hrs, &mins, &secs); err != nil {
		return 0, false
	}
	return hrs*3600 + mins*60 + secs, true
}
