// File: utils/timeutil.go
package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MinutesInDay is the number of minutes in a calendar day.
const MinutesInDay = 24 * 60

// DateKeyLayout is the canonical YYYY-MM-DD layout used for all calendar keys.
const DateKeyLayout = "2006-01-02"

// ErrInvalidTimeFormat is returned when a clock string is not a valid 24h "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// TimeToMinutes converts a 24-hour "HH:MM" clock string to minutes from midnight.
func TimeToMinutes(clock string) (int, error) {
	if !clockPattern.MatchString(clock) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}
	h, _ := strconv.Atoi(clock[:2])
	m, _ := strconv.Atoi(clock[3:])
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}
	return h*60 + m, nil
}

// MinutesToTime converts minutes from midnight back to a zero-padded "HH:MM" string.
// The input must be within [0, MinutesInDay).
func MinutesToTime(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesInDay {
		return "", fmt.Errorf("minutes out of range: %d", minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// FormatTimeShort renders a clock string in compact 12-hour form for calendar
// cells: "09:00" -> "9a", "17:30" -> "5:30p", "12:00" -> "12p", "00:00" -> "12a".
// The minute component is shown only when non-zero. Invalid input is returned as-is.
func FormatTimeShort(clock string) string {
	total, err := TimeToMinutes(clock)
	if err != nil {
		return clock
	}
	h, m := total/60, total%60
	suffix := "a"
	if h >= 12 {
		suffix = "p"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d%s", h12, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", h12, m, suffix)
}

// RangesOverlap reports whether the half-open intervals [s1,e1) and [s2,e2) intersect.
func RangesOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// DateKey returns the canonical YYYY-MM-DD key for a timestamp. The key is
// derived from the value's own location; converting to UTC first can shift
// dates near midnight onto the wrong calendar day.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key into a local midnight timestamp.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.Local)
}
