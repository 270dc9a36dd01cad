package kst

import "time"

// Location is the fixed business time zone (UTC+9). All "today" logic and
// displayed timestamps use it; persisted naive timestamps are read as KST.
var Location = time.FixedZone("KST", 9*60*60)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

// Now returns the current instant in KST.
func Now() time.Time {
	return time.Now().In(Location)
}

// Today returns the current KST date truncated to midnight.
func Today() time.Time {
	return Midnight(Now())
}

// Midnight truncates t to its KST calendar date.
func Midnight(t time.Time) time.Time {
	t = t.In(Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}

// ParseDate parses a strict YYYY-MM-DD value in KST. ok is false for
// anything that does not match the layout exactly.
func ParseDate(value string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, value, Location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateTime parses a YYYY-MM-DDTHH:MM value in KST, also accepting a
// space separator between the date and time parts.
func ParseDateTime(value string) (time.Time, bool) {
	if len(value) == len(DateTimeLayout) && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}
	t, err := time.ParseInLocation(DateTimeLayout, value, Location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as YYYY-MM-DD in KST.
func FormatDate(t time.Time) string {
	return t.In(Location).Format(DateLayout)
}

// FormatDateTime renders t as YYYY-MM-DDTHH:MM in KST.
func FormatDateTime(t time.Time) string {
	return t.In(Location).Format(DateTimeLayout)
}
