package model

import (
	"fmt"
	"regexp"
	"time"
)

// DateOnlyLayout is the shape of start_date / end_date.
const DateOnlyLayout = "2006-01-02"

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Accepted exact-timestamp shapes. Zone-less values are read in the
// caller's location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// IsDateOnly reports whether raw is a bare YYYY-MM-DD value.
func IsDateOnly(raw string) bool {
	return len(raw) == len(DateOnlyLayout) && dateOnly.MatchString(raw)
}

// ParseTimestamp reads an exact start/end value.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, l := range timestampLayouts {
		if t, err := time.ParseInLocation(l, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
