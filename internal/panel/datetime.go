package panel

import (
	"time"

	"github.com/idilsaglam/planner/internal/model"
)

// DateFormatter renders the start/end columns of the calendar table.
type DateFormatter struct {
	Location *time.Location
	Layout   string
}

// Format applies the display rule:
//   - "" -> "-"
//   - YYYY-MM-DD -> unchanged, no timezone conversion
//   - parseable timestamp -> Layout in Location
//   - anything else -> unchanged
func (f DateFormatter) Format(raw string) string {
	if raw == "" {
		return "-"
	}
	if model.IsDateOnly(raw) {
		return raw
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	layout := f.Layout
	if layout == "" {
		layout = "02.01.2006, 15:04:05"
	}
	t, err := model.ParseTimestamp(raw, loc)
	if err != nil {
		return raw
	}
	return t.In(loc).Format(layout)
}
