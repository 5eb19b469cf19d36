// Package ics writes backend events as an iCalendar file.
package ics

import (
	"errors"
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
)

const productID = "-//planner//Calendar export//RO"

// uidSpace namespaces the derived event UIDs so repeated exports of the
// same event keep the same UID.
var uidSpace = uuid.MustParse("4f6a2d1e-8c3b-5e7a-9d10-2b4c6e8f0a13")

// Build converts events into a VCALENDAR. Events without any usable start
// are skipped and counted.
func Build(events []model.Event, loc *time.Location, stamp time.Time) (*ical.Calendar, int) {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName("Planner")

	skipped := 0
	for _, e := range events {
		if err := addEvent(cal, e, loc, stamp); err != nil {
			appLog.Debug("ics: skipping event", "summary", e.Summary, "reason", err.Error())
			skipped++
		}
	}
	return cal, skipped
}

// Write serializes events to w and returns how many were written.
func Write(w io.Writer, events []model.Event, loc *time.Location, stamp time.Time) (int, error) {
	cal, skipped := Build(events, loc, stamp)
	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("serialize calendar: %w", err)
	}
	return len(events) - skipped, nil
}

func addEvent(cal *ical.Calendar, e model.Event, loc *time.Location, stamp time.Time) error {
	start, startAllDay, err := eventTime(e.Start, e.StartDate, loc)
	if err != nil {
		return err
	}

	ve := cal.AddEvent(eventUID(e))
	ve.SetDtStampTime(stamp)
	if startAllDay {
		ve.SetAllDayStartAt(start)
	} else {
		ve.SetStartAt(start)
	}
	if end, endAllDay, err := eventTime(e.End, e.EndDate, loc); err == nil {
		if endAllDay {
			ve.SetAllDayEndAt(end)
		} else {
			ve.SetEndAt(end)
		}
	}
	if e.Summary != "" {
		ve.SetSummary(e.Summary)
	}
	if e.Location != "" {
		ve.SetLocation(e.Location)
	}
	return nil
}

// eventTime prefers the exact timestamp and falls back to the date.
func eventTime(exact, date string, loc *time.Location) (time.Time, bool, error) {
	if exact != "" {
		if model.IsDateOnly(exact) {
			t, err := time.ParseInLocation(model.DateOnlyLayout, exact, loc)
			return t, true, err
		}
		if t, err := model.ParseTimestamp(exact, loc); err == nil {
			return t, false, nil
		}
	}
	if model.IsDateOnly(date) {
		t, err := time.ParseInLocation(model.DateOnlyLayout, date, loc)
		return t, true, err
	}
	return time.Time{}, false, errors.New("no usable start or date")
}

func eventUID(e model.Event) string {
	key := e.Summary + "\x00" + e.Start + "\x00" + e.StartDate + "\x00" + e.End + "\x00" + e.EndDate
	return uuid.NewSHA1(uidSpace, []byte(key)).String() + "@planner"
}
