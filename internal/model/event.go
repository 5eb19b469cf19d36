package model

import (
	"bytes"
	"encoding/json"
)

// Event is the simplified calendar entry the backend emits. Every field is
// optional; panels substitute their own fallbacks.
type Event struct {
	Summary   string `json:"summary,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Location  string `json:"location,omitempty"`
}

// EventList decodes any non-array JSON value (absent, null, object, string)
// as an empty list instead of failing the whole response.
type EventList []Event

func (l *EventList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*l = nil
		return nil
	}
	var out []Event
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// EventsResponse is the body of GET /events.
type EventsResponse struct {
	Events         EventList `json:"events"`
	AdapterPresent *bool     `json:"adapter_present,omitempty"`
	AdapterError   string    `json:"adapter_error,omitempty"`
}

// MonthSplit is the body of GET /api/calendar/month-split.
type MonthSplit struct {
	PastCurrentMonth EventList `json:"past_current_month"`
	FutureNextMonth  EventList `json:"future_next_month"`
	Error            string    `json:"error,omitempty"`
}

// NowNext is the body of GET /api/calendar/now-and-next.
type NowNext struct {
	Current  *Event    `json:"current"`
	Upcoming EventList `json:"upcoming"`
	Error    string    `json:"error,omitempty"`
}
