package model

import (
	"encoding/json"
	"testing"
)

func TestEventListTolerantDecoding(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array", `{"events":[{"summary":"A"},{"summary":"B"}]}`, 2},
		{"empty array", `{"events":[]}`, 0},
		{"null", `{"events":null}`, 0},
		{"absent", `{}`, 0},
		{"object", `{"events":{"summary":"A"}}`, 0},
		{"string", `{"events":"nope"}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var resp EventsResponse
			if err := json.Unmarshal([]byte(tc.body), &resp); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if len(resp.Events) != tc.want {
				t.Fatalf("len = %d, want %d", len(resp.Events), tc.want)
			}
		})
	}
}

func TestEventNullFields(t *testing.T) {
	var ev Event
	body := `{"summary":"Standup","start_date":null,"location":null,"start":"2025-10-30"}`
	if err := json.Unmarshal([]byte(body), &ev); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ev.Summary != "Standup" || ev.StartDate != "" || ev.Location != "" || ev.Start != "2025-10-30" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestAdapterErrorNull(t *testing.T) {
	var resp EventsResponse
	if err := json.Unmarshal([]byte(`{"events":[],"adapter_present":true,"adapter_error":null}`), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.AdapterError != "" || resp.AdapterPresent == nil || !*resp.AdapterPresent {
		t.Fatalf("unexpected: %+v", resp)
	}
}
