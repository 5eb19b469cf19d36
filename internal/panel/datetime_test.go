package panel

import (
	"testing"
	"time"
)

func TestDateFormatter(t *testing.T) {
	bucharest := time.FixedZone("EET", 2*60*60)
	f := DateFormatter{Location: bucharest, Layout: "02.01.2006, 15:04:05"}
	cases := []struct {
		in, want string
	}{
		{"", "-"},
		{"2025-10-30", "2025-10-30"},
		{"2025-10-30T08:00:00Z", "30.10.2025, 10:00:00"},
		{"2025-10-30T10:00:00+02:00", "30.10.2025, 10:00:00"},
		{"2025-10-30T10:00", "30.10.2025, 10:00:00"},
		{"mâine", "mâine"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
