package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/planner/internal/api"
	"github.com/idilsaglam/planner/internal/config"
	"github.com/idilsaglam/planner/internal/panel"
	"github.com/idilsaglam/planner/internal/ui"
)

// capture swaps ui output for buffers until the test ends.
func capture(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = stdout, stderr
	t.Cleanup(func() { ui.Stdout, ui.Stderr = oldOut, oldErr })
	return stdout, stderr
}

func testOptions(t *testing.T, h http.HandlerFunc) Options {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return Options{Config: cfg, ConfigPath: "/tmp/planner/config.yaml", Backend: c}
}

func backend(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events":
			_, _ = w.Write([]byte(`{"events":[{"summary":"Gym","start_date":"2025-10-30","start":"2025-10-30T10:00:00Z"}],"adapter_error":null}`))
		case "/api/fitness/generate":
			var req map[string]string
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode: %v", err)
			}
			if req["goal"] != "forta" {
				t.Errorf("goal = %q", req["goal"])
			}
			_, _ = w.Write([]byte(`{"content":"Plan A","used_calendar":true}`))
		case "/api/food/generate":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"FoodAgent indisponibil"}`))
		case "/api/calendar/month-split":
			_, _ = w.Write([]byte(`{"past_current_month":[],"future_next_month":[{"summary":"Trip","start_date":"2025-11-04","end_date":"2025-11-06"}]}`))
		default:
			http.NotFound(w, r)
		}
	}
}

func TestUsageErrors(t *testing.T) {
	opt := testOptions(t, backend(t))
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"plan", "-goal", "x"},
		{"events", "-max", "abc"},
		{"events", "export"},
		{"auth"},
		{"config"},
	} {
		capture(t)
		if code := Run(context.Background(), args, opt); code != 2 {
			t.Errorf("Run(%q) = %d, want 2", args, code)
		}
	}
}

func TestHelp(t *testing.T) {
	out, _ := capture(t)
	if code := Run(context.Background(), []string{"help"}, Options{}); code != 0 {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{"events export", "month [-past N] [-future N]", "now [-limit N]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

func TestEvents(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, backend(t))
	if code := Run(context.Background(), []string{"events", "-max", "3"}, opt); code != 0 {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{"Calendar", "Gym", "2025-10-30"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEventsAdapterErrorExitsOne(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":[],"adapter_present":false,"adapter_error":"calendar adapter not available"}`))
	})
	if code := Run(context.Background(), []string{"events"}, opt); code != 1 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(out.String(), "calendar adapter not available") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestFitnessAndFood(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, backend(t))
	if code := Run(context.Background(), []string{"fitness", "-goal", " forta "}, opt); code != 0 {
		t.Fatalf("fitness code = %d", code)
	}
	for _, want := range []string{"Plan A", panel.TextCalendarUsedYes} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("fitness output missing %q:\n%s", want, out)
		}
	}

	out.Reset()
	if code := Run(context.Background(), []string{"food", "-diet", "vegan"}, opt); code != 1 {
		t.Fatalf("food code = %d", code)
	}
	if !strings.Contains(out.String(), "Eroare: FoodAgent indisponibil") {
		t.Fatalf("food output:\n%s", out)
	}
}

func TestMonth(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, backend(t))
	if code := Run(context.Background(), []string{"month"}, opt); code != 0 {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{panel.TextNoPast, "Trip", "2025-11-04 → 2025-11-06"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, backend(t))
	path := filepath.Join(t.TempDir(), "events.ics")
	if code := Run(context.Background(), []string{"events", "export", "-max", "5", path}, opt); code != 0 {
		t.Fatalf("code = %d", code)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "SUMMARY:Gym") {
		t.Fatalf("ics:\n%s", b)
	}
	if !strings.Contains(out.String(), "exported 1 of 1") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	out, _ := capture(t)
	opt := testOptions(t, backend(t))
	if code := Run(context.Background(), []string{"config", "path"}, opt); code != 0 || strings.TrimSpace(out.String()) != opt.ConfigPath {
		t.Fatalf("config path: code=%d out=%q", code, out)
	}
	out.Reset()
	if code := Run(context.Background(), []string{"config", "show"}, opt); code != 0 {
		t.Fatalf("config show: code=%d", code)
	}
	if !strings.Contains(out.String(), "backend_url:") {
		t.Fatalf("config show:\n%s", out)
	}
}

func TestAuthStatusWithoutToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PLANNER_TOKEN", "")
	_, errOut := capture(t)
	if code := Run(context.Background(), []string{"auth", "status"}, Options{}); code != 1 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(errOut.String(), "not logged in") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestAuthLoginLogout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PLANNER_TOKEN", "")
	out, _ := capture(t)
	if code := Run(context.Background(), []string{"auth", "login", "opaque"}, Options{}); code != 0 {
		t.Fatalf("login code = %d", code)
	}
	if code := Run(context.Background(), []string{"auth", "status"}, Options{}); code != 0 {
		t.Fatalf("status code = %d", code)
	}
	if !strings.Contains(out.String(), "source: file") {
		t.Fatalf("status output:\n%s", out)
	}
	if code := Run(context.Background(), []string{"auth", "whoami"}, Options{}); code != 1 {
		t.Fatal("whoami should fail for a non-JWT token")
	}
	if code := Run(context.Background(), []string{"auth", "logout"}, Options{}); code != 0 {
		t.Fatalf("logout code = %d", code)
	}
}

func TestUIDelegates(t *testing.T) {
	capture(t)
	called := false
	opt := Options{Interactive: func(context.Context, *config.Config, panel.Backend) error {
		called = true
		return nil
	}}
	if code := Run(context.Background(), []string{"ui"}, opt); code != 0 || !called {
		t.Fatalf("code=%d called=%v", code, called)
	}
}
