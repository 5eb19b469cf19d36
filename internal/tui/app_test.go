package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/panel"
	"github.com/idilsaglam/planner/internal/view"
)

// stubPanel records the messages it receives.
type stubPanel struct {
	title string
	got   []tea.Msg
	size  panel.SizeMsg
}

func (s stubPanel) Init() tea.Cmd { return nil }

func (s stubPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.got = append(append([]tea.Msg(nil), s.got...), msg)
	if sz, ok := msg.(panel.SizeMsg); ok {
		s.size = sz
	}
	return s, nil
}

func (s stubPanel) View() string            { return "body of " + s.title }
func (s stubPanel) Title() string           { return s.title }
func (s stubPanel) Busy() bool              { return false }
func (s stubPanel) Failed() bool            { return false }
func (s stubPanel) Content() view.Node      { return nil }
func (s stubPanel) Bindings() []key.Binding { return nil }

func newStubApp() App {
	return NewApp(stubPanel{title: "A"}, stubPanel{title: "B"}, stubPanel{title: "C"})
}

func TestSwitchingWraps(t *testing.T) {
	var m tea.Model = newStubApp()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := m.(App).Active().Title(); got != "C" {
		t.Fatalf("ctrl+p from first = %q, want C", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := m.(App).Active().Title(); got != "A" {
		t.Fatalf("ctrl+n from last = %q, want A", got)
	}
}

func TestKeysGoToActivePanelOnly(t *testing.T) {
	var m tea.Model = newStubApp()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	app := m.(App)
	if n := len(app.panels[0].(stubPanel).got); n != 1 {
		t.Fatalf("active panel got %d messages", n)
	}
	if n := len(app.panels[1].(stubPanel).got); n != 0 {
		t.Fatalf("inactive panel got %d messages", n)
	}
}

func TestOtherMessagesAreBroadcast(t *testing.T) {
	var m tea.Model = newStubApp()
	m, _ = m.Update(panel.ReloadMsg{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	for _, p := range m.(App).panels {
		sp := p.(stubPanel)
		if len(sp.got) != 2 {
			t.Fatalf("%s got %d messages", sp.title, len(sp.got))
		}
		if sp.size != (panel.SizeMsg{Width: 96, Height: 40 - chrome}) {
			t.Fatalf("%s size = %+v", sp.title, sp.size)
		}
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newStubApp().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

func TestViewShowsTabsAndActiveBody(t *testing.T) {
	out := newStubApp().View()
	for _, s := range []string{"A", "B", "C", "body of A"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q", s)
		}
	}
	if strings.Contains(out, "body of B") {
		t.Error("inactive panel body rendered")
	}
}

func TestRefreshJobSendsReload(t *testing.T) {
	var sent []tea.Msg
	refreshJob(func(m tea.Msg) { sent = append(sent, m) })()
	if len(sent) != 1 {
		t.Fatalf("sent %d messages", len(sent))
	}
	if _, ok := sent[0].(panel.ReloadMsg); !ok {
		t.Fatalf("sent %T", sent[0])
	}
}

func TestStartRefreshRejectsBadSpec(t *testing.T) {
	if _, err := StartRefresh("every now and then", func(tea.Msg) {}); err == nil {
		t.Fatal("expected error")
	}
	c, err := StartRefresh("*/5 * * * *", func(tea.Msg) {})
	if err != nil {
		t.Fatalf("StartRefresh: %v", err)
	}
	c.Stop()
}
