package panel

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

// EventSource is the slice of the API client the calendar needs.
type EventSource interface {
	Events(ctx context.Context, maxResults int) (model.EventsResponse, error)
}

type CalendarOptions struct {
	// DefaultMax is used when the max input is empty or not a positive number.
	DefaultMax int
	Dates      DateFormatter
}

// ReloadMsg asks the calendar to reload, e.g. from a refresh schedule.
type ReloadMsg struct{}

type eventsMsg struct {
	seq  uint64
	resp model.EventsResponse
	err  error
}

// Calendar renders the upcoming-events table. It loads once on Init and
// again on every reload.
type Calendar struct {
	ctx    context.Context
	src    EventSource
	opts   CalendarOptions
	max    textinput.Model
	body   pane
	seq    uint64
	busy   bool
	failed bool
}

func NewCalendar(ctx context.Context, src EventSource, opts CalendarOptions) Calendar {
	if opts.DefaultMax <= 0 {
		opts.DefaultMax = 20
	}
	ti := textinput.New()
	ti.Prompt = "max_results: "
	ti.CharLimit = 4
	ti.Width = 6
	ti.SetValue(strconv.Itoa(opts.DefaultMax))
	ti.Focus()

	return Calendar{
		ctx:  ctx,
		src:  src,
		opts: opts,
		max:  ti,
		body: newPane().show(view.Text{Value: TextLoading, Kind: view.Muted}),
		seq:  1,
		busy: true,
	}
}

// Init performs the load-on-open request.
func (m Calendar) Init() tea.Cmd {
	return m.fetch(m.seq, m.MaxResults())
}

func (m Calendar) Title() string           { return "Calendar" }
func (m Calendar) Busy() bool              { return m.busy }
func (m Calendar) Failed() bool            { return m.failed }
func (m Calendar) Content() view.Node      { return m.body.node }
func (m Calendar) Bindings() []key.Binding { return []key.Binding{reloadKey, scrollKey} }

// MaxResults is the numeric input, or the default when it is unusable.
func (m Calendar) MaxResults() int {
	n, err := strconv.Atoi(strings.TrimSpace(m.max.Value()))
	if err != nil || n <= 0 {
		return m.opts.DefaultMax
	}
	return n
}

// SetMax fills the numeric input.
func (m Calendar) SetMax(n int) Calendar {
	if n <= 0 {
		m.max.SetValue("")
		return m
	}
	m.max.SetValue(strconv.Itoa(n))
	return m
}

// Reload replaces the container with the loading view and fetches again.
// Any earlier in-flight reply becomes stale.
func (m Calendar) Reload() (Calendar, tea.Cmd) {
	m.seq++
	m.busy = true
	m.failed = false
	m.body = m.body.show(view.Text{Value: TextLoading, Kind: view.Muted})
	return m, m.fetch(m.seq, m.MaxResults())
}

func (m Calendar) fetch(seq uint64, n int) tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		resp, err := src.Events(ctx, n)
		return eventsMsg{seq: seq, resp: resp, err: err}
	}
}

func (m Calendar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsMsg:
		if msg.seq != m.seq {
			appLog.Debug("calendar: dropping stale reply", "seq", msg.seq, "current", m.seq)
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			appLog.Error("calendar: load events failed", msg.err, "max_results", m.MaxResults())
			m.failed = true
			m.body = m.body.show(view.Text{Value: TextEventsLoadError, Kind: view.Error})
			return m, nil
		}
		m.failed = msg.resp.AdapterError != ""
		m.body = m.body.show(RenderEvents(msg.resp, m.opts.Dates))
		return m, nil

	case ReloadMsg:
		next, cmd := m.Reload()
		return next, cmd

	case SizeMsg:
		m.body = m.body.resize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, reloadKey):
			next, cmd := m.Reload()
			return next, cmd
		case key.Matches(msg, scrollKey):
			var cmd tea.Cmd
			m.body, cmd = m.body.update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.max, cmd = m.max.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Calendar) View() string {
	return m.max.View() + "\n\n" + m.body.view()
}

// RenderEvents builds the calendar view for one /events reply.
func RenderEvents(resp model.EventsResponse, dates DateFormatter) view.Node {
	if resp.AdapterError != "" {
		return view.Text{Value: TextAdapterError + resp.AdapterError, Kind: view.Error}
	}
	if len(resp.Events) == 0 {
		return view.Text{Value: TextNoEvents, Kind: view.Muted}
	}
	rows := make([][]string, 0, len(resp.Events))
	for _, e := range resp.Events {
		summary := e.Summary
		if summary == "" {
			summary = TextNoTitle
		}
		location := e.Location
		if location == "" {
			location = "-"
		}
		rows = append(rows, []string{
			summary,
			e.StartDate,
			e.EndDate,
			dates.Format(e.Start),
			dates.Format(e.End),
			location,
		})
	}
	return view.Table{Headers: eventHeaders, Rows: rows, Emphasis: 0}
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
