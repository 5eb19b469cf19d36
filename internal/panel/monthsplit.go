package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

type MonthSplitSource interface {
	MonthSplit(ctx context.Context, limitPast, limitFuture int) (model.MonthSplit, error)
}

type monthSplitMsg struct {
	seq  uint64
	resp model.MonthSplit
	err  error
}

// MonthSplit lists this month's past events and next month's events. It
// never loads on its own.
type MonthSplit struct {
	ctx                    context.Context
	src                    MonthSplitSource
	limitPast, limitFuture int
	body                   pane
	seq                    uint64
	busy, failed           bool
}

func NewMonthSplit(ctx context.Context, src MonthSplitSource, limitPast, limitFuture int) MonthSplit {
	return MonthSplit{
		ctx:         ctx,
		src:         src,
		limitPast:   limitPast,
		limitFuture: limitFuture,
		body:        newPane(),
	}
}

func (m MonthSplit) Init() tea.Cmd           { return nil }
func (m MonthSplit) Title() string           { return "Lună" }
func (m MonthSplit) Busy() bool              { return m.busy }
func (m MonthSplit) Failed() bool            { return m.failed }
func (m MonthSplit) Content() view.Node      { return m.body.node }
func (m MonthSplit) Bindings() []key.Binding { return []key.Binding{loadKey, scrollKey} }

// Load shows the loading line and requests the split.
func (m MonthSplit) Load() (MonthSplit, tea.Cmd) {
	m.seq++
	m.busy = true
	m.failed = false
	m.body = m.body.show(view.Text{Value: TextLoadingPlain, Kind: view.Muted})

	ctx, src, seq := m.ctx, m.src, m.seq
	past, future := m.limitPast, m.limitFuture
	return m, func() tea.Msg {
		resp, err := src.MonthSplit(ctx, past, future)
		return monthSplitMsg{seq: seq, resp: resp, err: err}
	}
}

func (m MonthSplit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthSplitMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.busy = false
		if msg.err == nil && msg.resp.Error != "" {
			msg.err = appError(msg.resp.Error)
		}
		if msg.err != nil {
			appLog.Error("month split: load failed", msg.err)
			m.failed = true
			m.body = m.body.show(view.Text{Value: TextLoadFailed, Kind: view.Error})
			return m, nil
		}
		m.body = m.body.show(RenderMonthSplit(msg.resp))
		return m, nil

	case SizeMsg:
		m.body = m.body.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, loadKey):
			next, cmd := m.Load()
			return next, cmd
		case key.Matches(msg, scrollKey):
			var cmd tea.Cmd
			m.body, cmd = m.body.update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m MonthSplit) View() string {
	if m.body.node == nil {
		return ""
	}
	return m.body.view()
}

// RenderMonthSplit lays out the two sections, current month first.
func RenderMonthSplit(ms model.MonthSplit) view.Node {
	return view.Stack(
		view.Heading{Value: TextCurrentMonth},
		eventCards(ms.PastCurrentMonth, false, TextNoPast),
		view.Heading{Value: TextFuture},
		eventCards(ms.FutureNextMonth, true, TextNoFuture),
	)
}

func eventCards(events model.EventList, future bool, empty string) view.Node {
	if len(events) == 0 {
		return view.Text{Value: empty, Kind: view.Muted}
	}
	cards := make([]view.Node, 0, len(events))
	for _, e := range events {
		cards = append(cards, eventCard(e, future))
	}
	return view.Group{Children: cards}
}

func eventCard(e model.Event, future bool) view.EventCard {
	title := e.Summary
	if title == "" {
		title = TextNoTitle
	}
	location := e.Location
	if location == "" {
		location = TextNoLocation
	}
	return view.EventCard{
		Title:    title,
		Span:     e.StartDate + " → " + e.EndDate,
		Location: location,
		Future:   future,
	}
}

// appError is a backend-reported failure carried in a 2xx body.
type appError string

func (e appError) Error() string { return string(e) }
