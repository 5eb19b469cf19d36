package panel

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

type NowNextSource interface {
	NowAndNext(ctx context.Context, limit int) (model.NowNext, error)
}

type nowNextMsg struct {
	seq  uint64
	resp model.NowNext
	err  error
}

// NowNext shows the running event and what follows it.
type NowNext struct {
	ctx          context.Context
	src          NowNextSource
	limit        int
	body         pane
	seq          uint64
	busy, failed bool
}

func NewNowNext(ctx context.Context, src NowNextSource, limit int) NowNext {
	return NowNext{ctx: ctx, src: src, limit: limit, body: newPane()}
}

func (m NowNext) Init() tea.Cmd           { return nil }
func (m NowNext) Title() string           { return "Acum" }
func (m NowNext) Busy() bool              { return m.busy }
func (m NowNext) Failed() bool            { return m.failed }
func (m NowNext) Content() view.Node      { return m.body.node }
func (m NowNext) Bindings() []key.Binding { return []key.Binding{loadKey, scrollKey} }

func (m NowNext) Load() (NowNext, tea.Cmd) {
	m.seq++
	m.busy = true
	m.failed = false
	m.body = m.body.show(view.Text{Value: TextLoadingPlain, Kind: view.Muted})

	ctx, src, seq, limit := m.ctx, m.src, m.seq, m.limit
	return m, func() tea.Msg {
		resp, err := src.NowAndNext(ctx, limit)
		return nowNextMsg{seq: seq, resp: resp, err: err}
	}
}

func (m NowNext) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nowNextMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.busy = false
		switch {
		case msg.err != nil:
			text, transport := failureText(msg.err)
			if transport {
				text = TextLoadFailed
			}
			appLog.Error("now-next: load failed", msg.err)
			m.failed = true
			m.body = m.body.show(view.Text{Value: text, Kind: view.Error})
		case msg.resp.Error != "":
			appLog.Error("now-next: backend error", errors.New(msg.resp.Error))
			m.failed = true
			m.body = m.body.show(view.Text{Value: TextErrorPrefix + msg.resp.Error, Kind: view.Error})
		default:
			m.body = m.body.show(RenderNowNext(msg.resp))
		}
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

func (m NowNext) View() string {
	if m.body.node == nil {
		return ""
	}
	return m.body.view()
}

// RenderNowNext shows the current event, then the upcoming list.
func RenderNowNext(nn model.NowNext) view.Node {
	var current view.Node = view.Text{Value: TextNothingNow, Kind: view.Muted}
	if nn.Current != nil {
		current = eventCard(*nn.Current, false)
	}
	return view.Stack(
		view.Heading{Value: TextNow},
		current,
		view.Heading{Value: TextNext},
		eventCards(nn.Upcoming, true, TextNoFuture),
	)
}
