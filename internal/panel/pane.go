package panel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/ui"
	"github.com/idilsaglam/planner/internal/view"
)

// pane is a panel's container: the node it currently shows, drawn into a
// scrollable viewport. Showing a node replaces everything.
type pane struct {
	vp   viewport.Model
	node view.Node
}

func newPane() pane {
	vp := viewport.New(80, 12)
	// Only page keys scroll; letters belong to the inputs.
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	return pane{vp: vp}
}

func (p pane) show(n view.Node) pane {
	p.node = n
	p.vp.SetContent(view.Render(n, ui.Current(), p.vp.Width))
	p.vp.GotoTop()
	return p
}

func (p pane) resize(w, h int) pane {
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	p.vp.Width, p.vp.Height = w, h
	return p.show(p.node)
}

func (p pane) update(msg tea.Msg) (pane, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p pane) view() string { return p.vp.View() }
