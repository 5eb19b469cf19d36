package panel

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/view"
)

// generatedMsg carries a settled generate request back to its panel.
type generatedMsg struct {
	owner uint64
	seq   uint64
	node  view.Node
	ok    bool
}

// generatorIDs tells generators apart; the app broadcasts every
// non-key message to all panels.
var generatorIDs atomic.Uint64

type genAction int

const (
	actNone genAction = iota
	actGenerate
	actClear
)

// generator is the state shared by the form-driven panels: inputs, a result
// container and the request sequence.
type generator struct {
	id      uint64
	form    form
	body    pane
	loading string
	seq     uint64
	busy    bool
	failed  bool
}

func newGenerator(specs []fieldSpec, promptPlaceholder, loading string) generator {
	return generator{
		id:      generatorIDs.Add(1),
		form:    newForm(specs, promptPlaceholder),
		body:    newPane().show(placeholder(TextNothingGenerated).node()),
		loading: loading,
	}
}

// start shows the muted loading text and returns the tag the reply must
// carry.
func (g generator) start() (generator, generatedMsg) {
	g.seq++
	g.busy = true
	g.failed = false
	g.body = g.body.show(placeholder(g.loading).node())
	return g, generatedMsg{owner: g.id, seq: g.seq}
}

// clear empties the form and the result area. A request still in flight is
// ignored when it returns.
func (g generator) clear() generator {
	g.seq++
	g.busy = false
	g.failed = false
	g.form = g.form.reset().focusFirst()
	g.body = g.body.show(placeholder(TextNothingGenerated).node())
	return g
}

func (g generator) settle(msg generatedMsg) (generator, bool) {
	if msg.owner != g.id || msg.seq != g.seq {
		return g, false
	}
	g.busy = false
	g.failed = !msg.ok
	g.body = g.body.show(msg.node)
	return g, true
}

func (g generator) resize(msg SizeMsg) generator {
	g.form = g.form.setWidth(msg.Width)
	g.body = g.body.resize(msg.Width, msg.Height-g.form.height()-1)
	return g
}

// key routes a key press. Enter advances through single-line fields and
// generates from the last one when there is no prompt.
func (g generator) key(msg tea.KeyMsg) (generator, tea.Cmd, genAction) {
	switch {
	case key.Matches(msg, generateKey):
		return g, nil, actGenerate
	case key.Matches(msg, clearKey):
		return g, nil, actClear
	case key.Matches(msg, nextFieldKey):
		g.form = g.form.next()
		return g, nil, actNone
	case key.Matches(msg, prevFieldKey):
		g.form = g.form.prev()
		return g, nil, actNone
	case key.Matches(msg, scrollKey):
		var cmd tea.Cmd
		g.body, cmd = g.body.update(msg)
		return g, cmd, actNone
	case key.Matches(msg, enterKey) && !g.form.onPrompt():
		if !g.form.hasPrompt && g.form.focus == len(g.form.fields)-1 {
			return g, nil, actGenerate
		}
		g.form = g.form.next()
		return g, nil, actNone
	}
	var cmd tea.Cmd
	g.form, cmd = g.form.update(msg)
	return g, cmd, actNone
}

func (g generator) view() string {
	return g.form.view() + "\n\n" + g.body.view()
}

func generatorBindings() []key.Binding {
	return []key.Binding{generateKey, clearKey, nextFieldKey, prevFieldKey, scrollKey}
}
