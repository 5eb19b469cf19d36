// Package tui hosts the panels in one full-screen Bubble Tea program.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/planner/internal/panel"
	"github.com/idilsaglam/planner/internal/ui"
)

// chrome is the number of lines around the active panel: tab bar, blank
// line, frame borders and help.
const chrome = 6

var (
	nextPanelKey = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next panel"))
	prevPanelKey = key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev panel"))
	quitKey      = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
)

// keyMap feeds the help line: app keys, then the active panel's.
type keyMap struct {
	panel []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{nextPanelKey, quitKey}, k.panel...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{nextPanelKey, prevPanelKey, quitKey}, k.panel}
}

// App switches between panels. Key presses go to the active panel only;
// every other message reaches all of them.
type App struct {
	panels        []panel.Panel
	active        int
	spin          spinner.Model
	help          help.Model
	width, height int
}

func NewApp(panels ...panel.Panel) App {
	t := ui.Current()
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(t.Pending))
	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Muted
	return App{panels: panels, spin: sp, help: h}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spin.Tick}
	for _, p := range a.panels {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Active returns the panel that receives key presses.
func (a App) Active() panel.Panel { return a.panels[a.active] }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a.broadcast(panel.SizeMsg{Width: msg.Width - 4, Height: msg.Height - chrome})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return a, tea.Quit
		case key.Matches(msg, nextPanelKey):
			a.active = (a.active + 1) % len(a.panels)
			return a, nil
		case key.Matches(msg, prevPanelKey):
			a.active = (a.active - 1 + len(a.panels)) % len(a.panels)
			return a, nil
		}
		next, cmd := a.panels[a.active].Update(msg)
		a.panels = withPanel(a.panels, a.active, next.(panel.Panel))
		return a, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}
	return a.broadcast(msg)
}

func (a App) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	panels := make([]panel.Panel, len(a.panels))
	cmds := make([]tea.Cmd, 0, len(a.panels))
	for i, p := range a.panels {
		next, cmd := p.Update(msg)
		panels[i] = next.(panel.Panel)
		cmds = append(cmds, cmd)
	}
	a.panels = panels
	return a, tea.Batch(cmds...)
}

func withPanel(ps []panel.Panel, i int, p panel.Panel) []panel.Panel {
	out := make([]panel.Panel, len(ps))
	copy(out, ps)
	out[i] = p
	return out
}

func (a App) View() string {
	t := ui.Current()
	tabs := make([]string, 0, len(a.panels))
	for i, p := range a.panels {
		label := " " + p.Title() + " "
		if p.Busy() {
			label = " " + p.Title() + " " + a.spin.View()
		}
		switch {
		case i == a.active:
			tabs = append(tabs, t.Selected.Render(label))
		case p.Failed():
			tabs = append(tabs, t.Error.Render(label))
		default:
			tabs = append(tabs, t.Muted.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := ui.PanelString(a.Active().View())
	helpLine := a.help.View(keyMap{panel: a.Active().Bindings()})
	return strings.Join([]string{bar, "", body, helpLine}, "\n")
}
