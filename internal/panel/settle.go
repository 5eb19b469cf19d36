package panel

import tea "github.com/charmbracelet/bubbletea"

// maxSettleSteps bounds Settle in case a command chain never ends.
const maxSettleSteps = 16

// Settle runs cmd and feeds its message back into m until no command is
// left. One-shot CLI commands and tests use it to drive a controller
// without a Bubble Tea program.
func Settle(m tea.Model, cmd tea.Cmd) tea.Model {
	for i := 0; cmd != nil && i < maxSettleSteps; i++ {
		msg := cmd()
		if msg == nil {
			break
		}
		m, cmd = m.Update(msg)
	}
	return m
}
