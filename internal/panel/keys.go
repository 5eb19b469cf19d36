package panel

import "github.com/charmbracelet/bubbles/key"

var (
	reloadKey = key.NewBinding(
		key.WithKeys("enter", "ctrl+r"),
		key.WithHelp("enter", "reload"),
	)
	loadKey = key.NewBinding(
		key.WithKeys("enter", "ctrl+r"),
		key.WithHelp("enter", "load"),
	)
	generateKey = key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "generate"),
	)
	clearKey = key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	)
	nextFieldKey = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	)
	prevFieldKey = key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	)
	// Enter advances through single-line fields; on the prompt it is a newline.
	enterKey = key.NewBinding(key.WithKeys("enter"))

	scrollKey = key.NewBinding(
		key.WithKeys("pgup", "pgdown"),
		key.WithHelp("pgup/pgdn", "scroll"),
	)
)
