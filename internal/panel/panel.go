// Package panel holds one controller per screen panel. Each controller is a
// Bubble Tea model built once with its own inputs and backend dependency,
// issues one request per trigger and replaces its container with a view
// node tree of the reply.
package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/view"
)

// Panel is what the app needs from every controller.
type Panel interface {
	tea.Model
	Title() string
	// Busy reports an in-flight request.
	Busy() bool
	// Failed reports that the container currently shows an error view.
	Failed() bool
	Content() view.Node
	Bindings() []key.Binding
}

// SizeMsg tells a panel how much room it has below the tab bar.
type SizeMsg struct {
	Width, Height int
}

// Backend is every source at once. *api.Client satisfies it.
type Backend interface {
	EventSource
	MonthSplitSource
	NowNextSource
	FitnessSource
	FoodSource
	PlanSource
}
