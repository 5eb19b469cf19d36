// Package view builds panel output as a tree of typed nodes instead of
// interpolated strings. Backend text only ever lands in node fields and is
// sanitized once, at render time.
package view

// Kind selects the style a Text node is rendered with.
type Kind int

const (
	Plain Kind = iota
	Muted
	Error
	Accent
)

// Node is anything Render understands.
type Node interface {
	node()
}

// Text is a paragraph.
type Text struct {
	Value string
	Kind  Kind
}

// Heading labels a section.
type Heading struct {
	Value string
}

// Badge is a short inline label, e.g. calendar usage.
type Badge struct {
	Value string
}

// Table is a header row plus data rows. Emphasis is the column index drawn
// with the accent style, -1 for none.
type Table struct {
	Headers  []string
	Rows     [][]string
	Emphasis int
}

// EventCard is one event in a list: title, date span and location.
type EventCard struct {
	Title    string
	Span     string
	Location string
	Future   bool
}

// Group stacks children vertically.
type Group struct {
	Children []Node
}

func (Text) node()      {}
func (Heading) node()   {}
func (Badge) node()     {}
func (Table) node()     {}
func (EventCard) node() {}
func (Group) node()     {}

// Stack is shorthand for Group{Children: nodes}.
func Stack(nodes ...Node) Group {
	return Group{Children: nodes}
}

// Walk visits n and its descendants depth-first.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	if g, ok := n.(Group); ok {
		for _, c := range g.Children {
			Walk(c, fn)
		}
	}
}

// Find collects every node of type T under n.
func Find[T Node](n Node) []T {
	var out []T
	Walk(n, func(c Node) {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	})
	return out
}
