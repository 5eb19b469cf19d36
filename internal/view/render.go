package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/planner/internal/ui"
)

// Render draws n with theme t. width <= 0 means no wrapping.
func Render(n Node, t ui.Theme, width int) string {
	switch v := n.(type) {
	case nil:
		return ""
	case Text:
		return wrap(styleFor(v.Kind, t), width).Render(Sanitize(v.Value))
	case Heading:
		return t.Title.Render(Sanitize(v.Value))
	case Badge:
		if v.Value == "" {
			return ""
		}
		return t.Accent.Render("[" + Sanitize(v.Value) + "]")
	case Table:
		return renderTable(v, t, width)
	case EventCard:
		return renderCard(v, t, width)
	case Group:
		parts := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			if s := Render(c, t, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

// PlainText flattens the text content of n, unstyled, one node per line.
func PlainText(n Node) string {
	var lines []string
	Walk(n, func(c Node) {
		switch v := c.(type) {
		case Text:
			lines = append(lines, v.Value)
		case Heading:
			lines = append(lines, v.Value)
		case Badge:
			if v.Value != "" {
				lines = append(lines, v.Value)
			}
		case Table:
			lines = append(lines, strings.Join(v.Headers, " | "))
			for _, r := range v.Rows {
				lines = append(lines, strings.Join(r, " | "))
			}
		case EventCard:
			lines = append(lines, v.Title, v.Span, v.Location)
		}
	})
	return strings.Join(lines, "\n")
}

func styleFor(k Kind, t ui.Theme) lipgloss.Style {
	switch k {
	case Muted:
		return t.Muted
	case Error:
		return t.Error
	case Accent:
		return t.Accent
	default:
		return lipgloss.NewStyle()
	}
}

func wrap(s lipgloss.Style, width int) lipgloss.Style {
	if width > 0 {
		return s.Width(width)
	}
	return s
}

func renderTable(v Table, t ui.Theme, width int) string {
	headers := make([]string, len(v.Headers))
	for i, h := range v.Headers {
		headers[i] = Sanitize(h)
	}
	rows := make([][]string, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = make([]string, len(r))
		for j, c := range r {
			rows[i][j] = Sanitize(c)
		}
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	tb := table.New().
		Border(t.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.Title.Padding(0, 1)
			case col == v.Emphasis:
				return t.Accent.Padding(0, 1)
			}
			return cell
		})
	if width > 0 {
		tb = tb.Width(width)
	}
	return tb.String()
}

func renderCard(v EventCard, t ui.Theme, width int) string {
	lines := []string{
		t.Title.Render(Sanitize(v.Title)),
		Sanitize(v.Span),
		t.Muted.Render(Sanitize(v.Location)),
	}
	bar := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.BorderColor).
		PaddingLeft(1)
	if v.Future {
		bar = bar.BorderForeground(t.Accent.GetForeground())
	}
	if width > 2 {
		bar = bar.Width(width - 2)
	}
	return bar.Render(strings.Join(lines, "\n"))
}
