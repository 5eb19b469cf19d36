package panel

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/ui"
)

// fieldSpec describes one single-line input.
type fieldSpec struct {
	Label       string
	Placeholder string
}

type field struct {
	label string
	input textinput.Model
}

// form is a column of single-line inputs, optionally followed by a
// free-text prompt. focus == len(fields) addresses the prompt.
type form struct {
	fields    []field
	hasPrompt bool
	prompt    textarea.Model
	focus     int
}

func newForm(specs []fieldSpec, promptPlaceholder string) form {
	f := form{fields: make([]field, len(specs))}
	for i, s := range specs {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.Placeholder = s.Placeholder
		ti.CharLimit = 200
		f.fields[i] = field{label: s.Label, input: ti}
	}
	if promptPlaceholder != "" {
		ta := textarea.New()
		ta.Placeholder = promptPlaceholder
		ta.ShowLineNumbers = false
		ta.CharLimit = 2000
		ta.SetHeight(3)
		f.prompt = ta
		f.hasPrompt = true
	}
	f.focusAt(0)
	return f
}

func (f form) size() int {
	if f.hasPrompt {
		return len(f.fields) + 1
	}
	return len(f.fields)
}

// values returns the raw input values, prompt last.
func (f form) values() []string {
	out := make([]string, 0, f.size())
	for _, fl := range f.fields {
		out = append(out, fl.input.Value())
	}
	if f.hasPrompt {
		out = append(out, f.prompt.Value())
	}
	return out
}

// trimmed returns values with surrounding whitespace removed.
func (f form) trimmed() []string {
	vals := f.values()
	for i, v := range vals {
		vals[i] = strings.TrimSpace(v)
	}
	return vals
}

// set fills inputs in order; extra values are ignored.
func (f form) set(vals ...string) form {
	f.fields = slices.Clone(f.fields)
	for i, v := range vals {
		switch {
		case i < len(f.fields):
			f.fields[i].input.SetValue(v)
		case i == len(f.fields) && f.hasPrompt:
			f.prompt.SetValue(v)
		}
	}
	return f
}

func (f form) reset() form {
	f.fields = slices.Clone(f.fields)
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	if f.hasPrompt {
		f.prompt.Reset()
	}
	return f
}

func (f *form) focusAt(i int) {
	n := f.size()
	if n == 0 {
		return
	}
	f.focus = ((i % n) + n) % n
	for j := range f.fields {
		if j == f.focus {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
	if f.hasPrompt {
		if f.focus == len(f.fields) {
			f.prompt.Focus()
		} else {
			f.prompt.Blur()
		}
	}
}

func (f form) focusFirst() form {
	f.fields = slices.Clone(f.fields)
	f.focusAt(0)
	return f
}

func (f form) next() form {
	f.fields = slices.Clone(f.fields)
	f.focusAt(f.focus + 1)
	return f
}

func (f form) prev() form {
	f.fields = slices.Clone(f.fields)
	f.focusAt(f.focus - 1)
	return f
}

// onPrompt reports whether the free-text prompt has focus.
func (f form) onPrompt() bool {
	return f.hasPrompt && f.focus == len(f.fields)
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	if f.onPrompt() {
		f.prompt, cmd = f.prompt.Update(msg)
		return f, cmd
	}
	if f.focus < len(f.fields) {
		f.fields = slices.Clone(f.fields)
		f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	}
	return f, cmd
}

func (f form) setWidth(w int) form {
	if w < 20 {
		w = 20
	}
	f.fields = slices.Clone(f.fields)
	for i := range f.fields {
		f.fields[i].input.Width = w - 4
	}
	if f.hasPrompt {
		f.prompt.SetWidth(w)
	}
	return f
}

// height is the number of lines view returns.
func (f form) height() int {
	h := 2 * len(f.fields)
	if f.hasPrompt {
		h += 1 + f.prompt.Height()
	}
	return h
}

func (f form) view() string {
	t := ui.Current()
	var b strings.Builder
	for i, fl := range f.fields {
		label := t.Muted.Render(fl.label)
		if i == f.focus {
			label = t.Accent.Render(fl.label)
		}
		b.WriteString(label + "\n" + fl.input.View() + "\n")
	}
	if f.hasPrompt {
		label := t.Muted.Render("Prompt")
		if f.onPrompt() {
			label = t.Accent.Render("Prompt")
		}
		b.WriteString(label + "\n" + f.prompt.View())
	}
	return strings.TrimRight(b.String(), "\n")
}
