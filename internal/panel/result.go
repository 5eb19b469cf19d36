package panel

import (
	"errors"

	"github.com/idilsaglam/planner/internal/api"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

// result is the state of a generator's output area.
type result struct {
	text  string
	muted bool
	badge string
}

func (r result) node() view.Node {
	kind := view.Plain
	if r.muted {
		kind = view.Muted
	}
	return view.Stack(view.Text{Value: r.text, Kind: kind}, view.Badge{Value: r.badge})
}

func placeholder(text string) result {
	return result{text: text, muted: true}
}

// failureText maps a request error to the text shown in the result area.
// transport is true when the error carries no backend message.
func failureText(err error) (text string, transport bool) {
	var he *api.HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if msg == "" {
			msg = he.StatusText()
		}
		return TextErrorPrefix + msg, false
	}
	return TextGenerateFailed, true
}

// generationOutcome decides what a generator shows once its request settles.
// ok is false for every error path.
func generationOutcome(res model.GenerationResult, err error) (r result, ok bool) {
	if err != nil {
		text, _ := failureText(err)
		return placeholder(text), false
	}
	if res.Error != "" {
		return placeholder(TextErrorPrefix + res.Error), false
	}
	content := res.Content
	if content == "" {
		content = TextNoContent
	}
	return result{text: content}, true
}

func orNoContent(s string) string {
	if s == "" {
		return TextNoContent
	}
	return s
}
