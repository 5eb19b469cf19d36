package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

type FitnessSource interface {
	GenerateFitness(ctx context.Context, req model.FitnessRequest) (model.GenerationResult, error)
}

var fitnessFields = []fieldSpec{
	{Label: "Obiectiv", Placeholder: "ex. forță, slăbire"},
	{Label: "Experiență", Placeholder: "ex. începător"},
	{Label: "Echipament", Placeholder: "ex. gantere, bandă"},
	{Label: "Accidentări", Placeholder: "ex. genunchi"},
}

// Fitness generates a workout plan. The badge tells whether the backend
// read the calendar.
type Fitness struct {
	ctx context.Context
	src FitnessSource
	gen generator
}

func NewFitness(ctx context.Context, src FitnessSource) Fitness {
	return Fitness{
		ctx: ctx,
		src: src,
		gen: newGenerator(fitnessFields, "Detalii suplimentare…", TextGeneratingPlan),
	}
}

func (m Fitness) Init() tea.Cmd           { return nil }
func (m Fitness) Title() string           { return "Fitness" }
func (m Fitness) Busy() bool              { return m.gen.busy }
func (m Fitness) Failed() bool            { return m.gen.failed }
func (m Fitness) Content() view.Node      { return m.gen.body.node }
func (m Fitness) Bindings() []key.Binding { return generatorBindings() }

// Request is the trimmed payload the next Generate sends.
func (m Fitness) Request() model.FitnessRequest {
	v := m.gen.form.trimmed()
	return model.FitnessRequest{Goal: v[0], Experience: v[1], Equipment: v[2], Injuries: v[3], Prompt: v[4]}
}

func (m Fitness) Fill(req model.FitnessRequest) Fitness {
	m.gen.form = m.gen.form.set(req.Goal, req.Experience, req.Equipment, req.Injuries, req.Prompt)
	return m
}

// Values returns the raw inputs, prompt last.
func (m Fitness) Values() []string { return m.gen.form.values() }

func (m Fitness) Generate() (Fitness, tea.Cmd) {
	req := m.Request()
	var reply generatedMsg
	m.gen, reply = m.gen.start()

	ctx, src := m.ctx, m.src
	return m, func() tea.Msg {
		res, err := src.GenerateFitness(ctx, req)
		if err != nil {
			appLog.Error("fitness: generate failed", err)
		}
		out, ok := generationOutcome(res, err)
		if ok {
			out.badge = TextCalendarUsedNo
			if res.UsedCalendar {
				out.badge = TextCalendarUsedYes
			}
		}
		reply.node, reply.ok = out.node(), ok
		return reply
	}
}

func (m Fitness) Clear() Fitness {
	m.gen = m.gen.clear()
	return m
}

func (m Fitness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.gen, _ = m.gen.settle(msg)
		return m, nil
	case SizeMsg:
		m.gen = m.gen.resize(msg)
		return m, nil
	case tea.KeyMsg:
		var (
			cmd tea.Cmd
			act genAction
		)
		m.gen, cmd, act = m.gen.key(msg)
		switch act {
		case actGenerate:
			return m.Generate()
		case actClear:
			return m.Clear(), nil
		}
		return m, cmd
	}
	return m, nil
}

func (m Fitness) View() string { return m.gen.view() }
