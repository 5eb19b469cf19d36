package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

type FoodSource interface {
	GenerateFood(ctx context.Context, req model.FoodRequest) (model.GenerationResult, error)
}

var foodFields = []fieldSpec{
	{Label: "Preferințe alimentare", Placeholder: "ex. vegetarian"},
	{Label: "Program", Placeholder: "ex. 3 mese, fără gustări"},
}

// Food generates a meal recommendation.
type Food struct {
	ctx context.Context
	src FoodSource
	gen generator
}

func NewFood(ctx context.Context, src FoodSource) Food {
	return Food{
		ctx: ctx,
		src: src,
		gen: newGenerator(foodFields, "Detalii suplimentare…", TextGeneratingFood),
	}
}

func (m Food) Init() tea.Cmd           { return nil }
func (m Food) Title() string           { return "Alimentație" }
func (m Food) Busy() bool              { return m.gen.busy }
func (m Food) Failed() bool            { return m.gen.failed }
func (m Food) Content() view.Node      { return m.gen.body.node }
func (m Food) Bindings() []key.Binding { return generatorBindings() }

func (m Food) Request() model.FoodRequest {
	v := m.gen.form.trimmed()
	return model.FoodRequest{DietPref: v[0], Schedule: v[1], Prompt: v[2]}
}

func (m Food) Fill(req model.FoodRequest) Food {
	m.gen.form = m.gen.form.set(req.DietPref, req.Schedule, req.Prompt)
	return m
}

func (m Food) Values() []string { return m.gen.form.values() }

func (m Food) Generate() (Food, tea.Cmd) {
	req := m.Request()
	var reply generatedMsg
	m.gen, reply = m.gen.start()

	ctx, src := m.ctx, m.src
	return m, func() tea.Msg {
		res, err := src.GenerateFood(ctx, req)
		if err != nil {
			appLog.Error("food: generate failed", err)
		}
		out, ok := generationOutcome(res, err)
		reply.node, reply.ok = out.node(), ok
		return reply
	}
}

func (m Food) Clear() Food {
	m.gen = m.gen.clear()
	return m
}

func (m Food) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m Food) View() string { return m.gen.view() }
