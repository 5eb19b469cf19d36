package panel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/view"
)

type PlanSource interface {
	Plan(ctx context.Context, req model.PlanRequest) (model.DayPlan, error)
}

var dayPlanFields = []fieldSpec{
	{Label: "Obiectiv", Placeholder: "ex. forță"},
	{Label: "Preferințe alimentare", Placeholder: "ex. vegetarian"},
}

// DayPlan asks for a combined workout, meal and schedule for one day.
type DayPlan struct {
	ctx context.Context
	src PlanSource
	gen generator
}

func NewDayPlan(ctx context.Context, src PlanSource) DayPlan {
	return DayPlan{
		ctx: ctx,
		src: src,
		gen: newGenerator(dayPlanFields, "", TextGeneratingDay),
	}
}

func (m DayPlan) Init() tea.Cmd           { return nil }
func (m DayPlan) Title() string           { return "Plan" }
func (m DayPlan) Busy() bool              { return m.gen.busy }
func (m DayPlan) Failed() bool            { return m.gen.failed }
func (m DayPlan) Content() view.Node      { return m.gen.body.node }
func (m DayPlan) Bindings() []key.Binding { return generatorBindings() }

func (m DayPlan) Request() model.PlanRequest {
	v := m.gen.form.trimmed()
	return model.PlanRequest{Goal: v[0], DietPref: v[1]}
}

func (m DayPlan) Fill(req model.PlanRequest) DayPlan {
	m.gen.form = m.gen.form.set(req.Goal, req.DietPref)
	return m
}

func (m DayPlan) Generate() (DayPlan, tea.Cmd) {
	req := m.Request()
	var reply generatedMsg
	m.gen, reply = m.gen.start()

	ctx, src := m.ctx, m.src
	return m, func() tea.Msg {
		plan, err := src.Plan(ctx, req)
		if err != nil {
			appLog.Error("plan: generate failed", err, "goal", req.Goal)
			text, _ := failureText(err)
			reply.node = placeholder(text).node()
			return reply
		}
		if plan.Error != "" {
			reply.node = placeholder(TextErrorPrefix + plan.Error).node()
			return reply
		}
		reply.node, reply.ok = RenderDayPlan(plan), true
		return reply
	}
}

func (m DayPlan) Clear() DayPlan {
	m.gen = m.gen.clear()
	return m
}

func (m DayPlan) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DayPlan) View() string { return m.gen.view() }

func RenderDayPlan(p model.DayPlan) view.Node {
	return view.Stack(
		view.Heading{Value: TextWorkout},
		view.Text{Value: orNoContent(p.Workout)},
		view.Heading{Value: TextMeal},
		view.Text{Value: orNoContent(p.Meal)},
		view.Heading{Value: TextSchedule},
		view.Text{Value: orNoContent(p.Schedule)},
	)
}
