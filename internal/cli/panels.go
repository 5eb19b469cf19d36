package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/idilsaglam/planner/internal/ics"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/panel"
	"github.com/idilsaglam/planner/internal/tui"
	"github.com/idilsaglam/planner/internal/ui"
	"github.com/idilsaglam/planner/internal/view"
)

// newFlags returns a flag set that reports errors instead of exiting.
func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse reports a usage error and returns false when args do not parse.
func parse(fs *flag.FlagSet, args []string, usage string) bool {
	if err := fs.Parse(args); err != nil {
		ui.Fail(fs.Name() + ": " + err.Error())
		ui.Hint("usage: " + usage)
		return false
	}
	return true
}

// show prints a settled panel inside a frame. Panels that ended on an
// error view exit 1.
func show(p panel.Panel) int {
	t := ui.Current()
	body := view.Render(p.Content(), t, ui.Width()-4)
	ui.Panel(ui.Stdout, []string{t.Title.Render(p.Title()), "", body})
	if p.Failed() {
		return 1
	}
	return 0
}

func doEvents(ctx context.Context, args []string, opt Options) int {
	fs := newFlags("events")
	maxResults := fs.Int("max", 0, "max_results")
	if !parse(fs, args, "planner events [-max N]") {
		return 2
	}
	c := panel.NewCalendar(ctx, opt.Backend, tui.CalendarOptions(opt.Config)).SetMax(*maxResults)
	return show(panel.Settle(c, c.Init()).(panel.Calendar))
}

func doExport(ctx context.Context, args []string, opt Options) int {
	const usage = "planner events export [-max N] <file.ics>"
	fs := newFlags("export")
	maxResults := fs.Int("max", 0, "max_results")
	if !parse(fs, args, usage) {
		return 2
	}
	if fs.NArg() != 1 {
		ui.Fail("export: expected one output file")
		ui.Hint("usage: " + usage)
		return 2
	}
	path := fs.Arg(0)

	n := *maxResults
	if n <= 0 {
		n = opt.Config.MaxResults
	}
	resp, err := opt.Backend.Events(ctx, n)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	if resp.AdapterError != "" {
		ui.Fail("export: " + panel.TextAdapterError + resp.AdapterError)
		return 1
	}

	f, err := os.Create(path)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	written, err := ics.Write(f, resp.Events, opt.Config.Location(), time.Now())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("exported %d of %d events to %s", written, len(resp.Events), path))
	return 0
}

func doMonth(ctx context.Context, args []string, opt Options) int {
	fs := newFlags("month")
	past := fs.Int("past", opt.Config.MonthSplit.LimitPast, "limit_past")
	future := fs.Int("future", opt.Config.MonthSplit.LimitFuture, "limit_future")
	if !parse(fs, args, "planner month [-past N] [-future N]") {
		return 2
	}
	return show(panel.Settle(panel.NewMonthSplit(ctx, opt.Backend, *past, *future).Load()).(panel.MonthSplit))
}

func doNow(ctx context.Context, args []string, opt Options) int {
	fs := newFlags("now")
	limit := fs.Int("limit", opt.Config.NowLimit, "upcoming events to show")
	if !parse(fs, args, "planner now [-limit N]") {
		return 2
	}
	return show(panel.Settle(panel.NewNowNext(ctx, opt.Backend, *limit).Load()).(panel.NowNext))
}

func doFitness(ctx context.Context, args []string, opt Options) int {
	var req model.FitnessRequest
	fs := newFlags("fitness")
	fs.StringVar(&req.Goal, "goal", "", "goal")
	fs.StringVar(&req.Experience, "experience", "", "experience")
	fs.StringVar(&req.Equipment, "equipment", "", "equipment")
	fs.StringVar(&req.Injuries, "injuries", "", "injuries")
	fs.StringVar(&req.Prompt, "prompt", "", "free-text prompt")
	if !parse(fs, args, "planner fitness [-goal ..] [-experience ..] [-equipment ..] [-injuries ..] [-prompt ..]") {
		return 2
	}
	if req.Prompt == "" && fs.NArg() > 0 {
		req.Prompt = strings.Join(fs.Args(), " ")
	}
	f := panel.NewFitness(ctx, opt.Backend).Fill(req)
	return show(panel.Settle(f.Generate()).(panel.Fitness))
}

func doFood(ctx context.Context, args []string, opt Options) int {
	var req model.FoodRequest
	fs := newFlags("food")
	fs.StringVar(&req.DietPref, "diet", "", "diet preference")
	fs.StringVar(&req.Schedule, "schedule", "", "schedule")
	fs.StringVar(&req.Prompt, "prompt", "", "free-text prompt")
	if !parse(fs, args, "planner food [-diet ..] [-schedule ..] [-prompt ..]") {
		return 2
	}
	if req.Prompt == "" && fs.NArg() > 0 {
		req.Prompt = strings.Join(fs.Args(), " ")
	}
	f := panel.NewFood(ctx, opt.Backend).Fill(req)
	return show(panel.Settle(f.Generate()).(panel.Food))
}

func doPlan(ctx context.Context, args []string, opt Options) int {
	const usage = "planner plan -goal .. -diet .."
	var req model.PlanRequest
	fs := newFlags("plan")
	fs.StringVar(&req.Goal, "goal", "", "goal")
	fs.StringVar(&req.DietPref, "diet", "", "diet preference")
	if !parse(fs, args, usage) {
		return 2
	}
	if strings.TrimSpace(req.Goal) == "" || strings.TrimSpace(req.DietPref) == "" {
		ui.Fail("plan: both -goal and -diet are required")
		ui.Hint("usage: " + usage)
		return 2
	}
	d := panel.NewDayPlan(ctx, opt.Backend).Fill(req)
	return show(panel.Settle(d.Generate()).(panel.DayPlan))
}
