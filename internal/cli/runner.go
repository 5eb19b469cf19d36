package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/idilsaglam/planner/internal/config"
	"github.com/idilsaglam/planner/internal/panel"
	"github.com/idilsaglam/planner/internal/ui"
)

// Options carries what the root command resolved before dispatch.
type Options struct {
	Config     *config.Config
	ConfigPath string
	Backend    panel.Backend
	// Interactive runs the full-screen app; tests replace it.
	Interactive func(ctx context.Context, cfg *config.Config, be panel.Backend) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		if opt.Interactive == nil {
			ui.Fail("ui: interactive mode unavailable")
			return 1
		}
		if err := opt.Interactive(ctx, opt.Config, opt.Backend); err != nil {
			ui.Fail("ui: " + err.Error())
			return 1
		}
		return 0

	case "events":
		if len(a) > 0 && a[0] == "export" {
			return doExport(ctx, a[1:], opt)
		}
		return doEvents(ctx, a, opt)

	case "month":
		return doMonth(ctx, a, opt)

	case "now":
		return doNow(ctx, a, opt)

	case "fitness":
		return doFitness(ctx, a, opt)

	case "food":
		return doFood(ctx, a, opt)

	case "plan":
		return doPlan(ctx, a, opt)

	case "auth":
		return doAuth(a)

	case "config":
		return doConfig(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	printHelp(ui.Stdout)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `planner - calendar, fitness and food panels for the terminal

Usage:
  planner [root flags] <subcommand> [args]

Root flags:
  -config <path>     Config file (default: user config dir/planner/config.yaml)
  -backend <url>     Backend base URL, overrides the config file
  -theme <name>      classic, neon or mono
  -color, -no-color  Force or disable colour output

Subcommands:
  ui                              Open the interactive panels
  events [-max N]                 Upcoming events table
  events export [-max N] <file>   Write upcoming events to an .ics file
  month [-past N] [-future N]     This month's past events and next month's events
  now [-limit N]                  Current event and what comes next
  fitness [-goal ..] [-experience ..] [-equipment ..] [-injuries ..] [-prompt ..]
                                  Generate a workout plan
  food [-diet ..] [-schedule ..] [-prompt ..]
                                  Generate a meal recommendation
  plan -goal .. -diet ..          Workout, meals and schedule for one day
  auth login <token> | logout | status | whoami
  config path | show

Examples:
  planner events -max 5
  planner fitness -goal "forță" -experience începător
  planner -backend http://localhost:5000 ui
`)
}
