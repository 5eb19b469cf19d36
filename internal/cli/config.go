package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/planner/internal/ui"
)

func doConfig(args []string, opt Options) int {
	if len(args) != 1 {
		ui.Fail("usage: planner config path | show")
		return 2
	}
	switch args[0] {
	case "path":
		fmt.Fprintln(ui.Stdout, opt.ConfigPath)
		return 0
	case "show":
		b, err := yaml.Marshal(opt.Config)
		if err != nil {
			ui.Fail("config: " + err.Error())
			return 1
		}
		fmt.Fprint(ui.Stdout, string(b))
		return 0
	}
	ui.Fail("config: unknown action: " + args[0])
	return 2
}
