package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/planner/internal/api"
	"github.com/idilsaglam/planner/internal/auth"
	"github.com/idilsaglam/planner/internal/cli"
	"github.com/idilsaglam/planner/internal/config"
	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/tui"
	"github.com/idilsaglam/planner/internal/ui"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	// Root flags (apply to every subcommand)
	configPath := flag.String("config", config.DefaultPath(), "config file")
	backendURL := flag.String("backend", "", "backend base URL")
	theme := flag.String("theme", "", "color theme: classic, neon, mono")
	forceColor := flag.Bool("color", false, "force color output")
	noColor := flag.Bool("no-color", false, "disable color output")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}
	ui.SetColorForcing(*forceColor, *noColor)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if cfg == nil {
			ui.Fail("config: " + err.Error())
			os.Exit(1)
		}
		// Defaults are usable even when they could not be written.
		appLog.Error("save default config", err, "path", *configPath)
	}
	cfg.ApplyEnv()
	if *backendURL != "" {
		cfg.BackendURL = *backendURL
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	ui.SetTheme(cfg.Theme)
	appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))

	var token string
	if ti, err := auth.GetToken(); err != nil {
		appLog.Error("read token", err)
	} else if ti != nil {
		token = ti.Token
	}

	client, err := api.New(cfg.BackendURL, api.WithTimeout(cfg.Timeout()), api.WithToken(token))
	if err != nil {
		ui.Fail("backend: " + err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, args, cli.Options{
		Config:      cfg,
		ConfigPath:  *configPath,
		Backend:     client,
		Interactive: tui.Run,
	})
	stop()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
