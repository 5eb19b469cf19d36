package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/config"
	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/panel"
)

// CalendarOptions derives the calendar settings from cfg.
func CalendarOptions(cfg *config.Config) panel.CalendarOptions {
	return panel.CalendarOptions{
		DefaultMax: cfg.MaxResults,
		Dates:      panel.DateFormatter{Location: cfg.Location(), Layout: cfg.DateLayout},
	}
}

// Panels builds every panel in tab order.
func Panels(ctx context.Context, cfg *config.Config, be panel.Backend) []panel.Panel {
	return []panel.Panel{
		panel.NewCalendar(ctx, be, CalendarOptions(cfg)),
		panel.NewMonthSplit(ctx, be, cfg.MonthSplit.LimitPast, cfg.MonthSplit.LimitFuture),
		panel.NewNowNext(ctx, be, cfg.NowLimit),
		panel.NewFitness(ctx, be),
		panel.NewFood(ctx, be),
		panel.NewDayPlan(ctx, be),
	}
}

// Run blocks until the user quits or ctx is cancelled. Requests still in
// flight are cancelled on return.
func Run(ctx context.Context, cfg *config.Config, be panel.Backend) error {
	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewApp(Panels(ctx, cfg, be)...), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Refresh != "" {
		c, err := StartRefresh(cfg.Refresh, p.Send)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	appLog.Info("tui started", "backend", cfg.BackendURL)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// openLog points the app logger at path, creating its directory. An empty
// path discards log lines.
func openLog(path string) (io.Closer, error) {
	if path == "" {
		appLog.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFileWith(path, "", appLog.Std())
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
