package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	appLog "github.com/idilsaglam/planner/internal/log"
	"github.com/idilsaglam/planner/internal/panel"
)

// StartRefresh sends panel.ReloadMsg through send on every tick of the cron schedule.
// The caller stops the returned scheduler.
func StartRefresh(schedule string, send func(tea.Msg)) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, refreshJob(send)); err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", schedule, err)
	}
	c.Start()
	appLog.Info("calendar auto-refresh scheduled", "schedule", schedule)
	return c, nil
}

func refreshJob(send func(tea.Msg)) func() {
	return func() {
		appLog.Debug("calendar auto-refresh tick")
		send(panel.ReloadMsg{})
	}
}
