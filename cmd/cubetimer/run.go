package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cubetimer/internal/commands"
	"github.com/jask/cubetimer/internal/config"
	"github.com/jask/cubetimer/internal/prefs"
	"github.com/jask/cubetimer/internal/tui"
)

func runTimer(ctx context.Context, f flags) error {
	e, err := setup(ctx, f, nil)
	if err != nil {
		return err
	}
	defer e.Close()

	startupPath := prefs.StartupPath(config.Dir())
	startup, err := prefs.LoadStartup(startupPath)
	if err != nil {
		e.logger.Warn("startup file ignored", "path", startupPath, "err", err)
	}

	svc := e.sessions()
	interp := commands.New(svc, startup.Aliases)
	interp.AliasFile = startupPath

	app := tui.New(ctx, tui.Options{
		Session:     svc,
		Commands:    interp,
		Startup:     startup.Commands,
		SessionName: f.Session,
		Tick:        time.Duration(e.cfg.Timer.TickMS) * time.Millisecond,
		HoldTicks:   e.cfg.Timer.HoldTicks,
		BlinkTicks:  e.cfg.UI.BlinkTicks,
		CursorGlyph: e.cfg.CursorRune(),
		Logger:      e.logger,
	})
	e.logger.Info("timer starting", "version", version)
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("timer: %w", err)
	}
	return nil
}
