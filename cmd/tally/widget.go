package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tally/internal/config"
	"github.com/alexisbeaulieu97/tally/internal/counter"
	"github.com/alexisbeaulieu97/tally/internal/logger"
	"github.com/alexisbeaulieu97/tally/internal/tui/widget"
	tallyerrors "github.com/alexisbeaulieu97/tally/pkg/errors"
)

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func widgetOptions(cfg *config.Config, log *logger.Logger) (widget.Options, error) {
	theme, err := counter.ParseTheme(cfg.Theme)
	if err != nil {
		return widget.Options{}, err
	}

	opts := widget.DefaultOptions()
	opts.Interval = cfg.Celebration.Every
	opts.CelebrationDuration = cfg.Celebration.Duration
	opts.TransitionDuration = cfg.Transition.Duration
	opts.Theme = theme
	opts.Particles = cfg.Confetti.Particles
	opts.FPS = cfg.Confetti.FPS
	opts.Logger = log
	return opts, nil
}

func runWidget(ctx context.Context, app *AppContext) error {
	if !stdoutIsTerminal() {
		err := tallyerrors.NewTerminalError("stdout is not a terminal", nil)
		app.Logger.Error(err, "refusing to start")
		return err
	}

	opts, err := widgetOptions(app.Config, app.Logger)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Cancelling ctx on the way out releases a celebration timer that is
	// still pending when the program exits.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.Logger.Info("launching counter")

	m := widget.NewModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(widget.Model); ok {
		fm.Close()
	}
	if err != nil {
		app.Logger.Error(err, "counter execution failed")
		return fmt.Errorf("failed to run counter: %w", err)
	}

	app.Logger.Info("counter closed")
	return nil
}
