package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tally/internal/config"
	"github.com/alexisbeaulieu97/tally/internal/counter"
	"github.com/alexisbeaulieu97/tally/internal/logger"
	tallyerrors "github.com/alexisbeaulieu97/tally/pkg/errors"
)

func TestWidgetOptionsFromSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "dark"
	cfg.Celebration.Every = 3
	cfg.Celebration.Duration = 2 * time.Second
	cfg.Transition.Duration = 0
	cfg.Confetti.Particles = 7
	cfg.Confetti.FPS = 12

	opts, err := widgetOptions(cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, counter.ThemeDark, opts.Theme)
	assert.Equal(t, 3, opts.Interval)
	assert.Equal(t, 2*time.Second, opts.CelebrationDuration)
	assert.Zero(t, opts.TransitionDuration)
	assert.Equal(t, 7, opts.Particles)
	assert.Equal(t, 12, opts.FPS)
	assert.NotNil(t, opts.Logger)
}

func TestRunWidgetRequiresTerminal(t *testing.T) {
	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	app := &AppContext{Config: config.Default(), Logger: log, Session: "test"}
	err = runWidget(context.Background(), app)
	require.Error(t, err)

	var termErr *tallyerrors.TerminalError
	require.ErrorAs(t, err, &termErr)
	assert.Contains(t, termErr.Reason, "not a terminal")
	assert.Contains(t, buf.String(), "refusing to start")
}

func TestRootCommandRejectsBadTheme(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--theme", "neon"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extra"})

	require.Error(t, root.Execute())
}

func TestNewAppContextTagsSession(t *testing.T) {
	app, err := newAppContext(&rootFlags{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Len(t, app.Session, 36)
	assert.Equal(t, "light", app.Config.Theme)
}
