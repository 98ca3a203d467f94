package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/tally/internal/config"
	"github.com/alexisbeaulieu97/tally/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Session string
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	cfg, err := resolveSettings(flags)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	session := uuid.NewString()
	return &AppContext{
		Config:  cfg,
		Logger:  log.WithFields(map[string]any{"session": session}),
		Session: session,
	}, nil
}

// Close flushes and releases the log file.
func (a *AppContext) Close() error {
	if a == nil {
		return nil
	}
	return a.Logger.Close()
}
