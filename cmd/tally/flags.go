package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/tally/internal/config"
	"github.com/alexisbeaulieu97/tally/internal/counter"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// resolveSettings loads the settings file and layers the command-line flags
// on top of it.
func resolveSettings(flags *rootFlags) (*config.Config, error) {
	if err := validateConfigPath(flags.configPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if flags.theme != "" {
		theme, err := counter.ParseTheme(flags.theme)
		if err != nil {
			return nil, fmt.Errorf("invalid --theme: %w", err)
		}
		cfg.Theme = theme.String()
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
