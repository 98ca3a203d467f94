package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tallyerrors "github.com/alexisbeaulieu97/tally/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 10, cfg.Celebration.Every)
	require.Equal(t, 19*time.Second, cfg.Celebration.Duration)
	require.Equal(t, 500*time.Millisecond, cfg.Transition.Duration)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	partialYAML := `theme: dark
celebration:
  duration: 5s
confetti:
  particles: 40
`

	badTypeYAML := `celebration:
  every: ten
`

	unknownFieldYAML := `colour: blue
`

	outOfRangeYAML := `celebration:
  every: 0
`

	badThemeYAML := `theme: solarized
`

	shortDurationYAML := `celebration:
  duration: 200ms
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "partial file keeps defaults for missing keys",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, 5*time.Second, cfg.Celebration.Duration)
				require.Equal(t, DefaultCelebrationEvery, cfg.Celebration.Every)
				require.Equal(t, 40, cfg.Confetti.Particles)
				require.Equal(t, DefaultConfettiFPS, cfg.Confetti.FPS)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "type mismatch reports the line",
			contents: badTypeYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *tallyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownFieldYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tallyerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "interval below one fails validation",
			contents: outOfRangeYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tallyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "celebration.every", validationErr.Field)
			},
		},
		{
			name:     "unknown theme fails validation",
			contents: badThemeYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tallyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
			},
		},
		{
			name:     "celebration shorter than a second fails validation",
			contents: shortDurationYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *tallyerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "celebration.duration", validationErr.Field)
				require.Contains(t, validationErr.Message, "min=1s")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *tallyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Zero(t, extractLine(nil))
	require.Zero(t, extractLine(os.ErrClosed))
}
