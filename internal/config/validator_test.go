package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tallyerrors "github.com/alexisbeaulieu97/tally/pkg/errors"
)

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(Default()))
}

func TestValidateConfigRejectsNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *tallyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestValidateConfigRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{
			name:   "transition longer than five seconds",
			mutate: func(cfg *Config) { cfg.Transition.Duration = 6 * time.Second },
			field:  "transition.duration",
		},
		{
			name:   "negative particle count",
			mutate: func(cfg *Config) { cfg.Confetti.Particles = -1 },
			field:  "confetti.particles",
		},
		{
			name:   "zero fps",
			mutate: func(cfg *Config) { cfg.Confetti.FPS = 0 },
			field:  "confetti.fps",
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *Config) { cfg.Logging.Level = "loud" },
			field:  "logging.level",
		},
		{
			name:   "celebration longer than ten minutes",
			mutate: func(cfg *Config) { cfg.Celebration.Duration = time.Hour },
			field:  "celebration.duration",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			var validationErr *tallyerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateConfigAllowsDisabledEffects(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Transition.Duration = 0
	cfg.Confetti.Particles = 0
	cfg.Theme = ""
	require.NoError(t, ValidateConfig(cfg))
}
