package config

import "time"

// Config is the full settings document for the counter widget.
type Config struct {
	Theme       string              `yaml:"theme" validate:"theme"`
	Celebration CelebrationSettings `yaml:"celebration"`
	Transition  TransitionSettings  `yaml:"transition"`
	Confetti    ConfettiSettings    `yaml:"confetti"`
	Logging     LoggingSettings     `yaml:"logging"`
}

// CelebrationSettings controls when a celebration starts and how long the
// controls stay locked.
type CelebrationSettings struct {
	Every    int           `yaml:"every" validate:"min=1,max=1000"`
	Duration time.Duration `yaml:"duration" validate:"min=1s,max=10m"`
}

// TransitionSettings controls the fade-and-scale-in played on every change.
type TransitionSettings struct {
	Duration time.Duration `yaml:"duration" validate:"gte=0,lte=5s"`
}

// ConfettiSettings controls the particle overlay.
type ConfettiSettings struct {
	Particles int `yaml:"particles" validate:"gte=0,lte=2000"`
	FPS       int `yaml:"fps" validate:"min=1,max=120"`
}

// LoggingSettings controls where diagnostic logs go. Logs are discarded
// when File is empty because the terminal belongs to the widget.
type LoggingSettings struct {
	Level     string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb" validate:"gte=0,lte=1024"`
}

const (
	DefaultCelebrationEvery    = 10
	DefaultCelebrationDuration = 19 * time.Second
	DefaultTransitionDuration  = 500 * time.Millisecond
	DefaultConfettiParticles   = 120
	DefaultConfettiFPS         = 30
	DefaultLogMaxSizeMB        = 10
)

// Default returns the settings used when no file is supplied.
func Default() *Config {
	return &Config{
		Theme: "light",
		Celebration: CelebrationSettings{
			Every:    DefaultCelebrationEvery,
			Duration: DefaultCelebrationDuration,
		},
		Transition: TransitionSettings{
			Duration: DefaultTransitionDuration,
		},
		Confetti: ConfettiSettings{
			Particles: DefaultConfettiParticles,
			FPS:       DefaultConfettiFPS,
		},
		Logging: LoggingSettings{
			Level:     "info",
			MaxSizeMB: DefaultLogMaxSizeMB,
		},
	}
}
