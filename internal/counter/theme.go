package counter

import (
	"fmt"
	"strings"
)

// Theme selects one of the two global palettes.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns the lowercase theme name.
func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	default:
		return "light"
	}
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme converts a theme name into a Theme. Empty input means light.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q", name)
	}
}
