package widget

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Press    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increase: key.NewBinding(key.WithKeys("+", "=", "k", "up"), key.WithHelp("+/↑", "increase")),
		Decrease: key.NewBinding(key.WithKeys("-", "_", "j", "down"), key.WithHelp("-/↓", "decrease")),
		Reset:    key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next button")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous button")),
		Press:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "press button")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Reset, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.Reset, k.Theme},
		{k.Next, k.Prev, k.Press},
		{k.Help, k.Quit},
	}
}

// setControlsEnabled greys out the counter bindings in the help footer
// while the controls are locked.
func (k *keyMap) setControlsEnabled(increase, decrease, reset bool) {
	k.Increase.SetEnabled(increase)
	k.Decrease.SetEnabled(decrease)
	k.Reset.SetEnabled(reset)
}
