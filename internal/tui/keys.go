package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keybindings for the TUI
type keyMap struct {
	Debug      key.Binding
	Force      key.Binding
	Reset      key.Binding
	ClearCache key.Binding
	Copy       key.Binding
	Pause      key.Binding
	Quit       key.Binding
}

// ShortHelp returns a short help text for the key bindings
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Debug, k.Pause, k.Quit}
}

// FullHelp returns the full help text for all key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Debug, k.Pause, k.Quit},
		{k.Force, k.Reset, k.ClearCache, k.Copy},
	}
}

// newKeyMap creates a new keyMap with all bindings configured
func newKeyMap() keyMap {
	return keyMap{
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug panel"),
		),
		Force: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5"),
			key.WithHelp("0-5", "force holiday"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "auto-detect"),
		),
		ClearCache: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear cache"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy snapshot"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forceTargets maps the digit keys to the holiday each one forces. "0"
// forces the effects off entirely, which is different from "r" returning
// to auto-detection.
var forceTargets = map[string]string{
	"0": "none",
	"1": "christmas",
	"2": "tet",
	"3": "new-year",
	"4": "halloween",
	"5": "mid-autumn",
}
