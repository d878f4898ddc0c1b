// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
//
// Calculator characters are typed directly and have no binding; see
// calc.MapKey for the accepted set.
type KeyMap struct {
	// Quit exits the application. "q" only applies while the input is empty.
	Quit key.Binding

	// ForceQuit exits from anywhere.
	ForceQuit key.Binding

	// Help toggles the help overlay.
	Help key.Binding

	// Back closes the help overlay.
	Back key.Binding

	// PrevTab and NextTab switch between Calculator and History.
	PrevTab key.Binding
	NextTab key.Binding

	// Evaluate computes the current input.
	Evaluate key.Binding

	// Backspace deletes the last input character.
	Backspace key.Binding

	// Clear empties the input and result.
	Clear key.Binding

	// Up and Down move focus on the Calculator tab and the selection on
	// the History tab.
	Up   key.Binding
	Down key.Binding

	// Top and Bottom jump to the ends of the history list.
	Top    key.Binding
	Bottom key.Binding

	// Yank copies the focused text or the selected result.
	Yank key.Binding

	// Paste inserts clipboard text into the input.
	Paste key.Binding

	// Recall loads the selected history expression into the input.
	Recall key.Binding

	// Delete removes the selected history entry.
	Delete key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("h/←", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("l/→", "next tab"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=/enter", "calculate"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete char"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+d", "delete"),
			key.WithHelp("ctrl+d", "clear all"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p", "ctrl+v"),
			key.WithHelp("p", "paste"),
		),
		Recall: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "recall"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// CalculatorHelp returns status bar hints for the Calculator tab.
func (k *KeyMap) CalculatorHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Yank, k.Paste, k.Help}
}

// HistoryHelp returns status bar hints for the History tab.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Recall, k.Yank, k.Delete, k.Help}
}

// FullHelp returns the full list of keybindings for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.Up, k.Down},
		{k.Evaluate, k.Backspace, k.Clear, k.Paste, k.Yank},
		{k.Top, k.Bottom, k.Recall, k.Delete},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
