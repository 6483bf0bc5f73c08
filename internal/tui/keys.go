package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the model reacts to. Bindings are matched
// with key.Matches and their Help() text feeds the footer hints.
type keyMap struct {
	// Global
	ForceQuit   key.Binding
	SwitchFocus key.Binding

	// Input focus
	Add key.Binding

	// List focus
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
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
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete", "backspace"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter", "i"),
			key.WithHelp("esc", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// inputHints are the footer hints while the text field has focus.
func (k keyMap) inputHints() []key.Binding {
	return []key.Binding{k.Add, k.SwitchFocus, k.ForceQuit}
}

// listHints are the footer hints while a task row has focus.
func (k keyMap) listHints() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back, k.Quit}
}
