// Package keys defines the key bindings shared by the input modes and the help footer.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the TUI reacts to
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Select       key.Binding
	FocusResults key.Binding
	FocusInput   key.Binding
	Dismiss      key.Binding
	Pager        key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// Default is the key map used by the TUI
var Default = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	FocusResults: key.NewBinding(
		key.WithKeys("tab", "down", "enter"),
		key.WithHelp("tab", "results"),
	),
	FocusInput: key.NewBinding(
		key.WithKeys("tab", "/", "i"),
		key.WithHelp("tab", "search"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Pager: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open description"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// QueryKeys is the short help shown while typing
type QueryKeys struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (k QueryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusResults, k.Dismiss, k.ForceQuit}
}

// FullHelp implements help.KeyMap
func (k QueryKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// BrowseKeys is the help shown while moving over results
type BrowseKeys struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (k BrowseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Pager, k.FocusInput, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k BrowseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Pager, k.FocusInput, k.Dismiss},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
