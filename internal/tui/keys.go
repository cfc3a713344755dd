package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Open        key.Binding
	Back        key.Binding
	Close       key.Binding
	SearchBack  key.Binding
	Search      key.Binding
	Bookmark    key.Binding
	Yank        key.Binding
	Info        key.Binding
	TabCommands key.Binding
	TabBasics   key.Binding
	TabTips     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("l", "right", "enter"),
			key.WithHelp("l/enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "left", "backspace"),
			key.WithHelp("h", "go back"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / back"),
		),
		SearchBack: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "leave search"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search commands"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bookmark"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy command name"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "about (basics)"),
		),
		TabCommands: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "commands"),
		),
		TabBasics: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "basics"),
		),
		TabTips: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tips"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpBindings returns the bindings listed in the help overlay, in order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Top, k.Bottom, k.Open, k.Back, k.Close,
		k.TabCommands, k.TabBasics, k.TabTips,
		k.Search, k.SearchBack, k.Bookmark, k.Yank, k.Info, k.Help, k.Quit,
	}
}
