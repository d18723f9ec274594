package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Add        key.Binding
	Delete     key.Binding
	Minimize   key.Binding
	Enter      key.Binding
	Edit       key.Binding
	Next       key.Binding
	Prev       key.Binding
	NudgeUp    key.Binding
	NudgeDown  key.Binding
	NudgeLeft  key.Binding
	NudgeRight key.Binding
	Settings   key.Binding
	Search     key.Binding
	Copy       key.Binding
	Quit       key.Binding
	ResetColor key.Binding
	Close      key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Minimize:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "min/restore")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Next:       key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("←", "prev")),
		NudgeUp:    key.NewBinding(key.WithKeys("K", "shift+up")),
		NudgeDown:  key.NewBinding(key.WithKeys("J", "shift+down")),
		NudgeLeft:  key.NewBinding(key.WithKeys("H", "shift+left")),
		NudgeRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("HJKL", "move")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ResetColor: key.NewBinding(key.WithKeys("ctrl+r")),
		Close:      key.NewBinding(key.WithKeys("esc")),
		FocusNext:  key.NewBinding(key.WithKeys("tab", "down")),
		FocusPrev:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	}
}

// ShortHelp is the dashboard help bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Minimize, k.Delete, k.Next, k.NudgeRight, k.Search, k.Copy, k.Settings, k.Quit}
}

// FullHelp is unused; the dashboard only shows the short form
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// newHelp styles bubbles/help like the rest of the help bars: grey italic, "a · b"
func newHelp() help.Model {
	h := help.New()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	h.ShortSeparator = " · "
	h.Styles.ShortKey = style
	h.Styles.ShortDesc = style
	h.Styles.ShortSeparator = style
	h.Styles.Ellipsis = style
	return h
}
