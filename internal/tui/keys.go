package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PrevPeriod key.Binding
	NextPeriod key.Binding
	Today      key.Binding
	DayView    key.Binding
	WeekView   key.Binding
	MonthView  key.Binding
	Add        key.Binding
	Done       key.Binding
	Delete     key.Binding
	Holidays   key.Binding
	Categories key.Binding
	Enter      key.Binding
	Help       key.Binding
	Quit       key.Binding
	Escape     key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	PrevPeriod: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev period")),
	NextPeriod: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next period")),
	Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	DayView:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day view")),
	WeekView:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week view")),
	MonthView:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month view")),
	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add event")),
	Done:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle task")),
	Delete:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
	Holidays:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "toggle holidays")),
	Categories: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/toggle")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
