package ui

import "github.com/charmbracelet/bubbles/key"

// Key bindings
var keys = struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Search      key.Binding
	LeaveSearch key.Binding
	Clear       key.Binding
	Start       key.Binding
	Reload      key.Binding
	Like        key.Binding
	Reject      key.Binding
	Keep        key.Binding
	Replace     key.Binding
	Back        key.Binding
	Reset       key.Binding
}{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:      key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "own")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	LeaveSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
	Start:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Like:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "like")),
	Reject:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "pass")),
	Keep:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "keep")),
	Replace:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "switch")),
	Back:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	Reset:       key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "again")),
}

// While the search box has focus letters belong to the query, so only the
// arrow keys move and enter toggles.
var searchKeys = struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "own")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
}

// bindingSet adapts a flat list of bindings to help.KeyMap.
type bindingSet []key.Binding

func (b bindingSet) ShortHelp() []key.Binding  { return b }
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
