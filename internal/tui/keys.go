package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	search   key.Binding
	reveal   key.Binding
	refresh  key.Binding
	lock     key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	copyUser key.Binding
	generate key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h", "-")),
	right:    key.NewBinding(key.WithKeys("right", "l", "+")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	search:   key.NewBinding(key.WithKeys("/")),
	reveal:   key.NewBinding(key.WithKeys("r", "enter")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	lock:     key.NewBinding(key.WithKeys("L")),
	logout:   key.NewBinding(key.WithKeys("O", "ctrl+o")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	generate: key.NewBinding(key.WithKeys("g")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
