package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newItem key.Binding
	toggle  key.Binding
	sync    key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	version key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	newItem: key.NewBinding(key.WithKeys("n")),
	toggle:  key.NewBinding(key.WithKeys(" ", "enter")),
	sync:    key.NewBinding(key.WithKeys("s")),
	edit:    key.NewBinding(key.WithKeys("e")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
