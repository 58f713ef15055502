package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	nextTab  key.Binding
	logout   key.Binding
	refresh  key.Binding
	copy     key.Binding
	copyHash key.Binding
	copyID   key.Binding
	download key.Binding
	approve  key.Binding
	reject   key.Binding
	register key.Binding
	version  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	nextTab:  key.NewBinding(key.WithKeys("ctrl+t")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyHash: key.NewBinding(key.WithKeys("h")),
	copyID:   key.NewBinding(key.WithKeys("ctrl+y")),
	download: key.NewBinding(key.WithKeys("d")),
	approve:  key.NewBinding(key.WithKeys("a")),
	reject:   key.NewBinding(key.WithKeys("x")),
	register: key.NewBinding(key.WithKeys("ctrl+n")),
	version:  key.NewBinding(key.WithKeys("v")),
}
