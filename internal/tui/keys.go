package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextPage     key.Binding
	prevPage     key.Binding
	payees       key.Binding
	transactions key.Binding
	sync         key.Binding
	fullSync     key.Binding
	filter       key.Binding
	copy         key.Binding
	info         key.Binding
	enter        key.Binding
	esc          key.Binding
	quit         key.Binding
	forceQuit    key.Binding
}

var keys = keyMap{
	nextPage:     key.NewBinding(key.WithKeys("tab")),
	prevPage:     key.NewBinding(key.WithKeys("shift+tab")),
	payees:       key.NewBinding(key.WithKeys("1")),
	transactions: key.NewBinding(key.WithKeys("2")),
	sync:         key.NewBinding(key.WithKeys("s")),
	fullSync:     key.NewBinding(key.WithKeys("S")),
	filter:       key.NewBinding(key.WithKeys("/")),
	copy:         key.NewBinding(key.WithKeys("c")),
	info:         key.NewBinding(key.WithKeys("v")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	quit:         key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
}
