package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	esc    key.Binding
	quit   key.Binding
	copy   key.Binding
	about  key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	about:  key.NewBinding(key.WithKeys("f1")),
}
