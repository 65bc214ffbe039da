package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	next key.Binding
	stop key.Binding
	quit key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("n", "enter"),
		key.WithHelp("n", "next"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
