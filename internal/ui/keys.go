package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the shell reacts to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Easy    key.Binding
	Medium  key.Binding
	Hard    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "w"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "s"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h", "a"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "d"),
		key.WithHelp("→/l", "right"),
	),
	Reveal: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "reveal"),
	),
	Flag: key.NewBinding(
		key.WithKeys("f", "x"),
		key.WithHelp("f", "flag"),
	),
	Easy: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "easy"),
	),
	Medium: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "medium"),
	),
	Hard: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "hard"),
	),
	Restart: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new game"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// help renders the bindings as "key: desc" pairs.
func (k KeyMap) help() []string {
	bindings := []key.Binding{
		k.Reveal, k.Flag, k.Restart, k.Easy, k.Medium, k.Hard, k.Quit,
	}
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, h.Key+": "+h.Desc)
	}
	return lines
}
