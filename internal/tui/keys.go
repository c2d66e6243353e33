package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/cubetimer/internal/graphics"
)

type keyMap struct {
	Quit      key.Binding
	Timer     key.Binding
	Command   key.Binding
	Cancel    key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Yes       key.Binding
	No        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Timer:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// help is the one-line hint shown on the timer screen.
func (k keyMap) help() string {
	var out string
	for i, b := range []key.Binding{k.Timer, k.Command, k.Quit} {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}

// events turns a key press into input line events.
func (k keyMap) events(msg tea.KeyMsg) []graphics.Event {
	switch {
	case key.Matches(msg, k.Submit):
		return []graphics.Event{graphics.KeyEvent(graphics.EventEnter)}
	case key.Matches(msg, k.Backspace):
		return []graphics.Event{graphics.KeyEvent(graphics.EventBackspace)}
	case key.Matches(msg, k.Left):
		return []graphics.Event{graphics.KeyEvent(graphics.EventLeft)}
	case key.Matches(msg, k.Right):
		return []graphics.Event{graphics.KeyEvent(graphics.EventRight)}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []graphics.Event{graphics.RuneEvent(' ')}
	case tea.KeyRunes:
		out := make([]graphics.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, graphics.RuneEvent(r))
		}
		return out
	}
	return []graphics.Event{graphics.KeyEvent(graphics.EventNone)}
}
