package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Flap    key.Binding
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Confirm},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Space both flaps and
// confirms, so one key plays the whole game.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "flap"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("enter", "start"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey records the actions a key press triggers into frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
		return true
	}
	if key.Matches(msg, k.Flap) {
		frame.Set(core.ActionFlap)
	}
	if key.Matches(msg, k.Confirm) {
		frame.Set(core.ActionConfirm)
	}
	return false
}

// MapMouse treats a left click like space: flap and confirm.
func (k KeyMap) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	frame.Set(core.ActionFlap)
	frame.Set(core.ActionConfirm)
}
