package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2

// Model is the Bubble Tea model that hosts one simulation.
type Model struct {
	sim        *game.Sim
	screen     *core.Screen
	styles     styleCache
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	log        *log.Logger
	quitting   bool
}

// NewModel creates a Bubble Tea model around sim. A nil logger discards output.
func NewModel(sim *game.Sim, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	m := Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		styles:     styleCache{},
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		log:        logger,
	}
	m.fitViewport()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the
// next tick so every press reaches the simulation exactly once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}
	if m.keys.MapKey(msg, &m.inputFrame) {
		m.quitting = true
		m.log.Info("quit requested", "score", m.sim.Score(), "mode", m.sim.Mode())
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// helpRows is the space reserved under the playfield for the help view.
func (m Model) helpRows() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// layout sizes the playfield to the terminal minus the help view.
func (m Model) layout() {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-m.helpRows(), 0))
	m.fitViewport()
}

// fitViewport tells the simulation the playfield shape in square units.
func (m Model) fitViewport() {
	m.sim.Resize(float64(m.screen.Width()), float64(m.screen.Height()*cellAspect))
}

// handleTick runs one fixed-length simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.sim.Mode()
	m.sim.Tick(m.inputFrame, m.config.FrameTime())
	if after := m.sim.Mode(); after != before && after == game.ModeGameOver {
		m.log.Info("game over", "score", m.sim.Score())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Paint(m.screen, m.sim.Snapshot())
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for sim.
func Run(sim *game.Sim, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(sim, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
