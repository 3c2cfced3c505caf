package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// flashFrameCount is how many frames the death flash stays on screen.
const flashFrameCount = 8

// Model is the Bubble Tea model driving one world. It owns the impulse
// latch (a key press is an impulse on exactly one frame), measures real
// elapsed time between ticks, and projects the fixed logical view onto
// whatever terminal size it gets.
type Model struct {
	world    *game.World
	screen   *Screen
	theme    config.Theme
	styles   Styles
	keys     KeyMap
	help     help.Model
	tickRate int

	impulse     bool
	lastTick    time.Time
	elapsed     float64
	flashFrames int
	quitting    bool
}

// NewModel creates a model for the given world sized to the terminal.
// One row is reserved below the game for the help footer.
func NewModel(world *game.World, theme config.Theme, cols, rows, tickRate int) Model {
	gameRows := rows - 1
	if gameRows < 1 {
		gameRows = 1
	}

	return Model{
		world:    world,
		screen:   NewScreen(cols, gameRows),
		theme:    theme,
		styles:   NewStyles(theme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. An impulse key latches until the
// next tick consumes it, so a press between frames is never lost and a
// held key does not repeat into the same frame twice.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Impulse):
		m.impulse = true
	}
	return m, nil
}

// handleResize rescales the projection. The simulation keeps its logical
// view; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	gameRows := msg.Height - 1
	if gameRows < 1 {
		gameRows = 1
	}
	m.screen.Resize(msg.Width, gameRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with the real elapsed time since
// the previous tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	m.elapsed += dt

	died := m.world.Step(dt, m.impulse)
	m.impulse = false

	if died {
		m.flashFrames = flashFrameCount
	} else if m.flashFrames > 0 {
		m.flashFrames--
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	proj := NewProjection(m.screen.Width(), m.screen.Height(), m.world.ViewWidth(), m.world.ViewHeight())
	flashing := m.flashFrames > 0

	drawWorld(m.screen, m.world, m.theme, proj, flashing)
	if m.theme.HUD.Enabled {
		drawHUD(m.screen, m.world, m.elapsed, flashing)
	}

	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(world *game.World, theme config.Theme, cols, rows, tickRate int) error {
	model := NewModel(world, theme, cols, rows, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
