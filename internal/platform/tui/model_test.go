package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return NewModel(testWorld(t), config.DefaultTheme(), 80, 24, 60)
}

func TestModelImpulseLatch(t *testing.T) {
	m := testModel(t)

	// One key event latches exactly one impulse frame.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if !m.impulse {
		t.Fatal("space should latch an impulse")
	}

	updated, _ = m.Update(TickMsg(time.Now()))
	m = updated.(Model)
	if m.impulse {
		t.Error("tick should consume the latched impulse")
	}

	updated, _ = m.Update(TickMsg(time.Now()))
	m = updated.(Model)
	if m.impulse {
		t.Error("impulse must not persist past one frame")
	}
}

func TestModelImpulseKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := testModel(t)
			updated, _ := m.Update(tc.msg)
			if !updated.(Model).impulse {
				t.Errorf("%s should latch an impulse", tc.name)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should produce a command")
	}
	if m.View() != "" {
		t.Error("view while quitting should be empty")
	}
}

func TestModelTickMeasuresElapsed(t *testing.T) {
	m := testModel(t)

	start := time.Now()
	updated, _ := m.Update(TickMsg(start))
	m = updated.(Model)
	if m.elapsed != 0 {
		t.Errorf("first tick elapsed = %v, expected 0 (no previous tick)", m.elapsed)
	}

	updated, _ = m.Update(TickMsg(start.Add(50 * time.Millisecond)))
	m = updated.(Model)
	if m.elapsed < 0.049 || m.elapsed > 0.051 {
		t.Errorf("elapsed = %v, expected about 0.05", m.elapsed)
	}
}

func TestModelResizeKeepsSimulationView(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39 (one row for help)", m.screen.Width(), m.screen.Height())
	}
	if m.world.ViewWidth() != LogicalWidth || m.world.ViewHeight() != LogicalHeight {
		t.Error("resize must not change the simulation's logical view")
	}
}

func TestModelDeathTriggersFlash(t *testing.T) {
	m := testModel(t)

	// From the origin the fall-out check fires on any frame, so a real dt
	// frame always ends in a reset.
	start := time.Now()
	updated, _ := m.Update(TickMsg(start))
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = updated.(Model)

	if m.world.Resets() == 0 {
		t.Fatal("expected at least one reset")
	}
	if m.flashFrames == 0 {
		t.Error("death should start the flash")
	}
}
