package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/amalg/go-minesweeper/internal/game"
)

// Log receives shell-side diagnostics; see game.Log.
var Log = logrus.New()

// RestartPolicy decides what the shell does right after the player hits a
// mine.
type RestartPolicy int

const (
	KeepBoard   RestartPolicy = iota // Stay on the lost board until the player picks
	RestartSame                      // Start over with the active preset
	RestartEasy                      // Start over on Easy
)

func (p RestartPolicy) String() string {
	switch p {
	case KeepBoard:
		return "keep"
	case RestartSame:
		return "same"
	case RestartEasy:
		return "easy"
	default:
		return fmt.Sprintf("RestartPolicy(%d)", int(p))
	}
}

// ParseRestartPolicy accepts the names printed by RestartPolicy.String.
func ParseRestartPolicy(s string) (RestartPolicy, error) {
	for _, p := range []RestartPolicy{KeepBoard, RestartSame, RestartEasy} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown restart policy %q (want keep, same or easy)", s)
}

const (
	lostNotice = "You hit a mine! Try again."
	wonNotice  = "Congratulations! You found all the mines."
)

// Model is the Bubbletea model for the game. It only translates key presses
// into engine calls and draws the engine's snapshot.
type Model struct {
	engine   *game.Engine
	keys     KeyMap
	preset   game.Preset
	policy   RestartPolicy
	cursor   game.Position
	notice   string
	quitting bool
}

// NewModel creates a shell for an engine whose current game uses preset.
func NewModel(engine *game.Engine, preset game.Preset, policy RestartPolicy) Model {
	return Model{
		engine: engine,
		keys:   Keys,
		preset: preset,
		policy: policy,
	}
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Minesweeper")
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// View renders the board with the HUD beside it.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	s := m.engine.Snapshot()
	board := RenderBoard(s, m.cursor)
	hud := RenderHUD(s, m.preset, m.notice, m.keys.help())

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Reveal):
		m.reveal()
	case key.Matches(msg, m.keys.Flag):
		m.toggleFlag()

	case key.Matches(msg, m.keys.Easy):
		m.startGame(game.Easy)
	case key.Matches(msg, m.keys.Medium):
		m.startGame(game.Medium)
	case key.Matches(msg, m.keys.Hard):
		m.startGame(game.Hard)
	case key.Matches(msg, m.keys.Restart):
		m.startGame(m.preset)
	}

	return m, nil
}

// moveCursor shifts the cursor, clamped to the board.
func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row = max(0, min(m.cursor.Row+dr, m.engine.Rows()-1))
	m.cursor.Col = max(0, min(m.cursor.Col+dc, m.engine.Cols()-1))
}

func (m *Model) reveal() {
	if _, err := m.engine.Reveal(m.cursor.Row, m.cursor.Col); err != nil {
		m.fail("reveal", err)
		return
	}

	switch m.engine.Status() {
	case game.Won:
		m.notice = wonNotice
	case game.Lost:
		switch m.policy {
		case RestartSame:
			m.startGame(m.preset)
		case RestartEasy:
			m.startGame(game.Easy)
		}
		m.notice = lostNotice
	}
}

func (m *Model) toggleFlag() {
	if _, err := m.engine.ToggleFlag(m.cursor.Row, m.cursor.Col); err != nil {
		m.fail("toggle flag", err)
	}
}

func (m *Model) startGame(p game.Preset) {
	if err := m.engine.NewPresetGame(p); err != nil {
		m.fail("new game", err)
		return
	}
	m.preset = p
	m.cursor = game.Position{}
	m.notice = ""
}

// fail records an engine error. Those only happen when the shell itself
// passes bad arguments.
func (m *Model) fail(op string, err error) {
	Log.WithFields(logrus.Fields{
		"op":     op,
		"cursor": m.cursor,
	}).WithError(err).Error("engine rejected call")
	m.notice = "Error: " + err.Error()
}
