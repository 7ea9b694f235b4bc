package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-minesweeper/internal/game"
)

// Color palette
var (
	// Cell styles
	hiddenStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#5a5a6e")).
			Foreground(lipgloss.Color("#8a8aa0"))

	revealedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#d3d3d3"))

	flagStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#5a5a6e")).
			Foreground(lipgloss.Color("#ff2222")).
			Bold(true)

	detonatedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff2222")).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	mineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#d3d3d3")).
			Foreground(lipgloss.Color("#000000"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	// Count colors, indexed by adjacent-mine count (1-8)
	countColors = []lipgloss.Color{
		1: lipgloss.Color("#0000ff"), // Blue
		2: lipgloss.Color("#008000"), // Green
		3: lipgloss.Color("#ff0000"), // Red
		4: lipgloss.Color("#800080"), // Purple
		5: lipgloss.Color("#800000"), // Maroon
		6: lipgloss.Color("#40e0d0"), // Turquoise
		7: lipgloss.Color("#000000"), // Black
		8: lipgloss.Color("#808080"), // Gray
	}

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	flagCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderBoard converts a snapshot into a styled terminal string.
func RenderBoard(s game.Snapshot, cursor game.Position) string {
	if len(s.Cells) == 0 {
		return "No game in progress"
	}

	rows := make([]string, 0, s.Rows)
	for r, line := range s.Cells {
		cells := make([]string, 0, s.Cols)
		for c, cell := range line {
			out := renderCell(cell)
			if r == cursor.Row && c == cursor.Col {
				out = cursorStyle.Render(out)
			}
			cells = append(cells, out)
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

// renderCell renders a single cell, two characters wide for a square-ish
// appearance.
func renderCell(cell game.CellView) string {
	switch cell.State {
	case game.Flagged:
		return flagStyle.Render("⚑ ")
	case game.Revealed:
		if cell.Detonated {
			return detonatedStyle.Render("* ")
		}
		if cell.Count == 0 {
			return revealedStyle.Render("  ")
		}
		return revealedStyle.
			Foreground(countColors[cell.Count]).
			Bold(true).
			Render(strconv.Itoa(cell.Count) + " ")
	default:
		if cell.Mine {
			return mineStyle.Render("* ")
		}
		return hiddenStyle.Render("■ ")
	}
}

// RenderHUD renders the side panel: preset, flags left, status and help.
func RenderHUD(s game.Snapshot, preset game.Preset, notice string, help []string) string {
	var parts []string

	parts = append(parts, titleStyle.Render("MINESWEEPER"))
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("Difficulty: %s (%dx%d, %d mines)",
		preset.Name, s.Rows, s.Cols, s.MineCount))
	parts = append(parts, flagCountStyle.Render(fmt.Sprintf("Flags: %d", s.FlagsRemaining)))
	parts = append(parts, "")

	switch s.Status {
	case game.InProgress:
		parts = append(parts, "Game in progress")
	case game.Won:
		parts = append(parts, wonStyle.Render("You won!"))
	case game.Lost:
		parts = append(parts, lostStyle.Render("Game over"))
	}
	if notice != "" {
		parts = append(parts, notice)
	}

	parts = append(parts, "")
	for _, h := range help {
		parts = append(parts, mutedStyle.Render(h))
	}

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
