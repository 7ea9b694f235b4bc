package game

import (
	"fmt"
	"strings"
)

// CellState is what the player knows about a cell.
type CellState int

const (
	Hidden   CellState = iota // Concealed, may or may not hold a mine
	Flagged                   // Concealed and marked by the player
	Revealed                  // Opened; carries a count or the detonated marker
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Status represents the current game phase.
// Once a game is Lost or Won it stays that way until a new game starts.
type Status int

const (
	InProgress Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Position represents a cell coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellView is the render state of a single cell.
type CellView struct {
	State     CellState `json:"state"`
	Count     int       `json:"count"`     // Adjacent mines, valid when Revealed and not Detonated
	Detonated bool      `json:"detonated"` // The mine that ended the game
	Mine      bool      `json:"mine"`      // Only ever set once the game is over
}

// Snapshot is a deep copy of everything a presentation layer needs to draw
// the board. It is safe to keep after the engine moves on.
type Snapshot struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	MineCount      int          `json:"mine_count"`
	FlagsRemaining int          `json:"flags_remaining"`
	Status         Status       `json:"status"`
	Cells          [][]CellView `json:"cells"`
	Mines          []Position   `json:"mines,omitempty"` // Populated only after a loss or win
}

// Preset is a named board configuration offered to the player.
type Preset struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Mines int    `json:"mines"`
}

var (
	Easy   = Preset{Name: "easy", Rows: 9, Cols: 9, Mines: 10}
	Medium = Preset{Name: "medium", Rows: 16, Cols: 16, Mines: 40}
	Hard   = Preset{Name: "hard", Rows: 16, Cols: 30, Mines: 100}
)

// Presets returns the presets in menu order.
func Presets() []Preset {
	return []Preset{Easy, Medium, Hard}
}

// ParsePreset looks a preset up by name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, argError("parse preset", "unknown preset %q", name)
}
