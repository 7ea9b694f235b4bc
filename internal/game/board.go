package game

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Board is the complete state of one game. A new game always gets a new
// Board; nothing is carried over from the previous one.
//
// Cells are addressed by (row, col) externally and by the flattened index
// row*cols+col internally.
type Board struct {
	rows, cols int
	mineCount  int
	mines      mapset.Set[int]
	cells      []CellState
	counts     []int
	detonated  int // Index of the exploded mine, -1 until the game is lost
	flagsLeft  int
	revealed   int // Safe cells revealed so far
	status     Status
}

// NewBoard validates the dimensions and places mineCount mines uniformly at
// random, each on a distinct cell.
func NewBoard(rows, cols, mineCount int, r *rand.Rand) (*Board, error) {
	switch {
	case rows <= 0:
		return nil, argError("new game", "rows must be positive, got %d", rows)
	case cols <= 0:
		return nil, argError("new game", "columns must be positive, got %d", cols)
	case mineCount < 0:
		return nil, argError("new game", "mine count must not be negative, got %d", mineCount)
	case mineCount >= rows*cols:
		return nil, argError("new game",
			"mine count %d leaves no safe cell on a %dx%d grid", mineCount, rows, cols)
	}
	return newBoard(rows, cols, sampleMines(rows*cols, mineCount, r)), nil
}

// newBoard builds a fresh board with mines on the given flattened indices.
// The indices must be distinct and in range.
func newBoard(rows, cols int, mines []int) *Board {
	set := mapset.New[int]()
	for _, i := range mines {
		set.Put(i)
	}
	return &Board{
		rows:      rows,
		cols:      cols,
		mineCount: len(mines),
		mines:     set,
		cells:     make([]CellState, rows*cols),
		counts:    make([]int, rows*cols),
		detonated: -1,
		flagsLeft: len(mines),
		status:    InProgress,
	}
}

// sampleMines draws k distinct indices from [0, n) with a partial
// Fisher-Yates shuffle.
func sampleMines(n, k int, r *rand.Rand) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func (b *Board) Rows() int           { return b.rows }
func (b *Board) Cols() int           { return b.cols }
func (b *Board) MineCount() int      { return b.mineCount }
func (b *Board) FlagsRemaining() int { return b.flagsLeft }
func (b *Board) Status() Status      { return b.status }

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) position(i int) Position {
	return Position{Row: i / b.cols, Col: i % b.cols}
}

func (b *Board) checkCell(op string, row, col int) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return argError(op, "cell (%d,%d) is outside the %dx%d grid", row, col, b.rows, b.cols)
	}
	return nil
}

// eachInBlock calls fn for every in-grid index of the 3x3 block centred on
// i, including i itself.
func (b *Board) eachInBlock(i int, fn func(j int)) {
	row, col := i/b.cols, i%b.cols
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if r >= 0 && r < b.rows && c >= 0 && c < b.cols {
				fn(r*b.cols + c)
			}
		}
	}
}

// eachNeighbor is eachInBlock without the centre.
func (b *Board) eachNeighbor(i int, fn func(j int)) {
	b.eachInBlock(i, func(j int) {
		if j != i {
			fn(j)
		}
	})
}

func (b *Board) countAt(i int) int {
	count := 0
	b.eachInBlock(i, func(j int) {
		if b.mines.Has(j) {
			count++
		}
	})
	return count
}

// CountAdjacentMines returns the number of mines in the 3x3 block centred on
// the cell. The centre is part of the block, so a mine cell counts itself;
// safe cells, the only ones ever revealed with a count, are unaffected.
func (b *Board) CountAdjacentMines(row, col int) (int, error) {
	if err := b.checkCell("count adjacent mines", row, col); err != nil {
		return 0, err
	}
	return b.countAt(b.index(row, col)), nil
}

// Reveal opens the cell. Hitting a mine loses the game and opens nothing
// else; a safe cell is flood-filled and the win condition re-evaluated.
// Revealing a flagged or already revealed cell, or any cell after the game
// ended, does nothing. The returned positions are the cells that changed to
// Revealed, in the order they were opened.
func (b *Board) Reveal(row, col int) ([]Position, error) {
	if err := b.checkCell("reveal", row, col); err != nil {
		return nil, err
	}
	i := b.index(row, col)
	if b.status != InProgress || b.cells[i] != Hidden {
		return nil, nil
	}

	if b.mines.Has(i) {
		b.cells[i] = Revealed
		b.detonated = i
		b.status = Lost
		return []Position{b.position(i)}, nil
	}

	opened := b.floodReveal(i)
	if b.revealed == b.rows*b.cols-b.mineCount {
		b.status = Won
	}
	return opened, nil
}

// ToggleFlag flags a hidden cell or unflags a flagged one. It reports
// whether anything changed: flagging with no flags left, flagging a revealed
// cell and any call after the game ended are no-ops.
func (b *Board) ToggleFlag(row, col int) (bool, error) {
	if err := b.checkCell("toggle flag", row, col); err != nil {
		return false, err
	}
	if b.status != InProgress {
		return false, nil
	}

	i := b.index(row, col)
	switch b.cells[i] {
	case Flagged:
		b.cells[i] = Hidden
		b.flagsLeft++
	case Hidden:
		if b.flagsLeft == 0 {
			return false, nil
		}
		b.cells[i] = Flagged
		b.flagsLeft--
	default:
		return false, nil
	}
	return true, nil
}

// Cell returns the render state of one cell.
func (b *Board) Cell(row, col int) (CellView, error) {
	if err := b.checkCell("cell", row, col); err != nil {
		return CellView{}, err
	}
	return b.view(b.index(row, col)), nil
}

func (b *Board) view(i int) CellView {
	v := CellView{State: b.cells[i], Detonated: i == b.detonated}
	if v.State == Revealed && !v.Detonated {
		v.Count = b.counts[i]
	}
	if b.status != InProgress {
		v.Mine = b.mines.Has(i)
	}
	return v
}

// Snapshot returns a deep copy of the board's render state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:           b.rows,
		Cols:           b.cols,
		MineCount:      b.mineCount,
		FlagsRemaining: b.flagsLeft,
		Status:         b.status,
		Cells:          make([][]CellView, b.rows),
	}
	for r := range b.rows {
		s.Cells[r] = make([]CellView, b.cols)
		for c := range b.cols {
			s.Cells[r][c] = b.view(b.index(r, c))
		}
	}
	if b.status != InProgress {
		for i := range b.cells {
			if b.mines.Has(i) {
				s.Mines = append(s.Mines, b.position(i))
			}
		}
	}
	return s
}

// String renders the player's view of the board, one line per row:
// "-" hidden, "F" flagged, "*" detonated, "." empty, digits for counts.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.rows {
		for c := range b.cols {
			i := b.index(r, c)
			switch {
			case b.cells[i] == Hidden:
				sb.WriteByte('-')
			case b.cells[i] == Flagged:
				sb.WriteByte('F')
			case i == b.detonated:
				sb.WriteByte('*')
			case b.counts[i] == 0:
				sb.WriteByte('.')
			default:
				sb.WriteString(strconv.Itoa(b.counts[i]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
