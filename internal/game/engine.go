package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Log receives the engine's debug trail. The TUI owns the terminal, so the
// command points this at a file or discards it.
var Log = logrus.New()

// Engine is the single controller the presentation layer talks to. It owns
// the current Board and replaces it wholesale on every new game.
//
// The engine is not safe for concurrent use; it expects one caller driving
// it one event at a time.
type Engine struct {
	board    *Board
	rand     *rand.Rand
	onChange func(Snapshot)
}

// NewRand returns a randomly seeded source for production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewSeededRand returns a source that always produces the same layouts for
// the same seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEngine creates an engine drawing mine layouts from r and starts an Easy
// game so there is always a board to show.
func NewEngine(r *rand.Rand) *Engine {
	e := &Engine{rand: r}
	if err := e.NewPresetGame(Easy); err != nil {
		// Easy is always a valid configuration.
		panic(err)
	}
	return e
}

// OnChange sets a callback invoked with a fresh snapshot after every call
// that changed the board. No-ops do not trigger it.
func (e *Engine) OnChange(fn func(Snapshot)) {
	e.onChange = fn
}

// NewGame discards the current board and starts a new one. On invalid
// arguments the current board is kept and an error matching
// ErrInvalidArgument is returned.
func (e *Engine) NewGame(rows, cols, mineCount int) error {
	b, err := NewBoard(rows, cols, mineCount, e.rand)
	if err != nil {
		return err
	}
	e.board = b

	Log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": mineCount,
	}).Debug("new game")

	e.notify()
	return nil
}

// NewPresetGame starts a new game with the preset's dimensions.
func (e *Engine) NewPresetGame(p Preset) error {
	return e.NewGame(p.Rows, p.Cols, p.Mines)
}

// Reveal opens a cell; see Board.Reveal.
func (e *Engine) Reveal(row, col int) ([]Position, error) {
	opened, err := e.board.Reveal(row, col)
	if err != nil {
		return nil, err
	}
	if len(opened) == 0 {
		return nil, nil
	}

	log := Log.WithFields(logrus.Fields{
		"cell":   Position{Row: row, Col: col},
		"opened": len(opened),
		"status": e.board.Status(),
	})
	switch e.board.Status() {
	case Lost:
		log.Info("mine revealed, game lost")
	case Won:
		log.Info("all safe cells revealed, game won")
	default:
		log.Debug("revealed")
	}
	if Log.IsLevelEnabled(logrus.TraceLevel) {
		Log.Trace("board\n" + e.board.String())
	}

	e.notify()
	return opened, nil
}

// ToggleFlag flags or unflags a cell; see Board.ToggleFlag.
func (e *Engine) ToggleFlag(row, col int) (bool, error) {
	changed, err := e.board.ToggleFlag(row, col)
	if err != nil || !changed {
		return false, err
	}

	Log.WithFields(logrus.Fields{
		"cell":       Position{Row: row, Col: col},
		"flags_left": e.board.FlagsRemaining(),
	}).Debug("flag toggled")

	e.notify()
	return true, nil
}

func (e *Engine) CountAdjacentMines(row, col int) (int, error) {
	return e.board.CountAdjacentMines(row, col)
}

func (e *Engine) Cell(row, col int) (CellView, error) {
	return e.board.Cell(row, col)
}

func (e *Engine) Rows() int           { return e.board.Rows() }
func (e *Engine) Cols() int           { return e.board.Cols() }
func (e *Engine) MineCount() int      { return e.board.MineCount() }
func (e *Engine) FlagsRemaining() int { return e.board.FlagsRemaining() }
func (e *Engine) Status() Status      { return e.board.Status() }

// Snapshot returns a deep copy of the current board's render state.
func (e *Engine) Snapshot() Snapshot {
	return e.board.Snapshot()
}

func (e *Engine) String() string {
	return e.board.String()
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange(e.board.Snapshot())
	}
}
