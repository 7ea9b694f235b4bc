package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsEasy(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))

	assert.Equal(t, 9, engine.Rows())
	assert.Equal(t, 9, engine.Cols())
	assert.Equal(t, 10, engine.MineCount())
	assert.Equal(t, 10, engine.FlagsRemaining())
	assert.Equal(t, InProgress, engine.Status())
}

func TestEngineNewGame(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))

	for _, p := range Presets() {
		require.NoError(t, engine.NewPresetGame(p))
		s := engine.Snapshot()
		assert.Equal(t, p.Rows, s.Rows)
		assert.Equal(t, p.Cols, s.Cols)
		assert.Equal(t, p.Mines, s.MineCount)
		assert.Equal(t, p.Mines, s.FlagsRemaining)
		assert.Equal(t, InProgress, s.Status)
		require.Len(t, s.Cells, p.Rows)
		for _, row := range s.Cells {
			require.Len(t, row, p.Cols)
			for _, cell := range row {
				assert.Equal(t, CellView{State: Hidden}, cell)
			}
		}
	}
}

func TestEngineNewGameInvalidKeepsBoard(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))
	require.NoError(t, engine.NewPresetGame(Medium))
	before := engine.board

	err := engine.NewGame(4, 4, 16)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Same(t, before, engine.board)
	assert.Equal(t, 16, engine.Rows())
}

func TestEngineNewGameReplacesBoard(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))
	engine.board = boardWith(2, 2, Position{0, 0})
	_, err := engine.Reveal(0, 0)
	require.NoError(t, err)
	require.Equal(t, Lost, engine.Status())

	require.NoError(t, engine.NewGame(2, 2, 1))
	assert.Equal(t, InProgress, engine.Status())
	assert.Equal(t, 1, engine.FlagsRemaining())
	assert.Equal(t, "--\n--\n", engine.String())
}

func TestEngineOnChange(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))

	var snapshots []Snapshot
	engine.OnChange(func(s Snapshot) {
		snapshots = append(snapshots, s)
	})

	require.NoError(t, engine.NewGame(3, 3, 1))
	require.Len(t, snapshots, 1)
	assert.Equal(t, 3, snapshots[0].Rows)

	// Swap in a known layout.
	engine.board = boardWith(2, 2, Position{0, 0})

	changed, err := engine.ToggleFlag(1, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, snapshots, 2)
	assert.Equal(t, Flagged, snapshots[1].Cells[1][1].State)
	assert.Equal(t, 0, snapshots[1].FlagsRemaining)

	// Reveal of a flagged cell is a no-op and must stay silent.
	opened, err := engine.Reveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, opened)
	require.Len(t, snapshots, 2)

	opened, err = engine.Reveal(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []Position{{0, 1}}, opened)
	require.Len(t, snapshots, 3)

	// Errors do not notify either.
	_, err = engine.Reveal(5, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Len(t, snapshots, 3)

	_, err = engine.Reveal(0, 0)
	require.NoError(t, err)
	require.Len(t, snapshots, 4)
	assert.Equal(t, Lost, snapshots[3].Status)
	assert.True(t, snapshots[3].Cells[0][0].Detonated)
}

func TestEngineQueries(t *testing.T) {
	engine := NewEngine(NewSeededRand(1))
	engine.board = boardWith(3, 5, Position{1, 4})

	n, err := engine.CountAdjacentMines(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = engine.Reveal(0, 0)
	require.NoError(t, err)

	v, err := engine.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellView{State: Revealed}, v)

	_, err = engine.Cell(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name string
		want Preset
	}{
		{"easy", Easy},
		{"Medium", Medium},
		{" HARD ", Hard},
	}
	for _, test := range tests {
		got, err := ParsePreset(test.name)
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}

	_, err := ParsePreset("expert")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []Preset{
		{Name: "easy", Rows: 9, Cols: 9, Mines: 10},
		{Name: "medium", Rows: 16, Cols: 16, Mines: 40},
		{Name: "hard", Rows: 16, Cols: 30, Mines: 100},
	}, Presets())
}
