package game

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// floodReveal opens the safe cell at start and spreads through every
// connected zero-count cell, opening the numbered cells on the border of
// that region as leaves. It works from an explicit stack so the depth does
// not grow with the region size.
//
// A zero count covers the whole 3x3 block, so a mine is never reached from a
// zero cell. Flagged cells are left alone and do not propagate.
func (b *Board) floodReveal(start int) []Position {
	var opened []Position

	frontier := stack.New[int]()
	visited := mapset.New[int]()
	frontier.Push(start)
	visited.Put(start)

	for frontier.Size() > 0 {
		i := frontier.Pop()
		count := b.countAt(i)
		opened = b.open(i, count, opened)
		if count != 0 {
			continue
		}

		b.eachNeighbor(i, func(j int) {
			if visited.Has(j) {
				return
			}
			visited.Put(j)
			if b.cells[j] == Flagged {
				return
			}
			n := b.countAt(j)
			if n == 0 {
				frontier.Push(j)
			}
			opened = b.open(j, n, opened)
		})
	}

	return opened
}

// open marks a cell revealed with the given count. Opening an already
// revealed cell changes nothing.
func (b *Board) open(i, count int, opened []Position) []Position {
	if b.cells[i] == Revealed {
		return opened
	}
	b.cells[i] = Revealed
	b.counts[i] = count
	b.revealed++
	return append(opened, b.position(i))
}
