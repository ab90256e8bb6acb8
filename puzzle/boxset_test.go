package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sokobauto/board"
	"sokobauto/puzzle"
)

func TestBoxSetCanonicalOrderIndependentOfInsertion(t *testing.T) {
	a := puzzle.NewBoxSet([]board.Coordinate{{Row: 3, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}})
	bSet := puzzle.NewBoxSet([]board.Coordinate{{Row: 2, Col: 0}, {Row: 3, Col: 1}, {Row: 1, Col: 2}})

	assert.True(t, a.Equal(bSet))
	assert.Equal(t, a.Key(), bSet.Key())
}

func TestBoxSetContainsAndIndexOf(t *testing.T) {
	s := puzzle.NewBoxSet([]board.Coordinate{{Row: 0, Col: 0}, {Row: 5, Col: 5}})
	assert.True(t, s.Contains(board.Coordinate{Row: 5, Col: 5}))
	assert.False(t, s.Contains(board.Coordinate{Row: 1, Col: 1}))
	assert.Equal(t, 1, s.IndexOf(board.Coordinate{Row: 5, Col: 5}))
	assert.Equal(t, -1, s.IndexOf(board.Coordinate{Row: 9, Col: 9}))
}

func TestBoxSetWithMovedDoesNotMutateReceiver(t *testing.T) {
	s := puzzle.NewBoxSet([]board.Coordinate{{Row: 1, Col: 1}})
	moved := s.WithMoved(board.Coordinate{Row: 1, Col: 1}, board.Coordinate{Row: 2, Col: 2})

	assert.True(t, s.Contains(board.Coordinate{Row: 1, Col: 1}))
	assert.False(t, s.Contains(board.Coordinate{Row: 2, Col: 2}))
	assert.True(t, moved.Contains(board.Coordinate{Row: 2, Col: 2}))
	assert.False(t, moved.Contains(board.Coordinate{Row: 1, Col: 1}))
}

func TestBoxSetCoversAllAndCountOn(t *testing.T) {
	targets := []board.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	partial := puzzle.NewBoxSet([]board.Coordinate{{Row: 0, Col: 0}})
	full := puzzle.NewBoxSet([]board.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}})

	assert.False(t, partial.CoversAll(targets))
	assert.Equal(t, 1, partial.CountOn(targets))
	assert.True(t, full.CoversAll(targets))
	assert.Equal(t, 2, full.CountOn(targets))
}

func TestBoxSetSupportsAtLeastFifteenBoxes(t *testing.T) {
	positions := make([]board.Coordinate, 0, 20)
	for i := int8(0); i < 20; i++ {
		positions = append(positions, board.Coordinate{Row: i, Col: 0})
	}
	s := puzzle.NewBoxSet(positions)
	assert.Equal(t, 20, s.Len())
}
