package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokobauto/board"
)

func smallGrid() [][]board.Cell {
	return [][]board.Cell{
		{board.Wall, board.Wall, board.Wall},
		{board.Wall, board.Floor, board.Target},
		{board.Wall, board.Wall, board.Wall},
	}
}

func TestNewAndAccessors(t *testing.T) {
	b := board.New(smallGrid())
	require.Equal(t, 3, b.Width())
	require.Equal(t, 3, b.Height())
	assert.Equal(t, board.Wall, b.At(board.Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, board.Floor, b.At(board.Coordinate{Row: 1, Col: 1}))
	assert.Equal(t, board.Target, b.At(board.Coordinate{Row: 1, Col: 2}))
	assert.Equal(t, 1, b.TotalTargets())
	assert.Equal(t, []board.Coordinate{{Row: 1, Col: 2}}, b.Targets())
}

func TestInBoundsAndWalkable(t *testing.T) {
	b := board.New(smallGrid())
	assert.True(t, b.InBounds(board.Coordinate{Row: 1, Col: 1}))
	assert.False(t, b.InBounds(board.Coordinate{Row: -1, Col: 0}))
	assert.False(t, b.InBounds(board.Coordinate{Row: 3, Col: 0}))
	assert.True(t, b.IsWalkable(board.Coordinate{Row: 1, Col: 1}))
	assert.False(t, b.IsWalkable(board.Coordinate{Row: 0, Col: 0}))
	assert.False(t, b.IsWalkable(board.Coordinate{Row: -1, Col: -1}))
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	b := board.New(smallGrid())
	assert.Panics(t, func() {
		b.At(board.Coordinate{Row: 10, Col: 10})
	})
}

func TestNewRejectsNonRectangular(t *testing.T) {
	grid := [][]board.Cell{
		{board.Floor, board.Floor},
		{board.Floor},
	}
	assert.Panics(t, func() {
		board.New(grid)
	})
}

func TestDirectionVectorsAndAddSub(t *testing.T) {
	c := board.Coordinate{Row: 5, Col: 5}
	for _, d := range board.AllDirections {
		moved := c.Add(d)
		back := moved.Sub(d)
		assert.Equal(t, c, back, "direction %s should round-trip", d)
	}
}

func TestCoordinateLess(t *testing.T) {
	assert.True(t, (board.Coordinate{Row: 1, Col: 9}).Less(board.Coordinate{Row: 2, Col: 0}))
	assert.True(t, (board.Coordinate{Row: 1, Col: 0}).Less(board.Coordinate{Row: 1, Col: 1}))
	assert.False(t, (board.Coordinate{Row: 1, Col: 1}).Less(board.Coordinate{Row: 1, Col: 1}))
}
