package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokobauto/board"
	"sokobauto/canon"
	"sokobauto/puzzle"
	"sokobauto/stategraph"
)

func makeNode(player board.Coordinate, boxes ...board.Coordinate) canon.Node {
	return canon.Node{
		Boxes:     puzzle.NewBoxSet(boxes),
		MinPlayer: player,
	}
}

func TestUpsertAssignsDenseIdsOnce(t *testing.T) {
	g := stategraph.New()

	a := makeNode(board.Coordinate{Row: 1, Col: 1}, board.Coordinate{Row: 2, Col: 2})
	b := makeNode(board.Coordinate{Row: 1, Col: 1}, board.Coordinate{Row: 3, Col: 3})

	assert.Equal(t, 0, g.Upsert(a))
	assert.Equal(t, 1, g.Upsert(b))
	// Re-upserting an equal node returns the existing id.
	assert.Equal(t, 0, g.Upsert(a))
	assert.Equal(t, 2, g.NodeCount())
}

func TestUpsertIgnoresBoxInsertionOrder(t *testing.T) {
	g := stategraph.New()

	p1 := board.Coordinate{Row: 2, Col: 2}
	p2 := board.Coordinate{Row: 3, Col: 3}
	a := makeNode(board.Coordinate{Row: 1, Col: 1}, p1, p2)
	b := makeNode(board.Coordinate{Row: 1, Col: 1}, p2, p1)

	assert.Equal(t, g.Upsert(a), g.Upsert(b))
}

func TestTakeUnvisitedIsFIFO(t *testing.T) {
	g := stategraph.New()

	for i := int8(0); i < 3; i++ {
		g.Upsert(makeNode(board.Coordinate{Row: i, Col: 0}))
	}

	for want := 0; want < 3; want++ {
		id, ok := g.TakeUnvisited()
		require.True(t, ok)
		assert.Equal(t, want, id)
	}
	_, ok := g.TakeUnvisited()
	assert.False(t, ok)
}

func TestTakeUnvisitedEachIdOnce(t *testing.T) {
	g := stategraph.New()
	g.Upsert(makeNode(board.Coordinate{Row: 0, Col: 0}))

	_, ok := g.TakeUnvisited()
	require.True(t, ok)
	_, ok = g.TakeUnvisited()
	assert.False(t, ok)
	g.AssertAllVisited()
}

func TestAddEdgeAbsorbsDuplicates(t *testing.T) {
	g := stategraph.New()
	g.Upsert(makeNode(board.Coordinate{Row: 0, Col: 0}))
	g.Upsert(makeNode(board.Coordinate{Row: 1, Col: 0}))

	g.AddEdge(0, 1)
	g.AddEdge(0, 1)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAssertAllVisitedPanicsOnLiveIds(t *testing.T) {
	g := stategraph.New()
	g.Upsert(makeNode(board.Coordinate{Row: 0, Col: 0}))

	assert.PanicsWithError(t,
		"stategraph: invariant violated in AssertAllVisited: unvisited set is not empty",
		func() { g.AssertAllVisited() })
}

func TestStatsTracksProgress(t *testing.T) {
	g := stategraph.New()
	g.Upsert(makeNode(board.Coordinate{Row: 0, Col: 0}))
	g.Upsert(makeNode(board.Coordinate{Row: 1, Col: 0}))

	_, ok := g.TakeUnvisited()
	require.True(t, ok)

	stats := g.Stats()
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 1, stats.Visited)
	assert.InDelta(t, 50.0, stats.PercentVisited, 1e-9)
}
