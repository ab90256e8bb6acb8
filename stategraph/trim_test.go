package stategraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokobauto/canon"
	"sokobauto/stategraph"
)

func TestTrimKeepsOnlyWinAncestors(t *testing.T) {
	// A level with a reversible push next to an irreversible one: pushing
	// the box left of the target is recoverable, pushing it into the top
	// wall row is not (without the heuristic the dead states are explored
	// and the trim must cut them).
	b, initial := parseLevel(t, "######\n#    #\n# $. #\n# @  #\n######\n")

	engine, err := stategraph.NewEngine(b, initial, stategraph.WithHeuristicPruning(false))
	require.NoError(t, err)
	engine.Run()
	g := engine.Graph()

	before := g.NodeCount()
	stats := stategraph.TrimToWinnable(g, b)

	assert.Equal(t, before, stats.NodesBefore)
	assert.Equal(t, g.NodeCount(), stats.NodesAfter)
	assert.Greater(t, stats.NodesRemoved(), 0)

	// Post-trim, every remaining node must still reach a winning node:
	// re-running the trim removes nothing further.
	again := stategraph.TrimToWinnable(g, b)
	assert.Zero(t, again.NodesRemoved())
	assert.Zero(t, again.EdgesRemoved())
}

func TestTrimDoesNotResequenceIds(t *testing.T) {
	b, initial := parseLevel(t, "######\n#    #\n# $. #\n# @  #\n######\n")

	engine, err := stategraph.NewEngine(b, initial, stategraph.WithHeuristicPruning(false))
	require.NoError(t, err)
	engine.Run()
	g := engine.Graph()

	before := make(map[int]canon.Node)
	g.Nodes(func(id int, node canon.Node) {
		before[id] = node
	})
	survivors := make(map[int]canon.Node)
	targets := b.Targets()
	// Record every id before the trim, then check each survivor still maps
	// to the node it had before.
	stategraph.TrimToWinnable(g, b)
	g.Nodes(func(id int, node canon.Node) {
		survivors[id] = node
	})

	for id, node := range survivors {
		orig, ok := before[id]
		require.True(t, ok)
		assert.True(t, orig.Equal(node))
	}
	// At least one surviving node is winning.
	winning := false
	for _, node := range survivors {
		if node.Boxes.CoversAll(targets) {
			winning = true
		}
	}
	assert.True(t, winning)
}

func TestTrimStatsPercentages(t *testing.T) {
	stats := stategraph.TrimStats{
		NodesBefore: 200, NodesAfter: 50,
		EdgesBefore: 400, EdgesAfter: 100,
	}
	assert.Equal(t, 150, stats.NodesRemoved())
	assert.InDelta(t, 75.0, stats.NodesRemovedPercent(), 1e-9)
	assert.Equal(t, 300, stats.EdgesRemoved())
	assert.InDelta(t, 75.0, stats.EdgesRemovedPercent(), 1e-9)

	empty := stategraph.TrimStats{}
	assert.Zero(t, empty.NodesRemovedPercent())
	assert.Zero(t, empty.EdgesRemovedPercent())
}

func TestTrimOnEmptyishGraph(t *testing.T) {
	b, initial := parseLevel(t, "###\n#@#\n###\n")

	engine, err := stategraph.NewEngine(b, initial)
	require.NoError(t, err)
	engine.Run()

	// No boxes and no targets: the empty BoxSet trivially covers the empty
	// target list, so the lone node is winning and survives.
	stats := stategraph.TrimToWinnable(engine.Graph(), b)
	assert.Equal(t, 1, stats.NodesAfter)
}
