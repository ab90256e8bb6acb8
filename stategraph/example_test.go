// File: stategraph/example_test.go
package stategraph_test

import (
	"fmt"
	"sort"

	"sokobauto/levelfmt"
	"sokobauto/stategraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Explore
////////////////////////////////////////////////////////////////////////////////

// ExampleExplore demonstrates exploring the complete state space of a tiny
// corridor level and trimming it to win-reachable states.
// Scenario:
//
//	#####
//	#@$.#
//	#####
//
//	The player can make exactly one push, which puts the box on the target.
//	The graph therefore has two canonical nodes (box off target, box on
//	target) and one edge, and both survive the trim because the winning
//	node is reachable from the start.
//
// Complexity: O(|V|·k·W·H) time for exploration (k boxes, one flood fill
// per expanded node), O(|V|+|E|) memory.
func ExampleExplore() {
	board, initial, err := levelfmt.Parse("#####\n#@$.#\n#####\n")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	snap, err := stategraph.Explore(board, initial)
	if err != nil {
		fmt.Println("explore:", err)
		return
	}

	ids := make([]int, 0, len(snap.Nodes))
	for _, n := range snap.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Ints(ids)

	fmt.Println("nodes:", len(snap.Nodes))
	fmt.Println("edges:", len(snap.Edges))
	fmt.Println("ids:", ids)
	fmt.Println("max on targets:", snap.MaxBoxesOnTargets)
	fmt.Println("removed by trim:", snap.Trim.NodesRemoved())

	// Output:
	// nodes: 2
	// edges: 1
	// ids: [0 1]
	// max on targets: 1
	// removed by trim: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: Engine.ExpandOne
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_ExpandOne demonstrates the host-driven expansion loop: the
// engine exposes one ExpandOne primitive so a host can interleave progress
// rendering with bounded slices of CPU work.
func ExampleEngine_ExpandOne() {
	board, initial, _ := levelfmt.Parse("#####\n#@$.#\n#####\n")
	engine, _ := stategraph.NewEngine(board, initial)

	steps := 0
	for engine.ExpandOne() == stategraph.Populated {
		steps++
	}

	fmt.Println("expansions:", steps)
	fmt.Println("nodes:", engine.Graph().NodeCount())

	// Output:
	// expansions: 2
	// nodes: 2
}
