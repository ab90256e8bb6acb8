package stategraph

import (
	"sokobauto/board"
	"sokobauto/canon"
)

// TrimStats reports what the win-reachability trimmer removed.
type TrimStats struct {
	NodesBefore, NodesAfter int
	EdgesBefore, EdgesAfter int
}

// NodesRemoved returns the number of nodes the trim dropped.
func (s TrimStats) NodesRemoved() int {
	return s.NodesBefore - s.NodesAfter
}

// NodesRemovedPercent returns NodesRemoved as a percentage of NodesBefore,
// or 0 for an empty graph.
func (s TrimStats) NodesRemovedPercent() float64 {
	if s.NodesBefore == 0 {
		return 0.0
	}
	return float64(s.NodesRemoved()) / float64(s.NodesBefore) * 100.0
}

// EdgesRemoved returns the number of edges the trim dropped.
func (s TrimStats) EdgesRemoved() int {
	return s.EdgesBefore - s.EdgesAfter
}

// EdgesRemovedPercent returns EdgesRemoved as a percentage of EdgesBefore,
// or 0 for an edgeless graph.
func (s TrimStats) EdgesRemovedPercent() float64 {
	if s.EdgesBefore == 0 {
		return 0.0
	}
	return float64(s.EdgesRemoved()) / float64(s.EdgesBefore) * 100.0
}

// TrimToWinnable drops every node without a directed path to a winning
// node, and every edge touching a dropped node. Winning nodes are
// those whose box set covers every target on b. Ids are not re-sequenced.
//
// The reverse-predecessor index built here is the trim's dominant memory
// cost; it is local to this call and released on return.
func TrimToWinnable(g *StateGraph, b *board.Board) TrimStats {
	targets := b.Targets()

	var worklist []int
	g.Nodes(func(id int, node canon.Node) {
		if node.Boxes.CoversAll(targets) {
			worklist = append(worklist, id)
		}
	})

	pred := make(map[int][]int, g.NodeCount())
	g.Edges(func(e Edge) {
		pred[e.To] = append(pred[e.To], e.From)
	})

	// Reverse reachability: a stack suffices since only membership in the
	// live set matters, not visit order.
	live := make(map[int]struct{}, len(worklist))
	for len(worklist) > 0 {
		next := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if _, seen := live[next]; seen {
			continue
		}
		live[next] = struct{}{}
		worklist = append(worklist, pred[next]...)
	}

	stats := TrimStats{
		NodesBefore: g.NodeCount(),
		EdgesBefore: g.EdgeCount(),
	}
	g.retain(live)
	stats.NodesAfter = g.NodeCount()
	stats.EdgesAfter = g.EdgeCount()
	return stats
}
