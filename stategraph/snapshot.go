package stategraph

import (
	"sokobauto/board"
	"sokobauto/canon"
)

// SnapshotNode is one graph vertex as seen by external consumers: its id,
// how many of its boxes sit on targets, and the canonical minimum player
// position that seeds its equivalence class.
type SnapshotNode struct {
	ID            int
	OnTargets     int
	SeedMinPlayer board.Coordinate
}

// Snapshot is the immutable export of a finished exploration: the
// read-only bundle the visualization front-end and the JSON exporter
// consume. Node and edge ordering is unspecified.
type Snapshot struct {
	Nodes             []SnapshotNode
	Edges             []Edge
	MaxBoxesOnTargets int
	InitialNodeID     int

	// Trim is nil when trimming was skipped by configuration.
	Trim *TrimStats
}

// Snapshot freezes the engine's graph into an immutable export. Call it
// only after Run (and any trim) has completed; the result never changes
// afterwards even if the graph does.
func (e *Engine) Snapshot(trim *TrimStats) *Snapshot {
	targets := e.board.Targets()

	snap := &Snapshot{
		Nodes:         make([]SnapshotNode, 0, e.graph.NodeCount()),
		Edges:         make([]Edge, 0, e.graph.EdgeCount()),
		InitialNodeID: e.initialID,
		Trim:          trim,
	}

	e.graph.Nodes(func(id int, node canon.Node) {
		onTargets := node.Boxes.CountOn(targets)
		if onTargets > snap.MaxBoxesOnTargets {
			snap.MaxBoxesOnTargets = onTargets
		}
		snap.Nodes = append(snap.Nodes, SnapshotNode{
			ID:            id,
			OnTargets:     onTargets,
			SeedMinPlayer: node.MinPlayer,
		})
	})

	e.graph.Edges(func(edge Edge) {
		snap.Edges = append(snap.Edges, edge)
	})

	return snap
}
