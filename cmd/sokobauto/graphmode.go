package main

import (
	"log/slog"
	"os"

	"github.com/chewxy/math32"

	"sokobauto/board"
	"sokobauto/jsonexport"
	"sokobauto/octree"
	"sokobauto/puzzle"
	"sokobauto/spatial"
	"sokobauto/stategraph"
)

type graphConfig struct {
	jsonOut   string
	trim      bool
	heuristic bool
}

// progressEvery controls how often the exploration loop reports progress.
const progressEvery = 5000

// runGraph explores the full state space, reports trim statistics, seeds a
// Barnes-Hut octree with one point per surviving node, and optionally
// writes the graph as JSON.
func runGraph(logger *slog.Logger, b *board.Board, initial puzzle.GameState, cfg graphConfig) int {
	snap, err := stategraph.Explore(b, initial,
		stategraph.WithTrimming(cfg.trim),
		stategraph.WithHeuristicPruning(cfg.heuristic),
		stategraph.WithOnNodeExpanded(func(id int, stats stategraph.Stats) {
			if stats.Visited%progressEvery == 0 {
				logger.Info("exploring",
					"nodes", stats.Nodes, "edges", stats.Edges,
					"visited", stats.Visited, "percent", int(stats.PercentVisited))
			}
		}),
	)
	if err != nil {
		logger.Error("explore", "err", err)
		return 1
	}

	logger.Info("exploration complete",
		"nodes", len(snap.Nodes), "edges", len(snap.Edges),
		"max_on_targets", snap.MaxBoxesOnTargets, "initial", snap.InitialNodeID)
	if snap.Trim != nil {
		logger.Info("trimmed",
			"nodes_before", snap.Trim.NodesBefore, "nodes_after", snap.Trim.NodesAfter,
			"nodes_removed_pct", int(snap.Trim.NodesRemovedPercent()),
			"edges_before", snap.Trim.EdgesBefore, "edges_after", snap.Trim.EdgesAfter,
			"edges_removed_pct", int(snap.Trim.EdgesRemovedPercent()))
	}

	if cfg.jsonOut != "" {
		f, err := os.Create(cfg.jsonOut)
		if err != nil {
			logger.Error("create json file", "path", cfg.jsonOut, "err", err)
			return 1
		}
		defer f.Close()
		if err := jsonexport.Write(f, snap); err != nil {
			logger.Error("write json", "path", cfg.jsonOut, "err", err)
			return 1
		}
		logger.Info("graph exported", "path", cfg.jsonOut)
	}

	tree := seedLayout(snap)
	logger.Info("octree seeded",
		"points", tree.NodeCount(),
		"bounds_width", tree.RootBounds().Width(),
		"cells", len(tree.VisualizationNodes()))
	return 0
}

// seedLayout places one point per snapshot node on a deterministic ring of
// radius 10 in the XZ plane (angle from the node id, height from its
// boxes-on-targets count) and builds the octree the visualization
// front-end iterates against. The ring spreads initial positions enough
// that the first force evaluations do not all collapse to the MinDistance
// cutoff.
func seedLayout(snap *stategraph.Snapshot) *octree.Octree {
	points := make([]octree.Point, 0, len(snap.Nodes))
	for _, n := range snap.Nodes {
		angle := float32(n.ID) * 0.618
		points = append(points, octree.Point{
			ID: n.ID,
			Pos: spatial.Vec3{
				X: 10 * math32.Cos(angle),
				Y: float32(n.OnTargets),
				Z: 10 * math32.Sin(angle),
			},
		})
	}
	return octree.FromPoints(points, 8, 4, 2)
}
