// Package sokobauto explores the full reachable state space of a
// Sokoban-style puzzle, builds a directed graph of canonicalized game
// states connected by box pushes, trims it to win-reachable states, and
// lays the result out in 3-D with a Barnes-Hut force simulation.
//
// 🚀 What is sokobauto?
//
//	A single-threaded, deterministic exploration + layout core:
//
//	  • Puzzle semantics: immutable boards, pure step transitions
//	  • Canonicalization: push-equivalent states collapse to one node
//	  • Graph building: FIFO worklist expansion, win-reachability trim
//	  • Barnes-Hut octree: θ-approximated N-body repulsion for layout
//
// ✨ Why this shape?
//
//   - Deterministic        — replays produce bit-identical graphs
//   - Host-friendly        — ExpandOne slices CPU between frames
//   - One mutator          — no locks; concurrency is designed out
//   - Float32 throughout   — the layout math matches GPU precision
//
// Under the hood, everything is organized per concern:
//
//	board/, puzzle/ — playfield value types & the Step rule
//	canon/          — reachability flood fill, node identity, heuristics
//	stategraph/     — graph, expansion engine, trimmer, snapshot
//	spatial/, octree/ — cube bounds & the Barnes-Hut engine
//	levelfmt/, jsonexport/ — ASCII levels in, pretty JSON out
//	cmd/sokobauto/  — interactive & graph sub-modes
//
// Quick ASCII example:
//
//	#####
//	#@$.#
//	#####
//
//	one push, two canonical states, one edge — the smallest winnable graph.
//
// Dive into the per-package doc.go files for the full contracts, and into
// the example_test.go files of octree/ and stategraph/ for runnable
// demonstrations.
//
//	go get sokobauto
package sokobauto
