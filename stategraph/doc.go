// Package stategraph explores the reachable state space of a board.Board
// starting from an initial GameState, building a StateGraph of canonical
// nodes connected by push actions. It owns the bijection
// between canon.Node and a dense integer id, the worklist that drives
// expansion, the dead-state heuristic's integration into that expansion,
// and the win-reachability trimmer that discards nodes no winning node can
// still be reached from.
//
// A StateGraph is built by exactly one goroutine: Explore walks a FIFO
// worklist to completion and returns, with no concurrent mutation of the
// graph at any point. This package intentionally carries no locking.
package stategraph
