// Package canon computes player-reachability over a board blocked by a
// GameState's boxes, and turns that into the canonical graph-vertex
// identity (CanonicalNode) the exploration engine keys its StateGraph on.
//
// All three reachability queries — the materialized position set, the
// streaming minimum, and the per-cell visitation mask — share one
// flood-fill pass over a reusable per-cell buffer the size of the
// playfield. canon also carries the dead-state heuristic, a
// cheap, conservative corner-trap test the expansion engine uses to elide
// successors that can never be won.
package canon
