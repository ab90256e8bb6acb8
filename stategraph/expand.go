package stategraph

import (
	"sokobauto/board"
	"sokobauto/canon"
	"sokobauto/puzzle"
)

// Engine drives state-space exploration: it owns the StateGraph under
// construction, a reusable reachability Reacher, and the exploration
// options. Exactly one goroutine may drive an Engine.
type Engine struct {
	board     *board.Board
	graph     *StateGraph
	reacher   *canon.Reacher
	mask      []canon.VisitState
	opts      ExploreOptions
	initialID int
}

// NewEngine seeds a fresh StateGraph with the canonical node of initial and
// returns an Engine ready for ExpandOne calls. The initial player position
// must be walkable and box-free.
func NewEngine(b *board.Board, initial puzzle.GameState, opts ...Option) (*Engine, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	if !b.IsWalkable(initial.Player) || initial.Boxes.Contains(initial.Player) {
		return nil, ErrPlayerNotWalkable
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reacher := canon.NewReacher(b)
	graph := New()
	seed := canon.Canonicalize(reacher, initial)
	initialID := graph.Upsert(seed)

	return &Engine{
		board:     b,
		graph:     graph,
		reacher:   reacher,
		opts:      o,
		initialID: initialID,
	}, nil
}

// Graph returns the graph under construction. The caller must not mutate
// it while expansion is in progress.
func (e *Engine) Graph() *StateGraph {
	return e.graph
}

// InitialID returns the id assigned to the initial state's canonical node.
// It is always 0 by construction, but callers should not rely on that.
func (e *Engine) InitialID() int {
	return e.initialID
}

// ExpandOne pops one unvisited node from the worklist and connects every
// distinct push successor, or reports AllVisited when the worklist is
// exhausted. The host can bound CPU between progress renders by
// calling ExpandOne repeatedly within a time slice; cancelling between
// calls leaves the graph in a consistent partial state.
func (e *Engine) ExpandOne() PopulateResult {
	id, ok := e.graph.TakeUnvisited()
	if !ok {
		e.graph.AssertAllVisited()
		return AllVisited
	}

	src, ok := e.graph.Get(id)
	if !ok {
		panic(&InvariantError{Op: "ExpandOne", Detail: "worklist id missing from bijection"})
	}

	// One flood fill per expanded node. The Reacher's mask buffer is
	// clobbered by the per-successor Canonicalize calls below, so the
	// source mask is copied into a scratch buffer reused across ExpandOne
	// calls.
	e.mask = append(e.mask[:0], e.reacher.ReachableMask(src.AnyGameState())...)

	// Boxes in canonical order × directions in the fixed push order: this
	// enumeration order is what makes repeated runs produce bit-identical
	// graphs.
	for i := 0; i < src.Boxes.Len(); i++ {
		box := src.Boxes.At(i)
		for _, dir := range board.AllDirections {
			pusher := box.Sub(dir)
			if !e.board.InBounds(pusher) {
				continue
			}
			if e.mask[int(pusher.Row)*e.board.Width()+int(pusher.Col)] != canon.Visited {
				continue
			}

			candidate := puzzle.GameState{Player: pusher, Boxes: src.Boxes}
			next, kind, err := puzzle.Step(e.board, candidate, board.Move(dir))
			if err != nil || kind != puzzle.PlayerAndBoxMove {
				continue
			}
			if e.opts.HeuristicPruning && canon.IsUnwinnable(e.board, next) {
				continue
			}

			succ := canon.Canonicalize(e.reacher, next)
			if succ.Equal(src) {
				continue
			}

			toID := e.graph.Upsert(succ)
			e.graph.AddEdge(id, toID)
		}
	}

	e.opts.OnNodeExpanded(id, e.graph.Stats())
	return Populated
}

// Run expands until the worklist is exhausted.
func (e *Engine) Run() {
	for e.ExpandOne() == Populated {
	}
}

// Explore builds the complete state graph from initial, optionally trims
// it to win-reachable nodes, and returns the resulting immutable
// Snapshot. It blocks until done.
func Explore(b *board.Board, initial puzzle.GameState, opts ...Option) (*Snapshot, error) {
	engine, err := NewEngine(b, initial, opts...)
	if err != nil {
		return nil, err
	}
	engine.Run()

	var trim *TrimStats
	if engine.opts.Trimming {
		stats := TrimToWinnable(engine.graph, b)
		trim = &stats
	}

	return engine.Snapshot(trim), nil
}
