// Package puzzle defines the mutable-per-state part of the puzzle model —
// BoxSet and GameState — and the pure Step transition function.
//
// A BoxSet is an unordered multiset of box positions kept in sorted
// canonical order after every mutation, so equality and hashing are
// O(k) position-set comparisons regardless of insertion order.
// A GameState pairs a player position with a BoxSet. Step(board, state,
// action) is the single pure transition rule: it never mutates its input
// and never modifies the board. Graph expansion derives every push
// successor through Step; reachability and canonicalization (package
// canon) run their own flood fill and do not call Step.
package puzzle
