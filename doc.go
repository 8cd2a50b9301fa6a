// Package pathways finds every minimum-weight route between node pairs
// of a weighted directed graph — not just one shortest path, all of them.
//
// 🚀 What is pathways?
//
//	A small, deterministic, exhaustive-search library built around three ideas:
//		• Core primitives: a fixed-size dense digraph with an explicit "no edge" sentinel
//		• Exhaustive search: depth-first exploration with branch-and-bound pruning
//		• Tied minima: when several routes share the minimum weight, every one is reported
//
// ✨ Why choose pathways?
//
//   - Complete answers – classic shortest-path solvers return one witness;
//     pathways enumerates the full tie set
//   - Deterministic – no randomness, no global state, stable neighbor order
//   - Pure Go – no cgo; the search engine itself has zero runtime dependencies
//   - Composable – functional options, context cancellation, result hooks
//
// Under the hood, everything is organized under four subpackages and a CLI:
//
//	core/           — fixed-size weighted digraph, NoEdge sentinel, validation
//	allpaths/       — search state, result collector, recursive explorer, query driver
//	graphio/        — text & YAML network descriptions → core.Graph + node names
//	report/         — Path / Route / Distance rendering of query results
//	cmd/pathfinder/ — batch CLI tying the pieces together
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    1     1
//	    │     │
//	    C──1──D
//
//	between A and D both A→B→D and A→C→D weigh 2, so both are returned.
//
// Dive into the per-package docs for the search invariants, the pruning
// bound, and the exact input formats.
//
//	go get github.com/katalvlaran/pathways
package pathways
