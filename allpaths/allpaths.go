package allpaths

import (
	"fmt"

	"github.com/katalvlaran/pathways/core"
)

// Between finds every minimum-weight simple path from source to dest in g.
//
// Returns:
//
//   - res: the query snapshot. An unreachable dest yields
//     res.MinWeight == Unbounded with no paths — a valid result.
//   - err: validation failure, context cancellation, or ErrPathLimit.
//     On cancellation and ErrPathLimit the returned Result still holds
//     the consistent set collected so far.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source and dest must lie in [0, g.Size()) (ErrNodeOutOfRange).
//
// source == dest is permitted and terminates immediately with a single
// one-node path of weight 0.
//
// Complexity:
//
//   - Time:  worst-case exponential in g.Size() (exhaustive by design);
//     the branch-and-bound cut keeps typical inputs tractable.
//   - Space: O(V) search state + output.
func Between(g *core.Graph, source, dest int, opts ...Option) (*Result, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 3) Validate both endpoints.
	n := g.Size()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d, graph size %d", ErrNodeOutOfRange, source, n)
	}
	if dest < 0 || dest >= n {
		return nil, fmt.Errorf("%w: dest %d, graph size %d", ErrNodeOutOfRange, dest, n)
	}

	// 4) Fresh per-query state and collector; never shared, never reused.
	w := &walker{
		graph: g,
		opts:  cfg,
		dest:  dest,
		state: newPathState(n),
		col:   newCollector(cfg.MaxPaths),
	}

	// 5) Run the recursion. The source enters with edge weight 0.
	if err := w.explore(source, 0); err != nil {
		// Partial results stay consistent: hand them back with the error.
		return w.col.result(), err
	}

	return w.col.result(), nil
}

// walker encapsulates one query's recursion over the graph.
type walker struct {
	graph *core.Graph // read-only input graph
	opts  Options     // resolved configuration
	dest  int         // destination node of this query
	state *pathState  // mutable partial-path state
	col   *collector  // tied-minimum accumulator and pruning bound
}

// explore visits node from, having arrived over an edge of weight
// edgeWeight (0 at the source). The enter/leave pair around the body
// guarantees the backtracking invariant on every exit path, early error
// returns included.
func (w *walker) explore(from int, edgeWeight int64) error {
	// 1) Cancellation check, once per node entry.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2) Scoped state acquisition: reverted on every return below.
	w.state.enter(from, edgeWeight)
	defer w.state.leave(edgeWeight)

	// 3) Terminal check: the destination completes the path; a completed
	//    path is never extended further.
	if from == w.dest {
		return w.col.consider(w.state)
	}

	// 4) Branch step: scan the dense row in ascending node id.
	var (
		n     = w.graph.Size()
		bound int64
		wt    int64
		i     int
	)
	for i = 0; i < n; i++ {
		wt = w.graph.Weight(from, i)
		if wt == core.NoEdge || w.state.onPath(i) {
			continue
		}
		// Prune when the extended weight would exceed the best known
		// complete-path weight. "Exceed", not "reach": an equal weight
		// may still complete into a tie. Unbounded is checked explicitly
		// so the sum cannot overflow before the first completion.
		if bound = w.col.bound(); bound != Unbounded && w.state.weight+wt > bound {
			continue
		}
		if err := w.explore(i, wt); err != nil {
			return err
		}
	}

	return nil
}
