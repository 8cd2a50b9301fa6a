package allpaths

import (
	"fmt"

	"github.com/katalvlaran/pathways/core"
)

// All runs one query for every ordered pair drawn from order: each node is
// paired with every node appearing strictly later in the same list. Pair
// order is significant and fixed by the list — it is never sorted by node
// id or by weight.
//
// Every query gets a fresh search state and collector; queries share only
// the read-only graph, so no state leaks between pairs. Finished pairs are
// streamed through the OnResult hook (if installed) before being appended
// to the returned slice.
//
// Validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Every order entry must lie in [0, g.Size()) (ErrNodeOutOfRange).
//  3. Order entries must be distinct (ErrDuplicateNode).
//
// An empty or single-entry order yields no pairs and an empty slice.
//
// On a query error (cancellation, ErrPathLimit) or a hook error, All
// returns the pairs finished so far together with the wrapped error.
//
// Complexity: len(order)·(len(order)−1)/2 independent queries.
func All(g *core.Graph, order []int, opts ...Option) ([]PairResult, error) {
	// 1) Build and apply options (the hook lives here, not in Between).
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 3) Validate the order list: in range and duplicate-free.
	n := g.Size()
	seen := make([]bool, n)
	var id int
	for _, id = range order {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%w: order entry %d, graph size %d", ErrNodeOutOfRange, id, n)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: node %d", ErrDuplicateNode, id)
		}
		seen[id] = true
	}

	// 4) Query loop: each source against every later destination.
	results := make([]PairResult, 0, len(order)*(len(order)-1)/2)
	var (
		i        int
		src, dst int
		res      *Result
		err      error
	)
	for i, src = range order {
		for _, dst = range order[i+1:] {
			res, err = Between(g, src, dst, opts...)
			if err != nil {
				return results, fmt.Errorf("allpaths: query %d→%d: %w", src, dst, err)
			}
			pr := PairResult{Source: src, Dest: dst, Result: res}
			if cfg.OnResult != nil {
				if err = cfg.OnResult(pr); err != nil {
					return results, fmt.Errorf("allpaths: OnResult hook for %d→%d: %w", src, dst, err)
				}
			}
			results = append(results, pr)
		}
	}

	return results, nil
}
