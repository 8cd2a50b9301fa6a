package allpaths

import "fmt"

// collector accumulates the tied-minimum paths of one query and owns the
// pruning bound the explorer consults.
//
// Invariant: every stored path weighs exactly min. A strictly lighter
// completion discards the stored set and lowers min before the new path
// is inserted, so the invariant holds across improvements.
type collector struct {
	min   int64   // best complete-path weight so far; Unbounded until the first completion
	paths [][]int // completed paths, all of weight min
	limit int     // max stored paths; 0 = unlimited
}

// newCollector returns an empty collector with the given cap.
func newCollector(limit int) *collector {
	return &collector{min: Unbounded, limit: limit}
}

// bound exposes the current pruning bound to the explorer.
func (c *collector) bound() int64 { return c.min }

// consider records the completed path held by st. Called exactly when the
// explorer stands on the destination.
//
//   - weight < min: drop every stored path, lower min, insert.
//   - weight == min: insert a copy of the path.
//   - weight > min: no-op. The explorer's bound already cuts such
//     branches; the check remains as a safety invariant.
//
// Returns ErrPathLimit when the insert would exceed the cap; previously
// stored paths are untouched and still all weigh min.
func (c *collector) consider(st *pathState) error {
	if st.weight > c.min {
		return nil
	}
	if st.weight < c.min {
		c.paths = c.paths[:0]
		c.min = st.weight
	}
	if c.limit > 0 && len(c.paths) >= c.limit {
		return fmt.Errorf("%w: cap %d at weight %d", ErrPathLimit, c.limit, c.min)
	}
	c.paths = append(c.paths, st.snapshot())

	return nil
}

// result builds the final immutable snapshot. The backing path slices are
// already private copies; only the outer slice needs duplicating so later
// collector reuse cannot alias the handed-off result.
func (c *collector) result() *Result {
	out := make([][]int, len(c.paths))
	copy(out, c.paths)

	return &Result{MinWeight: c.min, Paths: out}
}
