// Package allpaths enumerates every minimum-weight simple path between
// node pairs of a weighted digraph via exhaustive depth-first search with
// branch-and-bound pruning.
//
// Unlike single-witness shortest-path solvers (Dijkstra and friends),
// allpaths answers the question "which routes tie for the minimum?" — the
// full set of simple paths whose total weight equals the minimum over all
// simple paths between source and destination. That requires exhaustive
// search: greedy relaxation discards ties by design.
//
// Key pieces:
//   - Between(g, source, dest, opts...): one query — all tied-minimum paths
//   - All(g, order, opts...): the pair driver — for every node in order,
//     queries every node appearing later in the same list
//   - Result: the per-query snapshot (MinWeight + Paths); an unreachable
//     destination yields MinWeight == Unbounded and no paths, which is a
//     valid outcome, not an error
//
// Algorithm (per query):
//
//	Depth-first exploration from source over the dense adjacency rows.
//	Entering a node marks it visited, appends it to the partial path, and
//	adds the incoming edge weight; both effects are reverted on exit, so a
//	finished subtree leaves the state bit-for-bit as it found it. Reaching
//	the destination hands the partial path to the result collector: a
//	strictly lighter completion discards everything collected so far and
//	lowers the bound; an equal-weight completion is appended. Branches are
//	pruned when the partial weight plus the next edge would exceed the
//	collector's current bound — "exceed", not "reach", so that ties at the
//	bound survive. Before any completion exists the bound is Unbounded,
//	which compares greater than every finite weight, so nothing is pruned
//	prematurely.
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple paths may tie);
//     pruning makes typical sparse inputs far cheaper.
//   - Memory: O(V) search state per query + output paths.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithMaxPaths(k)    caps the number of stored tied paths per query;
//     exceeding the cap aborts that query with ErrPathLimit while keeping
//     the collected results consistent.
//   - WithOnResult(fn)   streams each finished pair result out of All;
//     an error from fn aborts the run.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrNodeOutOfRange  if source, dest, or an order entry is out of range.
//   - ErrDuplicateNode   if the driver's order list repeats a node.
//   - ErrPathLimit       if a query finds more tied paths than its cap.
//   - context.Canceled   if ctx is done.
//
// Determinism: neighbor scans follow ascending node id, so path discovery
// order (and therefore Paths order) is stable across runs.
package allpaths
