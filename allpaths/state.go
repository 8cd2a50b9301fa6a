package allpaths

// pathState is the mutable per-query search state: the partial path under
// construction, a visited marker per node, and the running weight.
//
// Invariant: visited[n] is true iff n appears in path. enter and leave
// must pair strictly LIFO; after a full recursive subtree returns, the
// state is identical to what it was before entering it. Both methods are
// kept tiny and allocation-free — they sit on the hottest loop of the
// search.
type pathState struct {
	visited []bool // visited[n] — n is on the current partial path
	path    []int  // node ids from the source, in traversal order
	weight  int64  // sum of edge weights along path
}

// newPathState allocates state for a graph of n nodes. The path buffer is
// pre-sized to n: a simple path can never be longer.
func newPathState(n int) *pathState {
	return &pathState{
		visited: make([]bool, n),
		path:    make([]int, 0, n),
		weight:  0,
	}
}

// enter places node on the partial path, arriving over an edge of weight
// edgeWeight (0 for the source node). Precondition: !s.onPath(node).
func (s *pathState) enter(node int, edgeWeight int64) {
	s.visited[node] = true
	s.path = append(s.path, node)
	s.weight += edgeWeight
}

// leave reverts the matching enter: removes the last node from the path,
// clears its visited marker, and subtracts the same edge weight.
func (s *pathState) leave(edgeWeight int64) {
	last := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]
	s.visited[last] = false
	s.weight -= edgeWeight
}

// onPath reports whether node is on the current partial path.
func (s *pathState) onPath(node int) bool { return s.visited[node] }

// snapshot returns an independent copy of the current partial path.
func (s *pathState) snapshot() []int {
	cp := make([]int, len(s.path))
	copy(cp, s.path)

	return cp
}
