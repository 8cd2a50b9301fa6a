package core

import "fmt"

// Size returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Size() int { return g.n }

// at is the row-major accessor into the dense weight buffer.
func (g *Graph) at(u, v int) int64 { return g.w[u*g.n+v] }

// inRange reports whether id is a valid node id for this graph.
func (g *Graph) inRange(id int) bool { return id >= 0 && id < g.n }

// AddEdge records the directed edge u→v with the given weight.
//
// Validation (in order):
//  1. u and v must lie in [0, Size)           → ErrNodeOutOfRange.
//  2. u must differ from v                    → ErrLoopNotAllowed.
//  3. weight must be non-negative             → ErrNegativeWeight.
//  4. weight must be below the NoEdge sentinel → ErrWeightOverflow.
//  5. u→v must not already exist              → ErrDuplicateEdge.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d→%d in graph of size %d", ErrNodeOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, weight)
	}
	if weight >= NoEdge {
		return fmt.Errorf("%w: edge %d→%d", ErrWeightOverflow, u, v)
	}
	if g.at(u, v) != NoEdge {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, u, v)
	}
	g.w[u*g.n+v] = weight

	return nil
}

// Weight returns the weight of edge u→v, or NoEdge if the edge is absent.
// Node ids outside [0, Size) also yield NoEdge, so read loops need no
// separate bounds handling.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) int64 {
	if !g.inRange(u) || !g.inRange(v) {
		return NoEdge
	}

	return g.at(u, v)
}

// HasEdge reports whether the directed edge u→v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool { return g.Weight(u, v) != NoEdge }

// OutDegree returns the number of outgoing edges of u, or 0 for an
// out-of-range id.
// Complexity: O(n).
func (g *Graph) OutDegree(u int) int {
	if !g.inRange(u) {
		return 0
	}
	deg := 0
	for v := 0; v < g.n; v++ {
		if g.at(u, v) != NoEdge {
			deg++
		}
	}

	return deg
}

// EdgeCount returns the total number of edges.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, x := range g.w {
		if x != NoEdge {
			count++
		}
	}

	return count
}

// Clone returns a deep copy of g. The copy shares no storage with the
// original, so either side may keep adding edges independently.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	w := make([]int64, len(g.w))
	copy(w, g.w)

	return &Graph{n: g.n, w: w}
}
