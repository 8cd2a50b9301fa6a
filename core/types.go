// Package core defines the central Graph type used by every pathways
// algorithm: a fixed-size, dense, weighted directed graph.
//
// Nodes are integer ids in [0, Size). Edge weights are non-negative int64
// values stored in a dense row-major buffer; the absence of an edge is
// marked by the NoEdge sentinel, which compares greater than every legal
// weight. The buffer layout gives O(1) weight lookups and cache-friendly
// row scans, which the recursive search in pathways/allpaths relies on.
//
// This file declares the sentinel constant, sentinel errors, the Graph
// type, and the NewGraph constructor.
//
// Errors:
//
//	ErrBadSize        - requested node count is smaller than one.
//	ErrNodeOutOfRange - a node id lies outside [0, Size).
//	ErrNegativeWeight - a negative edge weight was supplied.
//	ErrWeightOverflow - a weight at or above the NoEdge sentinel was supplied.
//	ErrLoopNotAllowed - a self-loop u→u was supplied.
//	ErrDuplicateEdge  - the edge u→v already exists.
package core

import (
	"errors"
	"math"
)

// NoEdge marks the absence of an edge in the weight buffer.
// It is strictly greater than any weight AddEdge accepts, so comparisons
// against real weights are always well defined.
const NoEdge int64 = math.MaxInt64

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates NewGraph was asked for fewer than one node.
	ErrBadSize = errors.New("core: node count must be at least 1")

	// ErrNodeOutOfRange indicates an operation referenced a node id
	// outside [0, Size).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	// The search engine's pruning bound requires non-negative weights.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightOverflow indicates a weight ≥ NoEdge was supplied, which
	// would be indistinguishable from an absent edge.
	ErrWeightOverflow = errors.New("core: edge weight collides with NoEdge sentinel")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Simple-path
	// enumeration never traverses loops, so they are rejected at build time.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge u→v was already added.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Graph is a fixed-size weighted digraph backed by a dense buffer.
//
// The node count is fixed at construction; edges are added one at a time
// and never removed. A Graph is not synchronized: build it fully, then
// share it read-only across any number of concurrent queries.
type Graph struct {
	// n is the number of nodes, fixed at construction.
	n int

	// w holds the weight of edge u→v at w[u*n+v], or NoEdge if absent.
	w []int64
}

// NewGraph allocates a graph with n nodes and no edges.
// Returns ErrBadSize if n < 1.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	w := make([]int64, n*n)
	for i := range w {
		w[i] = NoEdge
	}

	return &Graph{n: n, w: w}, nil
}
