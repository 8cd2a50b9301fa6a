// Package graphio loads network descriptions into core graphs, keeping
// the mapping between human node names and integer node ids.
//
// Two input formats are supported:
//
//   - The classic plain-text network file: a node-count header followed
//     by one "name1-name2,weight" connection per line (see ParseText).
//   - A YAML document with explicit nodes and edges lists (see ParseYAML).
//
// Both produce a NetMap: the built graph plus the node-name registry in
// order of first appearance. That order doubles as the query order for
// the allpaths pair driver.
//
// Error policy (strict, builder-style):
//   - Only package-level sentinel errors are exposed; branch with
//     errors.Is.
//   - Parse errors attach line/field context via %w wrapping.
//   - Graph-level violations (duplicate connection, self-loop, negative
//     weight) surface the core sentinels unchanged, with input context
//     wrapped around them.
package graphio

import (
	"errors"

	"github.com/katalvlaran/pathways/core"
)

// Sentinel errors for network parsing.
var (
	// ErrEmptyInput indicates the input held no usable content.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader indicates the node-count header is missing, not a
	// number, or smaller than one.
	ErrBadHeader = errors.New("graphio: invalid node count header")

	// ErrBadLine indicates a connection line does not match the
	// "name1-name2,weight" shape.
	ErrBadLine = errors.New("graphio: malformed connection line")

	// ErrNodeCountMismatch indicates the set of distinct node names does
	// not match the declared node count.
	ErrNodeCountMismatch = errors.New("graphio: node count mismatch")

	// ErrDuplicateName indicates a YAML nodes list declares a name twice.
	ErrDuplicateName = errors.New("graphio: duplicate node name")

	// ErrUnknownNode indicates a YAML edge references an undeclared node.
	ErrUnknownNode = errors.New("graphio: unknown node name")

	// ErrUnknownFormat indicates LoadFile could not recognize the file
	// extension.
	ErrUnknownFormat = errors.New("graphio: unknown file format")
)

// NetMap couples a built graph with its node-name registry.
//
// Names[id] is the name of node id; ids are assigned by first appearance
// in the input, so Names order is also the natural query order for the
// allpaths driver.
type NetMap struct {
	// Graph is the fully built weighted digraph.
	Graph *core.Graph

	// Names maps node id → declared name, in first-appearance order.
	Names []string

	index map[string]int
}

// newNetMap allocates an empty registry for up to n nodes.
func newNetMap(g *core.Graph, n int) *NetMap {
	return &NetMap{
		Graph: g,
		Names: make([]string, 0, n),
		index: make(map[string]int, n),
	}
}

// intern returns the id of name, assigning the next free id on first
// sight. The second result is false when the registry is already full.
func (m *NetMap) intern(name string) (int, bool) {
	if id, ok := m.index[name]; ok {
		return id, true
	}
	if len(m.Names) == cap(m.Names) {
		return 0, false
	}
	id := len(m.Names)
	m.Names = append(m.Names, name)
	m.index[name] = id

	return id, true
}

// Index returns the id of the named node and whether it exists.
func (m *NetMap) Index(name string) (int, bool) {
	id, ok := m.index[name]

	return id, ok
}

// Name returns the name of node id, or an empty string when id is out of
// range.
func (m *NetMap) Name(id int) string {
	if id < 0 || id >= len(m.Names) {
		return ""
	}

	return m.Names[id]
}

// Order returns the node ids in declaration order — the list the allpaths
// pair driver expects. The slice is a fresh copy.
func (m *NetMap) Order() []int {
	order := make([]int, len(m.Names))
	for i := range order {
		order[i] = i
	}

	return order
}
