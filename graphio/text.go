package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathways/core"
)

// ParseText reads the classic plain-text network format:
//
//	4
//	Gotham-Metropolis,3
//	Metropolis-Smallville,2
//	Gotham-Smallville,6
//
// The first line declares the number of distinct nodes; every following
// non-empty line declares one bidirectional connection "name1-name2,weight"
// (both directed edges are recorded). Node ids are assigned by first
// appearance. The declared count must match the distinct names exactly.
//
// Validation:
//   - header missing / not a positive integer  → ErrBadHeader
//   - line without exactly one '-' and one ',' → ErrBadLine (with line number)
//   - non-integer or negative weight           → ErrBadLine / core.ErrNegativeWeight
//   - more distinct names than declared        → ErrNodeCountMismatch
//   - fewer distinct names than declared       → ErrNodeCountMismatch (at EOF)
//   - repeated connection, self-connection     → core.ErrDuplicateEdge / core.ErrLoopNotAllowed
//
// Complexity: O(L + n²) for L input lines (graph allocation dominates).
func ParseText(r io.Reader) (*NetMap, error) {
	sc := bufio.NewScanner(r)

	// 1) Header: declared node count.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read header: %w", err)
		}

		return nil, ErrEmptyInput
	}
	header := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(header)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("graphio: allocate graph: %w", err)
	}
	m := newNetMap(g, n)

	// 2) Connection lines.
	lineNo := 1
	var line string
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err = m.addConnection(line, lineNo); err != nil {
			return nil, err
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read line %d: %w", lineNo, err)
	}

	// 3) Every declared node must have appeared.
	if len(m.Names) != n {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrNodeCountMismatch, n, len(m.Names))
	}

	return m, nil
}

// addConnection parses one "name1-name2,weight" line and records both
// directed edges.
func (m *NetMap) addConnection(line string, lineNo int) error {
	left, rest, ok := strings.Cut(line, "-")
	if !ok {
		return fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, line)
	}
	right, weightStr, ok := strings.Cut(rest, ",")
	if !ok || left == "" || right == "" || weightStr == "" {
		return fmt.Errorf("%w: line %d: %q", ErrBadLine, lineNo, line)
	}

	weight, err := strconv.ParseInt(weightStr, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: weight %q", ErrBadLine, lineNo, weightStr)
	}

	u, ok := m.intern(left)
	if !ok {
		return fmt.Errorf("%w: line %d introduces extra node %q", ErrNodeCountMismatch, lineNo, left)
	}
	v, ok := m.intern(right)
	if !ok {
		return fmt.Errorf("%w: line %d introduces extra node %q", ErrNodeCountMismatch, lineNo, right)
	}

	// A connection is bidirectional: record both directed edges. The
	// second AddEdge cannot fail unless the first did — the graph is
	// built exclusively through this path.
	if err = m.Graph.AddEdge(u, v, weight); err != nil {
		return fmt.Errorf("graphio: line %d: %w", lineNo, err)
	}
	if err = m.Graph.AddEdge(v, u, weight); err != nil {
		return fmt.Errorf("graphio: line %d: %w", lineNo, err)
	}

	return nil
}
