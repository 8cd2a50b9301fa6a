package graphio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathways/core"
)

// netFile is the YAML shape of a network description.
//
//	nodes: [Gotham, Metropolis, Smallville]
//	directed: true
//	edges:
//	  - {from: Gotham, to: Metropolis, weight: 3}
//	  - {from: Metropolis, to: Smallville, weight: 2}
//
// When directed is false (the default, matching the text format's
// bidirectional connections), every edge is mirrored.
type netFile struct {
	Nodes    []string   `yaml:"nodes"`
	Directed bool       `yaml:"directed"`
	Edges    []edgeSpec `yaml:"edges"`
}

// edgeSpec is one edge entry of a YAML network description.
type edgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// ParseYAML parses a YAML network description into a NetMap.
//
// Validation:
//   - unparsable document            → wrapped yaml error
//   - empty nodes list               → ErrEmptyInput
//   - repeated node name             → ErrDuplicateName
//   - edge naming an unknown node    → ErrUnknownNode
//   - duplicate / loop / bad weights → core sentinels with edge context
//
// Complexity: O(E + n²).
func ParseYAML(data []byte) (*NetMap, error) {
	// 1) Decode the document.
	var nf netFile
	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("graphio: parse yaml: %w", err)
	}
	if len(nf.Nodes) == 0 {
		return nil, fmt.Errorf("%w: nodes list is empty", ErrEmptyInput)
	}

	// 2) Register every declared node, in list order.
	g, err := core.NewGraph(len(nf.Nodes))
	if err != nil {
		return nil, fmt.Errorf("graphio: allocate graph: %w", err)
	}
	m := newNetMap(g, len(nf.Nodes))
	var name string
	for _, name = range nf.Nodes {
		if _, ok := m.index[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		m.intern(name)
	}

	// 3) Record the edges, mirroring unless the document says directed.
	var (
		u, v int
		ok   bool
	)
	for i, e := range nf.Edges {
		if u, ok = m.Index(e.From); !ok {
			return nil, fmt.Errorf("%w: edge %d from %q", ErrUnknownNode, i, e.From)
		}
		if v, ok = m.Index(e.To); !ok {
			return nil, fmt.Errorf("%w: edge %d to %q", ErrUnknownNode, i, e.To)
		}
		if err = g.AddEdge(u, v, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
		if !nf.Directed {
			if err = g.AddEdge(v, u, e.Weight); err != nil {
				return nil, fmt.Errorf("graphio: edge %d (%s→%s mirror): %w", i, e.From, e.To, err)
			}
		}
	}

	return m, nil
}
