// Tests for the YAML network parser and the extension-dispatching loader.
package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathways/core"
	"github.com/katalvlaran/pathways/graphio"
)

const yamlDiamond = `
nodes: [A, B, C, D]
directed: true
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: D, weight: 1}
  - {from: A, to: C, weight: 1}
  - {from: C, to: D, weight: 1}
  - {from: A, to: D, weight: 5}
`

func TestParseYAML_DirectedDiamond(t *testing.T) {
	m, err := graphio.ParseYAML([]byte(yamlDiamond))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Names)
	assert.Equal(t, int64(1), m.Graph.Weight(0, 1))
	assert.Equal(t, int64(5), m.Graph.Weight(0, 3))

	// directed: true means no mirror edges.
	assert.False(t, m.Graph.HasEdge(1, 0))
	assert.False(t, m.Graph.HasEdge(3, 0))
}

func TestParseYAML_UndirectedByDefault(t *testing.T) {
	doc := `
nodes: [A, B]
edges:
  - {from: A, to: B, weight: 2}
`
	m, err := graphio.ParseYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Graph.Weight(0, 1))
	assert.Equal(t, int64(2), m.Graph.Weight(1, 0))
}

func TestParseYAML_Validation(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"garbage", "nodes: [unclosed", nil}, // wrapped yaml error, no sentinel
		{"no nodes", "edges: []", graphio.ErrEmptyInput},
		{"duplicate name", "nodes: [A, A]", graphio.ErrDuplicateName},
		{"unknown from", "nodes: [A, B]\nedges: [{from: X, to: B, weight: 1}]", graphio.ErrUnknownNode},
		{"unknown to", "nodes: [A, B]\nedges: [{from: A, to: X, weight: 1}]", graphio.ErrUnknownNode},
		{"negative weight", "nodes: [A, B]\nedges: [{from: A, to: B, weight: -2}]", core.ErrNegativeWeight},
		{"self loop", "nodes: [A, B]\nedges: [{from: A, to: A, weight: 1}]", core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ParseYAML([]byte(tc.doc))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoadFile_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDiamond), 0o644))

	textPath := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("2\nA-B,1\n"), 0o644))

	my, err := graphio.LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 4, my.Graph.Size())

	mt, err := graphio.LoadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, 2, mt.Graph.Size())
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := graphio.LoadFile(path)
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := graphio.LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
