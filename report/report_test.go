// Package report_test verifies the block renderer against golden output,
// including tied routes, single-edge distances, and unreachable pairs.
package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathways/allpaths"
	"github.com/katalvlaran/pathways/core"
	"github.com/katalvlaran/pathways/graphio"
	"github.com/katalvlaran/pathways/report"
)

// namer builds the id→name function of a parsed network.
func namer(m *graphio.NetMap) func(int) string { return m.Name }

func TestRender_MultiHopBlock(t *testing.T) {
	m, err := graphio.ParseText(strings.NewReader(strings.Join([]string{
		"3",
		"A-B,2",
		"B-C,1",
		"A-C,6",
	}, "\n")))
	require.NoError(t, err)

	res, err := allpaths.Between(m.Graph, 0, 2)
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, m.Graph, namer(m))
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 2, Result: res}))

	want := strings.Join([]string{
		"========================================",
		"Path: A -> C",
		"Route: A -> B -> C",
		"Distance: 2 + 1 = 3",
		"========================================",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRender_SingleEdgeOmitsSum(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))

	res, err := allpaths.Between(g, 0, 1)
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, g, nil)
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 1, Result: res}))

	assert.Contains(t, out.String(), "Distance: 7\n")
	assert.NotContains(t, out.String(), " = ")
	assert.Contains(t, out.String(), "Route: 0 -> 1\n")
}

func TestRender_TiedRoutesGetOneBlockEach(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][3]int64{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}, {0, 3, 5}} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	res, err := allpaths.Between(g, 0, 3)
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, g, nil)
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 3, Result: res}))

	assert.Equal(t, 2, strings.Count(out.String(), "Path: 0 -> 3"))
	assert.Contains(t, out.String(), "Route: 0 -> 1 -> 3")
	assert.Contains(t, out.String(), "Route: 0 -> 2 -> 3")
}

func TestRender_UnreachableSilentByDefault(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	res, err := allpaths.Between(g, 0, 1)
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, g, nil)
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 1, Result: res}))
	assert.Empty(t, out.String())

	r.ShowUnreachable = true
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 1, Result: res}))
	assert.Contains(t, out.String(), "No route")
}

func TestRender_NilResult(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	r := report.NewRenderer(&strings.Builder{}, g, nil)
	assert.ErrorIs(t, r.Render(allpaths.PairResult{Source: 0, Dest: 1}), report.ErrNilResult)
}

func TestRender_StreamsFromDriver(t *testing.T) {
	m, err := graphio.ParseText(strings.NewReader("3\nA-B,1\nB-C,1\nA-C,2\n"))
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, m.Graph, namer(m))

	_, err = allpaths.All(m.Graph, m.Order(), allpaths.WithOnResult(r.Hook()))
	require.NoError(t, err)

	// A↔C ties: the direct connection (2) equals the detour via B.
	assert.Contains(t, out.String(), "Route: A -> B -> C")
	assert.Contains(t, out.String(), "Route: A -> C")
	assert.Contains(t, out.String(), "Path: B -> C")
}

func TestRender_SelfQuerySingleNodeRoute(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := allpaths.Between(g, 0, 0)
	require.NoError(t, err)

	var out strings.Builder
	r := report.NewRenderer(&out, g, nil)
	require.NoError(t, r.Render(allpaths.PairResult{Source: 0, Dest: 0, Result: res}))

	assert.Contains(t, out.String(), "Route: 0\n")
	assert.Contains(t, out.String(), "Distance: 0\n")
}
