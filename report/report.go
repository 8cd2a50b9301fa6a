// Package report renders allpaths query results in the classic
// pathfinder block format:
//
//	========================================
//	Path: Gotham -> Smallville
//	Route: Gotham -> Metropolis -> Smallville
//	Distance: 1 + 1 = 2
//	========================================
//
// One block is printed per tied-minimum route, so a pair with three
// equally light routes yields three blocks. Rendering consumes the
// immutable Result snapshot and never mutates it.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathways/allpaths"
	"github.com/katalvlaran/pathways/core"
)

// ErrNilResult is returned when a PairResult without a Result is rendered.
var ErrNilResult = errors.New("report: nil result")

// separator frames every rendered block, matching the classic output.
const separator = "========================================"

// Renderer writes pathfinder-style blocks for finished queries.
type Renderer struct {
	// ShowUnreachable, if true, prints a short block for pairs without a
	// route. The classic program stays silent on them, so default false.
	ShowUnreachable bool

	w    io.Writer
	g    *core.Graph
	name func(int) string
}

// NewRenderer returns a Renderer writing to w. Edge weights for the
// Distance line are read back from g. name maps node ids to display
// names; nil falls back to the numeric id.
func NewRenderer(w io.Writer, g *core.Graph, name func(int) string) *Renderer {
	if name == nil {
		name = strconv.Itoa
	}

	return &Renderer{w: w, g: g, name: name}
}

// Render writes one block per tied-minimum route of pr.
func (r *Renderer) Render(pr allpaths.PairResult) error {
	if pr.Result == nil {
		return ErrNilResult
	}
	if !pr.Result.Reachable() {
		if !r.ShowUnreachable {
			return nil
		}

		return r.renderUnreachable(pr)
	}

	for _, route := range pr.Result.Paths {
		if err := r.renderRoute(pr.Source, pr.Dest, route); err != nil {
			return err
		}
	}

	return nil
}

// Hook adapts Render to the allpaths.WithOnResult option, so the driver
// can stream blocks as queries finish.
func (r *Renderer) Hook() func(allpaths.PairResult) error {
	return r.Render
}

// renderRoute writes a single block for one route.
func (r *Renderer) renderRoute(src, dst int, route []int) error {
	var b strings.Builder
	b.WriteString(separator)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Path: %s -> %s\n", r.name(src), r.name(dst))

	// Route line: every node of the path, in order.
	b.WriteString("Route: ")
	for i, node := range route {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(r.name(node))
	}
	b.WriteByte('\n')

	b.WriteString(r.distanceLine(route))
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')

	_, err := io.WriteString(r.w, b.String())

	return err
}

// distanceLine formats the per-hop sum: "Distance: 2 + 1 = 3" for
// multi-hop routes, "Distance: 3" when a single edge tells the whole
// story.
func (r *Renderer) distanceLine(route []int) string {
	var (
		b     strings.Builder
		total int64
		w     int64
	)
	b.WriteString("Distance: ")
	for i := 1; i < len(route); i++ {
		w = r.g.Weight(route[i-1], route[i])
		total += w
		if i > 1 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatInt(w, 10))
	}
	if len(route) > 2 {
		fmt.Fprintf(&b, " = %d", total)
	}
	if len(route) < 2 {
		// A one-node route (source == destination) has no hops.
		b.WriteString("0")
	}

	return b.String()
}

// renderUnreachable writes the optional block for a routeless pair.
func (r *Renderer) renderUnreachable(pr allpaths.PairResult) error {
	_, err := fmt.Fprintf(r.w, "%s\nPath: %s -> %s\nNo route\n%s\n",
		separator, r.name(pr.Source), r.name(pr.Dest), separator)

	return err
}
