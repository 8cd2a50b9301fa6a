// Package allpaths: types, options, and sentinel errors for the
// all-minimal-paths search engine.
package allpaths

import (
	"context"
	"errors"
	"math"
)

// Unbounded is the "no minimum known yet" marker for path weights.
// It compares greater than any finite path weight, so the pruning bound
// never cuts a branch before the first complete path has been found.
const Unbounded int64 = math.MaxInt64

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// Between or All.
	ErrGraphNil = errors.New("allpaths: graph is nil")

	// ErrNodeOutOfRange indicates that a source, destination, or order
	// entry does not identify a node of the graph.
	ErrNodeOutOfRange = errors.New("allpaths: node id out of range")

	// ErrDuplicateNode indicates that the driver's ordered node list
	// names the same node twice. Pairs are drawn from distinct list
	// positions, so a repeated node would query itself.
	ErrDuplicateNode = errors.New("allpaths: duplicate node in order list")

	// ErrPathLimit indicates that a query discovered more tied-minimum
	// paths than its WithMaxPaths cap. Results collected up to the cap
	// remain consistent (all stored paths share the reported minimum).
	ErrPathLimit = errors.New("allpaths: tied-path limit exceeded")

	// ErrBadPathLimit reports a non-positive cap passed to WithMaxPaths.
	ErrBadPathLimit = errors.New("allpaths: MaxPaths must be positive")
)

// Result is the immutable outcome of one (source, destination) query.
//
// MinWeight is the minimum total weight over all simple paths between the
// pair, or Unbounded when the destination is unreachable. Paths holds
// every simple path achieving MinWeight, each as a node-id sequence from
// source to destination inclusive; it is empty iff MinWeight == Unbounded.
type Result struct {
	// MinWeight is the weight shared by every entry of Paths.
	MinWeight int64

	// Paths lists the tied-minimum simple paths in discovery order.
	Paths [][]int
}

// Reachable reports whether at least one path was found.
func (r *Result) Reachable() bool { return r.MinWeight != Unbounded }

// PairResult couples one driver query with its outcome.
type PairResult struct {
	// Source and Dest are the queried node ids, in order-list order.
	Source int
	Dest   int

	// Result is the query's final snapshot.
	Result *Result
}

// Option configures optional behavior of a search.
// Use with Between(g, source, dest, opts...) or All(g, order, opts...).
type Option func(*Options)

// Options holds configurable parameters for a search run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// MaxPaths, if positive, caps the number of tied-minimum paths one
	// query may store. Zero means unlimited. The cap guards callers
	// against pathological tie explosions on dense graphs.
	MaxPaths int

	// OnResult, if non-nil, is invoked by All once per finished pair,
	// before the result is appended to the returned slice. Returning an
	// error aborts the run with that error.
	OnResult func(PairResult) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No tied-path cap (MaxPaths = 0)
//   - No per-pair hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxPaths: 0,
		OnResult: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths returns an Option that caps the tied-minimum paths stored
// per query. Must pass a positive value; zero or negative panics with
// ErrBadPathLimit (programmer error, caught at configuration time).
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadPathLimit.Error())
		}
		o.MaxPaths = k
	}
}

// WithOnResult returns an Option that installs fn as the per-pair hook of
// the All driver. Between ignores it.
func WithOnResult(fn func(PairResult) error) Option {
	return func(o *Options) {
		o.OnResult = fn
	}
}
