package flow

import (
	"context"
	"errors"
)

// ErrSameSourceSink is returned by MaxFlow when s == t. Callers never
// invoke the min-cut driver this way in practice (spec.md §7).
var ErrSameSourceSink = errors.New("flow: source and sink are the same vertex")

// Edge is one directed arc of the adjacency list. Every AddEdge call
// appends a forward Edge to edges[u] and a paired reverse Edge (cap 0) to
// edges[v]; Rev always indexes the partner's position in the other
// vertex's slice, so edges[e.To][e.Rev] recovers it.
type Edge struct {
	To   int
	Rev  int
	Cap  int
	Flow int
}

// Residual reports the edge's remaining forward capacity.
func (e Edge) Residual() int {
	return e.Cap - e.Flow
}

// DinicOptions configures MaxFlow. Ctx is honored for symmetry with the
// rest of this module's packages; the core itself has no cancellation
// points of its own (spec.md §5), so a canceled Ctx only stops MaxFlow
// between BFS phases.
type DinicOptions struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns DinicOptions with a background context and
// logging disabled.
func DefaultOptions() DinicOptions {
	return DinicOptions{Ctx: context.Background()}
}

func (o *DinicOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
