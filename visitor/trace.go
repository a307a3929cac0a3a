package visitor

import (
	"fmt"
	"io"

	"github.com/fslivovsky/minisat/lit"
)

// TraceVisitor renders every resolution step as a human-readable line to
// an io.Writer, the way OLM's LoggingTracer wraps an io.Writer rather than
// a logrus logger (trace output is a deliberately separate artifact from
// the solver's own operational log). Grounded on
// original_source/core/TraceProofVisitor.cc's text emitter; this repo
// targets only the chain-resolvent visitor flavor, so the four-marker
// scheme that file uses for its two visitor flavors collapses to two
// markers here: `vR` for a binary resolution step, `vH` for a chain step.
type TraceVisitor struct {
	w io.Writer
	r ClauseReader
}

// NewTraceVisitor returns a TraceVisitor writing to w.
func NewTraceVisitor(w io.Writer) *TraceVisitor { return &TraceVisitor{w: w} }

func (t *TraceVisitor) Bind(r ClauseReader) { t.r = r }

func (t *TraceVisitor) VisitResolvent(parent, pivot lit.Lit, antecedent lit.ClauseRef) {
	fmt.Fprintf(t.w, "vR %s %s c%d\n", parent, pivot, antecedent)
}

func (t *TraceVisitor) VisitChainResolvent(parent lit.Lit, chainClauses []lit.ClauseRef, chainPivots []lit.Lit) {
	label := "[]"
	if parent != lit.LitNull {
		label = parent.String()
	}
	fmt.Fprintf(t.w, "vH %s chain=%v pivots=%v\n", label, chainClauses, chainPivots)
}

var _ Visitor = (*TraceVisitor)(nil)
