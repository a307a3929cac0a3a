// Package visitor defines the abstract sink the replayer delivers
// resolution steps to, plus two reference implementations. Grounded on
// operator-framework/operator-lifecycle-manager's
// pkg/controller/registry/resolver/solve/tracer.go, which defines the same
// shape for its own solve trace: a minimal capability-set interface, a
// no-op default, and an io.Writer-backed logging implementation.
package visitor

import "github.com/fslivovsky/minisat/lit"

// ClauseReader grants read-only access to clause contents by id, a
// companion capability a visitor rendering a human-readable trace needs
// alongside the Visitor interface itself: it must be able to look up a
// clause's literals and partition range, not just the ids it is handed.
type ClauseReader interface {
	ClauseLits(cr lit.ClauseRef) []lit.Lit
	ClausePart(cr lit.ClauseRef) lit.Range
}

// Visitor is the capability set the replayer (internal/core's replay
// pass) delivers resolution steps to. This repo commits to the
// chain-resolvent shape as the one replay emits; VisitResolvent exists
// for the binary special case (a two-literal reason) rather than as a
// second, independently exercised protocol shape.
type Visitor interface {
	// Bind is called once, before any Visit call, with a reader the
	// visitor may retain to resolve clause ids into literals.
	Bind(r ClauseReader)

	// VisitResolvent records a single binary resolution step: resolving
	// the unit clause {pivot} against antecedent on pivot produces the
	// unit clause {parent}.
	VisitResolvent(parent, pivot lit.Lit, antecedent lit.ClauseRef)

	// VisitChainResolvent records a chain derivation of parent. parent ==
	// lit.LitNull when the result is not a single literal: the empty clause
	// in the final labeling, or a re-derived core lemma during replay. The
	// chain is formed by resolving
	// chainClauses[0] with chainClauses[1] on chainPivots[0], then with
	// chainClauses[2] on chainPivots[1], and so on; when
	// len(chainClauses) == len(chainPivots) the final step resolves
	// against the unit clause {chainPivots[last]}.
	VisitChainResolvent(parent lit.Lit, chainClauses []lit.ClauseRef, chainPivots []lit.Lit)
}

// NopVisitor discards every event. Grounded on tracer.go's DefaultTracer.
type NopVisitor struct{}

func (NopVisitor) Bind(ClauseReader)                                       {}
func (NopVisitor) VisitResolvent(lit.Lit, lit.Lit, lit.ClauseRef)          {}
func (NopVisitor) VisitChainResolvent(lit.Lit, []lit.ClauseRef, []lit.Lit) {}

var _ Visitor = NopVisitor{}
