// Package minisat is the public facade over the CDCL solver kernel in
// internal/core: a clause arena and two-watched-literal propagator,
// first-UIP conflict analysis with clause minimization, a resolution
// proof recorder, a DRUP-style validator, and a proof-replay walk that
// emits resolution chains to a pluggable visitor for interpolation /
// unsat-core analysis with partition tracking.
package minisat

import (
	"io"

	"github.com/fslivovsky/minisat/internal/core"
	"github.com/fslivovsky/minisat/lit"
	"github.com/fslivovsky/minisat/visitor"
)

// Result is the three-valued outcome of Solve.
type Result = core.Result

const (
	Undef Result = core.Undef
	SAT   Result = core.True
	UNSAT Result = core.False
)

// Options mirrors every pre-solve knob the underlying solver exposes.
type Options = core.Options

// DefaultOptions returns the default option set.
func DefaultOptions() Options { return core.DefaultOptions() }

// Solver is a single linear-resource CDCL solver instance. Not safe for
// concurrent use: no internal parallelism, no locking.
type Solver struct {
	s *core.Solver
}

// New constructs a solver with the given options, after validating them.
func New(opts Options) (*Solver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Solver{s: core.NewSolver(opts)}, nil
}

// NewVar allocates a fresh variable. sign is its initial/saved polarity
// for phase-saving; dvar records whether the search may branch on it.
func (s *Solver) NewVar(sign, dvar bool) lit.Var { return s.s.NewVar(sign, dvar) }

// SetDecisionVar flips a variable's branching eligibility.
func (s *Solver) SetDecisionVar(v lit.Var, dvar bool) { s.s.SetDecisionVar(v, dvar) }

// AddClause adds an original clause. part must be defined (non-undef)
// when the solver was constructed with Options.Valid set.
func (s *Solver) AddClause(literals []lit.Lit, part lit.Range) bool {
	return s.s.AddClause(literals, part)
}

// Solve runs the search loop under the given assumptions.
func (s *Solver) Solve(assumptions []lit.Lit) Result { return s.s.Solve(assumptions) }

// Conflict returns, after an UNSAT result produced under assumptions, the
// subset of negated assumptions responsible for it.
func (s *Solver) Conflict() []lit.Lit { return s.s.Conflict }

// PartInfo returns the accumulated partition-provenance range for v: the
// join of every singleton partition of every clause v has appeared in.
// Meaningful only when clauses were added with a defined, singleton part.
func (s *Solver) PartInfo(v lit.Var) lit.Range { return s.s.PartInfo(v) }

// Validate runs the DRUP-style proof validator. Requires a prior UNSAT
// result with Options.Valid set.
func (s *Solver) Validate() (bool, error) { return s.s.Validate() }

// Replay runs the proof-replay walk, delivering resolution steps to v.
// Requires a prior UNSAT result with Options.Valid set.
func (s *Solver) Replay(v visitor.Visitor) error { return s.s.Replay(v) }

// ToDimacs writes a best-effort CNF dump of the live, non-root-satisfied
// clauses plus assumptions as unit clauses.
func (s *Solver) ToDimacs(w io.Writer, assumptions []lit.Lit) error {
	return s.s.ToDimacs(w, assumptions)
}

// Clone deep-copies the solver for branching an incremental search.
func (s *Solver) Clone() *Solver { return &Solver{s: s.s.Clone()} }
