package core

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/fslivovsky/minisat/lit"
)

// Result is the three-valued outcome solve_ can return.
type Result int

const (
	Undef Result = 0
	True  Result = 1
	False Result = -1
)

// Solver is the CDCL kernel wiring every leaf component together: arena,
// watches, trail, heap, propagator, analyzer, and proof log. It is the
// internal engine behind the public facade package; callers outside this
// module never see a Solver value directly — mirrors gini's internal/xo
// boundary under its public gini package.
type Solver struct {
	Opts Options
	Log  logrus.FieldLogger

	A  *Arena
	W  *Watches
	Vs *Vars
	Tr *Trail
	H  *Heap

	Prop *Propagator
	An   *Analyzer
	Ctl  *Ctl
	St   *Stats
	Pf   *Proof

	Clauses []CRef
	Learnts []CRef

	Ok bool

	ClaInc   float64
	ClaDecay float64

	MaxLearnts            float64
	LearntsizeAdjustConfl float64
	LearntsizeAdjustCnt   int

	simpDBAssigns int
	simpDBProps   int64

	Conflict []lit.Lit

	rng *rand.Rand

	restarts int
}

// NewSolver builds a solver with the given options, defaulting the logger
// to logrus.StandardLogger() the way OLM holds a FieldLogger on its own
// controller structs.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		Opts:     opts,
		Log:      logrus.StandardLogger(),
		A:        NewArena(1024),
		Ok:       true,
		ClaInc:   1,
		ClaDecay: opts.ClaDecay,
		rng:      rand.New(rand.NewSource(int64(opts.RndSeed))),
	}
	s.Vs = NewVars(0)
	s.Vs.VarDecay = opts.VarDecay
	s.W = NewWatches(0)
	s.Tr = NewTrail(s.Vs, s.W, s.A)
	s.Tr.LogProof = opts.Valid
	s.H = NewHeap(s.Vs, 0)
	s.Prop = NewPropagator(s.A, s.W, s.Tr)
	s.An = NewAnalyzer(s.A, s.Tr, s.H)
	s.An.CcminMode = opts.CcminMode
	if opts.Valid && opts.CcminMode == 1 {
		s.An.CcminMode = 0 // mode 1 is disabled while proof logging
	}
	s.An.LogProof = opts.Valid
	s.Ctl = NewCtl()
	s.St = &Stats{}
	if opts.Valid {
		s.Pf = NewProof()
	}
	return s
}

// NewVar allocates a fresh variable, wiring it into every component that
// tracks per-variable state.
func (s *Solver) NewVar(sign, dvar bool) lit.Var {
	u := s.Vs.NewVar(sign, dvar, s.Opts.RndInit, s.rng.Float64)
	s.W.Init(u)
	s.H.Init(u)
	if dvar {
		s.H.Insert(u)
	}
	return u
}

// SetDecisionVar flips a variable's branching eligibility: a variable
// disabled here is never chosen by the branching heuristic, though it can
// still be forced by unit propagation.
func (s *Solver) SetDecisionVar(u lit.Var, dvar bool) {
	if dvar == s.Vs.Decision[u] {
		return
	}
	s.Vs.Decision[u] = dvar
	if dvar {
		s.H.Insert(u)
	}
}

func (s *Solver) value(m lit.Lit) LBool { return s.Vs.LitValue(m) }

// AddClause adds an original (non-learnt) clause. lits is deduplicated and
// tautologies are dropped. part carries the clause's partition provenance
// and must be defined when proof logging is active. Grounded on
// original_source/core/Solver.cc's Solver::addClause_, which branches on
// log_proof: without logging, false literals are dropped outright and an
// all-but-one-false clause enqueues its remaining literal with no CRef
// reason; with logging, false literals are kept (moved to the clause's
// tail) so the clause can be allocated and pushed to the proof log — as
// the conflict clause itself when its first literal is false, or as the
// CRef reason of the forced unit enqueue otherwise.
func (s *Solver) AddClause(lits []lit.Lit, part lit.Range) bool {
	if !s.Ok {
		return false
	}
	ls := append([]lit.Lit(nil), lits...)
	sortLits(ls)

	if s.Pf == nil {
		out := ls[:0]
		var prev lit.Lit
		for i, m := range ls {
			if i > 0 && m == prev.Not() {
				return true // tautological, dropped
			}
			if i > 0 && m == prev {
				continue // duplicate literal
			}
			if s.value(m) == LTrue {
				return true // satisfied at level 0, dropped
			}
			if s.value(m) == LFalse {
				prev = m
				continue // falsified at level 0, dropped from the clause
			}
			out = append(out, m)
			prev = m
		}
		ls = out

		if len(ls) == 0 {
			s.Ok = false
			return false
		}
		if len(ls) == 1 {
			if !s.Tr.Enqueue(ls[0], CRefUndef) {
				s.Ok = false
				return false
			}
			s.joinPartInfo(ls, part)
			confl := s.Prop.Propagate(false)
			s.Ok = confl == CRefUndef
			return s.Ok
		}

		cr := s.A.Alloc(ls, false)
		s.A.SetPart(cr, part)
		s.Clauses = append(s.Clauses, cr)
		s.attachClause(cr)
		s.joinPartInfo(ls, part)
		return true
	}

	// Proof logging is active: duplicate literals are still dropped and a
	// tautology still drops the clause, but false literals are kept and moved to the tail instead of
	// being dropped, since the clause (conflict or unit reason) must stay
	// addressable for the proof.
	out := ls[:0]
	var prev lit.Lit
	for i, m := range ls {
		if s.value(m) == LTrue {
			return true
		}
		if i > 0 && m == prev.Not() {
			return true
		}
		if i > 0 && m == prev {
			continue
		}
		out = append(out, m)
		prev = m
	}
	ls = out

	sz := len(ls)
	for i := 0; i < sz; i++ {
		if s.value(ls[i]) == LFalse {
			ls[i], ls[sz-1] = ls[sz-1], ls[i]
			sz--
			i--
		}
	}

	if len(ls) == 0 {
		s.Ok = false
		return false
	}

	if s.value(ls[0]) == LFalse {
		cr := s.A.Alloc(ls, false)
		s.A.SetPart(cr, part)
		s.Pf.Push(cr)
		s.joinPartInfo(ls, part)
		s.Ok = false
		return false
	}

	if len(ls) == 1 || s.value(ls[1]) == LFalse {
		cr := s.A.Alloc(ls, false)
		s.A.SetPart(cr, part)
		s.Clauses = append(s.Clauses, cr)
		if !s.Tr.Enqueue(ls[0], cr) {
			s.Ok = false
			return false
		}
		s.joinPartInfo(ls, part)
		confl := s.Prop.Propagate(false)
		if confl != CRefUndef {
			s.Pf.Push(confl)
		}
		s.Ok = confl == CRefUndef
		return s.Ok
	}

	cr := s.A.Alloc(ls, false)
	s.A.SetPart(cr, part)
	s.Clauses = append(s.Clauses, cr)
	s.attachClause(cr)
	s.joinPartInfo(ls, part)
	return true
}

// joinPartInfo joins part into every literal's variable-level partition
// map when part carries a single partition id, the "variable is shared
// across partitions" bookkeeping original_source/core/Solver.cc performs
// at every addClause_ exit that keeps the clause. A no-op for an undef or
// multi-partition range.
func (s *Solver) joinPartInfo(ls []lit.Lit, part lit.Range) {
	if !part.IsSingleton() {
		return
	}
	for _, m := range ls {
		u := m.Var()
		s.Vs.PartInfo[u] = s.Vs.PartInfo[u].Join(part)
	}
}

// PartInfo returns the accumulated partition-provenance range for u: the
// join of every singleton partition of every clause u has appeared in.
// Exposed for external interpolation/unsat-core consumers that need to
// know which partitions a variable is shared between.
func (s *Solver) PartInfo(u lit.Var) lit.Range { return s.Vs.PartInfo[u] }

func sortLits(ls []lit.Lit) {
	for i := 1; i < len(ls); i++ {
		for j := i; j > 0 && ls[j-1] > ls[j]; j-- {
			ls[j-1], ls[j] = ls[j], ls[j-1]
		}
	}
}

// attachClause installs the watchers for a size >= 2 clause's first two
// literals: a live clause of size >= 2 always has its first two literals
// watched.
func (s *Solver) attachClause(cr CRef) {
	n := s.A.Size(cr)
	l0, l1 := s.A.Lit(cr, 0), s.A.Lit(cr, 1)
	s.W.Append(l0.Not(), Watcher{CR: cr, Blocker: l1})
	s.W.Append(l1.Not(), Watcher{CR: cr, Blocker: l0})
	if s.A.Learnt(cr) {
		s.St.LearntLits += int64(n)
	}
}

// detachClause smudges both watch lists for cr. strict forces an eager
// scan-and-remove instead of the lazy smudge path (used only when the
// caller needs the watcher gone before the next propagate, e.g. the
// validator resurrecting/deleting clauses mid-walk).
func (s *Solver) detachClause(cr CRef, strict bool) {
	l0, l1 := s.A.Lit(cr, 0), s.A.Lit(cr, 1)
	if strict {
		s.W.Remove(l0.Not(), cr)
		s.W.Remove(l1.Not(), cr)
	} else {
		s.W.Smudge(l0.Not())
		s.W.Smudge(l1.Not())
	}
}

// removeClause detaches (if non-unit), pushes the deletion record to the
// proof if logging, and frees the clause. Each removed clause is pushed
// to the proof at the moment of removal, not deferred.
func (s *Solver) removeClause(cr CRef) {
	if s.A.Size(cr) > 1 {
		s.detachClause(cr, false)
	}
	if s.Pf != nil {
		s.Pf.Push(cr)
	}
	s.A.Free(cr)
}

// locked reports whether cr is the reason for its own first literal's
// current assignment, and so must not be deleted.
func (s *Solver) locked(cr CRef) bool {
	l0 := s.A.Lit(cr, 0)
	return s.value(l0) == LTrue && s.Tr.Reason(l0.Var()) == cr
}

// MaybeCompact runs compaction when the arena's wasted fraction exceeds
// gc-frac, rewriting every reference site: both watch lists, every reason
// on the trail, clauses, and learnts. A no-op while proof logging is
// active, since the proof's already-deleted clauses must stay addressable
// for the validator and compaction would otherwise discard them.
func (s *Solver) MaybeCompact() {
	if s.Pf != nil {
		return
	}
	if !s.A.GCReady(s.Opts.GcFrac) {
		return
	}
	s.compact()
}

func (s *Solver) compact() {
	to := NewArena(len(s.A.D))
	s.W.Reloc(s.A, to)

	for u := lit.Var(1); u <= s.Vs.Max; u++ {
		if s.Vs.Reason[u] != CRefUndef {
			s.A.Reloc(&s.Vs.Reason[u], to)
		}
	}
	relocList := func(list []CRef) []CRef {
		out := list[:0]
		for _, cr := range list {
			if s.A.Mark(cr) == MarkDeleted {
				continue
			}
			s.A.Reloc(&cr, to)
			out = append(out, cr)
		}
		return out
	}
	s.Clauses = relocList(s.Clauses)
	s.Learnts = relocList(s.Learnts)

	s.A = to
	s.Tr.A = to
	s.Prop.A = to
	s.An.A = to
	s.St.Compactions++
	s.Log.Debug("core: compacted arena")
}
