package core

import (
	"github.com/fslivovsky/minisat/lit"
	"github.com/fslivovsky/minisat/visitor"
)

// ClauseLits implements visitor.ClauseReader.
func (s *Solver) ClauseLits(cr lit.ClauseRef) []lit.Lit {
	return s.A.Lits(CRef(cr), nil)
}

// ClausePart implements visitor.ClauseReader.
func (s *Solver) ClausePart(cr lit.ClauseRef) lit.Range {
	return s.A.Part(CRef(cr))
}

var _ visitor.ClauseReader = (*Solver)(nil)

// replayState tracks the last level-0 trail index labelLevel0 has
// already emitted, so repeated calls only describe newly forced literals.
type replayState struct {
	labeled int
}

// labelLevel0 walks the level-0 trail forward from the last-emitted
// index, emitting one resolution event per forced (non-decision) literal
// with a non-unit reason. Decisions and unit
// reasons need no event: a decision introduces no antecedent, and a unit
// reason's single-literal clause is already the fact being asserted.
func (s *Solver) labelLevel0(v visitor.Visitor, rs *replayState) {
	a := s.A
	for ; rs.labeled < len(s.Tr.D); rs.labeled++ {
		if s.Tr.Level(s.Tr.D[rs.labeled].Var()) != 0 {
			break
		}
		m := s.Tr.D[rs.labeled]
		reason := s.Tr.Reason(m.Var())
		if reason == CRefUndef {
			continue
		}
		n := a.Size(reason)
		if n == 1 {
			continue
		}
		if n == 2 {
			v.VisitResolvent(m, a.Lit(reason, 1).Not(), lit.ClauseRef(reason))
			continue
		}
		pivots := make([]lit.Lit, n-1)
		for i := 1; i < n; i++ {
			pivots[i-1] = a.Lit(reason, i).Not()
		}
		v.VisitChainResolvent(m, []lit.ClauseRef{lit.ClauseRef(reason)}, pivots)
	}
}

// labelFinal emits the chain resolving confl with the unit clauses for
// each of its (now all false) literals, yielding the empty clause.
func (s *Solver) labelFinal(v visitor.Visitor, confl CRef) {
	a := s.A
	n := a.Size(confl)
	pivots := make([]lit.Lit, n)
	for i := 0; i < n; i++ {
		pivots[i] = a.Lit(confl, i).Not()
	}
	v.VisitChainResolvent(lit.LitNull, []lit.ClauseRef{lit.ClauseRef(confl)}, pivots)
}

// traverseProof mimics first-UIP analysis starting from confl but emits a
// chain instead of a learnt clause: it walks the trail top-down, folding
// in the reason of every seen literal above level 1 (level 1 holds the
// lemma's own negated-literal assumptions and is left untouched), and
// records the resulting antecedent/pivot sequence. Returns false (no
// event emitted) if no pivots were produced; this is left as a silent
// skip rather than an error, since it is unclear whether an empty
// derivation here is an intentional short-circuit or a missed one, and
// failing loudly would abort replay over a single stray lemma.
func (s *Solver) traverseProof(v visitor.Visitor, lemma CRef, confl CRef) bool {
	a := s.A
	vs := s.Vs

	var touched []lit.Var
	mark := func(u lit.Var) {
		if !vs.Seen[u] {
			vs.Seen[u] = true
			touched = append(touched, u)
		}
	}
	unmark := func(u lit.Var) { vs.Seen[u] = false }
	defer func() {
		for _, u := range touched {
			vs.Seen[u] = false
		}
	}()

	chainClauses := []lit.ClauseRef{lit.ClauseRef(confl)}
	var chainPivots []lit.Lit

	sz := a.Size(confl)
	for i := 0; i < sz; i++ {
		mark(a.Lit(confl, i).Var())
	}

	for i := len(s.Tr.D) - 1; i >= 0; i-- {
		m := s.Tr.D[i]
		u := m.Var()
		lvl := s.Tr.Level(u)
		if lvl == 1 {
			continue
		}
		if !vs.Seen[u] {
			continue
		}
		unmark(u)
		if lvl <= 0 {
			continue
		}
		reason := s.Tr.Reason(u)
		chainPivots = append(chainPivots, m)
		if reason != CRefUndef {
			chainClauses = append(chainClauses, lit.ClauseRef(reason))
			n := a.Size(reason)
			for k := 1; k < n; k++ {
				mark(a.Lit(reason, k).Var())
			}
		}
	}

	if len(chainPivots) == 0 {
		return false
	}
	// parent is LitNull here: this chain re-derives the lemma clause
	// itself (all of its literals were assumed false going in), not a
	// single asserting literal — the same sentinel labelFinal uses for
	// the empty-clause case, disambiguated by the caller's context since
	// traverseProof only ever fires mid-replay and labelFinal only once
	// at the very end.
	v.VisitChainResolvent(lit.LitNull, chainClauses, chainPivots)
	return true
}

// Replay runs the forward validation pass: for each core
// lemma in proof order, it re-derives the lemma by assuming its negation
// and propagating to a conflict, walks the resulting implication graph
// via traverseProof, and resurrects or attaches the lemma once its
// derivation has been emitted. Assumes Validate has already populated
// the core bits this walk consults; with no prior Validate call every
// clause's core bit is false and Replay degenerates to emitting only the
// level-0 labeling events, plus the final one when the proof holds a
// single entry.
func (s *Solver) Replay(v visitor.Visitor) error {
	if s.Pf == nil || s.Pf.Len() == 0 {
		s.Log.Error("core: replay called without a recorded proof")
		return ErrReplayDivergence
	}
	if confl := s.Prop.Propagate(false); confl != CRefUndef {
		return ErrInconsistent
	}

	v.Bind(s)
	rs := &replayState{}
	s.labelLevel0(v, rs)

	n := s.Pf.Len()
	if n == 1 {
		s.labelFinal(v, s.Pf.At(0))
		return nil
	}

	for i := 0; i < n; i++ {
		cr := s.Pf.At(i)
		a := s.A

		if a.Mark(cr) == MarkLive && !a.Core(cr) && !s.locked(cr) {
			if a.Size(cr) > 1 {
				s.detachClause(cr, true)
			}
			a.SetMark(cr, MarkDeleted)
			continue
		}
		if !a.Core(cr) || a.Mark(cr) == MarkDeleted {
			continue
		}

		s.Tr.NewDecisionLevel()
		sz := a.Size(cr)
		for j := 0; j < sz; j++ {
			s.Tr.Enqueue(a.Lit(cr, j).Not(), CRefUndef)
		}
		s.Tr.NewDecisionLevel()
		confl := s.Prop.Propagate(true)
		if confl == CRefUndef {
			s.Tr.CancelUntil(0, s.H)
			return ErrReplayDivergence
		}

		if !s.traverseProof(v, cr, confl) {
			s.Tr.CancelUntil(0, s.H)
			continue
		}

		s.Tr.CancelUntil(0, s.H)
		a.SetMark(cr, MarkLive)
		if sz == 1 {
			s.Tr.Enqueue(a.Lit(cr, 0), cr)
			lvl0Confl := s.Prop.Propagate(false)
			s.labelLevel0(v, rs)
			if lvl0Confl != CRefUndef {
				s.labelFinal(v, lvl0Confl)
				return nil
			}
		} else {
			s.attachClause(cr)
		}
	}
	return nil
}
