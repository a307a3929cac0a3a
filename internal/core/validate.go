package core

import "github.com/fslivovsky/minisat/lit"

// Validate runs the DRUP-style reverse pass: it shrinks the trail,
// resurrects deleted clauses in reverse proof order,
// marks the transitive unsatisfiable core, and re-derives every core
// lemma by unit propagation. Precondition: s.Ok == false, proof logging
// was on, and the proof is non-empty. Grounded on
// original_source/core/Solver.cc's Solver::validate.
func (s *Solver) Validate() (bool, error) {
	if s.Ok {
		return false, ErrInconsistent
	}
	if s.Pf == nil || s.Pf.Len() == 0 {
		s.Log.Error("core: validate called without a recorded proof")
		return false, ErrValidationFailed
	}

	n := s.Pf.Len()
	last := s.Pf.At(n - 1)
	s.A.SetCore(last, true)
	sz := s.A.Size(last)
	for i := 0; i < sz; i++ {
		if s.value(s.A.Lit(last, i)) != LFalse {
			s.Log.Error("core: final proof clause has a non-false literal")
			return false, ErrValidationFailed
		}
		u := s.A.Lit(last, i).Var()
		if r := s.Tr.Reason(u); r != CRefUndef {
			s.A.SetCore(r, true)
		}
	}

	trailSz := len(s.Tr.D)
	s.Ok = true

	for i := n - 2; i >= 0; i-- {
		cr := s.Pf.At(i)
		c0 := s.A.Lit(cr, 0)

		if s.A.Mark(cr) == MarkDeleted {
			s.A.SetMark(cr, MarkLive)
			if s.A.Size(cr) > 1 {
				s.attachClause(cr)
			} else {
				s.Tr.Enqueue(c0, cr)
			}
			continue
		}

		wasCore := s.A.Core(cr)
		size := s.A.Size(cr)

		if s.locked(cr) {
			for len(s.Tr.D) > trailSz {
				top := s.Tr.D[len(s.Tr.D)-1]
				if top.Var() == c0.Var() {
					break
				}
				reason := s.Tr.Reason(top.Var())
				s.Tr.PopOne()
				if reason != CRefUndef && s.A.Core(reason) {
					s.markReasonTailCore(reason)
				}
			}
			if len(s.Tr.D) > 0 && s.Tr.D[len(s.Tr.D)-1].Var() == c0.Var() {
				s.Tr.PopOne()
			}
		}

		if size > 1 {
			s.detachClause(cr, true)
		}
		s.A.SetMark(cr, MarkDeleted)

		if wasCore && size > 1 {
			for len(s.Tr.D) > trailSz {
				s.Tr.PopOne()
			}
			s.Tr.QHead = len(s.Tr.D)
			s.Tr.TrailLim = s.Tr.TrailLim[:0]

			if !s.validateLemma(cr) {
				s.Log.Error("core: lemma failed unit-propagation validation")
				return false, ErrValidationFailed
			}
		}
	}

	s.markLevel0CoreClosure()
	return true, nil
}

// markReasonTailCore marks core every reason clause backing reason's tail
// literals (the literals other than reason's own first/implied literal).
func (s *Solver) markReasonTailCore(reason CRef) {
	n := s.A.Size(reason)
	for k := 1; k < n; k++ {
		u := s.A.Lit(reason, k).Var()
		if r := s.Tr.Reason(u); r != CRefUndef {
			s.A.SetCore(r, true)
		}
	}
}

// validateLemma re-derives cr's clause by unit propagation from its own
// negated literals, at a pair of scratch decision levels opened above the
// caller's (already-level-0) trail, and marks every clause crossed by the
// resulting conflict as core. Grounded on
// original_source/core/Solver.cc's Solver::validateLemma.
func (s *Solver) validateLemma(cr CRef) bool {
	v := s.Vs
	a := s.A

	s.Tr.NewDecisionLevel()
	sz := a.Size(cr)
	for i := 0; i < sz; i++ {
		s.Tr.Enqueue(a.Lit(cr, i).Not(), CRefUndef)
	}
	s.Tr.NewDecisionLevel()
	confl := s.Prop.Propagate(false)
	if confl == CRefUndef {
		s.Tr.CancelUntil(0, s.H)
		return false
	}
	a.SetCore(confl, true)

	var touched []lit.Var
	seen := func(u lit.Var) {
		if !v.Seen[u] {
			v.Seen[u] = true
			touched = append(touched, u)
		}
	}
	applyDual := func(m lit.Lit) {
		u := m.Var()
		if s.Tr.Level(u) > 1 {
			seen(u)
		} else if s.Tr.Level(u) <= 0 {
			if r := s.Tr.Reason(u); r != CRefUndef {
				a.SetCore(r, true)
			}
		}
	}

	csz := a.Size(confl)
	for i := 0; i < csz; i++ {
		applyDual(a.Lit(confl, i))
	}

	lo := s.Tr.TrailLim[1]
	for i := len(s.Tr.D) - 1; i >= lo; i-- {
		u := s.Tr.D[i].Var()
		if !v.Seen[u] {
			continue
		}
		if r := s.Tr.Reason(u); r != CRefUndef {
			a.SetCore(r, true)
			n := a.Size(r)
			for k := 1; k < n; k++ {
				applyDual(a.Lit(r, k))
			}
		}
	}

	for _, u := range touched {
		v.Seen[u] = false
	}

	s.Tr.CancelUntil(0, s.H)
	return true
}

// markLevel0CoreClosure marks core every clause reachable as the reason
// of a core literal currently on the level-0 trail.
func (s *Solver) markLevel0CoreClosure() {
	for i := len(s.Tr.D) - 1; i >= 0; i-- {
		u := s.Tr.D[i].Var()
		r := s.Tr.Reason(u)
		if r != CRefUndef && s.A.Core(r) {
			s.markReasonTailCore(r)
		}
	}
}
