package core

import (
	"sort"

	"github.com/fslivovsky/minisat/lit"
)

// Solve runs the search loop to completion under the given assumptions,
// restarting per the configured policy and growing the learnt-clause
// budget as it goes.
func (s *Solver) Solve(assumptions []lit.Lit) Result {
	s.Conflict = nil
	if !s.Ok {
		return False
	}
	s.Ctl.ClearInterrupt()

	nClauses := float64(len(s.Clauses))
	s.MaxLearnts = nClauses * s.Opts.LearntsizeFactor
	s.LearntsizeAdjustConfl = 100
	s.LearntsizeAdjustCnt = int(s.LearntsizeAdjustConfl)

	k := 0
	for {
		base := RestartBase(restartPolicy(s.Opts), s.Opts.Rfirst, s.Opts.Rinc, k)
		nofConflicts := int(base)
		r := s.search(nofConflicts, assumptions)
		if r != Undef {
			return r
		}
		if !s.Ctl.WithinBudget(s.St) {
			return Undef
		}
		k++
		s.St.Restarts++
	}
}

func restartPolicy(o Options) RestartPolicy {
	if o.Luby {
		return RestartLuby
	}
	return RestartGeometric
}

// search runs until nofConflicts conflicts have fired (a negative bound
// means no per-restart limit, only the outer Ctl budget applies), or a
// top-level result is reached.
func (s *Solver) search(nofConflicts int, assumptions []lit.Lit) Result {
	conflictC := 0
	for {
		before := s.Prop.Props
		confl := s.Prop.Propagate(false)
		s.St.Propagations += s.Prop.Props - before

		if confl != CRefUndef {
			s.St.Conflicts++
			conflictC++
			if s.Tr.DecisionLevel() == 0 {
				if s.Pf != nil {
					s.Pf.Push(confl)
				}
				s.Ok = false
				return False
			}

			learnt, btLevel, part := s.An.Analyze(confl)
			s.Tr.CancelUntil(btLevel, s.H)

			if len(learnt) == 1 {
				if s.Pf != nil {
					cr := s.A.Alloc(learnt, true)
					s.A.SetPart(cr, part)
					s.Pf.Push(cr)
					s.Tr.Enqueue(learnt[0], cr)
				} else {
					s.Tr.Enqueue(learnt[0], CRefUndef)
				}
			} else {
				cr := s.A.Alloc(learnt, true)
				s.A.SetPart(cr, part)
				s.Learnts = append(s.Learnts, cr)
				if s.Pf != nil {
					s.Pf.Push(cr)
				}
				s.attachClause(cr)
				s.claBumpActivity(cr)
				s.Tr.Enqueue(learnt[0], cr)
			}

			s.Vs.VarDecayActivity()
			s.claDecayActivity()

			s.LearntsizeAdjustCnt--
			if s.LearntsizeAdjustCnt == 0 {
				s.LearntsizeAdjustConfl *= 1.5
				s.LearntsizeAdjustCnt = int(s.LearntsizeAdjustConfl)
				s.MaxLearnts *= s.Opts.LearntsizeInc
			}
			continue
		}

		// no conflict
		if (nofConflicts >= 0 && conflictC >= nofConflicts) || !s.Ctl.WithinBudget(s.St) {
			s.Tr.CancelUntil(0, s.H)
			return Undef
		}

		if s.Tr.DecisionLevel() == 0 {
			if !s.simplify() {
				return False
			}
		}

		if float64(len(s.Learnts)-len(s.Tr.D)) >= s.MaxLearnts {
			s.reduceDB()
		}

		var next lit.Lit
		for i := s.Tr.DecisionLevel(); i < len(assumptions); i++ {
			p := assumptions[i]
			if s.value(p) == LTrue {
				s.Tr.NewDecisionLevel()
			} else if s.value(p) == LFalse {
				s.Conflict = s.An.AnalyzeFinal(p.Not())
				return False
			} else {
				next = p
				break
			}
		}

		if next == lit.LitNull {
			if s.Opts.RndFreq > 0 && s.rng.Float64() < s.Opts.RndFreq && !s.H.Empty() {
				u := s.pickRandomUnassigned()
				if u != lit.VarNull {
					next = lit.MkLit(u, !s.Vs.Polarity[u])
				}
			}
		}
		if next == lit.LitNull {
			for !s.H.Empty() {
				u := s.H.RemoveMax()
				if s.Vs.Decision[u] && s.value(u.Pos()) == LUndef {
					next = lit.MkLit(u, s.polarityFor(u))
					break
				}
			}
		}
		if next == lit.LitNull {
			return True
		}

		s.St.Decisions++
		s.Tr.NewDecisionLevel()
		s.Tr.Enqueue(next, CRefUndef)
	}
}

func (s *Solver) polarityFor(u lit.Var) bool {
	switch s.Opts.PhaseSaving {
	case 0:
		return false
	default:
		return s.Vs.Polarity[u]
	}
}

func (s *Solver) pickRandomUnassigned() lit.Var {
	n := int(s.Vs.Max)
	if n == 0 {
		return lit.VarNull
	}
	start := lit.Var(s.rng.Intn(n) + 1)
	for i := 0; i < n; i++ {
		u := lit.Var((int(start)-1+i)%n + 1)
		if s.Vs.Decision[u] && s.value(u.Pos()) == LUndef {
			return u
		}
	}
	return lit.VarNull
}

func (s *Solver) claBumpActivity(cr CRef) {
	a := float64(s.A.Activity(cr)) + s.ClaInc
	s.A.SetActivity(cr, float32(a))
	if a > 1e20 {
		for _, l := range s.Learnts {
			s.A.SetActivity(l, s.A.Activity(l)*1e-20)
		}
		s.ClaInc *= 1e-20
	}
}

func (s *Solver) claDecayActivity() {
	s.ClaInc *= 1 / s.Opts.ClaDecay
}

// reduceDB sorts learnts by (size>2, activity ascending) and drops the
// lower half plus any unlocked, non-binary clause whose activity is
// below cla_inc/len(learnts).
func (s *Solver) reduceDB() {
	sort.Slice(s.Learnts, func(i, j int) bool {
		ci, cj := s.Learnts[i], s.Learnts[j]
		si, sj := s.A.Size(ci), s.A.Size(cj)
		gi, gj := si > 2, sj > 2
		if gi != gj {
			return gi
		}
		return s.A.Activity(ci) < s.A.Activity(cj)
	})

	n := len(s.Learnts)
	threshold := s.ClaInc / float64(n)
	out := s.Learnts[:0]
	for i, cr := range s.Learnts {
		size := s.A.Size(cr)
		if i < n/2 && size > 2 && !s.locked(cr) {
			s.removeClause(cr)
			continue
		}
		if size > 2 && !s.locked(cr) && float64(s.A.Activity(cr)) < threshold {
			s.removeClause(cr)
			continue
		}
		out = append(out, cr)
	}
	s.Learnts = out
}

// simplify runs only at level 0: propagate, then (if assignments grew
// since the last call) drop clauses satisfied at level 0 from learnts and
// clauses, and rebuild the order heap.
func (s *Solver) simplify() bool {
	if s.Tr.DecisionLevel() != 0 {
		return true
	}
	confl := s.Prop.Propagate(false)
	if confl != CRefUndef {
		if s.Pf != nil {
			s.Pf.Push(confl)
		}
		s.Ok = false
		return false
	}
	if len(s.Tr.D) == s.simpDBAssigns {
		return true
	}

	s.Learnts = s.removeSatisfied(s.Learnts)
	s.Clauses = s.removeSatisfied(s.Clauses)

	s.simpDBAssigns = len(s.Tr.D)
	s.rebuildHeap()
	return true
}

func (s *Solver) removeSatisfied(list []CRef) []CRef {
	out := list[:0]
	for _, cr := range list {
		satisfied := false
		n := s.A.Size(cr)
		for i := 0; i < n; i++ {
			if s.value(s.A.Lit(cr, i)) == LTrue {
				satisfied = true
				break
			}
		}
		if satisfied {
			s.removeClause(cr)
			continue
		}
		out = append(out, cr)
	}
	return out
}

func (s *Solver) rebuildHeap() {
	s.H.Clear()
	for u := lit.Var(1); u <= s.Vs.Max; u++ {
		if s.Vs.Decision[u] && s.value(u.Pos()) == LUndef {
			s.H.Insert(u)
		}
	}
}
