package core

import "github.com/fslivovsky/minisat/lit"

// Analyzer performs first-UIP conflict analysis and the two optional
// minimization passes, grounded on original_source/core/Solver.cc's
// Solver::analyze / Solver::litRedundant, adapted to also thread a
// partition range through when proof logging is active.
type Analyzer struct {
	A *Arena
	T *Trail
	H *Heap

	CcminMode int // 0, 1, or 2
	LogProof  bool

	analyzeStack []lit.Lit
	toClear      []lit.Var
}

// NewAnalyzer builds an analyzer over the given arena/trail/heap.
func NewAnalyzer(a *Arena, t *Trail, h *Heap) *Analyzer {
	return &Analyzer{A: a, T: t, H: h}
}

// Analyze walks the implication graph from the conflicting clause confl
// back to the first unique implication point at the current decision
// level, producing a learnt clause (asserting literal at index 0), a
// backtrack level, and — when proof logging is active — the join of every
// partition that contributed to the derivation.
func (an *Analyzer) Analyze(confl CRef) (learnt []lit.Lit, btLevel int, part lit.Range) {
	v := an.T.V
	a := an.A
	part = lit.UndefRange()

	pathC := 0
	p := lit.LitNull
	learnt = append(learnt, lit.LitNull) // placeholder for the asserting literal

	idx := len(an.T.D) - 1
	seenSet := make([]lit.Var, 0, 8)

	cr := confl
	for {
		if an.LogProof {
			part = part.Join(a.Part(cr))
		}
		size := a.Size(cr)
		start := 0
		if p != lit.LitNull {
			start = 1
		}
		for j := start; j < size; j++ {
			q := a.Lit(cr, j)
			u := q.Var()
			if v.Seen[u] {
				continue
			}
			if v.Level[u] == 0 {
				if an.LogProof {
					part = part.Join(v.TrailPart[u])
				}
				continue
			}
			v.Seen[u] = true
			seenSet = append(seenSet, u)
			v.VarBumpActivity(u, an.H)
			if v.Level[u] >= an.T.DecisionLevel() {
				pathC++
			} else {
				learnt = append(learnt, q)
			}
		}

		for !v.Seen[an.T.D[idx].Var()] {
			idx--
		}
		p = an.T.D[idx]
		pv := p.Var()
		idx--
		v.Seen[pv] = false
		pathC--
		if pathC <= 0 {
			break
		}
		cr = an.T.Reason(pv)
	}
	learnt[0] = p.Not()

	an.toClear = seenSet

	if an.CcminMode == 2 {
		an.minimizeMode2(&learnt, &part)
	} else if an.CcminMode == 1 {
		an.minimizeMode1(&learnt)
	}

	for _, u := range an.toClear {
		v.Seen[u] = false
	}
	an.toClear = an.toClear[:0]

	if len(learnt) == 1 {
		btLevel = 0
	} else {
		maxI := 1
		maxLevel := v.Level[learnt[1].Var()]
		for i := 2; i < len(learnt); i++ {
			l := v.Level[learnt[i].Var()]
			if l > maxLevel {
				maxLevel = l
				maxI = i
			}
		}
		learnt[1], learnt[maxI] = learnt[maxI], learnt[1]
		btLevel = maxLevel
	}
	return learnt, btLevel, part
}

// minimizeMode1 drops a literal iff every literal of its reason (other
// than itself) is either seen or assigned at level 0; disabled by the
// caller when proof logging is active.
func (an *Analyzer) minimizeMode1(learnt *[]lit.Lit) {
	v := an.T.V
	a := an.A
	out := (*learnt)[:1]
	for i := 1; i < len(*learnt); i++ {
		q := (*learnt)[i]
		reason := v.Reason[q.Var()]
		redundant := false
		if reason != CRefUndef {
			redundant = true
			n := a.Size(reason)
			for k := 1; k < n; k++ {
				u := a.Lit(reason, k).Var()
				if !v.Seen[u] && v.Level[u] != 0 {
					redundant = false
					break
				}
			}
		}
		if !redundant {
			out = append(out, q)
		}
	}
	*learnt = out
}

// minimizeMode2 is the recursive levels-abstraction minimizer: a literal
// is redundant iff a DFS over reasons, pruned by an abstract
// decision-level bitmask, touches only seen or level-0 literals.
func (an *Analyzer) minimizeMode2(learnt *[]lit.Lit, part *lit.Range) {
	v := an.T.V
	var abstractLevels uint32
	for i := 1; i < len(*learnt); i++ {
		abstractLevels |= uint32(1) << (uint32(v.Level[(*learnt)[i].Var()]) & 31)
	}

	out := (*learnt)[:1]
	for i := 1; i < len(*learnt); i++ {
		q := (*learnt)[i]
		reason := v.Reason[q.Var()]
		if reason == CRefUndef || !an.litRedundant(q, abstractLevels, part) {
			out = append(out, q)
		}
	}
	*learnt = out
}

// litRedundant performs the bounded DFS for minimizeMode2, accumulating
// any partition it crosses into part on success. On failure it clears the
// seen marks it added; on success those marks stay recorded in toClear,
// which Analyze clears afterwards.
func (an *Analyzer) litRedundant(p lit.Lit, abstractLevels uint32, part *lit.Range) bool {
	v := an.T.V
	a := an.A

	an.analyzeStack = an.analyzeStack[:0]
	an.analyzeStack = append(an.analyzeStack, p)
	top := len(an.toClear)
	lPart := lit.UndefRange()

	for len(an.analyzeStack) > 0 {
		cur := an.analyzeStack[len(an.analyzeStack)-1]
		an.analyzeStack = an.analyzeStack[:len(an.analyzeStack)-1]

		reason := v.Reason[cur.Var()]
		if reason == CRefUndef {
			an.undoToClear(top)
			return false
		}
		if an.LogProof {
			lPart = lPart.Join(a.Part(reason))
		}
		n := a.Size(reason)
		for k := 1; k < n; k++ {
			q := a.Lit(reason, k)
			u := q.Var()
			if v.Seen[u] || v.Level[u] == 0 {
				if v.Level[u] == 0 && an.LogProof {
					lPart = lPart.Join(v.TrailPart[u])
				}
				continue
			}
			qReason := v.Reason[u]
			if qReason == CRefUndef || uint32(1)<<(uint32(v.Level[u])&31)&abstractLevels == 0 {
				an.undoToClear(top)
				return false
			}
			v.Seen[u] = true
			an.analyzeStack = append(an.analyzeStack, q)
			an.toClear = append(an.toClear, u)
		}
	}
	*part = part.Join(lPart)
	return true
}

func (an *Analyzer) undoToClear(top int) {
	v := an.T.V
	for i := top; i < len(an.toClear); i++ {
		v.Seen[an.toClear[i]] = false
	}
	an.toClear = an.toClear[:top]
}

// AnalyzeFinal populates conflict with the subset of negated assumptions
// responsible for a UNSAT-under-assumptions result, walking the trail
// above trail_lim[0] exactly as original_source/core/Solver.cc's
// Solver::analyzeFinal: an un-reasoned (decision) literal is kept, a
// reasoned one has its reason's tail literals folded back in.
func (an *Analyzer) AnalyzeFinal(p lit.Lit) []lit.Lit {
	v := an.T.V
	a := an.A
	conflict := []lit.Lit{p}
	if an.T.DecisionLevel() == 0 {
		return conflict
	}
	v.Seen[p.Var()] = true

	lo := 0
	if len(an.T.TrailLim) > 0 {
		lo = an.T.TrailLim[0]
	}
	for i := len(an.T.D) - 1; i >= lo; i-- {
		x := an.T.D[i].Var()
		if !v.Seen[x] {
			continue
		}
		reason := v.Reason[x]
		if reason == CRefUndef {
			if v.Level[x] > 0 {
				conflict = append(conflict, an.T.D[i].Not())
			}
		} else {
			n := a.Size(reason)
			for k := 1; k < n; k++ {
				u := a.Lit(reason, k).Var()
				if v.Level[u] > 0 {
					v.Seen[u] = true
				}
			}
		}
		v.Seen[x] = false
	}
	return conflict
}
