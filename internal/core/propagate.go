package core

import "github.com/fslivovsky/minisat/lit"

// Propagator drives two-watched-literal BCP over an Arena/Watches/Trail
// triple. Grounded on gini's internal/xo/s.go propagation loop and on
// original_source/core/Solver.cc's Solver::propagate, adapted for the
// explicit core_only mode the replayer's forward pass requires.
type Propagator struct {
	A *Arena
	W *Watches
	T *Trail

	Props int64 // literals dequeued from the trail, lifetime counter
}

// NewPropagator builds a propagator over the given arena, watches, and trail.
func NewPropagator(a *Arena, w *Watches, t *Trail) *Propagator {
	return &Propagator{A: a, W: w, T: t}
}

// Propagate drains the trail via qhead, attaching newly forced literals as
// it goes. When coreOnly is set (replay mode) non-core clauses are skipped
// entirely rather than used to propagate. Returns the conflicting clause,
// or CRefUndef if propagation completed cleanly. Post-condition: qhead ==
// len(trail) whichever way it returns.
func (p *Propagator) Propagate(coreOnly bool) CRef {
	confl := CRefUndef
	p.W.CleanAll(p.A)
	for p.T.QHead < len(p.T.D) {
		lm := p.T.D[p.T.QHead]
		p.T.QHead++
		p.Props++
		np := lm.Not()
		wl := p.W.List(lm)
		ws := wl.Ws

		i, j := 0, 0
		n := len(ws)
	scan:
		for i < n {
			wr := ws[i]
			i++

			if p.T.V.LitValue(wr.Blocker) == LTrue {
				ws[j] = wr
				j++
				continue
			}

			c := wr.CR
			if coreOnly && !p.A.Core(c) {
				ws[j] = wr
				j++
				continue
			}

			if p.A.Lit(c, 1) != np {
				if p.A.Lit(c, 0) == np {
					p.A.SetLit(c, 0, p.A.Lit(c, 1))
					p.A.SetLit(c, 1, np)
				}
			}
			first := p.A.Lit(c, 0)
			newBlocker := Watcher{CR: c, Blocker: first}
			if p.T.V.LitValue(first) == LTrue {
				ws[j] = newBlocker
				j++
				continue
			}

			sz := p.A.Size(c)
			for k := 2; k < sz; k++ {
				q := p.A.Lit(c, k)
				if p.T.V.LitValue(q) != LFalse {
					p.A.SetLit(c, 1, q)
					p.A.SetLit(c, k, np)
					p.W.Append(q.Not(), Watcher{CR: c, Blocker: first})
					continue scan
				}
			}

			ws[j] = newBlocker
			j++

			if p.T.V.LitValue(first) == LFalse {
				confl = c
				p.T.QHead = len(p.T.D)
				for ; i < n; i++ {
					ws[j] = ws[i]
					j++
				}
				wl.Ws = ws[:j]
				return confl
			}
			if !p.T.Enqueue(first, c) {
				confl = c
			}
		}
		wl.Ws = ws[:j]
	}
	return confl
}

// enqueueLevel0Part is called by Trail.Enqueue at decision level 0 when
// proof logging is active: trail_part[var(p)] joins the reason clause's
// partition and every tail literal's trail_part.
func enqueueLevel0Part(v *Vars, a *Arena, p lit.Lit, reason CRef) {
	if reason == CRefUndef {
		return
	}
	r := a.Part(reason)
	n := a.Size(reason)
	for i := 1; i < n; i++ {
		tv := a.Lit(reason, i).Var()
		r = r.Join(v.TrailPart[tv])
	}
	v.TrailPart[p.Var()] = r
}
