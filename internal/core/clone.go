package core

import (
	"math/rand"

	"github.com/fslivovsky/minisat/lit"
)

// Clone deep-copies the solver so the caller can branch the search down
// two independent paths from the same state, the incremental-reuse
// pattern gini's S.Copy() supports. Proof logging is
// never copied: a proof log ties its clause ids to one arena generation,
// and cloning is meant for branching live search, not for duplicating an
// UNSAT witness.
func (s *Solver) Clone() *Solver {
	n := &Solver{
		Opts:     s.Opts,
		Log:      s.Log,
		A:        &Arena{D: append([]lit.Lit(nil), s.A.D...), Len: s.A.Len, Wasted: s.A.Wasted},
		Ok:       s.Ok,
		ClaInc:   s.ClaInc,
		ClaDecay: s.ClaDecay,
		rng:      rand.New(rand.NewSource(s.rng.Int63())),
	}
	n.Vs = cloneVars(s.Vs)
	n.Vs.VarDecay = s.Vs.VarDecay
	n.W = cloneWatches(s.W)
	n.Tr = NewTrail(n.Vs, n.W, n.A)
	n.Tr.D = append([]lit.Lit(nil), s.Tr.D...)
	n.Tr.TrailLim = append([]int(nil), s.Tr.TrailLim...)
	n.Tr.QHead = s.Tr.QHead
	n.H = cloneHeap(s.H, n.Vs)
	n.Prop = NewPropagator(n.A, n.W, n.Tr)
	n.An = NewAnalyzer(n.A, n.Tr, n.H)
	n.An.CcminMode = s.An.CcminMode
	n.Ctl = NewCtl()
	n.St = &Stats{}
	n.Clauses = append([]CRef(nil), s.Clauses...)
	n.Learnts = append([]CRef(nil), s.Learnts...)
	return n
}

func cloneVars(v *Vars) *Vars {
	n := &Vars{
		Assign:    append([]LBool(nil), v.Assign...),
		Level:     append([]int(nil), v.Level...),
		Reason:    append([]CRef(nil), v.Reason...),
		Polarity:  append([]bool(nil), v.Polarity...),
		Activity:  append([]float64(nil), v.Activity...),
		Decision:  append([]bool(nil), v.Decision...),
		Seen:      append([]bool(nil), v.Seen...),
		TrailPart: append([]lit.Range(nil), v.TrailPart...),
		PartInfo:  append([]lit.Range(nil), v.PartInfo...),
		VarInc:    v.VarInc,
		VarDecay:  v.VarDecay,
		Max:       v.Max,
	}
	return n
}

func cloneWatches(w *Watches) *Watches {
	n := &Watches{lists: make([]WatchList, len(w.lists))}
	for i, l := range w.lists {
		n.lists[i] = WatchList{Ws: append([]Watcher(nil), l.Ws...), Dirty: l.Dirty}
	}
	return n
}

func cloneHeap(h *Heap, v *Vars) *Heap {
	n := &Heap{
		heap: append([]lit.Var(nil), h.heap...),
		pos:  append([]int(nil), h.pos...),
		v:    v,
	}
	return n
}
