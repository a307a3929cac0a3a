package core

import "github.com/fslivovsky/minisat/lit"

// Watcher pairs a clause with a blocker literal: if the blocker is true
// under the current assignment, the propagator can skip loading the clause
// entirely. Grounded on gini's internal/xo/watch.go Watch type, which packs
// the same pair into a uint64; kept as a plain struct here since this
// solver states its invariants over the pair's fields directly and the
// arena already carries the bulk of the memory pressure gini's packing
// targets.
type Watcher struct {
	CR      CRef
	Blocker lit.Lit
}

// WatchList is the set of watchers for a single literal, plus a smudge
// flag for lazy cleanup: removeClause only smudges; the only eager splice
// is Remove, used by strict detaches in the validator and replayer.
type WatchList struct {
	Ws      []Watcher
	Dirty   bool
}

// Watches maps every literal to its watch list. Indexed by lit.Lit directly
// (gini's internal/xo/vars.go does the same with its Watches [][]Watch).
type Watches struct {
	lists []WatchList
}

// NewWatches allocates a watch index sized for literals up to 2*(capHint+1).
func NewWatches(capHint int) *Watches {
	n := 2 * (capHint + 1)
	return &Watches{lists: make([]WatchList, n)}
}

func (w *Watches) growToLit(m lit.Lit) {
	need := int(m) + 1
	if need <= len(w.lists) {
		return
	}
	n := len(w.lists) * 2
	for n < need {
		n *= 2
	}
	ls := make([]WatchList, n)
	copy(ls, w.lists)
	w.lists = ls
}

// Init ensures the watch lists for both polarities of v exist.
func (w *Watches) Init(v lit.Var) {
	w.growToLit(v.Neg())
}

// List returns the (possibly dirty) watch list for literal m.
func (w *Watches) List(m lit.Lit) *WatchList {
	w.growToLit(m)
	return &w.lists[m]
}

// Append adds a watcher for literal m.
func (w *Watches) Append(m lit.Lit, wr Watcher) {
	l := w.List(m)
	l.Ws = append(l.Ws, wr)
}

// Smudge marks the watch list for m as needing a cleanAll pass.
func (w *Watches) Smudge(m lit.Lit) {
	w.List(m).Dirty = true
}

// CleanAll drops watchers whose clause is deleted, for every dirty list.
// The propagator calls this before consuming any watch list.
func (w *Watches) CleanAll(a *Arena) {
	for i := range w.lists {
		l := &w.lists[i]
		if !l.Dirty {
			continue
		}
		l.Dirty = false
		l.clean(a)
	}
}

func (l *WatchList) clean(a *Arena) {
	j := 0
	for _, wr := range l.Ws {
		if a.Mark(wr.CR) == MarkDeleted {
			continue
		}
		l.Ws[j] = wr
		j++
	}
	l.Ws = l.Ws[:j]
}

// Remove deletes the watcher for clause cr from literal m's list
// (strict/eager removal — used only when detaching with certainty, not the
// lazy path BCP relies on).
func (w *Watches) Remove(m lit.Lit, cr CRef) {
	l := w.List(m)
	for i, wr := range l.Ws {
		if wr.CR == cr {
			l.Ws = append(l.Ws[:i], l.Ws[i+1:]...)
			return
		}
	}
}

// Reloc rewrites every watcher's clause id against the destination arena.
func (w *Watches) Reloc(a, to *Arena) {
	for i := range w.lists {
		l := &w.lists[i]
		l.clean(a)
		for j := range l.Ws {
			a.Reloc(&l.Ws[j].CR, to)
		}
	}
}
