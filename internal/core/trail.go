package core

import "github.com/fslivovsky/minisat/lit"

// Trail is the ordered sequence of assigned literals, split from Vars the
// way gini's internal/xo/trail.go separates Trail from vars.go: Vars owns
// per-variable state, Trail owns the assignment order and per-level
// bookkeeping BCP and backtracking need.
type Trail struct {
	D        []lit.Lit // assignment order
	TrailLim []int     // trail index where each decision level begins
	QHead    int       // next trail position propagate() hasn't consumed

	V *Vars
	W *Watches
	A *Arena

	LogProof bool
}

// NewTrail creates a trail bound to v, w, and the arena (needed to read a
// reason clause's partition range when logging is active).
func NewTrail(v *Vars, w *Watches, a *Arena) *Trail {
	return &Trail{V: v, W: w, A: a}
}

// DecisionLevel returns the current decision level (0 at the root).
func (t *Trail) DecisionLevel() int { return len(t.TrailLim) }

// NewDecisionLevel opens a new decision level at the trail's current tip.
func (t *Trail) NewDecisionLevel() { t.TrailLim = append(t.TrailLim, len(t.D)) }

// Enqueue assigns literal m at the current decision level with reason from,
// pushing it onto the trail. Reports false if m contradicts an existing
// assignment (the caller has found a conflict).
func (t *Trail) Enqueue(m lit.Lit, from CRef) bool {
	v := t.V
	u := m.Var()
	switch v.LitValue(m) {
	case LTrue:
		return true
	case LFalse:
		return false
	}
	if m.Sign() {
		v.Assign[u] = LFalse
	} else {
		v.Assign[u] = LTrue
	}
	v.Level[u] = t.DecisionLevel()
	v.Reason[u] = from
	t.D = append(t.D, m)
	if t.LogProof && t.DecisionLevel() == 0 {
		enqueueLevel0Part(v, t.A, m, from)
	}
	return true
}

// CancelUntil unassigns every literal past decision level lvl, restoring
// phase-saving polarity for each one and reinstating rewound variables into
// the order heap.
func (t *Trail) CancelUntil(lvl int, h *Heap) {
	v := t.V
	if t.DecisionLevel() <= lvl {
		return
	}
	from := t.TrailLim[lvl]
	for i := len(t.D) - 1; i >= from; i-- {
		u := t.D[i].Var()
		v.Polarity[u] = v.Assign[u] == LFalse
		v.Assign[u] = LUndef
		v.Reason[u] = CRefUndef
		v.Level[u] = -1
		if h != nil && v.Decision[u] {
			h.InsertOrUpdate(u)
		}
	}
	t.D = t.D[:from]
	t.TrailLim = t.TrailLim[:lvl]
	t.QHead = from
}

// Reason returns the reason clause for variable u's assignment, or
// CRefUndef if u was a decision (or unassigned).
func (t *Trail) Reason(u lit.Var) CRef { return t.V.Reason[u] }

// PopOne unassigns and removes the last trail literal, independent of
// decision-level bookkeeping. Used by the validator, which rewinds the
// trail to an arbitrary cut point rather than a decision level.
func (t *Trail) PopOne() lit.Lit {
	last := len(t.D) - 1
	m := t.D[last]
	t.D = t.D[:last]
	u := m.Var()
	t.V.Assign[u] = LUndef
	t.V.Reason[u] = CRefUndef
	t.V.Level[u] = -1
	if t.QHead > last {
		t.QHead = last
	}
	return m
}

// Level returns the decision level at which variable u was assigned, or -1
// if unassigned.
func (t *Trail) Level(u lit.Var) int { return t.V.Level[u] }
