package core

// Ctl is the cooperative-interrupt/budget control block: a polled flag
// plus two counters, checked between conflicts
// and between restarts, never mid-clause. Grounded on gini's
// internal/xo/ctl.go, which keeps this same separation from Stats.
type Ctl struct {
	interrupted bool

	ConflictBudget    int64 // < 0 means unbounded
	PropagationBudget int64 // < 0 means unbounded
}

// NewCtl returns a Ctl with unbounded budgets and no interrupt pending.
func NewCtl() *Ctl {
	return &Ctl{ConflictBudget: -1, PropagationBudget: -1}
}

// Interrupt requests that the next no-conflict branch point return Undef.
func (c *Ctl) Interrupt() { c.interrupted = true }

// ClearInterrupt resets the interrupt flag (a fresh solve call may reuse it).
func (c *Ctl) ClearInterrupt() { c.interrupted = false }

// WithinBudget reports whether the search may continue: no pending
// interrupt and neither budget has been exhausted.
func (c *Ctl) WithinBudget(s *Stats) bool {
	if c.interrupted {
		return false
	}
	if c.ConflictBudget >= 0 && s.Conflicts >= c.ConflictBudget {
		return false
	}
	if c.PropagationBudget >= 0 && s.Propagations >= c.PropagationBudget {
		return false
	}
	return true
}
