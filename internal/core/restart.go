package core

// RestartPolicy selects how the search driver grows its per-restart
// conflict budget.
type RestartPolicy int

const (
	RestartLuby      RestartPolicy = 0
	RestartGeometric RestartPolicy = 1
)

// Luby computes the Luby restart sequence value for the y'th restart,
// grounded on operator-framework/gini's internal/xo/luby.go (its Luby
// type tracks `exp`/`turns` incrementally; this is the same recurrence
// expressed as a direct closed-form computation since the search driver
// here calls it once per restart rather than holding iterator state).
func Luby(rinc float64, y int) float64 {
	size, seq := 1, 0
	for size < y+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != y {
		size = (size - 1) / 2
		seq--
		y = y % size
	}
	r := 1.0
	for i := 0; i < seq; i++ {
		r *= rinc
	}
	return r
}

// Geometric computes rinc^k, the geometric restart sequence MiniSat uses
// when the luby option is disabled (original_source/core/Solver.cc:
// Solver::solve_, the `pow(restart_inc, curr_restarts)` branch).
func Geometric(rinc float64, k int) float64 {
	r := 1.0
	for i := 0; i < k; i++ {
		r *= rinc
	}
	return r
}

// RestartBase returns the conflict budget for this restart given the
// configured policy, rfirst and rinc, and the zero-based restart count k.
func RestartBase(policy RestartPolicy, rfirst, rinc float64, k int) float64 {
	switch policy {
	case RestartGeometric:
		return Geometric(rinc, k) * rfirst
	default:
		return Luby(rinc, k) * rfirst
	}
}
