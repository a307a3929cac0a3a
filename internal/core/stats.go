package core

// Stats accumulates solver-lifetime counters, split out from Ctl the way
// gini's internal/xo/stats.go is a plain counter bag separate from ctl.go's
// interrupt/budget state.
type Stats struct {
	Decisions    int64
	Conflicts    int64
	Propagations int64
	Restarts     int64
	LearntLits   int64
	MaxLits      int64
	Compactions  int64
}
