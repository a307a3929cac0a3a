package core

// Options mirrors the solver's option set, using field names close to
// MiniSat's command-line flags so a future CLI/option-registry layer
// needs no translation. Defaults follow original_source/core/Solver.cc's
// constructor defaults.
type Options struct {
	VarDecay    float64 // (0,1)
	ClaDecay    float64 // (0,1)
	RndFreq     float64 // [0,1]
	RndSeed     float64 // > 0
	CcminMode   int     // {0,1,2}
	PhaseSaving int     // {0,1,2}
	RndInit     bool
	Luby        bool
	Rfirst      float64 // >= 1
	Rinc        float64 // > 1
	GcFrac      float64 // > 0
	Valid       bool    // enable proof logging + post-UNSAT validation

	LearntsizeFactor float64
	LearntsizeInc    float64
}

// DefaultOptions returns the option set original_source/core/Solver.cc's
// constructor seeds, with proof logging off by default.
func DefaultOptions() Options {
	return Options{
		VarDecay:         0.95,
		ClaDecay:         0.999,
		RndFreq:          0,
		RndSeed:          91648253,
		CcminMode:        2,
		PhaseSaving:      2,
		RndInit:          false,
		Luby:             true,
		Rfirst:           100,
		Rinc:             2,
		GcFrac:           0.20,
		Valid:            false,
		LearntsizeFactor: 1.0 / 3.0,
		LearntsizeInc:    1.1,
	}
}

// Validate checks that every option lies in its documented range.
func (o Options) Validate() error {
	switch {
	case o.VarDecay <= 0 || o.VarDecay >= 1:
		return errNewf("var-decay must be in (0,1), got %v", o.VarDecay)
	case o.ClaDecay <= 0 || o.ClaDecay >= 1:
		return errNewf("cla-decay must be in (0,1), got %v", o.ClaDecay)
	case o.RndFreq < 0 || o.RndFreq > 1:
		return errNewf("rnd-freq must be in [0,1], got %v", o.RndFreq)
	case o.RndSeed <= 0:
		return errNewf("rnd-seed must be > 0, got %v", o.RndSeed)
	case o.CcminMode < 0 || o.CcminMode > 2:
		return errNewf("ccmin-mode must be in {0,1,2}, got %v", o.CcminMode)
	case o.PhaseSaving < 0 || o.PhaseSaving > 2:
		return errNewf("phase-saving must be in {0,1,2}, got %v", o.PhaseSaving)
	case o.Rfirst < 1:
		return errNewf("rfirst must be >= 1, got %v", o.Rfirst)
	case o.Rinc <= 1:
		return errNewf("rinc must be > 1, got %v", o.Rinc)
	case o.GcFrac <= 0:
		return errNewf("gc-frac must be > 0, got %v", o.GcFrac)
	}
	return nil
}
