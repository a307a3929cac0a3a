package core

import "github.com/fslivovsky/minisat/lit"

// LBool is a three-valued assignment.
type LBool int8

const (
	LFalse LBool = -1
	LUndef LBool = 0
	LTrue  LBool = 1
)

// Vars owns every per-variable piece of mutable state MiniSat's VarData
// struct bundles: assignment, decision level, reason clause, phase-saving
// polarity, the solver-global seen scratch vector, activity, and decision
// eligibility. Split out from Trail (which owns the ordered assignment
// sequence) the way gini's internal/xo separates Vars from Trail.
type Vars struct {
	Assign    []LBool
	Level     []int
	Reason    []CRef
	Polarity  []bool
	Activity  []float64
	Decision  []bool
	Seen      []bool
	TrailPart []lit.Range
	PartInfo  []lit.Range

	VarInc   float64
	VarDecay float64

	Max lit.Var
}

// NewVars allocates per-variable state for up to capHint variables.
func NewVars(capHint int) *Vars {
	n := capHint + 1
	return &Vars{
		Assign:    make([]LBool, n),
		Level:     make([]int, n),
		Reason:    make([]CRef, n),
		Polarity:  make([]bool, n),
		Activity:  make([]float64, n),
		Decision:  make([]bool, n),
		Seen:      make([]bool, n),
		TrailPart: make([]lit.Range, n),
		PartInfo:  make([]lit.Range, n),
		VarInc:    1,
		VarDecay:  0.95,
	}
}

func (v *Vars) growTo(u lit.Var) {
	n := int(u) + 1
	if n <= len(v.Assign) {
		return
	}
	resizeL := make([]LBool, n)
	copy(resizeL, v.Assign)
	v.Assign = resizeL

	resizeI := make([]int, n)
	copy(resizeI, v.Level)
	v.Level = resizeI

	resizeC := make([]CRef, n)
	copy(resizeC, v.Reason)
	v.Reason = resizeC

	resizeB := make([]bool, n)
	copy(resizeB, v.Polarity)
	v.Polarity = resizeB

	resizeA := make([]float64, n)
	copy(resizeA, v.Activity)
	v.Activity = resizeA

	resizeD := make([]bool, n)
	copy(resizeD, v.Decision)
	v.Decision = resizeD

	resizeS := make([]bool, n)
	copy(resizeS, v.Seen)
	v.Seen = resizeS

	resizeP := make([]lit.Range, n)
	copy(resizeP, v.TrailPart)
	v.TrailPart = resizeP

	resizePI := make([]lit.Range, n)
	copy(resizePI, v.PartInfo)
	v.PartInfo = resizePI
}

// NewVar allocates variable v's state. sign is the initial/saved polarity,
// dvar records whether v is eligible as a branching decision.
func (v *Vars) NewVar(sign, dvar bool, rndInitAct bool, rnd func() float64) lit.Var {
	nv := v.Max + 1
	v.growTo(nv)
	v.Max = nv
	v.Assign[nv] = LUndef
	v.Level[nv] = -1
	v.Reason[nv] = CRefUndef
	v.Polarity[nv] = sign
	v.Decision[nv] = dvar
	v.TrailPart[nv] = lit.UndefRange()
	v.PartInfo[nv] = lit.UndefRange()
	if rndInitAct {
		v.Activity[nv] = rnd() * 0.00001
	}
	return nv
}

// Value returns the value of variable v.
func (v *Vars) Value(u lit.Var) LBool { return v.Assign[u] }

// LitValue returns the value of literal m, accounting for its sign.
func (v *Vars) LitValue(m lit.Lit) LBool {
	a := v.Assign[m.Var()]
	if a == LUndef {
		return LUndef
	}
	if m.Sign() {
		return -a
	}
	return a
}

// VarBumpActivity increases u's activity and rescales if it overflows.
func (v *Vars) VarBumpActivity(u lit.Var, heap *Heap) {
	v.Activity[u] += v.VarInc
	if v.Activity[u] > 1e100 {
		for i := lit.Var(1); i <= v.Max; i++ {
			v.Activity[i] *= 1e-100
		}
		v.VarInc *= 1e-100
	}
	if heap != nil && heap.InHeap(u) {
		heap.Decrease(u)
	}
}

// VarDecayActivity grows VarInc, the standard "decay by boosting increment"
// trick so that older bumps lose relative weight without rescaling every
// variable every conflict.
func (v *Vars) VarDecayActivity() {
	v.VarInc *= 1 / v.VarDecay
}
