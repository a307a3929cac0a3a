package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslivovsky/minisat/lit"
)

func newTestSolver(valid bool) *Solver {
	opts := DefaultOptions()
	opts.Valid = valid
	return NewSolver(opts)
}

// TestTrivialUnsat checks the trivial refutation: {1} {-1} is UNSAT.
func TestTrivialUnsat(t *testing.T) {
	s := newTestSolver(true)
	v1 := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Singleton(0)))
	require.False(t, s.AddClause([]lit.Lit{v1.Neg()}, lit.Singleton(0)))

	assert.Equal(t, False, s.Solve(nil))
	assert.False(t, s.Ok)
}

func TestUnitPropagationChain(t *testing.T) {
	s := newTestSolver(false)
	x := s.NewVar(true, true)
	y := s.NewVar(true, true)
	z := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{x.Pos()}, lit.Range{}))
	require.True(t, s.AddClause([]lit.Lit{x.Neg(), y.Pos()}, lit.Range{}))
	require.True(t, s.AddClause([]lit.Lit{y.Neg(), z.Pos()}, lit.Range{}))

	assert.Equal(t, True, s.Solve(nil))
	assert.Equal(t, LTrue, s.value(x.Pos()))
	assert.Equal(t, LTrue, s.value(y.Pos()))
	assert.Equal(t, LTrue, s.value(z.Pos()))
}

// TestAssumptionConflict checks that {1 2} {-1 3} {-2 3} with
// assumption -3 is UNSAT, with conflict == {3}.
func TestAssumptionConflict(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, true)
	v2 := s.NewVar(true, true)
	v3 := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{v1.Pos(), v2.Pos()}, lit.Range{}))
	require.True(t, s.AddClause([]lit.Lit{v1.Neg(), v3.Pos()}, lit.Range{}))
	require.True(t, s.AddClause([]lit.Lit{v2.Neg(), v3.Pos()}, lit.Range{}))

	res := s.Solve([]lit.Lit{v3.Neg()})
	require.Equal(t, False, res)
	require.Len(t, s.Conflict, 1)
	assert.Equal(t, v3.Pos(), s.Conflict[0])
}

func TestDuplicateAndTautologyDropped(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, true)
	v2 := s.NewVar(true, true)

	// duplicate literal collapses to {v1 v2}
	ok := s.AddClause([]lit.Lit{v1.Pos(), v2.Pos(), v1.Pos()}, lit.Range{})
	require.True(t, ok)
	require.Len(t, s.Clauses, 1)
	assert.Equal(t, 2, s.A.Size(s.Clauses[0]))

	// tautology is dropped entirely, no new clause recorded
	ok = s.AddClause([]lit.Lit{v1.Pos(), v1.Neg()}, lit.Range{})
	require.True(t, ok)
	require.Len(t, s.Clauses, 1)
}

func TestAllButOneFalseTriggersImmediateUnit(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, true)
	v2 := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{v1.Neg()}, lit.Range{}))
	require.True(t, s.AddClause([]lit.Lit{v1.Pos(), v2.Pos()}, lit.Range{}))

	assert.Equal(t, LTrue, s.value(v2.Pos()))
}

func TestDecisionVariableDisabled(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, false) // not a decision variable
	v2 := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{v1.Pos(), v2.Pos()}, lit.Range{}))

	res := s.Solve(nil)
	require.Equal(t, True, res)
	assert.NotEqual(t, LUndef, s.value(v2.Pos()))
}

func TestEmptyAssumptionVector(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Range{}))
	assert.Equal(t, True, s.Solve([]lit.Lit{}))
}

// TestPigeonhole3in2 checks the classic pigeonhole refutation: 3 pigeons,
// 2 holes is UNSAT.
func TestPigeonhole3in2(t *testing.T) {
	s := newTestSolver(true)
	// p[i][j]: pigeon i in hole j, i in {0,1,2}, j in {0,1}
	var p [3][2]lit.Var
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			p[i][j] = s.NewVar(true, true)
		}
	}
	for i := 0; i < 3; i++ {
		require.True(t, s.AddClause([]lit.Lit{p[i][0].Pos(), p[i][1].Pos()}, lit.Singleton(0)))
	}
	for j := 0; j < 2; j++ {
		for i1 := 0; i1 < 3; i1++ {
			for i2 := i1 + 1; i2 < 3; i2++ {
				require.True(t, s.AddClause([]lit.Lit{p[i1][j].Neg(), p[i2][j].Neg()}, lit.Singleton(0)))
			}
		}
	}

	res := s.Solve(nil)
	require.Equal(t, False, res)

	ok, err := s.Validate()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRestartPoliciesBothReachSAT(t *testing.T) {
	build := func(luby bool) Result {
		opts := DefaultOptions()
		opts.Luby = luby
		s := NewSolver(opts)
		v1 := s.NewVar(true, true)
		v2 := s.NewVar(true, true)
		require.True(t, s.AddClause([]lit.Lit{v1.Pos(), v2.Pos()}, lit.Range{}))
		require.True(t, s.AddClause([]lit.Lit{v1.Neg(), v2.Neg()}, lit.Range{}))
		return s.Solve(nil)
	}
	assert.Equal(t, True, build(true))
	assert.Equal(t, True, build(false))
}
