package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslivovsky/minisat/lit"
)

// TestValidateTrivialUnsat covers the validate leg of the trivial unsat
// case: the two-clause refutation validates true.
func TestValidateTrivialUnsat(t *testing.T) {
	s := newTestSolver(true)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Singleton(0)))
	require.False(t, s.AddClause([]lit.Lit{v1.Neg()}, lit.Singleton(0)))

	require.Equal(t, False, s.Solve(nil))

	ok, err := s.Validate()
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestValidateRequiresPriorUnsat exercises the precondition check: calling
// Validate while s.Ok is still true must fail fast.
func TestValidateRequiresPriorUnsat(t *testing.T) {
	s := newTestSolver(true)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Singleton(0)))

	ok, err := s.Validate()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInconsistent)
}

// TestValidateCoreClosedUnderReasons checks that after validate, the
// core set is closed under "reason of a core literal at level 0," and
// the number of core clauses never exceeds the total.
func TestValidateCoreClosedUnderReasons(t *testing.T) {
	s := newTestSolver(true)
	x := s.NewVar(true, true)
	y := s.NewVar(true, true)
	z := s.NewVar(true, true)

	require.True(t, s.AddClause([]lit.Lit{x.Pos()}, lit.Singleton(0)))
	require.True(t, s.AddClause([]lit.Lit{x.Neg(), y.Pos()}, lit.Singleton(0)))
	require.True(t, s.AddClause([]lit.Lit{y.Neg(), z.Pos()}, lit.Singleton(0)))
	// z is already forced true at level 0, so {-z} is a conflict on input.
	require.False(t, s.AddClause([]lit.Lit{z.Neg()}, lit.Singleton(0)))

	require.Equal(t, False, s.Solve(nil))
	ok, err := s.Validate()
	require.NoError(t, err)
	require.True(t, ok)

	coreCount := 0
	for _, cr := range s.Clauses {
		if s.A.Core(cr) {
			coreCount++
		}
	}
	assert.LessOrEqual(t, coreCount, len(s.Clauses))
	assert.Greater(t, coreCount, 0)

	for _, m := range s.Tr.D {
		r := s.Tr.Reason(m.Var())
		if r == CRefUndef || !s.A.Core(r) {
			continue
		}
		for k := 1; k < s.A.Size(r); k++ {
			if rr := s.Tr.Reason(s.A.Lit(r, k).Var()); rr != CRefUndef {
				assert.True(t, s.A.Core(rr))
			}
		}
	}
}
