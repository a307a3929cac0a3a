package minisat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslivovsky/minisat/lit"
	"github.com/fslivovsky/minisat/visitor"
)

func TestFacadeTrivialUnsatRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Valid = true
	s, err := New(opts)
	require.NoError(t, err)

	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Singleton(0)))
	require.False(t, s.AddClause([]lit.Lit{v1.Neg()}, lit.Singleton(0)))

	res := s.Solve(nil)
	require.Equal(t, UNSAT, res)

	ok, err := s.Validate()
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Replay(visitor.NopVisitor{}))
}

func TestFacadeRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.VarDecay = 1.5 // out of (0,1)
	_, err := New(opts)
	assert.Error(t, err)
}

func TestFacadeSatisfiableInstance(t *testing.T) {
	s, err := New(DefaultOptions())
	require.NoError(t, err)

	v1 := s.NewVar(true, true)
	v2 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos(), v2.Pos()}, lit.Range{}))

	res := s.Solve(nil)
	assert.Equal(t, SAT, res)
}

func TestFacadeClone(t *testing.T) {
	s, err := New(DefaultOptions())
	require.NoError(t, err)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Range{}))

	clone := s.Clone()
	res := clone.Solve(nil)
	assert.Equal(t, SAT, res)
}
