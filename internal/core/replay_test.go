package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslivovsky/minisat/lit"
	"github.com/fslivovsky/minisat/visitor"
)

// captureVisitor records every event for assertions, the role a test
// double plays in place of a real trace/chain visitor.
type captureVisitor struct {
	reader     visitor.ClauseReader
	resolvents int
	chains     int
	sawEmpty   bool
}

func (c *captureVisitor) Bind(r visitor.ClauseReader) { c.reader = r }

func (c *captureVisitor) VisitResolvent(parent, pivot lit.Lit, antecedent lit.ClauseRef) {
	c.resolvents++
}

func (c *captureVisitor) VisitChainResolvent(parent lit.Lit, chainClauses []lit.ClauseRef, chainPivots []lit.Lit) {
	c.chains++
	if parent == lit.LitNull {
		c.sawEmpty = true
	}
}

var _ visitor.Visitor = (*captureVisitor)(nil)

// TestReplayTrivialUnsat checks the replay leg of the trivial unsat case:
// replaying {1} {-1} must emit at least one chain producing the empty
// clause.
func TestReplayTrivialUnsat(t *testing.T) {
	s := newTestSolver(true)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Singleton(0)))
	require.False(t, s.AddClause([]lit.Lit{v1.Neg()}, lit.Singleton(0)))

	require.Equal(t, False, s.Solve(nil))
	ok, err := s.Validate()
	require.NoError(t, err)
	require.True(t, ok)

	cv := &captureVisitor{}
	err = s.Replay(cv)
	require.NoError(t, err)
	assert.True(t, cv.sawEmpty)
}

// TestReplayRequiresProof checks the precondition guard: replaying a
// solver with no recorded proof surfaces ErrReplayDivergence rather than
// silently doing nothing.
func TestReplayRequiresProof(t *testing.T) {
	s := newTestSolver(false)
	v1 := s.NewVar(true, true)
	require.True(t, s.AddClause([]lit.Lit{v1.Pos()}, lit.Range{}))

	err := s.Replay(&captureVisitor{})
	assert.ErrorIs(t, err, ErrReplayDivergence)
}
