package visitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fslivovsky/minisat/lit"
)

func TestNopVisitorDiscardsEverything(t *testing.T) {
	var v Visitor = NopVisitor{}
	v.Bind(nil)
	v.VisitResolvent(lit.Var(1).Pos(), lit.Var(2).Pos(), lit.ClauseRef(7))
	v.VisitChainResolvent(lit.LitNull, nil, nil)
	// nothing to assert beyond "it didn't panic"
}

func TestTraceVisitorEmitsLines(t *testing.T) {
	var buf bytes.Buffer
	tv := NewTraceVisitor(&buf)
	tv.Bind(nil)

	tv.VisitResolvent(lit.Var(1).Pos(), lit.Var(2).Neg(), lit.ClauseRef(3))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "vR "))
	assert.Contains(t, out, "c3")
}

func TestChainVisitorIssuesMonotonicIDs(t *testing.T) {
	var buf bytes.Buffer
	cv := NewChainVisitor(&buf)
	cv.Bind(nil)

	cv.VisitChainResolvent(lit.Var(1).Pos(), []lit.ClauseRef{1, 2}, []lit.Lit{lit.Var(3).Pos()})
	firstOut := buf.String()
	assert.NotEmpty(t, firstOut)
	// antecedents 1 and 2 take ids 1 and 2; the new clause takes id 3
	assert.True(t, strings.HasPrefix(firstOut, "3 "))

	id1 := cv.idFor(1)
	id2 := cv.idFor(1)
	assert.Equal(t, id1, id2, "idFor must be stable for the same clause ref")
}
