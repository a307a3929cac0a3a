package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fslivovsky/minisat/lit"
)

func TestArenaAllocAndAccessors(t *testing.T) {
	a := NewArena(64)
	x, y, z := lit.Var(1), lit.Var(2), lit.Var(3)
	ls := []lit.Lit{x.Pos(), y.Neg(), z.Pos()}

	cr := a.Alloc(ls, true)
	require.NotEqual(t, CRefUndef, cr)

	assert.Equal(t, 3, a.Size(cr))
	assert.True(t, a.Learnt(cr))
	assert.Equal(t, MarkLive, a.Mark(cr))
	assert.False(t, a.Core(cr))
	assert.True(t, a.Part(cr).Undef())

	got := a.Lits(cr, nil)
	assert.Equal(t, ls, got)

	a.SetCore(cr, true)
	assert.True(t, a.Core(cr))

	a.SetActivity(cr, 3.5)
	assert.InDelta(t, 3.5, float64(a.Activity(cr)), 1e-6)

	r := lit.Range{Lo: 1, Hi: 4}
	a.SetPart(cr, r)
	assert.Equal(t, r, a.Part(cr))

	a.JoinPart(cr, lit.Range{Lo: -1, Hi: 2})
	assert.Equal(t, lit.Range{Lo: -1, Hi: 4}, a.Part(cr))
}

func TestArenaFreeAndGCReady(t *testing.T) {
	a := NewArena(16)
	cr := a.Alloc([]lit.Lit{lit.Var(1).Pos(), lit.Var(2).Pos()}, false)
	assert.False(t, a.GCReady(0.1))

	a.Free(cr)
	assert.Equal(t, MarkDeleted, a.Mark(cr))
	assert.True(t, a.GCReady(0.01))
}

func TestArenaReloc(t *testing.T) {
	a := NewArena(16)
	cr1 := a.Alloc([]lit.Lit{lit.Var(1).Pos(), lit.Var(2).Neg()}, false)
	cr2 := a.Alloc([]lit.Lit{lit.Var(3).Pos(), lit.Var(4).Neg(), lit.Var(1).Neg()}, true)
	a.SetPart(cr2, lit.Singleton(1))
	a.SetActivity(cr2, 1.25)

	to := NewArena(16)
	orig1, orig2 := cr1, cr2
	a.Reloc(&cr1, to)
	a.Reloc(&cr2, to)

	// The destination arena also reserves only offset 0, so the first
	// clause relocated into it lands right after its header.
	assert.Equal(t, CRef(1+clauseHeaderWords), cr1)
	assert.Equal(t, MarkRelocated, a.Mark(orig1))

	assert.Equal(t, 2, to.Size(cr1))
	assert.Equal(t, 3, to.Size(cr2))
	assert.True(t, to.Learnt(cr2))
	assert.False(t, to.Learnt(cr1))
	assert.Equal(t, lit.Singleton(1), to.Part(cr2))
	assert.InDelta(t, 1.25, float64(to.Activity(cr2)), 1e-6)

	// Reloc again must follow the forwarding pointer, not double-copy.
	again := orig2
	a.Reloc(&again, to)
	assert.Equal(t, cr2, again)
}
