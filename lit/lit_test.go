package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitSignAndVar(t *testing.T) {
	v := Var(5)
	pos := v.Pos()
	neg := v.Neg()

	assert.Equal(t, v, pos.Var())
	assert.Equal(t, v, neg.Var())
	assert.False(t, pos.Sign())
	assert.True(t, neg.Sign())
	assert.Equal(t, pos, neg.Not())
	assert.Equal(t, neg, pos.Not())
}

func TestMkLit(t *testing.T) {
	v := Var(3)
	assert.Equal(t, v.Pos(), MkLit(v, false))
	assert.Equal(t, v.Neg(), MkLit(v, true))
}

func TestRangeJoin(t *testing.T) {
	undef := UndefRange()
	assert.True(t, undef.Undef())

	a := Singleton(2)
	assert.True(t, a.IsSingleton())

	joined := undef.Join(a)
	assert.Equal(t, a, joined)

	b := Range{Lo: 0, Hi: 1}
	c := a.Join(b)
	assert.Equal(t, Range{Lo: 0, Hi: 2}, c)
	assert.False(t, c.IsSingleton())
}

func TestRangeJoinCommutative(t *testing.T) {
	a := Range{Lo: 1, Hi: 3}
	b := Range{Lo: 2, Hi: 5}
	assert.Equal(t, a.Join(b), b.Join(a))
}
