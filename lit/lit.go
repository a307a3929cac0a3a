// Package lit defines the packed literal/variable representation and the
// partition-range type used to track provenance through a derivation.
package lit

import "fmt"

// Var is a variable index, 1-based; 0 is reserved as VarNull.
type Var uint32

// VarNull is the zero variable, never allocated by NewVar.
const VarNull Var = 0

// Pos returns the positive literal of v.
func (v Var) Pos() Lit { return Lit(v << 1) }

// Neg returns the negative literal of v.
func (v Var) Neg() Lit { return Lit((v << 1) | 1) }

func (v Var) String() string { return fmt.Sprintf("x%d", v) }

// Lit is a variable packed with a sign bit: Lit == Var<<1 | sign.
// LitNull (0) is never a valid literal, since Var 0 is never allocated.
type Lit uint32

// LitNull is the sentinel "no literal" value.
const LitNull Lit = 0

// MkLit builds a literal for variable v with sign neg (true = negated).
func MkLit(v Var, neg bool) Lit {
	if neg {
		return v.Neg()
	}
	return v.Pos()
}

// Var returns the variable underlying m.
func (m Lit) Var() Var { return Var(m >> 1) }

// Sign reports whether m is the negated literal of its variable.
func (m Lit) Sign() bool { return m&1 == 1 }

// IsPos reports whether m is the positive literal of its variable.
func (m Lit) IsPos() bool { return m&1 == 0 }

// Not returns the complementary literal.
func (m Lit) Not() Lit { return m ^ 1 }

func (m Lit) String() string {
	if m == LitNull {
		return "lit-null"
	}
	if m.Sign() {
		return fmt.Sprintf("-%d", m.Var())
	}
	return fmt.Sprintf("%d", m.Var())
}

// ClauseRef is the public handle to a clause, used at package boundaries
// (the visitor protocol, the facade's read-only clause access) that must
// not depend on the solver kernel's internal arena-offset representation.
type ClauseRef uint32

// ClauseRefUndef never denotes a real clause.
const ClauseRefUndef ClauseRef = 0

// Range is a partition-id interval [Lo, Hi] accumulating the join of every
// partition that contributed to a derivation. Undef is the empty range
// (Lo > Hi); Join with anything yields that thing. A range is a Singleton
// when Lo == Hi.
type Range struct {
	Lo int
	Hi int
}

// UndefRange is the empty/uninitialized provenance range.
func UndefRange() Range { return Range{Lo: int(^uint(0) >> 1), Hi: -int(^uint(0)>>1) - 1} }

// Singleton builds a one-partition range.
func Singleton(p int) Range { return Range{Lo: p, Hi: p} }

// Undef reports whether r carries no provenance.
func (r Range) Undef() bool { return r.Lo > r.Hi }

// IsSingleton reports whether r is exactly one partition.
func (r Range) IsSingleton() bool { return !r.Undef() && r.Lo == r.Hi }

// Join returns the smallest range covering both r and o.
func (r Range) Join(o Range) Range {
	if o.Undef() {
		return r
	}
	if r.Undef() {
		return o
	}
	lo, hi := r.Lo, r.Hi
	if o.Lo < lo {
		lo = o.Lo
	}
	if o.Hi > hi {
		hi = o.Hi
	}
	return Range{Lo: lo, Hi: hi}
}

func (r Range) String() string {
	if r.Undef() {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi)
}
