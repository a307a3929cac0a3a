// Package core implements the CDCL solver kernel: clause arena, watch
// index, trail/variable state, order heap, two-watched-literal propagator,
// first-UIP conflict analysis, the search driver, and the proof
// recorder/validator/replayer.
//
// The arena layout is grounded on gini's internal/xo/cdat.go: one flat,
// growable slice holds every clause's header and literals contiguously,
// and a clause id (CRef) is the offset of its first literal. Unlike gini's
// Chd (which packs a heat/lbd heuristic into the header word), the header
// here packs exactly the fields this solver's data model names: mark,
// learnt, core, size. Activity and the partition Range are adjacent
// header words rather than bit-packed, since both need more precision
// than a shared 32-bit word can spare.
package core

import (
	"math"

	"github.com/fslivovsky/minisat/lit"
)

// CRef is an opaque handle into the arena: the offset of a clause's first
// literal. CRefUndef never denotes a real clause.
type CRef uint32

const CRefUndef CRef = 0

// Clause mark values.
const (
	MarkLive      uint32 = 0
	MarkDeleted   uint32 = 1
	MarkRelocated uint32 = 3
)

const (
	hdrMarkBits  = 2
	hdrMarkShift = 0
	hdrMarkMask  = (1 << hdrMarkBits) - 1
	hdrLearntBit = 1 << 2
	hdrCoreBit   = 1 << 3
	hdrSizeShift = 4
)

// header words per clause: [hdr][activityBits][part.Lo][part.Hi]
const clauseHeaderWords = 4

// Arena is the append-mostly store owning every clause's literals.
type Arena struct {
	D      []lit.Lit
	Len    int
	Wasted int // words freed by deletion since last compaction
}

// NewArena creates an arena with capacity hint capHint words.
func NewArena(capHint int) *Arena {
	if capHint < clauseHeaderWords+2 {
		capHint = clauseHeaderWords + 2
	}
	return &Arena{D: make([]lit.Lit, capHint), Len: 1} // offset 0 reserved as CRefUndef
}

func (a *Arena) grow(need int) {
	if need <= len(a.D) {
		return
	}
	n := len(a.D) * 2
	for n < need {
		n *= 2
	}
	d := make([]lit.Lit, n)
	copy(d, a.D)
	a.D = d
}

// Alloc copies lits into fresh arena storage and returns the new clause's
// id. learnt clauses additionally get an activity slot semantics (the slot
// exists for every clause, but only learnt clauses' activity is bumped by
// the search driver).
func (a *Arena) Alloc(lits []lit.Lit, learnt bool) CRef {
	id := a.Len
	need := id + clauseHeaderWords + len(lits)
	a.grow(need)

	hdr := uint32(len(lits)) << hdrSizeShift
	if learnt {
		hdr |= hdrLearntBit
	}
	a.D[id+0] = lit.Lit(hdr)
	a.D[id+1] = lit.Lit(math.Float32bits(0))
	base := id + clauseHeaderWords
	a.SetPart(CRef(base), lit.UndefRange())
	copy(a.D[base:base+len(lits)], lits)

	a.Len = base + len(lits)
	return CRef(base)
}

func (a *Arena) hdrWord(cr CRef) uint32 { return uint32(a.D[int(cr)-clauseHeaderWords]) }

func (a *Arena) setHdrWord(cr CRef, v uint32) { a.D[int(cr)-clauseHeaderWords] = lit.Lit(v) }

// Size returns the clause's literal count.
func (a *Arena) Size(cr CRef) int { return int(a.hdrWord(cr) >> hdrSizeShift) }

func (a *Arena) setSize(cr CRef, n int) {
	h := a.hdrWord(cr)
	var allOnes uint32 = ^uint32(0)
	h = (h &^ (allOnes << hdrSizeShift)) | (uint32(n) << hdrSizeShift)
	a.setHdrWord(cr, h)
}

// Learnt reports whether the clause was learned (immutable after creation).
func (a *Arena) Learnt(cr CRef) bool { return a.hdrWord(cr)&hdrLearntBit != 0 }

// Mark returns the clause's 2-bit lifecycle mark.
func (a *Arena) Mark(cr CRef) uint32 { return a.hdrWord(cr) & hdrMarkMask }

// SetMark sets the clause's lifecycle mark.
func (a *Arena) SetMark(cr CRef, m uint32) {
	h := a.hdrWord(cr)
	h = (h &^ uint32(hdrMarkMask)) | (m & hdrMarkMask)
	a.setHdrWord(cr, h)
}

// Core reports whether the validator/replayer has marked this clause core.
func (a *Arena) Core(cr CRef) bool { return a.hdrWord(cr)&hdrCoreBit != 0 }

// SetCore sets/clears the clause's core bit.
func (a *Arena) SetCore(cr CRef, v bool) {
	h := a.hdrWord(cr)
	if v {
		h |= hdrCoreBit
	} else {
		h &^= hdrCoreBit
	}
	a.setHdrWord(cr, h)
}

// Activity returns the clause's learnt-clause activity score.
func (a *Arena) Activity(cr CRef) float32 {
	return math.Float32frombits(uint32(a.D[int(cr)-clauseHeaderWords+1]))
}

// SetActivity sets the clause's activity score.
func (a *Arena) SetActivity(cr CRef, v float32) {
	a.D[int(cr)-clauseHeaderWords+1] = lit.Lit(math.Float32bits(v))
}

// Part returns the clause's partition-provenance range.
func (a *Arena) Part(cr CRef) lit.Range {
	base := int(cr) - clauseHeaderWords + 2
	r := lit.Range{Lo: int(int32(a.D[base])), Hi: int(int32(a.D[base+1]))}
	if r.Undef() {
		return lit.UndefRange()
	}
	return r
}

// SetPart sets the clause's partition-provenance range. Bounds are stored
// as 32-bit words; an undef range is stored as (MaxInt32, MinInt32).
func (a *Arena) SetPart(cr CRef, r lit.Range) {
	base := int(cr) - clauseHeaderWords + 2
	lo, hi := int32(math.MaxInt32), int32(math.MinInt32)
	if !r.Undef() {
		lo, hi = int32(r.Lo), int32(r.Hi)
	}
	a.D[base] = lit.Lit(uint32(lo))
	a.D[base+1] = lit.Lit(uint32(hi))
}

// JoinPart joins r into the clause's existing partition range.
func (a *Arena) JoinPart(cr CRef, r lit.Range) { a.SetPart(cr, a.Part(cr).Join(r)) }

// Lit returns the i'th literal of the clause.
func (a *Arena) Lit(cr CRef, i int) lit.Lit { return a.D[int(cr)+i] }

// SetLit sets the i'th literal of the clause.
func (a *Arena) SetLit(cr CRef, i int, m lit.Lit) { a.D[int(cr)+i] = m }

// Lits appends the clause's literals to dst and returns it.
func (a *Arena) Lits(cr CRef, dst []lit.Lit) []lit.Lit {
	n := a.Size(cr)
	return append(dst, a.D[int(cr):int(cr)+n]...)
}

// Free marks the clause deleted. Reclamation happens only at compaction.
func (a *Arena) Free(cr CRef) {
	a.Wasted += clauseHeaderWords + a.Size(cr)
	a.SetMark(cr, MarkDeleted)
}

// GCReady reports whether the wasted fraction exceeds gcFrac.
func (a *Arena) GCReady(gcFrac float64) bool {
	if a.Len == 0 {
		return false
	}
	return float64(a.Wasted)/float64(a.Len) > gcFrac
}

// Reloc rewrites *cr against the destination arena `to`, compacting this
// clause into it if it has not already been relocated (mark == 3), or
// following the forwarding pointer left by a prior Reloc call if it has.
// This is the single site responsible for rewriting every clause reference
// during compaction (watches, reasons, clauses/learnts lists) atomically
// relative to the caller's traversal order. The proof list is never
// relocated: compaction does not run while proof logging is active.
func (a *Arena) Reloc(cr *CRef, to *Arena) {
	id := *cr
	if a.Mark(id) == MarkRelocated {
		*cr = CRef(a.D[int(id)]) // forwarding id overlaid on lit0
		return
	}
	n := a.Size(id)
	lits := a.Lits(id, nil)
	learnt := a.Learnt(id)
	nid := to.Alloc(lits, learnt)
	to.SetCore(nid, a.Core(id))
	to.SetActivity(nid, a.Activity(id))
	to.SetPart(nid, a.Part(id))
	to.setSize(nid, n)

	a.SetMark(id, MarkRelocated)
	a.D[int(id)] = lit.Lit(nid) // overlay forwarding id on first literal slot
	*cr = nid
}
