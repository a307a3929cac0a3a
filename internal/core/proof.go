package core

// Proof is the ordered, append-only list of clause ids recorded during
// search: the same id can appear twice, first while the clause is live
// (an addition) and later once its mark is set to MarkDeleted (a
// deletion) — positional semantics, never demultiplexed into separate
// add/delete streams.
type Proof struct {
	ids []CRef
}

// NewProof returns an empty proof log.
func NewProof() *Proof { return &Proof{} }

// Push appends cr to the log at its current lifecycle state.
func (p *Proof) Push(cr CRef) { p.ids = append(p.ids, cr) }

// Len reports the number of entries recorded so far.
func (p *Proof) Len() int { return len(p.ids) }

// At returns the id recorded at position i.
func (p *Proof) At(i int) CRef { return p.ids[i] }

// Ids exposes the full recorded sequence, read-only by convention.
func (p *Proof) Ids() []CRef { return p.ids }
