package visitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fslivovsky/minisat/lit"
)

// ChainVisitor renders a numeric, clause-id-indexed resolution trace: every
// emitted clause is assigned a fresh, monotonically increasing id. A chain
// line lists that id, the parent literal ("[]" for lit.LitNull), a
// parenthesized literal list, the ids of the antecedents and the pivots.
// The literal list is that of the last antecedent clause when a
// ClauseReader is bound and parent is not lit.LitNull, and "()" otherwise;
// the derived clause's own literals are not printed. A VisitResolvent line
// lists the new id, the parent literal and the antecedent id. Grounded on
// original_source/core/TraceProofVisitor.cc's id-issuing behavior for
// visitHyperResolvent, generalized here to the chain-resolvent shape
// this replay path commits to.
type ChainVisitor struct {
	w      io.Writer
	r      ClauseReader
	nextID int
	idOf   map[lit.ClauseRef]int
}

// NewChainVisitor returns a ChainVisitor writing to w.
func NewChainVisitor(w io.Writer) *ChainVisitor {
	return &ChainVisitor{w: w, nextID: 1, idOf: make(map[lit.ClauseRef]int)}
}

func (c *ChainVisitor) Bind(r ClauseReader) { c.r = r }

func (c *ChainVisitor) idFor(cr lit.ClauseRef) int {
	if id, ok := c.idOf[cr]; ok {
		return id
	}
	id := c.nextID
	c.nextID++
	c.idOf[cr] = id
	return id
}

func (c *ChainVisitor) VisitResolvent(parent, pivot lit.Lit, antecedent lit.ClauseRef) {
	antID := c.idFor(antecedent)
	newID := c.nextID
	c.nextID++
	fmt.Fprintf(c.w, "%d %s %d\n", newID, parent, antID)
}

func (c *ChainVisitor) VisitChainResolvent(parent lit.Lit, chainClauses []lit.ClauseRef, chainPivots []lit.Lit) {
	antIDs := make([]string, len(chainClauses))
	for i, cr := range chainClauses {
		antIDs[i] = fmt.Sprintf("%d", c.idFor(cr))
	}
	newID := c.nextID
	c.nextID++

	lits := "()"
	if c.r != nil && parent != lit.LitNull {
		var ls []lit.Lit
		if len(chainClauses) > 0 {
			ls = c.r.ClauseLits(chainClauses[len(chainClauses)-1])
		}
		parts := make([]string, len(ls))
		for i, m := range ls {
			parts[i] = m.String()
		}
		lits = "(" + strings.Join(parts, " ") + ")"
	}

	label := "[]"
	if parent != lit.LitNull {
		label = parent.String()
	}
	fmt.Fprintf(c.w, "%d %s %s <- %s [%v]\n", newID, label, lits, strings.Join(antIDs, ","), chainPivots)
}

var _ Visitor = (*ChainVisitor)(nil)
