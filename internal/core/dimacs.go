package core

import (
	"fmt"
	"io"

	"github.com/fslivovsky/minisat/lit"
)

// ToDimacs writes a best-effort CNF dump of every currently-live clause
// not already satisfied at level 0, with assumptions emitted first as
// unit clauses, following original_source/core/Solver.cc's
// Solver::toDimacs remapping: a first pass collects the clauses to write,
// then assumption variables and every unassigned variable are remapped to
// dense 1-based indices, which gives the header's variable count, before
// any literal is written.
func (s *Solver) ToDimacs(w io.Writer, assumptions []lit.Lit) error {
	mapTo := make([]int, s.Vs.Max+1)
	next := 1
	liveVar := func(u lit.Var) bool { return s.value(u.Pos()) == LUndef }

	remap := func(u lit.Var) int {
		if mapTo[u] == 0 {
			mapTo[u] = next
			next++
		}
		return mapTo[u]
	}

	cnt := 0
	liveClauses := make([]CRef, 0, len(s.Clauses))
	for _, cr := range s.Clauses {
		if s.A.Mark(cr) != MarkLive {
			continue
		}
		if s.clauseSatisfiedAtRoot(cr) {
			continue
		}
		liveClauses = append(liveClauses, cr)
		cnt++
	}

	for _, m := range assumptions {
		remap(m.Var())
	}
	for u := lit.Var(1); u <= s.Vs.Max; u++ {
		if liveVar(u) {
			remap(u)
		}
	}

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", next-1, cnt+len(assumptions)); err != nil {
		return err
	}
	for _, m := range assumptions {
		if err := writeDimacsLit(w, m, mapTo); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "0\n"); err != nil {
			return err
		}
	}
	for _, cr := range liveClauses {
		n := s.A.Size(cr)
		for i := 0; i < n; i++ {
			m := s.A.Lit(cr, i)
			if s.value(m) == LFalse {
				continue
			}
			if err := writeDimacsLit(w, m, mapTo); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "0\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeDimacsLit(w io.Writer, m lit.Lit, mapTo []int) error {
	id := mapTo[m.Var()]
	if id == 0 {
		return nil
	}
	if m.Sign() {
		_, err := fmt.Fprintf(w, "-%d ", id)
		return err
	}
	_, err := fmt.Fprintf(w, "%d ", id)
	return err
}

func (s *Solver) clauseSatisfiedAtRoot(cr CRef) bool {
	n := s.A.Size(cr)
	for i := 0; i < n; i++ {
		if s.value(s.A.Lit(cr, i)) == LTrue {
			return true
		}
	}
	return false
}
