package core

import "github.com/fslivovsky/minisat/lit"

// Heap is a binary max-heap over variables, ordered by Vars.Activity. The
// branching rule pops the top of this heap to choose the next decision
// variable. Grounded on MiniSat's Heap<Lt> template — array-backed, with
// an index-of-variable side array so Insert/Decrease can locate a
// variable's slot in O(1) rather than scanning, the same trick gini
// avoids needing only because it keeps no order heap at all (it branches
// by trail position, not activity); this solver uses an explicit
// activity-ordered heap instead.
type Heap struct {
	heap []lit.Var
	pos  []int // pos[v] = index of v in heap, or -1 if absent
	v    *Vars
}

const heapAbsent = -1

// NewHeap creates an empty heap backed by v's activity array.
func NewHeap(v *Vars, capHint int) *Heap {
	return &Heap{pos: make([]int, capHint+1), v: v}
}

func (h *Heap) growTo(u lit.Var) {
	n := int(u) + 1
	if n <= len(h.pos) {
		return
	}
	p := make([]int, n)
	for i := range p {
		p[i] = heapAbsent
	}
	copy(p, h.pos)
	h.pos = p
}

// Init registers variable u as absent from the heap (call once per NewVar).
func (h *Heap) Init(u lit.Var) {
	h.growTo(u)
	h.pos[u] = heapAbsent
}

// InHeap reports whether u currently occupies a heap slot.
func (h *Heap) InHeap(u lit.Var) bool {
	return int(u) < len(h.pos) && h.pos[u] != heapAbsent
}

func (h *Heap) less(a, b lit.Var) bool { return h.v.Activity[a] > h.v.Activity[b] }

func (h *Heap) percolateUp(i int) {
	x := h.heap[i]
	for i != 0 {
		p := (i - 1) / 2
		if !h.less(x, h.heap[p]) {
			break
		}
		h.heap[i] = h.heap[p]
		h.pos[h.heap[p]] = i
		i = p
	}
	h.heap[i] = x
	h.pos[x] = i
}

func (h *Heap) percolateDown(i int) {
	x := h.heap[i]
	n := len(h.heap)
	for {
		l, r := 2*i+1, 2*i+2
		if l >= n {
			break
		}
		child := l
		if r < n && h.less(h.heap[r], h.heap[l]) {
			child = r
		}
		if !h.less(h.heap[child], x) {
			break
		}
		h.heap[i] = h.heap[child]
		h.pos[h.heap[i]] = i
		i = child
	}
	h.heap[i] = x
	h.pos[x] = i
}

// Insert adds u to the heap, or no-ops if it is already present.
func (h *Heap) Insert(u lit.Var) {
	h.growTo(u)
	if h.InHeap(u) {
		return
	}
	h.pos[u] = len(h.heap)
	h.heap = append(h.heap, u)
	h.percolateUp(h.pos[u])
}

// InsertOrUpdate inserts u if it is not already present, mirroring
// MiniSat's insertVarOrder: a decision variable popped by the branching
// loop has left the heap and is reinserted here on backtrack; a variable
// forced by propagation was never removed and this call is a no-op for it.
func (h *Heap) InsertOrUpdate(u lit.Var) {
	h.Insert(u)
}

// Decrease re-heapifies u's slot upward after its activity increased
// (named for MiniSat's comparator convention: "decrease" means "moved
// toward the top of the max-heap").
func (h *Heap) Decrease(u lit.Var) {
	if h.InHeap(u) {
		h.percolateUp(h.pos[u])
	}
}

// RemoveMax pops and returns the highest-activity variable. Panics if empty.
func (h *Heap) RemoveMax() lit.Var {
	x := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.pos[h.heap[0]] = 0
	h.pos[x] = heapAbsent
	h.heap = h.heap[:last]
	if last > 0 {
		h.percolateDown(0)
	}
	return x
}

// Empty reports whether the heap holds no variables.
func (h *Heap) Empty() bool { return len(h.heap) == 0 }

// Clear empties the heap without forgetting which variables exist.
func (h *Heap) Clear() {
	for _, u := range h.heap {
		h.pos[u] = heapAbsent
	}
	h.heap = h.heap[:0]
}
