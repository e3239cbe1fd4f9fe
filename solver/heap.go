package solver

import (
	"fmt"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// activityHeap is an indexed binary max-heap of variables ordered by
// activity. The index table makes decrease-key by variable id O(log n),
// which container/heap cannot offer without the same bookkeeping.
type activityHeap struct {
	data     []cnf.Var
	indices  []int
	activity []float64
}

func newActivityHeap(numVars int) *activityHeap {
	h := &activityHeap{
		indices:  make([]int, numVars),
		activity: make([]float64, numVars),
	}
	for i := range h.indices {
		h.indices[i] = -1
	}
	return h
}

func (h *activityHeap) less(x, y cnf.Var) bool {
	if h.activity[x] != h.activity[y] {
		return h.activity[x] > h.activity[y]
	}
	// Stable tie break on variable id.
	return x < y
}

func (h *activityHeap) Size() int {
	return len(h.data)
}

func (h *activityHeap) Empty() bool {
	return len(h.data) == 0
}

func (h *activityHeap) InHeap(x cnf.Var) bool {
	return int(x) < len(h.indices) && h.indices[x] >= 0
}

func (h *activityHeap) Activity(x cnf.Var) float64 {
	return h.activity[x]
}

// Decrease restores heap order after the activity of x grew.
func (h *activityHeap) Decrease(x cnf.Var) {
	if !h.InHeap(x) {
		panic(fmt.Errorf("var is not in heap: %d", x))
	}
	h.percolateUp(h.indices[x])
}

func (h *activityHeap) RemoveMin() cnf.Var {
	x := h.data[0]
	h.data[0] = h.data[h.Size()-1]
	h.indices[h.data[0]] = 0
	h.indices[x] = -1
	h.data = h.data[:h.Size()-1]
	if h.Size() > 1 {
		h.percolateDown(0)
	}
	return x
}

func (h *activityHeap) PushBack(x cnf.Var) {
	if h.InHeap(x) {
		panic(fmt.Errorf("var is already inserted: %v", x))
	}
	h.data = append(h.data, x)
	h.indices[x] = len(h.data) - 1
	h.percolateUp(h.indices[x])
}

func (h *activityHeap) percolateUp(i int) {
	x := h.data[i]
	p := parentIndex(i)
	for i != 0 && h.less(x, h.data[p]) {
		h.indices[h.data[p]] = i
		h.data[i] = h.data[p]
		i = p
		p = parentIndex(i)
	}
	h.data[i] = x
	h.indices[x] = i
}

func (h *activityHeap) percolateDown(i int) {
	x := h.data[i]
	for leftIndex(i) < len(h.data) {
		child := leftIndex(i)
		if rightIndex(i) < len(h.data) && h.less(h.data[rightIndex(i)], h.data[child]) {
			child = rightIndex(i)
		}
		if !h.less(h.data[child], x) {
			break
		}
		h.data[i] = h.data[child]
		h.indices[h.data[child]] = i
		i = child
	}
	h.data[i] = x
	h.indices[x] = i
}

func leftIndex(i int) int {
	return 2*i + 1
}

func rightIndex(i int) int {
	return 2*i + 2
}

func parentIndex(i int) int {
	return (i - 1) >> 1
}
