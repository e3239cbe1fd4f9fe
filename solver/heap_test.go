package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
)

func TestHeapOrdersByActivity(t *testing.T) {
	h := newActivityHeap(4)
	for v := 0; v < 4; v++ {
		h.PushBack(cnf.Var(v))
	}
	h.activity[2] = 3.0
	h.Decrease(2)
	h.activity[0] = 1.0
	h.Decrease(0)

	assert.Equal(t, cnf.Var(2), h.RemoveMin())
	assert.Equal(t, cnf.Var(0), h.RemoveMin())
	// Equal activities break ties on smallest variable id.
	assert.Equal(t, cnf.Var(1), h.RemoveMin())
	assert.Equal(t, cnf.Var(3), h.RemoveMin())
	assert.True(t, h.Empty())
}

func TestHeapReinsert(t *testing.T) {
	h := newActivityHeap(3)
	for v := 0; v < 3; v++ {
		h.PushBack(cnf.Var(v))
	}
	h.activity[1] = 5.0
	h.Decrease(1)

	x := h.RemoveMin()
	require.Equal(t, cnf.Var(1), x)
	assert.False(t, h.InHeap(1))

	// Reinserting a high-activity variable must restore its priority.
	h.PushBack(1)
	assert.True(t, h.InHeap(1))
	assert.Equal(t, cnf.Var(1), h.RemoveMin())
}

func TestHeapPanicsOnDoubleInsert(t *testing.T) {
	h := newActivityHeap(1)
	h.PushBack(0)
	assert.Panics(t, func() { h.PushBack(0) })
}
