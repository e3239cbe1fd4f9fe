package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
)

func TestComputeLBD(t *testing.T) {
	s, err := New(cnf.New(3), DefaultConfig())
	require.NoError(t, err)
	s.varData = []varData{
		{reason: ClaRefUndef, level: 1},
		{reason: ClaRefUndef, level: 1},
		{reason: ClaRefUndef, level: 2},
	}

	// (!x1 v x2 v x3) spans levels {1, 2}.
	lits := []cnf.Lit{cnf.NewLit(0, true), cnf.NewLit(1, false), cnf.NewLit(2, false)}
	assert.Equal(t, 2, s.computeLBD(lits))

	// Stamp-based marking must not leak between calls.
	assert.Equal(t, 2, s.computeLBD(lits))
	assert.Equal(t, 1, s.computeLBD(lits[:2]))
}
