package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
)

func TestLubySequence(t *testing.T) {
	// With base 2 the sequence starts 1, 1, 2, 1, 1, 2, 4, 1, ...
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1}
	for i, w := range want {
		assert.Equal(t, w, luby(2, i), "term %d", i)
	}
}

func TestGeometricRestartLimitGrows(t *testing.T) {
	s, err := New(cnf.New(1), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 100, s.restartLimit(0))
	assert.Equal(t, 200, s.restartLimit(1))
	assert.Equal(t, 400, s.restartLimit(2))
}

func TestLubyRestartLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestartStrategy = RestartLuby
	s, err := New(cnf.New(1), cfg)
	require.NoError(t, err)

	assert.Equal(t, 100, s.restartLimit(0))
	assert.Equal(t, 100, s.restartLimit(1))
	assert.Equal(t, 200, s.restartLimit(2))
}
