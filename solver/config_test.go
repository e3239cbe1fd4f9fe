package solver

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromMapOverridesDefaults(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]interface{}{
		"decisionPolarityDefault": "false",
		"restartInitialThreshold": 50,
		"restartGrowthFactor":     1.5,
		"clauseReductionFraction": 0.25,
	})
	require.NoError(t, err)
	assert.Equal(t, PolarityFalse, cfg.Polarity)
	assert.Equal(t, 50, cfg.RestartFirst)
	assert.Equal(t, 1.5, cfg.RestartInc)
	assert.Equal(t, 0.25, cfg.ReduceFraction)
	// Untouched options keep their defaults.
	assert.Equal(t, 0.95, cfg.VarDecay)
	assert.Equal(t, RestartGeometric, cfg.RestartStrategy)
}

func TestConfigFromMapRejectsBadValues(t *testing.T) {
	for name, m := range map[string]map[string]interface{}{
		"polarity":  {"decisionPolarityDefault": "maybe"},
		"decay":     {"activityDecayFactor": 2.0},
		"restart":   {"restartStrategy": "fibonacci"},
		"threshold": {"restartInitialThreshold": 0},
		"fraction":  {"clauseReductionFraction": 1.5},
	} {
		_, err := ConfigFromMap(m)
		assert.Error(t, err, name)
	}
}

func TestConfigFromYAML(t *testing.T) {
	doc := `
decisionPolarityDefault: saved
restartStrategy: luby
clauseReductionInterval: 500
timeLimit: 30s
`
	cfg, err := ConfigFromYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, RestartLuby, cfg.RestartStrategy)
	assert.Equal(t, uint64(500), cfg.ReduceInterval)
	assert.Equal(t, 30*time.Second, cfg.TimeLimit)
}

func TestConfigFromYAMLBadDocument(t *testing.T) {
	_, err := ConfigFromYAML(strings.NewReader("{"))
	assert.Error(t, err)
}
