package solver

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PolarityMode selects the polarity of a fresh decision literal.
type PolarityMode string

const (
	PolarityTrue  PolarityMode = "true"
	PolarityFalse PolarityMode = "false"
	// PolaritySaved reuses the value the variable last held before it
	// was unassigned (phase saving).
	PolaritySaved PolarityMode = "saved"
)

// RestartStrategy selects the restart schedule.
type RestartStrategy string

const (
	RestartGeometric RestartStrategy = "geometric"
	RestartLuby      RestartStrategy = "luby"
)

// Config holds the search tunables. The decay, growth and reduction
// constants affect performance, not correctness; the defaults follow
// common CDCL practice and can be overridden per invocation.
type Config struct {
	Polarity        PolarityMode    `mapstructure:"decisionPolarityDefault"`
	VarInc          float64         `mapstructure:"activityBumpIncrement"`
	VarDecay        float64         `mapstructure:"activityDecayFactor"`
	ClauseInc       float64         `mapstructure:"clauseActivityBumpIncrement"`
	ClauseDecay     float64         `mapstructure:"clauseActivityDecayFactor"`
	RestartFirst    int             `mapstructure:"restartInitialThreshold"`
	RestartInc      float64         `mapstructure:"restartGrowthFactor"`
	RestartStrategy RestartStrategy `mapstructure:"restartStrategy"`
	ReduceInterval  uint64          `mapstructure:"clauseReductionInterval"`
	ReduceFraction  float64         `mapstructure:"clauseReductionFraction"`

	// MaxDecisions and TimeLimit bound the search; zero means
	// unbounded. Both are checked once per decision, never inside
	// propagation.
	MaxDecisions uint64        `mapstructure:"maxDecisions"`
	TimeLimit    time.Duration `mapstructure:"timeLimit"`

	Verbose bool         `mapstructure:"verbose"`
	Logger  *slog.Logger `mapstructure:"-"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Polarity:        PolaritySaved,
		VarInc:          1.0,
		VarDecay:        0.95,
		ClauseInc:       1.0,
		ClauseDecay:     0.999,
		RestartFirst:    100,
		RestartInc:      2.0,
		RestartStrategy: RestartGeometric,
		ReduceInterval:  2000,
		ReduceFraction:  0.5,
	}
}

func (c Config) validate() error {
	switch c.Polarity {
	case PolarityTrue, PolarityFalse, PolaritySaved:
	default:
		return fmt.Errorf("unknown decisionPolarityDefault: %q", c.Polarity)
	}
	switch c.RestartStrategy {
	case RestartGeometric, RestartLuby:
	default:
		return fmt.Errorf("unknown restartStrategy: %q", c.RestartStrategy)
	}
	if c.VarDecay <= 0 || c.VarDecay > 1 {
		return fmt.Errorf("activityDecayFactor must be in (0, 1]: %v", c.VarDecay)
	}
	if c.ClauseDecay <= 0 || c.ClauseDecay > 1 {
		return fmt.Errorf("clauseActivityDecayFactor must be in (0, 1]: %v", c.ClauseDecay)
	}
	if c.RestartFirst <= 0 {
		return fmt.Errorf("restartInitialThreshold must be positive: %d", c.RestartFirst)
	}
	if c.RestartInc < 1 {
		return fmt.Errorf("restartGrowthFactor must be >= 1: %v", c.RestartInc)
	}
	if c.ReduceFraction < 0 || c.ReduceFraction > 1 {
		return fmt.Errorf("clauseReductionFraction must be in [0, 1]: %v", c.ReduceFraction)
	}
	return nil
}

// ConfigFromMap decodes recognized options over the defaults.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &cfg,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(m); err != nil {
		return cfg, fmt.Errorf("cannot decode solver config: %w", err)
	}
	return cfg, cfg.validate()
}

// ConfigFromYAML reads a YAML document of recognized options.
func ConfigFromYAML(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return DefaultConfig(), err
	}
	m := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return DefaultConfig(), fmt.Errorf("cannot parse solver config: %w", err)
	}
	return ConfigFromMap(m)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
