package quadplane

import (
	"encoding/json"
	"fmt"
)

// Config holds the controller's tunables. Durations are in seconds.
type Config struct {
	// PerspectiveDepth is the eye distance; the plane transform carries
	// m34 = -1/PerspectiveDepth.
	PerspectiveDepth float64 `json:"perspective_depth"`
	// RotationPeriod is the length of one continuous revolution.
	RotationPeriod float64 `json:"rotation_period"`
	// BreathDuration is the length of one expand or contract half-cycle.
	BreathDuration float64 `json:"breath_duration"`
	// BreathScale is the size factor reached at the end of an expansion.
	BreathScale float64 `json:"breath_scale"`
	// RotationStep is the increment, in degrees, of the step buttons.
	RotationStep float64 `json:"rotation_step_degrees"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		PerspectiveDepth: DefaultPerspectiveDepth,
		RotationPeriod:   5,
		BreathDuration:   5,
		BreathScale:      1.5,
		RotationStep:     15,
	}
}

// LoadConfig parses JSON over DefaultConfig, so absent fields keep their
// defaults, and validates the result.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"perspective_depth", c.PerspectiveDepth},
		{"rotation_period", c.RotationPeriod},
		{"breath_duration", c.BreathDuration},
		{"breath_scale", c.BreathScale},
		{"rotation_step_degrees", c.RotationStep},
	}
	for _, f := range fields {
		if !(f.v > 0) {
			return fmt.Errorf("config: %s must be positive, got %v", f.name, f.v)
		}
	}
	return nil
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Script, when set, is stepped once per frame before input.
	Script *ScriptRunner
	// ExitOnScriptDone ends the game loop once Script finishes.
	ExitOnScriptDone bool
}
