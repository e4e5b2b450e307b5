package quadplane

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.PerspectiveDepth != 500 || cfg.RotationPeriod != 5 || cfg.BreathDuration != 5 || cfg.BreathScale != 1.5 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"breath_duration": 2, "rotation_step_degrees": 45}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BreathDuration != 2 || cfg.RotationStep != 45 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PerspectiveDepth != 500 || cfg.RotationPeriod != 5 {
		t.Errorf("absent fields lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	_, err := LoadConfig([]byte(`{`))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("err = %v, want parse config error", err)
	}
}

func TestLoadConfigRejectsNonPositive(t *testing.T) {
	tests := []struct {
		json  string
		field string
	}{
		{`{"perspective_depth": 0}`, "perspective_depth"},
		{`{"rotation_period": -1}`, "rotation_period"},
		{`{"breath_scale": 0}`, "breath_scale"},
		{`{"rotation_step_degrees": -15}`, "rotation_step_degrees"},
	}
	for _, tt := range tests {
		_, err := LoadConfig([]byte(tt.json))
		if err == nil || !strings.Contains(err.Error(), tt.field) {
			t.Errorf("LoadConfig(%s) err = %v, want mention of %s", tt.json, err, tt.field)
		}
	}
}

func TestConfigDrivesController(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PerspectiveDepth = 1000
	cfg.BreathScale = 2
	cfg.BreathDuration = 1
	c := NewController(Rect{Width: 200, Height: 200}, cfg)

	assertNear(t, "m34", c.Plane().Transform.M34(), -1.0/1000)
	c.ToggleBreathing()
	if a := c.Plane().Animation("breathe"); a.To != (Vec2{100, 100}) || a.Duration != 1 {
		t.Errorf("breathe = %v over %v", a.To, a.Duration)
	}
}
