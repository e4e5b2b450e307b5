package quadplane

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Axis    string  `json:"axis,omitempty"`
	Degrees float64 `json:"degrees,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script actions.
const (
	actionRotate          = "rotate"          // axis, degrees
	actionToggleRotation  = "toggleRotation"  // axis
	actionToggleBreathing = "toggleBreathing" //
	actionReset           = "reset"           //
	actionWait            = "wait"            // frames
)

// ScriptRunner replays controller actions across frames for automated runs.
// One step executes per frame; "wait" holds for a number of frames.
//
//	{"steps": [
//	  {"action": "toggleBreathing"},
//	  {"action": "wait", "frames": 120},
//	  {"action": "rotate", "axis": "y", "degrees": 30},
//	  {"action": "toggleBreathing"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and validates a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case actionRotate, actionToggleRotation:
		if _, ok := ParseAxis(st.Axis); !ok {
			return fmt.Errorf("%s: unknown axis %q", st.Action, st.Axis)
		}
	case actionToggleBreathing, actionReset:
	case actionWait:
		if st.Frames < 0 {
			return fmt.Errorf("wait: negative frames %d", st.Frames)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, executing at most one action.
func (r *ScriptRunner) Step(c *Controller) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	axis, _ := ParseAxis(st.Axis)
	switch st.Action {
	case actionRotate:
		c.RotateAxis(axis, st.Degrees)
	case actionToggleRotation:
		c.ToggleContinuousRotation(axis)
	case actionToggleBreathing:
		c.ToggleBreathing()
	case actionReset:
		c.ResetRotation()
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
