package quadplane

// EventType identifies a controller event.
type EventType uint8

const (
	EventRotated                   EventType = iota // an incremental rotation was applied
	EventRotationReset                              // axes and plane transform returned to identity
	EventContinuousRotationStarted                  // a per-axis spin was attached
	EventContinuousRotationStopped                  // a per-axis spin was removed
	EventBreathingStarted                           // a fresh breathing session began
	EventBreathingReversed                          // a half-cycle finished and the next one started
	EventBreathingCancelled                         // breathing was stopped and the layout restored
)

func (t EventType) String() string {
	switch t {
	case EventRotated:
		return "rotated"
	case EventRotationReset:
		return "rotation-reset"
	case EventContinuousRotationStarted:
		return "continuous-rotation-started"
	case EventContinuousRotationStopped:
		return "continuous-rotation-stopped"
	case EventBreathingStarted:
		return "breathing-started"
	case EventBreathingReversed:
		return "breathing-reversed"
	case EventBreathingCancelled:
		return "breathing-cancelled"
	default:
		return "unknown"
	}
}

// Event carries controller state at the moment of an action.
type Event struct {
	Type EventType
	// Axis and Angle are valid for rotation events. Angle is the
	// accumulated angle after the action.
	Axis  Axis
	Angle float64
	// Size is the plane's size for breathing events: the original size for
	// start and cancel, the size the new half-cycle heads to for reverse.
	Size Size
	// Cycle counts half-cycles in the current breathing session.
	Cycle int
	// Time is the scene clock in seconds.
	Time float64
}

// EventSink receives controller events. Set one with
// Controller.SetEventSink; the ecs submodule provides a Donburi adapter.
type EventSink interface {
	EmitEvent(event Event)
}
