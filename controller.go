package quadplane

import "fmt"

// RotationState is the continuous-rotation state of one axis.
type RotationState uint8

const (
	RotationIdle       RotationState = iota // no spin attached
	RotationContinuous                      // spin attached and repeating
)

func (s RotationState) String() string {
	if s == RotationContinuous {
		return "continuous"
	}
	return "idle"
}

// rotationKey returns the plane's animation key for spinning about axis.
// Each axis has its own key so spins run concurrently.
func rotationKey(axis Axis) string {
	return "rotation." + axis.String()
}

// Controller owns the plane, the accumulated axis angles, and the
// animation state machines. It exposes the discrete actions a host UI
// binds to buttons. All methods must be called from the goroutine that
// calls Update.
type Controller struct {
	cfg   Config
	scene *Scene
	plane *Panel

	axes     AxisAngles
	rotation [len(Axes)]RotationState
	breath   breather

	sink EventSink
}

// NewController builds the scene over host: the plane centered in it with
// its four quadrant children. Panics on an invalid cfg.
func NewController(host Rect, cfg Config) *Controller {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("quadplane: %v", err))
	}
	scene := NewScene(host)
	plane := NewPlane(scene.Root().Bounds(), cfg.PerspectiveDepth)
	scene.Root().AddChild(plane)
	AddQuadrantChildren(plane)

	c := &Controller{cfg: cfg, scene: scene, plane: plane}
	c.breath.c = c
	return c
}

// Scene returns the scene hosting the plane.
func (c *Controller) Scene() *Scene { return c.scene }

// Plane returns the root plane panel.
func (c *Controller) Plane() *Panel { return c.plane }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Angle returns the accumulated discrete angle of axis.
func (c *Controller) Angle(axis Axis) float64 { return c.axes.Angle(axis) }

// RotationState returns the continuous-rotation state of axis.
func (c *Controller) RotationState(axis Axis) RotationState { return c.rotation[axis] }

// BreathState returns the breathing state machine's state.
func (c *Controller) BreathState() BreathState { return c.breath.state }

// Breathing reports whether a breathing session is running.
func (c *Controller) Breathing() bool { return c.breath.state == BreathCycling }

// SetEventSink sets the optional event receiver.
func (c *Controller) SetEventSink(sink EventSink) { c.sink = sink }

// Update advances the scene by dt seconds.
func (c *Controller) Update(dt float64) { c.scene.Update(dt) }

// Close tears the plane down: it is detached from the host and disposed
// with its children, which stops every spin and ends a breathing session
// as a cancel would. The controller must not be used afterwards. Close is
// idempotent.
func (c *Controller) Close() {
	if c.plane.IsDisposed() {
		return
	}
	c.plane.Dispose()
	c.rotation = [len(Axes)]RotationState{}
	Logger().Info("controller closed")
}

func (c *Controller) emit(e Event) {
	if c.sink == nil {
		return
	}
	e.Time = c.scene.Now()
	c.sink.EmitEvent(e)
}

// --- Discrete rotation ---

// RotateAxis applies an incremental rotation of degrees about axis.
func (c *Controller) RotateAxis(axis Axis, degrees float64) {
	c.IncrementalRotate(axis, Radians(degrees))
}

// IncrementalRotate adds angle to the axis's accumulated angle and composes
// the same rotation onto the plane's existing transform.
func (c *Controller) IncrementalRotate(axis Axis, angle float64) {
	acc := c.axes.Rotate(axis, angle)
	c.plane.Transform = c.plane.Transform.RotateAbout(axis, angle)
	Logger().Info("rotate", "axis", axis.String(), "by", angle, "angle", acc)
	c.emit(Event{Type: EventRotated, Axis: axis, Angle: acc})
}

// ResetRotation zeroes every axis angle and returns the plane transform to
// identity with the perspective coefficient re-applied. Child panels and
// running spins are left alone.
func (c *Controller) ResetRotation() {
	c.axes.ResetAll()
	c.plane.Transform = IdentityTransform.WithPerspective(c.cfg.PerspectiveDepth)
	Logger().Info("reset rotation")
	c.emit(Event{Type: EventRotationReset})
}

// --- Continuous rotation ---

// ToggleContinuousRotation starts or stops the repeating spin about axis.
//
// Starting spins from the accumulated angle to one full turn beyond it.
// Stopping removes the spin; the accumulated angle is not touched on
// either edge, so the rendered orientation snaps back to the model.
func (c *Controller) ToggleContinuousRotation(axis Axis) {
	switch c.rotation[axis] {
	case RotationIdle:
		from := c.axes.Angle(axis)
		a := NewScalarAnimation(axis.rotationKeyPath(), from, from+twoPi, c.cfg.RotationPeriod)
		a.RepeatCount = RepeatForever
		c.plane.AddAnimation(rotationKey(axis), a)
		c.rotation[axis] = RotationContinuous
		Logger().Info("continuous rotation on", "axis", axis.String(), "from", from)
		c.emit(Event{Type: EventContinuousRotationStarted, Axis: axis, Angle: from})
	case RotationContinuous:
		c.plane.RemoveAnimation(rotationKey(axis))
		c.rotation[axis] = RotationIdle
		Logger().Info("continuous rotation off", "axis", axis.String())
		c.emit(Event{Type: EventContinuousRotationStopped, Axis: axis, Angle: c.axes.Angle(axis)})
	}
}

// --- Breathing ---

// ToggleBreathing starts a breathing session from the plane's current size,
// or cancels the running one and restores the canonical layout.
func (c *Controller) ToggleBreathing() {
	switch c.breath.state {
	case BreathIdle:
		c.breath.start()
	case BreathCycling:
		c.breath.cancel()
	}
}
