package quadplane

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// KeyPath names the panel property an Animation drives.
type KeyPath uint8

const (
	KeyPathPosition   KeyPath = iota + 1 // Position; value is the point
	KeyPathBoundsSize                    // Size; value is (width, height)
	KeyPathRotationX                     // rotation about x; value.X is radians
	KeyPathRotationY                     // rotation about y; value.X is radians
	KeyPathRotationZ                     // rotation about z; value.X is radians
)

func (k KeyPath) String() string {
	switch k {
	case KeyPathPosition:
		return "position"
	case KeyPathBoundsSize:
		return "bounds.size"
	case KeyPathRotationX:
		return "transform.rotation.x"
	case KeyPathRotationY:
		return "transform.rotation.y"
	case KeyPathRotationZ:
		return "transform.rotation.z"
	default:
		return fmt.Sprintf("KeyPath(%d)", uint8(k))
	}
}

// RepeatForever makes an animation repeat until it is removed.
var RepeatForever = math.Inf(1)

// Animation interpolates one panel property from From to To. Scalar key
// paths use only the X component of the values.
//
// An Animation is attached to at most one panel. Once attached, change it
// only by removing it and attaching a new one.
type Animation struct {
	KeyPath  KeyPath
	From, To Vec2

	// Duration is the length of one pass in seconds.
	Duration float64
	// RepeatCount is the number of passes. Values below 1 mean a single
	// pass; fractions stop part way through the final pass.
	RepeatCount float64
	// RemovedOnCompletion detaches the animation when it finishes. When
	// false, the animation stays attached holding its final value until it
	// is removed, so its presence tells a natural finish from a removal.
	RemovedOnCompletion bool
	// Easing shapes each pass. Nil means linear.
	Easing ease.TweenFunc
	// OnStop runs exactly once: at natural completion with finished=true,
	// or when removed or replaced first with finished=false.
	OnStop func(finished bool)

	owner    *Panel
	elapsed  float64
	pass     int
	tween    *gween.Tween
	progress float64
	finished bool
	stopped  bool
}

// NewBasicAnimation returns a single-pass linear animation that is removed
// on completion.
func NewBasicAnimation(keyPath KeyPath, from, to Vec2, duration float64) *Animation {
	return &Animation{
		KeyPath:             keyPath,
		From:                from,
		To:                  to,
		Duration:            duration,
		RepeatCount:         1,
		RemovedOnCompletion: true,
	}
}

// NewScalarAnimation is NewBasicAnimation for a scalar key path.
func NewScalarAnimation(keyPath KeyPath, from, to, duration float64) *Animation {
	return NewBasicAnimation(keyPath, Vec2{X: from}, Vec2{X: to}, duration)
}

// Value returns the animation's current interpolated value.
func (a *Animation) Value() Vec2 {
	switch {
	case a.progress <= 0:
		return a.From
	case a.progress >= 1:
		return a.To
	}
	return a.From.Lerp(a.To, a.progress)
}

// Finished reports whether the animation has run all of its passes.
func (a *Animation) Finished() bool {
	return a.finished
}

// Elapsed returns the seconds the animation has been running.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

func (a *Animation) passes() float64 {
	if a.RepeatCount < 1 {
		return 1
	}
	return a.RepeatCount
}

func (a *Animation) easing() ease.TweenFunc {
	if a.Easing == nil {
		return ease.Linear
	}
	return a.Easing
}

// advance moves the animation forward by dt seconds. It reports whether
// the animation finished during this call.
func (a *Animation) advance(dt float64) bool {
	if a.finished || a.stopped {
		return false
	}
	if a.Duration <= 0 {
		a.finish(1)
		return true
	}

	a.elapsed += dt
	passes := a.passes()
	if !math.IsInf(passes, 1) && a.elapsed >= a.Duration*passes {
		_, frac := math.Modf(passes)
		if frac == 0 {
			frac = 1
		}
		a.finish(a.easedAt(frac))
		return true
	}

	pass := int(a.elapsed / a.Duration)
	local := a.elapsed - float64(pass)*a.Duration
	if a.tween == nil || pass != a.pass {
		// Each pass gets a fresh tween from 0 to 1, caught up to the time
		// already spent inside it.
		a.pass = pass
		a.tween = gween.New(0, 1, float32(a.Duration), a.easing())
		v, _ := a.tween.Update(float32(local))
		a.progress = float64(v)
		return false
	}
	v, _ := a.tween.Update(float32(dt))
	a.progress = float64(v)
	return false
}

// easedAt evaluates the easing at a fraction of one pass.
func (a *Animation) easedAt(frac float64) float64 {
	if frac >= 1 {
		return 1
	}
	tw := gween.New(0, 1, float32(a.Duration), a.easing())
	v, _ := tw.Update(float32(frac * a.Duration))
	return float64(v)
}

func (a *Animation) finish(progress float64) {
	a.finished = true
	a.progress = progress
	a.tween = nil
}

// stop delivers OnStop once.
func (a *Animation) stop(finished bool) {
	if a.stopped {
		return
	}
	a.stopped = true
	if a.OnStop != nil {
		a.OnStop(finished)
	}
}

// --- Panel animation slots ---

// AddAnimation attaches a under key. An animation already stored under key
// is removed first and stops unfinished. Panics if a is nil or attached
// elsewhere.
func (p *Panel) AddAnimation(key string, a *Animation) {
	if a == nil {
		panic("quadplane: cannot add nil animation")
	}
	if a.owner != nil || a.stopped {
		panic(fmt.Sprintf("quadplane: animation for %s already used", a.KeyPath))
	}
	if p.disposed {
		panic(fmt.Sprintf("quadplane: AddAnimation on disposed panel %q", p.Name))
	}
	p.RemoveAnimation(key)
	a.owner = p
	p.animations = append(p.animations, keyedAnimation{key: key, anim: a})
	Logger().Debug("animation added", "panel", p.Name, "key", key, "keyPath", a.KeyPath.String())
}

// Animation returns the animation stored under key, or nil.
func (p *Panel) Animation(key string) *Animation {
	for _, e := range p.animations {
		if e.key == key {
			return e.anim
		}
	}
	return nil
}

// AnimationKeys returns the attached keys in attach order.
func (p *Panel) AnimationKeys() []string {
	keys := make([]string, len(p.animations))
	for i, e := range p.animations {
		keys[i] = e.key
	}
	return keys
}

// NumAnimations returns the number of attached animations.
func (p *Panel) NumAnimations() int {
	return len(p.animations)
}

// RemoveAnimation detaches the animation under key. If it had not yet
// finished, its OnStop runs with finished=false before RemoveAnimation
// returns. No-op when key is absent.
func (p *Panel) RemoveAnimation(key string) {
	for i, e := range p.animations {
		if e.key == key {
			p.detachAt(i)
			e.anim.stop(false)
			return
		}
	}
}

// RemoveAllAnimations removes every attached animation in attach order.
func (p *Panel) RemoveAllAnimations() {
	for len(p.animations) > 0 {
		p.RemoveAnimation(p.animations[0].key)
	}
}

// removeIfAttached detaches a when it is still stored on p.
func (p *Panel) removeIfAttached(a *Animation) {
	for i, e := range p.animations {
		if e.anim == a {
			p.detachAt(i)
			return
		}
	}
}

func (p *Panel) detachAt(i int) {
	a := p.animations[i].anim
	copy(p.animations[i:], p.animations[i+1:])
	p.animations[len(p.animations)-1] = keyedAnimation{}
	p.animations = p.animations[:len(p.animations)-1]
	a.owner = nil
}
