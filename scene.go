package quadplane

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the animation host: it owns the root host panel, advances
// every attached animation, and renders presentation state.
type Scene struct {
	root  *Panel
	debug bool

	// ShowAxisGuides draws a crosshair through the center of the host.
	ShowAxisGuides bool
	// ClearColor fills the screen before panels are drawn.
	ClearColor Color

	// now is the total simulated time in seconds.
	now float64

	tickBuf []*Animation
	doneBuf []*Animation

	// Render buffers, reused across frames.
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScene creates a scene whose root host panel covers host.
func NewScene(host Rect) *Scene {
	root := NewPanel("host")
	root.Size = host.Size()
	root.Position = host.Mid()
	return &Scene{
		root:           root,
		ShowAxisGuides: true,
		ClearColor:     Color{0.2, 0.2, 0.25, 1},
	}
}

// Root returns the scene's host panel.
func (s *Scene) Root() *Panel {
	return s.root
}

// Host returns the rectangle the root host panel covers.
func (s *Scene) Host() Rect {
	m := s.root.Position
	return Rect{
		X:      m.X - s.root.AnchorPoint.X*s.root.Size.Width,
		Y:      m.Y - s.root.AnchorPoint.Y*s.root.Size.Height,
		Width:  s.root.Size.Width,
		Height: s.root.Size.Height,
	}
}

// Now returns the simulated time advanced so far, in seconds.
func (s *Scene) Now() float64 {
	return s.now
}

// Update advances every attached animation by dt seconds.
//
// The animations to advance are collected up front in tree order, then all
// are advanced, then the completions are delivered. Animations attached by a
// completion callback therefore start on the next Update.
func (s *Scene) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.now += dt
	s.tickBuf = s.tickBuf[:0]
	s.root.walk(func(p *Panel) {
		for _, e := range p.animations {
			s.tickBuf = append(s.tickBuf, e.anim)
		}
	})

	s.doneBuf = s.doneBuf[:0]
	for _, a := range s.tickBuf {
		if a.owner == nil {
			continue
		}
		if a.advance(dt) {
			s.doneBuf = append(s.doneBuf, a)
		}
	}

	for _, a := range s.doneBuf {
		if a.RemovedOnCompletion && a.owner != nil {
			a.owner.removeIfAttached(a)
		}
		a.stop(true)
	}

	if s.debug {
		Logger().Debug("scene update",
			"dt", dt,
			"advanced", len(s.tickBuf),
			"finished", len(s.doneBuf),
			"elapsed", time.Since(t0))
	}

	clear(s.tickBuf)
	clear(s.doneBuf)
}

// SetDebugMode enables or disables per-update statistics on the logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
