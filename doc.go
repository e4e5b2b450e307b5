// Package quadplane is a small layered-animation engine and demo: a
// retained scene graph of rectangular panels, keyed interruptible
// animations, and a controller that rotates and "breathes" a plane split
// into four colored quadrants. Rendering runs on [Ebitengine]; interpolation
// uses [gween].
//
// # Quick start
//
//	c := quadplane.NewController(quadplane.HostRect(480, 600), quadplane.DefaultConfig())
//	if err := quadplane.Run(c, quadplane.RunConfig{
//		Title: "Quadplane", Width: 480, Height: 600,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive the controller from your own [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.c.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.c.Scene().Draw(s) }
//
// # Scene graph
//
// Every rectangle is a [Panel]. A panel's Position locates its anchor point
// (always the center) in its parent's bounds; its [Transform3D] is applied
// around the anchor. The plane carries a perspective coefficient so
// rotations about X and Y foreshorten.
//
// The plane's four children are tagged with a [Quadrant]. Lookup is always
// by tag through [QuadrantOf], which panics on an untagged panel.
//
// # Animations
//
// [Panel.AddAnimation] attaches an [Animation] under a key, replacing any
// animation already there. [Panel.RemoveAnimation] stops it and runs its
// OnStop before returning. A [Transaction] groups animations under one
// completion callback. Animations never write model properties; read the
// rendered state with [Panel.Presentation]. [Scene.Update] advances time.
//
// # Controller
//
// [Controller] exposes the demo's actions: [Controller.RotateAxis],
// [Controller.ToggleContinuousRotation], [Controller.ToggleBreathing], and
// [Controller.ResetRotation]. Continuous rotation is visual only and leaves
// the accumulated axis angles unchanged.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package quadplane
