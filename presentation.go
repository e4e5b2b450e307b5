package quadplane

// PanelState is the geometry of a panel at one instant.
type PanelState struct {
	Position  Vec2
	Size      Size
	Transform Transform3D
}

// ModelState returns the panel's model geometry, ignoring animations.
func (p *Panel) ModelState() PanelState {
	return PanelState{Position: p.Position, Size: p.Size, Transform: p.Transform}
}

// Presentation returns the geometry as currently rendered: the model state
// with every attached animation applied in attach order. Held animations
// keep contributing their final value until they are removed.
//
// Rotation key paths treat the model transform as sitting at the
// animation's From angle and rotate it by value - From about the axis.
func (p *Panel) Presentation() PanelState {
	s := p.ModelState()
	for _, e := range p.animations {
		a := e.anim
		v := a.Value()
		switch a.KeyPath {
		case KeyPathPosition:
			s.Position = v
		case KeyPathBoundsSize:
			s.Size = SizeOf(v)
		case KeyPathRotationX:
			s.Transform = s.Transform.RotateAbout(AxisX, v.X-a.From.X)
		case KeyPathRotationY:
			s.Transform = s.Transform.RotateAbout(AxisY, v.X-a.From.X)
		case KeyPathRotationZ:
			s.Transform = s.Transform.RotateAbout(AxisZ, v.X-a.From.X)
		}
	}
	return s
}

// WorldTransform returns the matrix mapping the panel's bounds space to the
// root's parent space, using presentation state at every level.
func (p *Panel) WorldTransform() Transform3D {
	m := localTransform(p.Presentation(), p.AnchorPoint)
	for q := p.Parent; q != nil; q = q.Parent {
		m = m.Concat(localTransform(q.Presentation(), q.AnchorPoint))
	}
	return m
}

// Quad returns the panel's four corners projected into the root's parent
// space, clockwise from the top-left. ok is false when any corner falls
// behind the eye.
func (p *Panel) Quad() (quad [4]Vec2, ok bool) {
	return projectQuad(p.WorldTransform(), p.Presentation().Size)
}

func projectQuad(world Transform3D, size Size) (quad [4]Vec2, ok bool) {
	corners := [4]Vec2{
		{0, 0},
		{size.Width, 0},
		{size.Width, size.Height},
		{0, size.Height},
	}
	for i, c := range corners {
		x, y, visible := world.Project(c.X, c.Y)
		if !visible {
			return quad, false
		}
		quad[i] = Vec2{x, y}
	}
	return quad, true
}
