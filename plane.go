package quadplane

// NewPlane creates the root plane centered in bounds, which is the host's
// own bounds rectangle; its origin is ignored. The plane is a square
// a quarter of the bounds width on each side, white, with the perspective
// coefficient for depth applied to an identity transform.
func NewPlane(bounds Rect, depth float64) *Panel {
	p := NewPanel("plane")
	p.Position = Vec2{bounds.Width / 2, bounds.Height / 2}
	p.Size = Size{bounds.Width / 4, bounds.Width / 4}
	p.BackgroundColor = ColorWhite
	p.Transform = IdentityTransform.WithPerspective(depth)
	return p
}

// AddQuadrantChildren appends one tagged, colored child per quadrant to
// plane, laid out against the plane's own bounds.
func AddQuadrantChildren(plane *Panel) {
	for _, q := range Quadrants {
		child := NewPanel(q.String())
		child.SetQuadrant(q)
		child.BackgroundColor = q.Color()
		child.LayoutIn(plane.Bounds())
		plane.AddChild(child)
	}
}
