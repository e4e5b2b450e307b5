package quadplane

import "testing"

// traverseScene fills the render buffers without an ebiten.Image.
func traverseScene(s *Scene) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.traverse(s.root, IdentityTransform)
}

func TestTraverseEmitsPlaneAndQuadrants(t *testing.T) {
	c := NewController(Rect{Width: 300, Height: 300}, DefaultConfig())
	s := c.Scene()
	traverseScene(s)

	// The host root is transparent; the plane and four children draw.
	if len(s.vertices) != 20 {
		t.Errorf("vertices = %d, want 20", len(s.vertices))
	}
	if len(s.indices) != 30 {
		t.Errorf("indices = %d, want 30", len(s.indices))
	}
}

func TestTraverseOrderParentsFirst(t *testing.T) {
	c := NewController(Rect{Width: 300, Height: 300}, DefaultConfig())
	s := c.Scene()
	traverseScene(s)

	// First quad is the white plane.
	v := s.vertices[0]
	if v.ColorR != 1 || v.ColorG != 1 || v.ColorB != 1 || v.ColorA != 1 {
		t.Errorf("first vertex color = (%v, %v, %v, %v), want white", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if v.DstX != 112.5 || v.DstY != 112.5 {
		t.Errorf("plane top-left = (%v, %v), want (112.5, 112.5)", v.DstX, v.DstY)
	}

	// Then the children in child order.
	for i, child := range c.Plane().Children() {
		v := s.vertices[4*(i+1)]
		want := child.BackgroundColor
		if v.ColorR != float32(want.R) || v.ColorG != float32(want.G) || v.ColorB != float32(want.B) {
			t.Errorf("quad %d color mismatch for %s", i+1, child.Name)
		}
	}
}

func TestTraverseUsesPresentation(t *testing.T) {
	c := NewController(Rect{Width: 300, Height: 300}, DefaultConfig())
	c.ToggleBreathing()
	c.Update(5)
	s := c.Scene()
	traverseScene(s)

	// Expanded plane: 112.5 wide around (150, 150).
	v := s.vertices[0]
	if v.DstX != 93.75 || v.DstY != 93.75 {
		t.Errorf("expanded top-left = (%v, %v), want (93.75, 93.75)", v.DstX, v.DstY)
	}
}

func TestTraverseSkipsTransparent(t *testing.T) {
	s := NewScene(Rect{Width: 100, Height: 100})
	p := NewPanel("clear")
	p.Size = Size{10, 10}
	s.Root().AddChild(p)
	traverseScene(s)
	if len(s.vertices) != 0 {
		t.Errorf("vertices = %d, want 0 for transparent panels", len(s.vertices))
	}
}

func TestAppendQuadPremultiplies(t *testing.T) {
	quad := [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	verts, inds := appendQuad(nil, nil, quad, Color{1, 0.5, 0, 0.5})
	verts, inds = appendQuad(verts, inds, quad, ColorRed)

	if verts[0].ColorR != 0.5 || verts[0].ColorG != 0.25 || verts[0].ColorA != 0.5 {
		t.Errorf("premultiplied = (%v, %v, %v)", verts[0].ColorR, verts[0].ColorG, verts[0].ColorA)
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	for i := range want {
		if inds[i] != want[i] {
			t.Fatalf("indices = %v, want %v", inds, want)
		}
	}
}

func TestTraverseBehindEyeSkipped(t *testing.T) {
	s := NewScene(Rect{Width: 100, Height: 100})
	p := NewPanel("far")
	p.Size = Size{2000, 2000}
	p.Position = Vec2{50, 50}
	p.BackgroundColor = ColorRed
	p.Transform = MakeRotation(1.2, 0, 1, 0).Concat(IdentityTransform.WithPerspective(100))
	s.Root().AddChild(p)
	traverseScene(s)
	if len(s.vertices) != 0 {
		t.Errorf("vertices = %d, want 0 for a quad crossing the eye", len(s.vertices))
	}
}
