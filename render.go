package quadplane

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is the source image for solid panels, created on first draw.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// axisGuideColor is the crosshair color: white at 0.8 alpha.
var axisGuideColor = Color{1, 1, 1, 0.8}

const axisGuideWidth = 2

// Draw renders the scene's presentation state onto screen. Panels are drawn
// parents first, in child order, with their projected quads in one batch.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	if s.ShowAxisGuides {
		s.drawAxisGuides(screen)
	}

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	s.traverse(s.root, IdentityTransform)
	if len(s.indices) == 0 {
		return
	}
	screen.DrawTriangles(s.vertices, s.indices, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// traverse appends p's quad and recurses into its children, composing
// world transforms from presentation state on the way down.
func (s *Scene) traverse(p *Panel, parentWorld Transform3D) {
	state := p.Presentation()
	world := localTransform(state, p.AnchorPoint).Concat(parentWorld)

	if p.BackgroundColor.A > 0 {
		if quad, ok := projectQuad(world, state.Size); ok {
			s.vertices, s.indices = appendQuad(s.vertices, s.indices, quad, p.BackgroundColor)
		}
	}

	for _, c := range p.children {
		s.traverse(c, world)
	}
}

// appendQuad appends two triangles covering quad in a solid, premultiplied
// color.
func appendQuad(verts []ebiten.Vertex, inds []uint16, quad [4]Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(verts))
	ca := float32(c.A)
	cr := float32(c.R) * ca
	cg := float32(c.G) * ca
	cb := float32(c.B) * ca
	for _, q := range quad {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(q.X),
			DstY:   float32(q.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	inds = append(inds, base, base+1, base+2, base, base+2, base+3)
	return verts, inds
}

// drawAxisGuides strokes a vertical and a horizontal line through the
// center of the host rectangle.
func (s *Scene) drawAxisGuides(screen *ebiten.Image) {
	h := s.Host()
	m := h.Mid()
	clr := axisGuideColor.toRGBA()
	vector.StrokeLine(screen, float32(m.X), float32(h.Y), float32(m.X), float32(h.Y+h.Height), axisGuideWidth, clr, true)
	vector.StrokeLine(screen, float32(h.X), float32(m.Y), float32(h.X+h.Width), float32(m.Y), axisGuideWidth, clr, true)
}
