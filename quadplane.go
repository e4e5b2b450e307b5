package quadplane

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Fixed palette used by the plane and its quadrants.
var (
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorWhite  = Color{1, 1, 1, 1}
)

// toRGBA converts to a premultiplied 8-bit color for ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, anchor points, and animated values.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the point t of the way from v to w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Scale returns s with both dimensions multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

// Vec2 returns s as a vector, the form animations interpolate.
func (s Size) Vec2() Vec2 {
	return Vec2{s.Width, s.Height}
}

// SizeOf converts an animated vector back into a Size.
func SizeOf(v Vec2) Size {
	return Size{v.X, v.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectOfSize returns a rectangle of size s anchored at the origin, the shape
// of a panel's own bounds.
func RectOfSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Mid returns the center point of the rectangle.
func (r Rect) Mid() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
