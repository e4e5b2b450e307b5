package quadplane

import "math"

// Transform3D is a 4x4 homogeneous transform in row-vector convention: a
// point p maps to p·M, so t[r][c] is the element m(r+1)(c+1). Translation
// lives in the last row and the perspective coefficient m34 in t[2][3].
//
// Concatenation reads left to right: a.Concat(b) applies a first, then b.
type Transform3D [4][4]float64

// IdentityTransform is the identity matrix.
var IdentityTransform = Transform3D{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// DefaultPerspectiveDepth is the eye distance of the plane's projection,
// giving m34 = -1/500.
const DefaultPerspectiveDepth = 500

// wEpsilon bounds the homogeneous w below which a point is behind the eye.
const wEpsilon = 1e-9

// MakeTranslation returns a translation by (tx, ty, tz).
func MakeTranslation(tx, ty, tz float64) Transform3D {
	t := IdentityTransform
	t[3][0], t[3][1], t[3][2] = tx, ty, tz
	return t
}

// MakeRotation returns a rotation of angle radians about the vector
// (x, y, z). A zero-length vector yields the identity.
func MakeRotation(angle, x, y, z float64) Transform3D {
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return IdentityTransform
	}
	x, y, z = x/l, y/l, z/l

	s, c := math.Sincos(angle)
	k := 1 - c

	return Transform3D{
		{c + k*x*x, k*x*y + s*z, k*x*z - s*y, 0},
		{k*x*y - s*z, c + k*y*y, k*y*z + s*x, 0},
		{k*x*z + s*y, k*y*z - s*x, c + k*z*z, 0},
		{0, 0, 0, 1},
	}
}

// Concat returns t·b: t applied first, then b.
func (t Transform3D) Concat(b Transform3D) Transform3D {
	var m Transform3D
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = t[r][0]*b[0][c] + t[r][1]*b[1][c] + t[r][2]*b[2][c] + t[r][3]*b[3][c]
		}
	}
	return m
}

// Rotate prepends a rotation to t, so the rotation happens in t's local
// space before t itself. Repeated calls accumulate multiplicatively.
func (t Transform3D) Rotate(angle, x, y, z float64) Transform3D {
	return MakeRotation(angle, x, y, z).Concat(t)
}

// RotateAbout is Rotate with the axis given as an Axis.
func (t Transform3D) RotateAbout(axis Axis, angle float64) Transform3D {
	x, y, z := axis.Vector()
	return t.Rotate(angle, x, y, z)
}

// WithPerspective returns t with m34 set to -1/depth.
func (t Transform3D) WithPerspective(depth float64) Transform3D {
	t[2][3] = -1 / depth
	return t
}

// M34 returns the perspective coefficient.
func (t Transform3D) M34() float64 {
	return t[2][3]
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform3D) IsIdentity() bool {
	return t == IdentityTransform
}

// Apply maps the point (x, y, z, 1) and returns the homogeneous result.
func (t Transform3D) Apply(x, y, z float64) (ox, oy, oz, ow float64) {
	ox = x*t[0][0] + y*t[1][0] + z*t[2][0] + t[3][0]
	oy = x*t[0][1] + y*t[1][1] + z*t[2][1] + t[3][1]
	oz = x*t[0][2] + y*t[1][2] + z*t[2][2] + t[3][2]
	ow = x*t[0][3] + y*t[1][3] + z*t[2][3] + t[3][3]
	return
}

// Project maps the planar point (x, y, 0) and divides by w. ok is false when
// the point falls behind the eye.
func (t Transform3D) Project(x, y float64) (px, py float64, ok bool) {
	ox, oy, _, ow := t.Apply(x, y, 0)
	if ow < wEpsilon {
		return 0, 0, false
	}
	return ox / ow, oy / ow, true
}

// localTransform maps a panel's bounds space into its parent's bounds
// space: shift the anchor to the origin, apply the panel transform, then
// move the anchor to Position.
func localTransform(s PanelState, anchor Vec2) Transform3D {
	pre := MakeTranslation(-anchor.X*s.Size.Width, -anchor.Y*s.Size.Height, 0)
	post := MakeTranslation(s.Position.X, s.Position.Y, 0)
	return pre.Concat(s.Transform).Concat(post)
}
