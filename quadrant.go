package quadplane

import "fmt"

// Quadrant is the fixed identity of one of the plane's four child panels.
// The zero value means "untagged" and is never a valid identity.
type Quadrant uint8

const (
	QuadrantNW Quadrant = iota + 1 // top-left, black
	QuadrantNE                     // top-right, red
	QuadrantSE                     // bottom-right, yellow
	QuadrantSW                     // bottom-left, white
)

// Quadrants lists the four identities in creation order. Code must look
// panels up by tag, never by their index in this list.
var Quadrants = [...]Quadrant{QuadrantNW, QuadrantNE, QuadrantSE, QuadrantSW}

// Layout is the placement of a quadrant panel inside its plane.
type Layout struct {
	Position Vec2
	Size     Size
}

// Valid reports whether q is one of the four identities.
func (q Quadrant) Valid() bool {
	return q >= QuadrantNW && q <= QuadrantSW
}

func (q Quadrant) String() string {
	switch q {
	case QuadrantNW:
		return "NW"
	case QuadrantNE:
		return "NE"
	case QuadrantSE:
		return "SE"
	case QuadrantSW:
		return "SW"
	default:
		return fmt.Sprintf("Quadrant(%d)", uint8(q))
	}
}

// ParseQuadrant returns the quadrant named s ("NW", "NE", "SE" or "SW").
func ParseQuadrant(s string) (Quadrant, bool) {
	for _, q := range Quadrants {
		if q.String() == s {
			return q, true
		}
	}
	return 0, false
}

// LayoutFor places q inside plane. Positions sit at the quarter and
// three-quarter marks of each dimension and every panel is half the plane's
// width on both sides, so panels overlap when the plane is not square.
// Only the plane's size is used; its origin is ignored.
func (q Quadrant) LayoutFor(plane Rect) Layout {
	qw := plane.Width / 4
	qh := plane.Height / 4

	var pos Vec2
	switch q {
	case QuadrantNW:
		pos = Vec2{qw, qh}
	case QuadrantNE:
		pos = Vec2{3 * qw, qh}
	case QuadrantSE:
		pos = Vec2{3 * qw, 3 * qh}
	case QuadrantSW:
		pos = Vec2{qw, 3 * qh}
	default:
		panic(fmt.Sprintf("quadplane: layout for invalid quadrant %d", uint8(q)))
	}

	return Layout{Position: pos, Size: Size{plane.Width / 2, plane.Width / 2}}
}

// Color returns the fixed background color of q.
func (q Quadrant) Color() Color {
	switch q {
	case QuadrantNW:
		return ColorBlack
	case QuadrantNE:
		return ColorRed
	case QuadrantSE:
		return ColorYellow
	case QuadrantSW:
		return ColorWhite
	}
	panic(fmt.Sprintf("quadplane: color for invalid quadrant %d", uint8(q)))
}
