package quadplane

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Axis identifies one of the three rotation dimensions.
type Axis uint8

const (
	AxisX Axis = iota // rotation about (1, 0, 0)
	AxisY             // rotation about (0, 1, 0)
	AxisZ             // rotation about (0, 0, 1)
)

// Axes lists every axis in X, Y, Z order.
var Axes = [...]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis accepts "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return 0, false
}

// Vector returns the unit vector of the axis.
func (a Axis) Vector() (x, y, z float64) {
	switch a {
	case AxisX:
		return 1, 0, 0
	case AxisY:
		return 0, 1, 0
	case AxisZ:
		return 0, 0, 1
	}
	panic(fmt.Sprintf("quadplane: invalid axis %d", uint8(a)))
}

// rotationKeyPath returns the transform.rotation key path for the axis.
func (a Axis) rotationKeyPath() KeyPath {
	switch a {
	case AxisX:
		return KeyPathRotationX
	case AxisY:
		return KeyPathRotationY
	case AxisZ:
		return KeyPathRotationZ
	}
	panic(fmt.Sprintf("quadplane: invalid axis %d", uint8(a)))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// AxisAngles tracks the accumulated discrete rotation of each axis. Angles
// are kept normalized into [0, 2π). The zero value has every angle at 0.
type AxisAngles struct {
	angles [len(Axes)]float64
}

// Rotate adds by to the axis angle, wraps it, and returns the new angle.
func (a *AxisAngles) Rotate(axis Axis, by float64) float64 {
	a.angles[axis] = normalizeAngle(a.angles[axis] + by)
	return a.angles[axis]
}

// Angle returns the accumulated angle of axis.
func (a *AxisAngles) Angle(axis Axis) float64 {
	return a.angles[axis]
}

// Reset zeroes the angle of axis.
func (a *AxisAngles) Reset(axis Axis) {
	a.angles[axis] = 0
}

// ResetAll zeroes every axis.
func (a *AxisAngles) ResetAll() {
	a.angles = [len(Axes)]float64{}
}

// normalizeAngle maps r into [0, 2π).
func normalizeAngle(r float64) float64 {
	r = math.Mod(r, twoPi)
	if r < 0 {
		r += twoPi
	}
	// A tiny negative remainder rounds up to exactly 2π.
	if r >= twoPi {
		r = 0
	}
	return r
}
