package quadplane

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertTransform(t *testing.T, name string, got, want Transform3D) {
	t.Helper()
	for r := range got {
		for c := range got[r] {
			if math.Abs(got[r][c]-want[r][c]) > epsilon {
				t.Errorf("%s m%d%d = %v, want %v", name, r+1, c+1, got[r][c], want[r][c])
			}
		}
	}
}

// expectPanic runs fn and fails unless it panics with a message containing substr.
func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Errorf("panic = %q, want it to contain %q", msg, substr)
		}
	}()
	fn()
}

func TestIdentityConcat(t *testing.T) {
	m := MakeRotation(0.3, 1, 2, 3)
	assertTransform(t, "I·M", IdentityTransform.Concat(m), m)
	assertTransform(t, "M·I", m.Concat(IdentityTransform), m)
	if !IdentityTransform.IsIdentity() {
		t.Error("IdentityTransform.IsIdentity() = false")
	}
}

func TestMakeRotationZ90(t *testing.T) {
	m := MakeRotation(math.Pi/2, 0, 0, 1)
	x, y, z, w := m.Apply(1, 0, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
	assertNear(t, "z", z, 0)
	assertNear(t, "w", w, 1)
}

func TestMakeRotationZeroAxis(t *testing.T) {
	assertTransform(t, "zero axis", MakeRotation(1, 0, 0, 0), IdentityTransform)
}

func TestMakeRotationNormalizesAxis(t *testing.T) {
	assertTransform(t, "scaled axis", MakeRotation(0.7, 0, 5, 0), MakeRotation(0.7, 0, 1, 0))
}

func TestRotateAccumulates(t *testing.T) {
	got := IdentityTransform.Rotate(0.4, 1, 0, 0).Rotate(0.5, 1, 0, 0)
	assertTransform(t, "accumulated", got, MakeRotation(0.9, 1, 0, 0))
}

func TestRotatePrependsToExisting(t *testing.T) {
	base := MakeTranslation(10, 20, 0)
	got := base.Rotate(math.Pi/2, 0, 0, 1)
	// Rotation runs first, then the translation.
	x, y, _, _ := got.Apply(1, 0, 0)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 21)
}

func TestRotateAboutMatchesVector(t *testing.T) {
	for _, axis := range Axes {
		x, y, z := axis.Vector()
		assertTransform(t, axis.String(), IdentityTransform.RotateAbout(axis, 0.25), MakeRotation(0.25, x, y, z))
	}
}

func TestWithPerspective(t *testing.T) {
	m := IdentityTransform.WithPerspective(DefaultPerspectiveDepth)
	assertNear(t, "m34", m.M34(), -1.0/500)
	if m.IsIdentity() {
		t.Error("perspective transform should not be identity")
	}
}

func TestProjectPerspectiveForeshortens(t *testing.T) {
	theta := math.Pi / 3
	m := IdentityTransform.WithPerspective(500).Rotate(theta, 0, 1, 0)

	px, py, ok := m.Project(100, 0)
	if !ok {
		t.Fatal("point should be in front of the eye")
	}
	s, c := math.Sincos(theta)
	assertNear(t, "px", px, 100*c/(1+100*s/500))
	assertNear(t, "py", py, 0)

	// The near edge grows, the far edge shrinks.
	nx, _, _ := m.Project(-100, 0)
	if math.Abs(nx) <= math.Abs(px) {
		t.Errorf("near edge |%v| should exceed far edge |%v|", nx, px)
	}
}

func TestProjectBehindEye(t *testing.T) {
	m := IdentityTransform.WithPerspective(500).Rotate(math.Pi/2, 0, 1, 0)
	if _, _, ok := m.Project(-1000, 0); ok {
		t.Error("point past the eye should not project")
	}
}

func TestLocalTransformCentersAnchor(t *testing.T) {
	s := PanelState{Position: Vec2{150, 150}, Size: Size{75, 75}, Transform: IdentityTransform}
	m := localTransform(s, Vec2{0.5, 0.5})
	x, y, ok := m.Project(0, 0)
	if !ok {
		t.Fatal("corner should project")
	}
	assertNear(t, "x", x, 112.5)
	assertNear(t, "y", y, 112.5)
	x, y, _ = m.Project(37.5, 37.5)
	assertNear(t, "center x", x, 150)
	assertNear(t, "center y", y, 150)
}

func TestLocalTransformRotatesAboutAnchor(t *testing.T) {
	s := PanelState{
		Position:  Vec2{50, 50},
		Size:      Size{20, 20},
		Transform: MakeRotation(math.Pi/2, 0, 0, 1),
	}
	m := localTransform(s, Vec2{0.5, 0.5})
	// The anchor stays put under rotation.
	x, y, _ := m.Project(10, 10)
	assertNear(t, "anchor x", x, 50)
	assertNear(t, "anchor y", y, 50)
	// Top-left corner (-10,-10 from anchor) swings to (10,-10).
	x, y, _ = m.Project(0, 0)
	assertNear(t, "corner x", x, 60)
	assertNear(t, "corner y", y, 40)
}
