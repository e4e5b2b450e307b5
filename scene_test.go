package quadplane

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene(Rect{X: 10, Y: 20, Width: 300, Height: 200})
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "host" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "host")
	}
	if s.Host() != (Rect{X: 10, Y: 20, Width: 300, Height: 200}) {
		t.Errorf("Host() = %v", s.Host())
	}
	if !s.ShowAxisGuides {
		t.Error("axis guides should be on by default")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene(Rect{Width: 10, Height: 10})
	if s.Root() != s.root {
		t.Error("Root() should return the internal root panel")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(Rect{Width: 10, Height: 10})
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestSceneNowAccumulates(t *testing.T) {
	s := NewScene(Rect{Width: 10, Height: 10})
	s.Update(0.5)
	s.Update(0.25)
	assertNear(t, "Now", s.Now(), 0.75)
}

func TestSceneUpdateSkipsDetachedPanels(t *testing.T) {
	s := NewScene(Rect{Width: 10, Height: 10})
	p := NewPanel("orphan")
	a := NewBasicAnimation(KeyPathPosition, Vec2{}, Vec2{1, 1}, 1)
	p.AddAnimation("move", a)

	s.Update(1)
	if a.Elapsed() != 0 {
		t.Error("panels outside the tree should not advance")
	}
}

func TestSceneUpdateRemovalBySiblingCompletion(t *testing.T) {
	s, p := newHosted()
	var other []bool
	b := NewBasicAnimation(KeyPathBoundsSize, Vec2{}, Vec2{1, 1}, 1)
	b.OnStop = func(finished bool) { other = append(other, finished) }

	a := NewBasicAnimation(KeyPathPosition, Vec2{}, Vec2{1, 1}, 1)
	a.OnStop = func(bool) { p.RemoveAnimation("b") }
	p.AddAnimation("a", a)
	p.AddAnimation("b", b)

	// Both finish together; a's completion removes b before b is delivered.
	s.Update(1)
	if len(other) != 1 {
		t.Errorf("b OnStop calls = %v, want exactly one", other)
	}
}

func TestSceneDebugLogsStats(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s, p := newHosted()
	p.AddAnimation("move", NewBasicAnimation(KeyPathPosition, Vec2{}, Vec2{1, 1}, 1))
	s.SetDebugMode(true)
	s.Update(0.1)

	out := buf.String()
	if !strings.Contains(out, "scene update") || !strings.Contains(out, "advanced=1") {
		t.Errorf("log output = %q", out)
	}
}
