package quadplane

import "fmt"

// panelIDCounter is a plain counter (no atomic; quadplane is single-threaded).
var panelIDCounter uint32

func nextPanelID() uint32 {
	panelIDCounter++
	return panelIDCounter
}

// keyedAnimation is one entry in a panel's ordered animation list.
type keyedAnimation struct {
	key  string
	anim *Animation
}

// Panel is a transformable rectangle in the scene graph. The exported
// properties are the model values; animations never write them; the
// rendered state comes from Presentation.
type Panel struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Panel
	children []*Panel

	// Geometry (model). Position is the anchor point's location in the
	// parent's bounds space.
	Position    Vec2
	Size        Size
	AnchorPoint Vec2
	Transform   Transform3D

	BackgroundColor Color

	// quadrant is set once by SetQuadrant; zero means untagged.
	quadrant Quadrant

	animations []keyedAnimation

	disposed bool
}

// NewPanel creates an untagged panel with a centered anchor, identity
// transform, and transparent background.
func NewPanel(name string) *Panel {
	return &Panel{
		ID:          nextPanelID(),
		Name:        name,
		AnchorPoint: Vec2{0.5, 0.5},
		Transform:   IdentityTransform,
	}
}

// Bounds returns the panel's own rectangle: its size at the origin.
func (p *Panel) Bounds() Rect {
	return RectOfSize(p.Size)
}

// --- Quadrant tag ---

// SetQuadrant tags the panel with its quadrant identity.
// Panics if q is invalid or the panel is already tagged.
func (p *Panel) SetQuadrant(q Quadrant) {
	if !q.Valid() {
		panic(fmt.Sprintf("quadplane: invalid quadrant %d for panel %q", uint8(q), p.Name))
	}
	if p.quadrant != 0 {
		panic(fmt.Sprintf("quadplane: panel %q already tagged %s", p.Name, p.quadrant))
	}
	p.quadrant = q
}

// Quadrant returns the panel's tag and whether it has one.
func (p *Panel) Quadrant() (Quadrant, bool) {
	return p.quadrant, p.quadrant != 0
}

// QuadrantOf returns the quadrant identity of a tagged panel. A missing or
// invalid tag is a construction bug and panics.
func QuadrantOf(p *Panel) Quadrant {
	if p.quadrant == 0 {
		panic(fmt.Sprintf("quadplane: quadrant panel %q has no tag", p.Name))
	}
	if !p.quadrant.Valid() {
		panic(fmt.Sprintf("quadplane: invalid quadrant tag %d on panel %q", uint8(p.quadrant), p.Name))
	}
	return p.quadrant
}

// LayoutIn snaps the panel's position and size to its quadrant layout
// inside plane.
func (p *Panel) LayoutIn(plane Rect) {
	l := QuadrantOf(p).LayoutFor(plane)
	p.Position = l.Position
	p.Size = l.Size
}

// --- Tree manipulation ---

// AddChild appends child to this panel's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this panel (cycle).
func (p *Panel) AddChild(child *Panel) {
	if child == nil {
		panic("quadplane: cannot add nil child")
	}
	if p.disposed || child.disposed {
		panic(fmt.Sprintf("quadplane: AddChild with disposed panel (%q, %q)", p.Name, child.Name))
	}
	if isAncestor(child, p) {
		panic("quadplane: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = p
	p.children = append(p.children, child)
}

// RemoveChild detaches child from this panel.
// Panics if child.Parent != p.
func (p *Panel) RemoveChild(child *Panel) {
	if child.Parent != p {
		panic("quadplane: child's parent is not this panel")
	}
	p.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this panel from its parent.
// No-op if this panel has no parent.
func (p *Panel) RemoveFromParent() {
	if p.Parent == nil {
		return
	}
	p.Parent.RemoveChild(p)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (p *Panel) Children() []*Panel {
	return p.children
}

// NumChildren returns the number of children.
func (p *Panel) NumChildren() int {
	return len(p.children)
}

// ChildAt returns the child at the given index.
func (p *Panel) ChildAt(index int) *Panel {
	return p.children[index]
}

// ChildByQuadrant returns the child tagged q, or nil.
func (p *Panel) ChildByQuadrant(q Quadrant) *Panel {
	if !q.Valid() {
		return nil
	}
	for _, c := range p.children {
		if c.quadrant == q {
			return c
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this panel from its parent, removes its animations, and
// recursively disposes all descendants.
func (p *Panel) Dispose() {
	if p.disposed {
		return
	}
	p.RemoveFromParent()
	p.dispose()
}

func (p *Panel) dispose() {
	p.RemoveAllAnimations()
	p.disposed = true
	p.ID = 0
	for _, child := range p.children {
		child.Parent = nil
		child.dispose()
	}
	p.children = nil
	p.Parent = nil
}

// IsDisposed returns true if this panel has been disposed.
func (p *Panel) IsDisposed() bool {
	return p.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of panel.
func isAncestor(candidate, panel *Panel) bool {
	for q := panel; q != nil; q = q.Parent {
		if q == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from p.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (p *Panel) removeChildByPtr(child *Panel) {
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

// walk visits p and its descendants depth-first, parents before children.
func (p *Panel) walk(fn func(*Panel)) {
	fn(p)
	for _, c := range p.children {
		c.walk(fn)
	}
}
