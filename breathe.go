package quadplane

// BreathState is the state of the breathing state machine.
type BreathState uint8

const (
	BreathIdle       BreathState = iota // no session
	BreathCycling                       // a half-cycle is animating
	BreathCancelling                    // animations are being removed; completion restores layout
)

func (s BreathState) String() string {
	switch s {
	case BreathCycling:
		return "cycling"
	case BreathCancelling:
		return "cancelling"
	default:
		return "idle"
	}
}

// BreathDirection says which way the current half-cycle goes.
type BreathDirection uint8

const (
	BreathExpanding BreathDirection = iota
	BreathContracting
)

func (d BreathDirection) String() string {
	if d == BreathContracting {
		return "contracting"
	}
	return "expanding"
}

// Animation keys used by breathing. The plane's key is the one whose
// presence marks a live session; children reuse fixed per-property keys.
const (
	breatheKey       = "breathe"
	childPositionKey = "position"
	childSizeKey     = "size"
)

// breather runs the ping-pong expand/contract loop on the plane and its
// children. Each half-cycle is one transaction; its completion either
// reverses (Cycling) or restores the original layout (Cancelling).
type breather struct {
	c *Controller

	state     BreathState
	direction BreathDirection
	original  Size
	cycle     int
	tx        *Transaction
	// held is the plane's animation for the current half-cycle. The session
	// is live only while it is still attached under breatheKey.
	held *Animation
}

// BreathDirection returns the direction of the running half-cycle.
func (c *Controller) BreathDirection() BreathDirection { return c.breath.direction }

// BreathCycle returns the number of half-cycles begun in this session.
func (c *Controller) BreathCycle() int { return c.breath.cycle }

func (b *breather) start() {
	size := b.c.plane.Size
	b.original = size
	b.cycle = 0
	Logger().Info("breathing start", "size", size)
	b.c.emit(Event{Type: EventBreathingStarted, Size: size})
	b.resize(size, size.Scale(b.c.cfg.BreathScale), BreathExpanding)
}

// resize animates the plane from one size to another, with every child
// following its quadrant layout, as a single transaction.
func (b *breather) resize(from, to Size, dir BreathDirection) {
	plane := b.c.plane
	duration := b.c.cfg.BreathDuration

	b.state = BreathCycling
	b.direction = dir
	b.cycle++

	tx := BeginTransaction()
	b.tx = tx
	tx.SetCompletion(func() { b.completed(tx, from, to) })

	a := NewBasicAnimation(KeyPathBoundsSize, from.Vec2(), to.Vec2(), duration)
	a.RemovedOnCompletion = false
	a.OnStop = func(finished bool) {
		// Removed from outside mid half-cycle: the children must not keep
		// animating without the plane.
		if !finished && b.tx == tx && b.state == BreathCycling {
			b.cancel()
		}
	}
	b.held = a
	tx.AddAnimation(plane, breatheKey, a)

	fromRect, toRect := RectOfSize(from), RectOfSize(to)
	for _, child := range plane.Children() {
		q := QuadrantOf(child)
		start, end := q.LayoutFor(fromRect), q.LayoutFor(toRect)

		pos := NewBasicAnimation(KeyPathPosition, start.Position, end.Position, duration)
		pos.RemovedOnCompletion = false
		tx.AddAnimation(child, childPositionKey, pos)

		sz := NewBasicAnimation(KeyPathBoundsSize, start.Size.Vec2(), end.Size.Vec2(), duration)
		sz.RemovedOnCompletion = false
		tx.AddAnimation(child, childSizeKey, sz)
	}

	tx.Commit()
}

// completed runs once per half-cycle transaction.
func (b *breather) completed(tx *Transaction, from, to Size) {
	if tx != b.tx {
		return
	}
	if b.state == BreathCycling && b.c.plane.Animation(breatheKey) != b.held {
		b.state = BreathCancelling
	}
	switch b.state {
	case BreathCancelling:
		plane := b.c.plane
		plane.Size = b.original
		rect := RectOfSize(b.original)
		for _, child := range plane.Children() {
			child.LayoutIn(rect)
		}
		b.state = BreathIdle
		b.tx = nil
		b.held = nil
		Logger().Info("breathing cancelled", "restored", b.original, "cycles", b.cycle)
		b.c.emit(Event{Type: EventBreathingCancelled, Size: b.original, Cycle: b.cycle})
	case BreathCycling:
		// Every member already stopped, so this removal cannot complete
		// the transaction a second time.
		b.removeAnimations()
		next := BreathContracting
		if b.direction == BreathContracting {
			next = BreathExpanding
		}
		b.resize(to, from, next)
		Logger().Debug("breathing reversed", "direction", next.String(), "cycle", b.cycle)
		b.c.emit(Event{Type: EventBreathingReversed, Size: from, Cycle: b.cycle})
	}
}

// cancel removes the session's animations. The last removal completes the
// transaction synchronously, which restores the layout. Removing the
// plane's breathe animation from outside lands here too.
func (b *breather) cancel() {
	b.state = BreathCancelling
	b.removeAnimations()
}

func (b *breather) removeAnimations() {
	plane := b.c.plane
	for _, child := range plane.Children() {
		child.RemoveAnimation(childPositionKey)
		child.RemoveAnimation(childSizeKey)
	}
	plane.RemoveAnimation(breatheKey)
}
