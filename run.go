package quadplane

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is an on-screen control bound to a controller action. Selected,
// when set, reads the highlight state from the controller so the button
// never owns state of its own.
type Button struct {
	Label    string
	Rect     Rect
	Action   func()
	Selected func() bool
}

var (
	buttonFill         = Color{0.15, 0.15, 0.2, 1}
	buttonSelectedFill = Color{0.25, 0.45, 0.85, 1}
	buttonOutline      = Color{1, 1, 1, 0.6}
)

const (
	buttonHeight  = 28
	buttonSpacing = 6
	// ButtonAreaHeight is the strip below the host reserved for buttons.
	ButtonAreaHeight = 2*buttonHeight + 3*buttonSpacing
)

// HostRect returns the host rectangle for a window of the given size: the
// full width above the button strip.
func HostRect(width, height int) Rect {
	return Rect{Width: float64(width), Height: float64(height - ButtonAreaHeight)}
}

// NewButtons lays out the demo controls for c in the strip below the host.
// The first row toggles continuous rotation per axis, breathing, and reset;
// the second applies step rotations.
func NewButtons(c *Controller, width, height int) []Button {
	step := c.Config().RotationStep
	top := float64(height-ButtonAreaHeight) + buttonSpacing

	var row1 []Button
	for _, axis := range Axes {
		row1 = append(row1, Button{
			Label:    strings.ToUpper(axis.String()),
			Action:   func() { c.ToggleContinuousRotation(axis) },
			Selected: func() bool { return c.RotationState(axis) == RotationContinuous },
		})
	}
	row1 = append(row1,
		Button{Label: "Breathe", Action: c.ToggleBreathing, Selected: c.Breathing},
		Button{Label: "Reset", Action: c.ResetRotation},
	)

	var row2 []Button
	for _, axis := range Axes {
		name := strings.ToUpper(axis.String())
		row2 = append(row2,
			Button{Label: name + "-", Action: func() { c.RotateAxis(axis, -step) }},
			Button{Label: name + "+", Action: func() { c.RotateAxis(axis, step) }},
		)
	}

	layoutRow(row1, float64(width), top)
	layoutRow(row2, float64(width), top+buttonHeight+buttonSpacing)
	return append(row1, row2...)
}

// layoutRow spreads buttons evenly across width at y.
func layoutRow(buttons []Button, width, y float64) {
	n := float64(len(buttons))
	w := (width - (n+1)*buttonSpacing) / n
	for i := range buttons {
		buttons[i].Rect = Rect{
			X:      buttonSpacing + float64(i)*(w+buttonSpacing),
			Y:      y,
			Width:  w,
			Height: buttonHeight,
		}
	}
}

// hitButton returns the button under (x, y), or nil.
func hitButton(buttons []Button, x, y float64) *Button {
	for i := range buttons {
		if buttons[i].Rect.Contains(x, y) {
			return &buttons[i]
		}
	}
	return nil
}

func drawButtons(screen *ebiten.Image, buttons []Button) {
	for _, b := range buttons {
		fill := buttonFill
		if b.Selected != nil && b.Selected() {
			fill = buttonSelectedFill
		}
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill.toRGBA(), false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, buttonOutline.toRGBA(), false)
		// DebugPrint glyphs are 6x16.
		tx := r.X + (r.Width-float64(6*len(b.Label)))/2
		ty := r.Y + (r.Height-16)/2
		ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
	}
}

// key bindings mirror the buttons.
var (
	toggleKeys = map[ebiten.Key]Axis{ebiten.KeyX: AxisX, ebiten.KeyY: AxisY, ebiten.KeyZ: AxisZ}
	stepKeys   = []struct {
		key  ebiten.Key
		axis Axis
		sign float64
	}{
		{ebiten.KeyArrowUp, AxisX, 1},
		{ebiten.KeyArrowDown, AxisX, -1},
		{ebiten.KeyArrowRight, AxisY, 1},
		{ebiten.KeyArrowLeft, AxisY, -1},
		{ebiten.KeyPeriod, AxisZ, 1},
		{ebiten.KeyComma, AxisZ, -1},
	}
)

// game adapts a Controller to ebiten.Game.
type game struct {
	c       *Controller
	cfg     RunConfig
	buttons []Button
	touches []ebiten.TouchID
}

// Run opens a window and drives c until the window closes, the script
// finishes with ExitOnScriptDone, or Escape is pressed. c is closed when
// the loop ends.
func Run(c *Controller, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= ButtonAreaHeight {
		return fmt.Errorf("run: window %dx%d too small", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{c: c, cfg: cfg, buttons: NewButtons(c, cfg.Width, cfg.Height)}
	err := ebiten.RunGame(g)
	c.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if r := g.cfg.Script; r != nil {
		r.Step(g.c)
		if r.Done() && g.cfg.ExitOnScriptDone {
			return ebiten.Termination
		}
	}

	g.handleKeys()
	g.handlePointer()

	g.c.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) handleKeys() {
	for key, axis := range toggleKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.c.ToggleContinuousRotation(axis)
		}
	}
	step := g.c.Config().RotationStep
	for _, k := range stepKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.c.RotateAxis(k.axis, k.sign*step)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.c.ToggleBreathing()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.c.ResetRotation()
	}
}

func (g *game) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.press(float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.press(float64(x), float64(y))
	}
}

func (g *game) press(x, y float64) {
	if b := hitButton(g.buttons, x, y); b != nil && b.Action != nil {
		b.Action()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.c.Scene().Draw(screen)
	drawButtons(screen, g.buttons)
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *game) status() string {
	var b strings.Builder
	for _, axis := range Axes {
		fmt.Fprintf(&b, "%s: %6.1f deg  %s\n", strings.ToUpper(axis.String()), Degrees(g.c.Angle(axis)), g.c.RotationState(axis))
	}
	fmt.Fprintf(&b, "breathing: %s", g.c.BreathState())
	if g.c.Breathing() {
		fmt.Fprintf(&b, " (%s, half-cycle %d)", g.c.BreathDirection(), g.c.BreathCycle())
	}
	if g.cfg.ShowFPS {
		fmt.Fprintf(&b, "\nFPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return b.String()
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
