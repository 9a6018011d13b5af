package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingarrune/retina/geom"
)

// cursorHinter lets a widget choose the cursor shape while hovered.
type cursorHinter interface {
	cursorHint(pt geom.Vec2) ebiten.CursorShapeType
}

// Controller is the top of the widget tree. It polls ebiten's mouse state
// once per frame, synthesizes press/move/release events into the root panel,
// advances the animation clock, and owns the callback queue that widgets
// bubble their semantic events into.
type Controller struct {
	root      *Panel
	callbacks []Callback

	prevDown    bool
	lastCursorX int
	lastCursorY int
	lastTick    time.Time
}

func NewController(width, height int) *Controller {
	c := &Controller{
		root:     NewPanel(float64(width), float64(height)),
		lastTick: time.Now(),
	}
	// The root panel bubbles into the controller's queue.
	c.root.SetParent(c)
	return c
}

// Root is the top-level container widgets are added to.
func (c *Controller) Root() *Panel { return c.root }

// AddCallback implements Container: the controller is the end of the
// bubbling chain.
func (c *Controller) AddCallback(cb Callback) {
	c.callbacks = append(c.callbacks, cb)
}

// Remove implements Container. The root panel is not removable.
func (c *Controller) Remove(w Widget) bool { return false }

// PollCallback pops the oldest queued callback.
func (c *Controller) PollCallback() (Callback, bool) {
	if len(c.callbacks) == 0 {
		return Callback{}, false
	}
	cb := c.callbacks[0]
	c.callbacks = c.callbacks[1:]
	return cb, true
}

// Update translates the current mouse state into widget events and ticks the
// tree. Call it once per ebiten Update.
func (c *Controller) Update() error {
	x, y := ebiten.CursorPosition()
	p := geom.V(float64(x), float64(y))
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if x != c.lastCursorX || y != c.lastCursorY {
		c.root.MouseMoved(p)
		c.lastCursorX, c.lastCursorY = x, y
	}
	if down && !c.prevDown {
		c.root.MousePressed(p)
	} else if !down && c.prevDown {
		c.root.MouseReleased(p)
	}
	c.prevDown = down

	c.updateCursorShape(p)

	now := time.Now()
	c.root.Tick(now.Sub(c.lastTick))
	c.lastTick = now
	return nil
}

func (c *Controller) updateCursorShape(p geom.Vec2) {
	shape := ebiten.CursorShapeDefault
	if h, ok := c.root.topWidgetAt(p).(cursorHinter); ok {
		shape = h.cursorHint(p)
	}
	ebiten.SetCursorShape(shape)
}

// Draw renders the tree onto screen.
func (c *Controller) Draw(screen *ebiten.Image) {
	c.root.draw(screen, geom.Vec2{})
}

// UpdateWindowSize resizes the root to the new window dimensions.
func (c *Controller) UpdateWindowSize(width, height int) {
	c.root.SetSize(geom.V(float64(width), float64(height)))
}

// IsInteracting reports whether any top-level widget currently holds a
// pressed pointer, so the host application can ignore the same input.
func (c *Controller) IsInteracting() bool {
	return c.root.anyPressed()
}
