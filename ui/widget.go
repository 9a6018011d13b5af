package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingarrune/retina/geom"
)

// Base carries the state and default behavior shared by all widgets: geometry,
// visibility, enablement, focus, pressed/hover tracking and the parent
// back-reference. It implements Widget on its own; concrete widgets embed it
// and override what they need.
type Base struct {
	pos   geom.Vec2
	size  geom.Vec2
	scale geom.Vec2

	visible bool
	enabled bool

	focused   bool
	hovered   bool
	mouseDown bool

	opacity    uint8
	callbackID uint

	parent Container
}

func newBase() Base {
	return Base{
		scale:   geom.V(1, 1),
		visible: true,
		enabled: true,
		opacity: 0xff,
	}
}

func (b *Base) Position() geom.Vec2       { return b.pos }
func (b *Base) SetPosition(pos geom.Vec2) { b.pos = pos }
func (b *Base) Size() geom.Vec2           { return b.size }
func (b *Base) SetSize(size geom.Vec2)    { b.size = size }
func (b *Base) Scale() geom.Vec2          { return b.scale }
func (b *Base) SetScale(scale geom.Vec2)  { b.scale = scale }

func (b *Base) ScaledSize() geom.Vec2 {
	return b.size.ScaleBy(b.scale)
}

func (b *Base) Visible() bool           { return b.visible }
func (b *Base) SetVisible(visible bool) { b.visible = visible }
func (b *Base) Enabled() bool           { return b.enabled }
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *Base) Focused() bool           { return b.focused }

func (b *Base) Parent() Container          { return b.parent }
func (b *Base) SetParent(parent Container) { b.parent = parent }

func (b *Base) Init() {}

// SetCallbackID enables callback bubbling for this widget. A zero ID (the
// default) disables it.
func (b *Base) SetCallbackID(id uint) { b.callbackID = id }
func (b *Base) CallbackID() uint      { return b.callbackID }

// SetOpacity sets the uniform alpha applied to the widget's visuals.
func (b *Base) SetOpacity(alpha uint8) { b.opacity = alpha }
func (b *Base) Opacity() uint8         { return b.opacity }

// ContainsPoint tests p against the widget's scaled bounding rectangle.
func (b *Base) ContainsPoint(p geom.Vec2) bool {
	sz := b.ScaledSize()
	return geom.R(b.pos.X, b.pos.Y, sz.X, sz.Y).Contains(p)
}

func (b *Base) MousePressed(p geom.Vec2) {
	b.mouseDown = true
}

func (b *Base) MouseReleased(p geom.Vec2) Action {
	b.mouseDown = false
	return ActionNone
}

func (b *Base) MouseMoved(p geom.Vec2) {
	b.hovered = true
}

func (b *Base) MouseLeft() {
	b.hovered = false
}

func (b *Base) MouseNoLongerDown() {
	b.mouseDown = false
}

func (b *Base) FocusGained() { b.focused = true }
func (b *Base) FocusLost()   { b.focused = false }

func (b *Base) Tick(elapsed time.Duration) {}

func (b *Base) Draw(dst *ebiten.Image, origin geom.Vec2) {}

func (b *Base) Clone() Widget {
	c := b.cloneBase()
	return &c
}

// cloneBase copies the persistent state and resets the transient interaction
// state and the parent reference.
func (b *Base) cloneBase() Base {
	c := *b
	c.focused = false
	c.hovered = false
	c.mouseDown = false
	c.parent = nil
	return c
}

// isPressed reports whether the widget currently holds a pressed pointer.
// Used by Controller to tell the host application that the UI is busy.
func (b *Base) isPressed() bool { return b.mouseDown }

// bubble posts a callback to the parent container if callbacks are enabled.
func (b *Base) bubble(w Widget, trigger Trigger, value geom.Vec2) {
	if b.callbackID == 0 || b.parent == nil {
		return
	}
	b.parent.AddCallback(Callback{
		Trigger: trigger,
		ID:      b.callbackID,
		Source:  w,
		Value:   value,
	})
}
