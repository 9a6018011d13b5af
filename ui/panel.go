package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingarrune/retina/geom"
)

// Panel is the basic container widget: a filled rectangle that owns child
// widgets, translates pointer events into its own coordinate space and
// forwards them to its group dispatcher. Children are positioned relative to
// the panel's top-left corner.
type Panel struct {
	Base
	Group

	Background color.RGBA
}

func NewPanel(width, height float64) *Panel {
	p := &Panel{
		Base:       newBase(),
		Background: color.RGBA{0x64, 0x64, 0x64, 0xc8},
	}
	p.Group.setup(p)
	p.Base.SetSize(geom.V(width, height))
	return p
}

// AddCallback bubbles descendant events to the panel's own parent. Events
// reaching a detached panel are dropped.
func (p *Panel) AddCallback(cb Callback) {
	if parent := p.Parent(); parent != nil {
		parent.AddCallback(cb)
	}
}

// local translates a point from the parent's space into the panel's child
// space.
func (p *Panel) local(pt geom.Vec2) geom.Vec2 {
	return pt.Sub(p.Position())
}

func (p *Panel) MousePressed(pt geom.Vec2) {
	p.Base.MousePressed(pt)
	p.routePress(p.local(pt))
}

func (p *Panel) MouseReleased(pt geom.Vec2) Action {
	p.Base.MouseReleased(pt)
	p.routeRelease(p.local(pt))
	return ActionNone
}

func (p *Panel) MouseMoved(pt geom.Vec2) {
	p.Base.MouseMoved(pt)
	p.routeMove(p.local(pt))
}

func (p *Panel) MouseLeft() {
	p.Base.MouseLeft()
	p.clearHover()
}

func (p *Panel) MouseNoLongerDown() {
	p.Base.MouseNoLongerDown()
	p.releaseButtons()
}

func (p *Panel) Tick(elapsed time.Duration) {
	p.Group.Tick(elapsed)
}

// cursorHint forwards the cursor shape query to the child under the pointer.
func (p *Panel) cursorHint(pt geom.Vec2) ebiten.CursorShapeType {
	local := p.local(pt)
	if h, ok := p.topWidgetAt(local).(cursorHinter); ok {
		return h.cursorHint(local)
	}
	return ebiten.CursorShapeDefault
}

func (p *Panel) Draw(dst *ebiten.Image, origin geom.Vec2) {
	abs := origin.Add(p.Position())
	sz := p.ScaledSize()
	vector.DrawFilledRect(dst, float32(abs.X), float32(abs.Y),
		float32(sz.X), float32(sz.Y), fade(p.Background, p.Opacity()), true)
	p.draw(dst, abs)
}

func (p *Panel) Clone() Widget {
	c := &Panel{
		Base:       p.cloneBase(),
		Background: p.Background,
	}
	c.Group.setup(c)
	p.Group.cloneInto(&c.Group)
	return c
}
