package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingarrune/retina/geom"
)

var _ Widget = (*Slider2D)(nil)

// Slider2D is a leaf widget holding a 2D value bounded component-wise by a
// minimum and maximum. Dragging inside the track maps the cursor position
// proportionally into the value range.
type Slider2D struct {
	Base

	// ReturnToCenter resets the value to the midpoint of the bounds when the
	// pointer is released. Enabled by default.
	ReturnToCenter bool

	minimum geom.Vec2
	maximum geom.Vec2
	value   geom.Vec2
}

func NewSlider2D() *Slider2D {
	s := &Slider2D{
		Base:           newBase(),
		ReturnToCenter: true,
		minimum:        geom.V(-1, -1),
		maximum:        geom.V(1, 1),
	}
	s.SetSize(geom.V(100, 100))
	return s
}

// SetMinimum lowers the allowed range; the current value is re-clamped.
func (s *Slider2D) SetMinimum(minimum geom.Vec2) {
	s.minimum = minimum
	s.value = s.value.Clamp(s.minimum, s.maximum)
}

// SetMaximum raises the allowed range; the current value is re-clamped.
func (s *Slider2D) SetMaximum(maximum geom.Vec2) {
	s.maximum = maximum
	s.value = s.value.Clamp(s.minimum, s.maximum)
}

// SetValue clamps v component-wise into [minimum, maximum] and stores it.
func (s *Slider2D) SetValue(v geom.Vec2) {
	s.setValue(v)
}

func (s *Slider2D) Minimum() geom.Vec2 { return s.minimum }
func (s *Slider2D) Maximum() geom.Vec2 { return s.maximum }
func (s *Slider2D) Value() geom.Vec2   { return s.value }

// CenterThumb places the value at the midpoint of the bounds.
func (s *Slider2D) CenterThumb() {
	s.setValue(s.minimum.Add(s.maximum).Mul(0.5))
}

func (s *Slider2D) setValue(v geom.Vec2) {
	v = v.Clamp(s.minimum, s.maximum)
	if v == s.value {
		return
	}
	s.value = v
	s.bubble(s, TriggerValueChanged, s.value)
}

func (s *Slider2D) MousePressed(p geom.Vec2) {
	s.Base.MousePressed(p)
	s.setValue(s.valueAt(p))
}

func (s *Slider2D) MouseMoved(p geom.Vec2) {
	s.Base.MouseMoved(p)
	if s.mouseDown {
		s.setValue(s.valueAt(p))
	}
}

func (s *Slider2D) MouseReleased(p geom.Vec2) Action {
	wasDown := s.mouseDown
	s.Base.MouseReleased(p)
	if wasDown && s.ReturnToCenter {
		s.CenterThumb()
	}
	return ActionNone
}

func (s *Slider2D) MouseNoLongerDown() {
	wasDown := s.mouseDown
	s.Base.MouseNoLongerDown()
	if wasDown && s.ReturnToCenter {
		s.CenterThumb()
	}
}

// valueAt maps a cursor position through the track extent into the value
// range.
func (s *Slider2D) valueAt(p geom.Vec2) geom.Vec2 {
	sz := s.ScaledSize()
	local := p.Sub(s.Position())
	var rx, ry float64
	if sz.X > 0 {
		rx = local.X / sz.X
	}
	if sz.Y > 0 {
		ry = local.Y / sz.Y
	}
	span := s.maximum.Sub(s.minimum)
	return s.minimum.Add(geom.V(span.X*rx, span.Y*ry))
}

// thumbPos is the widget-local pixel position of the thumb center.
func (s *Slider2D) thumbPos() geom.Vec2 {
	sz := s.ScaledSize()
	span := s.maximum.Sub(s.minimum)
	var rx, ry float64
	if span.X != 0 {
		rx = (s.value.X - s.minimum.X) / span.X
	}
	if span.Y != 0 {
		ry = (s.value.Y - s.minimum.Y) / span.Y
	}
	return geom.V(sz.X*rx, sz.Y*ry)
}

func (s *Slider2D) Draw(dst *ebiten.Image, origin geom.Vec2) {
	abs := origin.Add(s.Position())
	sz := s.ScaledSize()

	track := color.RGBA{0x50, 0x50, 0x50, 0xff}
	if s.hovered {
		track = color.RGBA{0x5c, 0x5c, 0x5c, 0xff}
	}
	vector.DrawFilledRect(dst, float32(abs.X), float32(abs.Y),
		float32(sz.X), float32(sz.Y), fade(track, s.Opacity()), true)

	const thumbSize = 8
	tp := abs.Add(s.thumbPos())
	vector.DrawFilledRect(dst, float32(tp.X-thumbSize/2), float32(tp.Y-thumbSize/2),
		thumbSize, thumbSize, fade(color.RGBA{0xdc, 0xdc, 0xdc, 0xff}, s.Opacity()), true)
}

func (s *Slider2D) Clone() Widget {
	return &Slider2D{
		Base:           s.cloneBase(),
		ReturnToCenter: s.ReturnToCenter,
		minimum:        s.minimum,
		maximum:        s.maximum,
		value:          s.value,
	}
}
