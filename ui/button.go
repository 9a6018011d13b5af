package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingarrune/retina/geom"
)

var _ Widget = (*Button)(nil)

// Button is a clickable leaf widget. A press followed by a release inside the
// bounds fires OnClick and, when callbacks are enabled, bubbles a
// TriggerClicked event to the parent.
type Button struct {
	Base

	Text    string
	OnClick func()

	// hoverT runs from 0 (idle) to 1 (hovered); advanced by Tick to animate
	// the hover highlight.
	hoverT float64
}

func NewButton(text string, onClick func()) *Button {
	b := &Button{
		Base:    newBase(),
		Text:    text,
		OnClick: onClick,
	}
	b.SetSize(geom.V(100, 30))
	return b
}

func (b *Button) MouseReleased(p geom.Vec2) Action {
	wasDown := b.mouseDown
	b.Base.MouseReleased(p)
	if wasDown && b.ContainsPoint(p) {
		if b.OnClick != nil {
			b.OnClick()
		}
		b.bubble(b, TriggerClicked, p.Sub(b.Position()))
	}
	return ActionNone
}

// Tick eases the hover highlight in and out.
func (b *Button) Tick(elapsed time.Duration) {
	const rate = 8 // full transition in 125ms
	step := rate * elapsed.Seconds()
	if b.hovered {
		b.hoverT += step
		if b.hoverT > 1 {
			b.hoverT = 1
		}
	} else {
		b.hoverT -= step
		if b.hoverT < 0 {
			b.hoverT = 0
		}
	}
}

func (b *Button) Draw(dst *ebiten.Image, origin geom.Vec2) {
	abs := origin.Add(b.Position())
	sz := b.ScaledSize()

	bg := lerpColor(
		color.RGBA{0x96, 0x96, 0x96, 0xff},
		color.RGBA{0xb4, 0xb4, 0xb4, 0xff},
		b.hoverT,
	)
	if b.mouseDown {
		bg = color.RGBA{0x64, 0x64, 0x64, 0xff}
	}

	vector.DrawFilledRect(dst, float32(abs.X), float32(abs.Y),
		float32(sz.X), float32(sz.Y), fade(bg, b.Opacity()), true)
	vector.StrokeRect(dst, float32(abs.X), float32(abs.Y),
		float32(sz.X), float32(sz.Y), 1, fade(color.RGBA{A: 0xff}, b.Opacity()), true)

	// Debug-font glyphs are 6x16 pixels.
	tx := abs.X + sz.X/2 - float64(len(b.Text))*3
	ty := abs.Y + sz.Y/2 - 8
	ebitenutil.DebugPrintAt(dst, b.Text, int(tx), int(ty))
}

func (b *Button) Clone() Widget {
	return &Button{
		Base:    b.cloneBase(),
		Text:    b.Text,
		OnClick: b.OnClick,
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}
