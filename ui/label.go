package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingarrune/retina/geom"
)

var _ Widget = (*Label)(nil)

// Label is a non-interactive text widget. It never claims pointer events:
// widgets behind it stay reachable.
type Label struct {
	Base

	Text string
}

func NewLabel(text string) *Label {
	l := &Label{
		Base: newBase(),
		Text: text,
	}
	l.SetSize(geom.V(float64(len(text))*6, 16))
	return l
}

// ContainsPoint always fails: labels are transparent to the dispatcher.
func (l *Label) ContainsPoint(p geom.Vec2) bool {
	return false
}

func (l *Label) Draw(dst *ebiten.Image, origin geom.Vec2) {
	abs := origin.Add(l.Position())
	ebitenutil.DebugPrintAt(dst, l.Text, int(abs.X), int(abs.Y))
}

func (l *Label) Clone() Widget {
	return &Label{
		Base: l.cloneBase(),
		Text: l.Text,
	}
}
