package ui

import (
	"image/color"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ingarrune/retina/geom"
)

var shapeLogger = log.WithField("component", "shape")

var _ Widget = (*Shape)(nil)

// whitePixel is the triangle fill source, allocated on first draw so that
// headless code paths never touch the GPU.
var whitePixel *ebiten.Image

// Shape is a filled-polygon leaf widget. The outline is stored in
// widget-local coordinates; hit testing uses the even-odd rule, so concave
// outlines hit-test exactly. Rendering triangulates the outline once and
// caches the result.
type Shape struct {
	Base

	Fill color.RGBA

	points  []geom.Vec2
	indices []uint16
}

// NewShape builds a shape from an outline in any coordinate space. The
// outline is normalized so its bounding box origin becomes the widget
// position.
func NewShape(outline []geom.Vec2, fill color.RGBA) *Shape {
	s := &Shape{
		Base: newBase(),
		Fill: fill,
	}
	s.SetOutline(outline)
	return s
}

// SetOutline replaces the polygon outline and retriangulates.
func (s *Shape) SetOutline(outline []geom.Vec2) {
	if len(outline) == 0 {
		s.points = nil
		s.indices = nil
		s.SetSize(geom.Vec2{})
		return
	}
	min, max := outline[0], outline[0]
	for _, p := range outline[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	s.points = make([]geom.Vec2, len(outline))
	for i, p := range outline {
		s.points[i] = p.Sub(min)
	}
	s.SetPosition(s.Position().Add(min))
	s.SetSize(max.Sub(min))
	s.triangulate()
}

// Outline returns a copy of the widget-local polygon points. Mutating the
// returned slice does not affect the shape.
func (s *Shape) Outline() []geom.Vec2 {
	return append([]geom.Vec2(nil), s.points...)
}

func (s *Shape) triangulate() {
	flat := make([]float64, 0, len(s.points)*2)
	for _, p := range s.points {
		flat = append(flat, p.X, p.Y)
	}
	idx, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		shapeLogger.WithError(err).Warn("triangulation failed; shape will not fill")
		s.indices = nil
		return
	}
	s.indices = make([]uint16, len(idx))
	for i, v := range idx {
		s.indices[i] = uint16(v)
	}
}

// ContainsPoint tests the polygon with an even-odd ray cast, not the
// bounding box.
func (s *Shape) ContainsPoint(p geom.Vec2) bool {
	if len(s.points) < 3 {
		return false
	}
	local := p.Sub(s.Position())
	sc := s.Scale()
	if sc.X != 0 {
		local.X /= sc.X
	}
	if sc.Y != 0 {
		local.Y /= sc.Y
	}
	inside := false
	n := len(s.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := s.points[i], s.points[j]
		if (a.Y > local.Y) != (b.Y > local.Y) &&
			local.X < (b.X-a.X)*(local.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func (s *Shape) Draw(dst *ebiten.Image, origin geom.Vec2) {
	if len(s.indices) == 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	abs := origin.Add(s.Position())
	sc := s.Scale()
	fill := fade(s.Fill, s.Opacity())
	cr := float32(fill.R) / 0xff
	cg := float32(fill.G) / 0xff
	cb := float32(fill.B) / 0xff
	ca := float32(fill.A) / 0xff

	verts := make([]ebiten.Vertex, len(s.points))
	for i, p := range s.points {
		verts[i] = ebiten.Vertex{
			DstX:   float32(abs.X + p.X*sc.X),
			DstY:   float32(abs.Y + p.Y*sc.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	dst.DrawTriangles(verts, s.indices, whitePixel, nil)
}

func (s *Shape) Clone() Widget {
	c := &Shape{
		Base: s.cloneBase(),
		Fill: s.Fill,
	}
	c.points = append([]geom.Vec2(nil), s.points...)
	c.indices = append([]uint16(nil), s.indices...)
	return c
}
