package ui

import (
	"github.com/ingarrune/retina/geom"
)

// Axis selects the main direction of a layout box.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// sizePolicy is the per-child sizing rule of a Box. A nonzero fixed size
// overrides the ratio.
type sizePolicy struct {
	fixed float64
	ratio float64
}

// Box is a one-dimensional layout container. Children are placed along the
// main axis in insertion order; each child either keeps a fixed extent or
// receives a share of the remaining space proportional to its ratio. The
// cross-axis extent of every child is forced to the box's full cross extent.
//
// Fixed sizes exceeding the box extent are not clamped: ratio children may
// then receive negative extents, which downstream rendering treats as empty.
type Box struct {
	Panel

	axis     Axis
	policies map[Widget]sizePolicy
}

// NewHorizontalLayout creates a Box laying children out left to right.
func NewHorizontalLayout(width, height float64) *Box {
	return newBox(Horizontal, width, height)
}

// NewVerticalLayout creates a Box laying children out top to bottom.
func NewVerticalLayout(width, height float64) *Box {
	return newBox(Vertical, width, height)
}

func newBox(axis Axis, width, height float64) *Box {
	b := &Box{
		axis:     axis,
		policies: make(map[Widget]sizePolicy),
	}
	b.Base = newBase()
	b.Group.setup(b)
	b.Base.SetSize(geom.V(width, height))
	return b
}

// Add appends w with a default ratio of 1 and recomputes the layout.
func (b *Box) Add(name string, w Widget) Widget {
	b.Panel.Add(name, w)
	b.policies[w] = sizePolicy{ratio: 1}
	b.Refresh()
	return w
}

// SetRatio assigns w a relative share of the non-fixed space.
func (b *Box) SetRatio(w Widget, ratio float64) {
	pol := b.policies[w]
	pol.ratio = ratio
	pol.fixed = 0
	b.policies[w] = pol
	b.Refresh()
}

// SetFixedSize pins w to a fixed extent along the main axis, overriding its
// ratio. A zero size reverts to ratio sizing.
func (b *Box) SetFixedSize(w Widget, size float64) {
	pol := b.policies[w]
	pol.fixed = size
	b.policies[w] = pol
	b.Refresh()
}

func (b *Box) Remove(w Widget) bool {
	if !b.Panel.Remove(w) {
		return false
	}
	delete(b.policies, w)
	b.Refresh()
	return true
}

func (b *Box) RemoveName(name string) bool {
	if w := b.get(name); w != nil {
		return b.Remove(w)
	}
	return false
}

func (b *Box) RemoveAll() {
	b.Panel.RemoveAll()
	b.policies = make(map[Widget]sizePolicy)
}

func (b *Box) SetSize(size geom.Vec2) {
	b.Base.SetSize(size)
	b.Refresh()
}

// Refresh recomputes every child's position and size from the box extent and
// the sizing policies. Children are walked in insertion order, accumulating
// an offset along the main axis.
func (b *Box) Refresh() {
	extent := axisMain(b.axis, b.Size())
	cross := axisCross(b.axis, b.Size())

	var sumFixed, sumRatio float64
	for _, w := range b.Widgets() {
		pol := b.policies[w]
		if pol.fixed != 0 {
			sumFixed += pol.fixed
		} else {
			sumRatio += pol.ratio
		}
	}

	remaining := extent - sumFixed
	var offset float64
	for _, w := range b.Widgets() {
		pol := b.policies[w]
		size := pol.fixed
		if pol.fixed == 0 {
			// A ratio sum of zero would divide to NaN; such children
			// degrade to zero extent instead.
			if sumRatio > 0 {
				size = remaining * pol.ratio / sumRatio
			} else {
				size = 0
			}
		}
		w.SetPosition(axisPoint(b.axis, offset, 0))
		w.SetSize(axisPoint(b.axis, size, cross))
		offset += size
	}
}

func (b *Box) Clone() Widget {
	c := newBox(b.axis, b.Size().X, b.Size().Y)
	c.Base = b.cloneBase()
	c.Background = b.Background
	for _, e := range b.Group.entries {
		clone := e.widget.Clone()
		c.Panel.Add(e.name, clone)
		c.policies[clone] = b.policies[e.widget]
	}
	c.Refresh()
	return c
}

func axisMain(a Axis, v geom.Vec2) float64 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

func axisCross(a Axis, v geom.Vec2) float64 {
	if a == Horizontal {
		return v.Y
	}
	return v.X
}

func axisPoint(a Axis, main, cross float64) geom.Vec2 {
	if a == Horizontal {
		return geom.V(main, cross)
	}
	return geom.V(cross, main)
}
