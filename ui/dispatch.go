package ui

import (
	"github.com/ingarrune/retina/geom"
)

// Event routing. Positions handed to these methods are in the group's local
// coordinate space: the space the children's positions are expressed in.
// Container widgets translate the pointer before delegating here.
//
// At most one child handles a given event. The scan runs front to back so
// that overlapping widgets resolve to the one drawn on top.

// topWidgetAt returns the frontmost visible, enabled child whose hit test
// claims p, or nil.
func (g *Group) topWidgetAt(p geom.Vec2) Widget {
	for i := len(g.entries) - 1; i >= 0; i-- {
		w := g.entries[i].widget
		if !w.Visible() || !w.Enabled() {
			continue
		}
		if w.ContainsPoint(p) {
			return w
		}
	}
	return nil
}

// routeMove delivers a pointer move. While a child holds a pressed pointer it
// captures all moves regardless of the hit test, so drags keep working when
// the cursor outruns the widget. Otherwise the widget losing hover is
// notified strictly before the widget gaining it.
func (g *Group) routeMove(p geom.Vec2) {
	if g.pressed != nil {
		g.pressed.MouseMoved(p)
		return
	}
	target := g.topWidgetAt(p)
	if g.hovered != nil && g.hovered != target {
		g.hovered.MouseLeft()
	}
	g.hovered = target
	if target != nil {
		target.MouseMoved(p)
	}
}

// routePress delivers a press to the frontmost child under the cursor, moving
// focus to it. A press on empty container space is consumed by the container
// itself and clears focus.
func (g *Group) routePress(p geom.Vec2) {
	target := g.topWidgetAt(p)
	g.pressed = target
	if target == nil {
		g.Unfocus(g.focused)
		return
	}
	g.Focus(target)
	target.MousePressed(p)
}

// routeRelease delivers a release to the child that captured the press (or,
// lacking one, the child under the cursor), then clears pressed state on all
// others. If the handler requests removal the dispatcher executes it here,
// after the handler has returned.
func (g *Group) routeRelease(p geom.Vec2) {
	target := g.pressed
	if target == nil {
		target = g.topWidgetAt(p)
	}
	g.pressed = nil

	var act Action
	if target != nil {
		act = target.MouseReleased(p)
	}
	for _, e := range g.entries {
		if e.widget != target {
			e.widget.MouseNoLongerDown()
		}
	}
	if act == ActionClose && target != nil {
		g.Remove(target)
	}
}

// clearHover tells the hovered child the pointer is gone. Containers call
// this when the pointer moves onto a region that masks their children, such
// as a title bar.
func (g *Group) clearHover() {
	if g.hovered != nil {
		g.hovered.MouseLeft()
		g.hovered = nil
	}
}

// releaseButtons clears pressed state on every child.
func (g *Group) releaseButtons() {
	g.pressed = nil
	for _, e := range g.entries {
		e.widget.MouseNoLongerDown()
	}
}

// anyPressed reports whether any direct child currently holds a pressed
// pointer.
func (g *Group) anyPressed() bool {
	for _, e := range g.entries {
		if p, ok := e.widget.(interface{ isPressed() bool }); ok && p.isPressed() {
			return true
		}
	}
	return false
}
