// Package ui is a retained-mode widget toolkit for Ebitengine. Containers own
// an ordered collection of widgets, route pointer events to the topmost widget
// under the cursor, and recompute child geometry through layout containers.
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/ingarrune/retina/geom"
)

// Widget is the capability interface every UI element implements. Concrete
// widgets embed Base, which provides the full default behavior, and override
// the methods they care about.
//
// Pointer positions are expressed in the coordinate space of the owning
// container: the same space as the widget's own Position.
type Widget interface {
	Position() geom.Vec2
	SetPosition(pos geom.Vec2)
	Size() geom.Vec2
	SetSize(size geom.Vec2)
	Scale() geom.Vec2
	SetScale(scale geom.Vec2)
	// ScaledSize is the size after applying the scale factors.
	ScaledSize() geom.Vec2

	Visible() bool
	SetVisible(visible bool)
	Enabled() bool
	SetEnabled(enabled bool)
	Focused() bool

	// Parent is the non-owning back-reference to the container that owns this
	// widget. It is used only for upward notification (callback bubbling and
	// removal requests), never for ownership.
	Parent() Container
	SetParent(parent Container)

	// Init is called exactly once by the owning container, after the parent
	// reference has been assigned.
	Init()

	// ContainsPoint is the hit test used by the event dispatcher.
	ContainsPoint(p geom.Vec2) bool

	MousePressed(p geom.Vec2)
	// MouseReleased reports an Action the owning dispatcher must execute after
	// the call returns. A widget never removes itself mid-call.
	MouseReleased(p geom.Vec2) Action
	MouseMoved(p geom.Vec2)
	// MouseLeft notifies the widget that the pointer is no longer over it.
	MouseLeft()
	// MouseNoLongerDown clears any pressed state after a release that was
	// delivered elsewhere.
	MouseNoLongerDown()

	FocusGained()
	FocusLost()

	// Tick advances time-based state such as hover transitions.
	Tick(elapsed time.Duration)

	// Draw renders the widget onto dst. origin is the composed offset of all
	// ancestor containers; the widget's own Position is relative to it.
	Draw(dst *ebiten.Image, origin geom.Vec2)

	// Clone returns a deep copy of the widget. Transient interaction state
	// (focus, hover, pressed, parent reference) is reset on the copy.
	Clone() Widget
}

// Container is the upward-facing interface a widget sees in its parent. The
// parent link is non-owning; containers exclusively own their children.
type Container interface {
	// AddCallback posts a semantic event produced by a descendant widget.
	// Containers forward it upward until it reaches the top-level queue.
	AddCallback(cb Callback)
	// Remove detaches the widget from the container. Removing an unknown
	// widget is a no-op and returns false.
	Remove(w Widget) bool
}

// Action is returned by MouseReleased and executed by the owning dispatcher.
type Action uint8

const (
	// ActionNone requests nothing.
	ActionNone Action = iota
	// ActionClose requests that the dispatcher remove the widget from its
	// container immediately after the handler returns.
	ActionClose
)

// Trigger identifies the semantic event carried by a Callback.
type Trigger uint8

const (
	TriggerClicked Trigger = iota
	TriggerClosed
	TriggerValueChanged
)

func (t Trigger) String() string {
	switch t {
	case TriggerClicked:
		return "clicked"
	case TriggerClosed:
		return "closed"
	case TriggerValueChanged:
		return "valueChanged"
	default:
		return "unknown"
	}
}

// Callback is the typed event a widget posts to its parent container. Widgets
// only produce callbacks when their callback ID is set to a nonzero value.
type Callback struct {
	Trigger Trigger
	// ID is the callback ID assigned to the source widget.
	ID uint
	// Source is the widget that produced the event.
	Source Widget
	// Value carries widget-specific data, e.g. the new slider value.
	Value geom.Vec2
}

// Lookup errors returned by Get and CopyName.
var (
	ErrNotFound  = errors.New("no widget with that name")
	ErrWrongKind = errors.New("widget has a different kind")
)
