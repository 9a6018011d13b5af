package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/ingarrune/retina/geom"
)

// entry pairs a widget with the name it was added under. Insertion order is
// the z-order: the first entry is drawn first (back), the last entry is drawn
// last (front) and hit-tested first.
type entry struct {
	name   string
	widget Widget
}

// Group owns an ordered collection of named widgets and dispatches pointer
// events to them. It is embedded by every container widget (Panel,
// ChildWindow, layout boxes) and by the top-level Controller root.
//
// Names need not be unique; lookups return the first match in insertion
// order. The empty name is reserved for internal, nameless widgets and never
// matches a lookup.
type Group struct {
	// host is the container widgets see as their parent. It is the widget the
	// group is embedded in, or the controller for the root group.
	host Container

	entries []entry

	// At most one child is focused, hovered or pressed at a time.
	focused Widget
	hovered Widget
	pressed Widget
}

func (g *Group) setup(host Container) {
	g.host = host
}

// Add takes ownership of w, assigns it name, appends it to the child
// sequence and invokes its post-construction hook. The widget handle is
// returned; names may collide, identities never do.
func (g *Group) Add(name string, w Widget) Widget {
	w.SetParent(g.host)
	g.entries = append(g.entries, entry{name: name, widget: w})
	w.Init()
	return w
}

// get returns the first widget added under name, or nil. The empty name
// never matches.
func (g *Group) get(name string) Widget {
	if name == "" {
		return nil
	}
	for _, e := range g.entries {
		if e.name == name {
			return e.widget
		}
	}
	return nil
}

// Get looks up the first widget added under name and asserts it has kind T.
// It returns ErrNotFound when no widget matches (or name is empty) and
// ErrWrongKind when the widget is not a T.
func Get[T Widget](g *Group, name string) (T, error) {
	var zero T
	w := g.get(name)
	if w == nil {
		return zero, errors.Wrapf(ErrNotFound, "lookup %q", name)
	}
	t, ok := w.(T)
	if !ok {
		return zero, errors.Wrapf(ErrWrongKind, "widget %q is %T", name, w)
	}
	return t, nil
}

// Copy deep-clones src, preserving its concrete kind and persistent state,
// and adds the clone under newName.
func (g *Group) Copy(src Widget, newName string) Widget {
	return g.Add(newName, src.Clone())
}

// CopyName clones the first widget added under oldName. It returns
// ErrNotFound when no widget matches.
func (g *Group) CopyName(oldName, newName string) (Widget, error) {
	src := g.get(oldName)
	if src == nil {
		return nil, errors.Wrapf(ErrNotFound, "copy %q", oldName)
	}
	return g.Copy(src, newName), nil
}

// Remove detaches w. Removing the focused widget clears focus; removing an
// unknown widget is a no-op.
func (g *Group) Remove(w Widget) bool {
	for i, e := range g.entries {
		if e.widget != w {
			continue
		}
		g.entries = append(g.entries[:i], g.entries[i+1:]...)
		g.forget(w)
		return true
	}
	return false
}

// RemoveName removes the first widget added under name.
func (g *Group) RemoveName(name string) bool {
	if w := g.get(name); w != nil {
		return g.Remove(w)
	}
	return false
}

// RemoveAll detaches every child and clears focus.
func (g *Group) RemoveAll() {
	g.entries = nil
	g.focused = nil
	g.hovered = nil
	g.pressed = nil
}

// forget drops the dispatcher references pointing at a removed widget.
func (g *Group) forget(w Widget) {
	if g.focused == w {
		g.focused = nil
	}
	if g.hovered == w {
		g.hovered = nil
	}
	if g.pressed == w {
		g.pressed = nil
	}
}

// Focus gives w the single focus slot of this container, unfocusing the
// previously focused child first.
func (g *Group) Focus(w Widget) {
	if g.focused == w {
		return
	}
	if g.focused != nil {
		g.focused.FocusLost()
	}
	g.focused = w
	if w != nil {
		w.FocusGained()
	}
}

// Unfocus clears focus if w currently holds it.
func (g *Group) Unfocus(w Widget) {
	if g.focused != w || w == nil {
		return
	}
	w.FocusLost()
	g.focused = nil
}

// FocusedWidget returns the currently focused child, or nil.
func (g *Group) FocusedWidget() Widget { return g.focused }

// MoveToFront relocates w to the end of the sequence: drawn last, hit-tested
// first.
func (g *Group) MoveToFront(w Widget) {
	for i, e := range g.entries {
		if e.widget == w {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			g.entries = append(g.entries, e)
			return
		}
	}
}

// MoveToBack relocates w to the start of the sequence: drawn first, hit-tested
// last.
func (g *Group) MoveToBack(w Widget) {
	for i, e := range g.entries {
		if e.widget == w {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			g.entries = append([]entry{e}, g.entries...)
			return
		}
	}
}

// Widgets returns the children in z-order (back to front).
func (g *Group) Widgets() []Widget {
	out := make([]Widget, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.widget
	}
	return out
}

// Names returns the child names in z-order.
func (g *Group) Names() []string {
	out := make([]string, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.name
	}
	return out
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.entries) }

// Tick propagates the clock to every child.
func (g *Group) Tick(elapsed time.Duration) {
	for _, e := range g.entries {
		e.widget.Tick(elapsed)
	}
}

// draw renders children in ascending sequence order so that later-added or
// front-moved widgets end up on top. origin is the composed offset of the
// enclosing containers.
func (g *Group) draw(dst *ebiten.Image, origin geom.Vec2) {
	for _, e := range g.entries {
		if !e.widget.Visible() {
			continue
		}
		e.widget.Draw(dst, origin)
	}
}

// cloneInto rebuilds the group's children on dst, cloning every entry. The
// dispatcher state is not carried over.
func (g *Group) cloneInto(dst *Group) {
	for _, e := range g.entries {
		dst.Add(e.name, e.widget.Clone())
	}
}
