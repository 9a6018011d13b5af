package ui

import (
	"fmt"
	"testing"

	"github.com/ingarrune/retina/geom"
)

// probe records every event it receives, in order, into a shared log.
type probe struct {
	Base

	id      string
	log     *[]string
	release Action
}

func newProbe(id string, log *[]string, x, y, w, h float64) *probe {
	p := &probe{Base: newBase(), id: id, log: log}
	p.SetPosition(geom.V(x, y))
	p.SetSize(geom.V(w, h))
	return p
}

func (p *probe) record(ev string) {
	if p.log != nil {
		*p.log = append(*p.log, p.id+":"+ev)
	}
}

func (p *probe) MousePressed(pt geom.Vec2) {
	p.Base.MousePressed(pt)
	p.record("press")
}

func (p *probe) MouseReleased(pt geom.Vec2) Action {
	p.Base.MouseReleased(pt)
	p.record("release")
	return p.release
}

func (p *probe) MouseMoved(pt geom.Vec2) {
	p.Base.MouseMoved(pt)
	p.record("move")
}

func (p *probe) MouseLeft() {
	p.Base.MouseLeft()
	p.record("leave")
}

func (p *probe) MouseNoLongerDown() {
	p.Base.MouseNoLongerDown()
	p.record("noLongerDown")
}

func (p *probe) FocusGained() {
	p.Base.FocusGained()
	p.record("focus")
}

func (p *probe) FocusLost() {
	p.Base.FocusLost()
	p.record("unfocus")
}

func (p *probe) Clone() Widget {
	c := &probe{Base: p.cloneBase(), id: p.id, log: p.log, release: p.release}
	return c
}

func indexOf(log []string, ev string) int {
	for i, e := range log {
		if e == ev {
			return i
		}
	}
	return -1
}

func TestHoverExitBeforeEnter(t *testing.T) {
	var log []string
	pn := NewPanel(300, 100)
	a := newProbe("a", &log, 0, 0, 100, 100)
	b := newProbe("b", &log, 100, 0, 100, 100)
	pn.Add("a", a)
	pn.Add("b", b)

	pn.MouseMoved(geom.V(50, 50))
	log = nil
	pn.MouseMoved(geom.V(150, 50))

	leave := indexOf(log, "a:leave")
	enter := indexOf(log, "b:move")
	if leave == -1 || enter == -1 {
		t.Fatalf("missing transition events, log: %v", log)
	}
	if leave > enter {
		t.Errorf("exit notification after enter: %v", log)
	}
	if a.hovered {
		t.Error("a still hovered after pointer left it")
	}
	if !b.hovered {
		t.Error("b not hovered")
	}
}

func TestAtMostOneHovered(t *testing.T) {
	pn := NewPanel(200, 200)
	a := newProbe("a", nil, 0, 0, 100, 100)
	b := newProbe("b", nil, 50, 50, 100, 100)
	pn.Add("a", a)
	pn.Add("b", b)

	// The overlap region belongs to the frontmost widget only.
	pn.MouseMoved(geom.V(75, 75))
	if a.hovered {
		t.Error("occluded widget received hover")
	}
	if !b.hovered {
		t.Error("topmost widget not hovered")
	}
}

func TestMoveToFrontHitOrder(t *testing.T) {
	var log []string
	pn := NewPanel(200, 200)
	a := newProbe("a", &log, 0, 0, 100, 100)
	b := newProbe("b", &log, 0, 0, 100, 100)
	pn.Add("a", a)
	pn.Add("b", b)

	pn.MousePressed(geom.V(50, 50))
	if indexOf(log, "b:press") == -1 || indexOf(log, "a:press") != -1 {
		t.Fatalf("expected frontmost b to take the press, log: %v", log)
	}

	pn.MouseReleased(geom.V(50, 50))
	log = nil
	pn.MoveToFront(a)
	pn.MousePressed(geom.V(50, 50))
	if indexOf(log, "a:press") == -1 || indexOf(log, "b:press") != -1 {
		t.Fatalf("expected front-moved a to take the press, log: %v", log)
	}
}

func TestPressFocusesAndEmptyPressClearsFocus(t *testing.T) {
	pn := NewPanel(300, 300)
	a := newProbe("a", nil, 0, 0, 100, 100)
	pn.Add("a", a)

	pn.MousePressed(geom.V(10, 10))
	if !a.Focused() {
		t.Fatal("press did not focus the widget")
	}
	if pn.FocusedWidget() != a {
		t.Fatal("container does not track the focused widget")
	}
	pn.MouseReleased(geom.V(10, 10))

	// Press on empty container space clears focus.
	pn.MousePressed(geom.V(250, 250))
	if a.Focused() {
		t.Error("focus survived a press on empty space")
	}
	if pn.FocusedWidget() != nil {
		t.Error("container kept a focused widget")
	}
}

func TestFocusSwitchUnfocusesPrevious(t *testing.T) {
	var log []string
	pn := NewPanel(300, 100)
	a := newProbe("a", &log, 0, 0, 100, 100)
	b := newProbe("b", &log, 100, 0, 100, 100)
	pn.Add("a", a)
	pn.Add("b", b)

	pn.MousePressed(geom.V(50, 50))
	pn.MouseReleased(geom.V(50, 50))
	pn.MousePressed(geom.V(150, 50))

	if a.Focused() || !b.Focused() {
		t.Errorf("focus not transferred, a=%v b=%v", a.Focused(), b.Focused())
	}
	if indexOf(log, "a:unfocus") > indexOf(log, "b:focus") {
		t.Errorf("previous widget unfocused after new focus, log: %v", log)
	}
}

func TestReleaseNotifiesOthers(t *testing.T) {
	var log []string
	pn := NewPanel(300, 100)
	a := newProbe("a", &log, 0, 0, 100, 100)
	b := newProbe("b", &log, 100, 0, 100, 100)
	pn.Add("a", a)
	pn.Add("b", b)

	pn.MousePressed(geom.V(50, 50))
	log = nil
	pn.MouseReleased(geom.V(50, 50))

	if indexOf(log, "a:release") == -1 {
		t.Errorf("pressed widget missed the release, log: %v", log)
	}
	if indexOf(log, "b:noLongerDown") == -1 {
		t.Errorf("other widget missed noLongerDown, log: %v", log)
	}
	if indexOf(log, "a:noLongerDown") != -1 {
		t.Errorf("release target also got noLongerDown, log: %v", log)
	}
}

func TestPressedWidgetCapturesMoves(t *testing.T) {
	var log []string
	pn := NewPanel(300, 100)
	a := newProbe("a", &log, 0, 0, 100, 100)
	pn.Add("a", a)

	pn.MousePressed(geom.V(50, 50))
	log = nil
	// The cursor has left the widget's bounds mid-drag.
	pn.MouseMoved(geom.V(250, 50))

	if indexOf(log, "a:move") == -1 {
		t.Errorf("dragging widget lost the move event, log: %v", log)
	}
	if indexOf(log, "a:leave") != -1 {
		t.Errorf("dragging widget received a hover exit, log: %v", log)
	}
}

func TestReleaseActionRemovesWidget(t *testing.T) {
	pn := NewPanel(200, 200)
	a := newProbe("a", nil, 0, 0, 100, 100)
	a.release = ActionClose
	pn.Add("a", a)

	pn.MousePressed(geom.V(50, 50))
	pn.MouseReleased(geom.V(50, 50))

	if pn.Len() != 0 {
		t.Fatalf("widget not removed after ActionClose, %d children left", pn.Len())
	}
	if pn.FocusedWidget() != nil {
		t.Error("removed widget still focused")
	}
}

func TestInvisibleAndDisabledSkipped(t *testing.T) {
	var log []string
	pn := NewPanel(200, 200)
	back := newProbe("back", &log, 0, 0, 100, 100)
	front := newProbe("front", &log, 0, 0, 100, 100)
	pn.Add("back", back)
	pn.Add("front", front)

	front.SetVisible(false)
	pn.MousePressed(geom.V(50, 50))
	if indexOf(log, "back:press") == -1 {
		t.Errorf("invisible widget not skipped, log: %v", log)
	}
	pn.MouseReleased(geom.V(50, 50))

	front.SetVisible(true)
	front.SetEnabled(false)
	log = nil
	pn.MousePressed(geom.V(50, 50))
	if indexOf(log, "back:press") == -1 || indexOf(log, "front:press") != -1 {
		t.Errorf("disabled widget not skipped, log: %v", log)
	}
}

func TestNestedPanelTranslation(t *testing.T) {
	var log []string
	outer := NewPanel(400, 400)
	inner := NewPanel(200, 200)
	inner.SetPosition(geom.V(100, 100))
	outer.Add("inner", inner)
	a := newProbe("a", &log, 50, 50, 50, 50)
	inner.Add("a", a)

	// (160, 160) on the outer panel is (60, 60) inside the inner one.
	outer.MousePressed(geom.V(160, 160))
	if indexOf(log, "a:press") == -1 {
		t.Fatalf("nested widget missed the press, log: %v", log)
	}
	if !a.isPressed() {
		t.Error("nested widget not pressed")
	}
}

func ExampleGroup_zOrder() {
	pn := NewPanel(100, 100)
	pn.Add("first", NewButton("first", nil))
	pn.Add("second", NewButton("second", nil))
	pn.MoveToFront(pn.Widgets()[0])
	fmt.Println(pn.Names())
	// Output: [second first]
}
