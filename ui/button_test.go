package ui

import (
	"testing"
	"time"

	"github.com/ingarrune/retina/geom"
)

func TestButtonClick(t *testing.T) {
	c := NewController(200, 200)
	clicks := 0
	b := NewButton("ok", func() { clicks++ })
	b.SetCallbackID(7)
	c.Root().Add("ok", b)

	c.Root().MousePressed(geom.V(50, 15))
	c.Root().MouseReleased(geom.V(50, 15))

	if clicks != 1 {
		t.Fatalf("OnClick fired %d times; want 1", clicks)
	}
	cb, ok := c.PollCallback()
	if !ok {
		t.Fatal("no callback queued")
	}
	if cb.Trigger != TriggerClicked || cb.ID != 7 {
		t.Errorf("callback = %+v; want TriggerClicked with ID 7", cb)
	}
	if cb.Source != b {
		t.Error("callback source is not the button")
	}
}

func TestButtonReleaseOutsideNoClick(t *testing.T) {
	c := NewController(400, 200)
	clicks := 0
	b := NewButton("ok", func() { clicks++ })
	b.SetCallbackID(7)
	c.Root().Add("ok", b)

	c.Root().MousePressed(geom.V(50, 15))
	c.Root().MouseMoved(geom.V(300, 15))
	c.Root().MouseReleased(geom.V(300, 15))

	if clicks != 0 {
		t.Errorf("OnClick fired %d times after release outside", clicks)
	}
	if _, ok := c.PollCallback(); ok {
		t.Error("callback queued despite release outside the bounds")
	}
	if b.isPressed() {
		t.Error("button still pressed after release")
	}
}

func TestButtonZeroCallbackIDNotBubbled(t *testing.T) {
	c := NewController(200, 200)
	b := NewButton("ok", nil)
	c.Root().Add("ok", b)

	c.Root().MousePressed(geom.V(50, 15))
	c.Root().MouseReleased(geom.V(50, 15))

	if _, ok := c.PollCallback(); ok {
		t.Error("callback queued for a widget without a callback ID")
	}
}

func TestButtonHoverTransition(t *testing.T) {
	b := NewButton("ok", nil)

	b.MouseMoved(geom.V(10, 10))
	b.Tick(50 * time.Millisecond)
	if b.hoverT <= 0 || b.hoverT >= 1 {
		t.Errorf("mid-transition hoverT = %v; want strictly inside (0, 1)", b.hoverT)
	}
	b.Tick(time.Second)
	if b.hoverT != 1 {
		t.Errorf("hoverT = %v after a long hover; want 1", b.hoverT)
	}

	b.MouseLeft()
	b.Tick(time.Second)
	if b.hoverT != 0 {
		t.Errorf("hoverT = %v after leaving; want 0", b.hoverT)
	}
}
