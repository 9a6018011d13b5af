package ui

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/ingarrune/retina/geom"
)

func TestGroupAddGetRemove(t *testing.T) {
	pn := NewPanel(200, 200)
	ok := NewButton("ok", nil)
	pn.Add("ok", ok)

	got, err := Get[*Button](&pn.Group, "ok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != ok {
		t.Fatal("lookup returned a different instance")
	}
	if got.Parent() != pn {
		t.Error("added widget does not point at its container")
	}

	if !pn.RemoveName("ok") {
		t.Fatal("RemoveName reported no match")
	}
	if _, err := Get[*Button](&pn.Group, "ok"); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup after removal: %v; want ErrNotFound", err)
	}
	if pn.RemoveName("ok") {
		t.Error("second removal reported a match")
	}
}

func TestGroupGetWrongKind(t *testing.T) {
	pn := NewPanel(200, 200)
	pn.Add("xy", NewSlider2D())

	if _, err := Get[*Button](&pn.Group, "xy"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("got %v; want ErrWrongKind", err)
	}
	// The right kind still works on the same entry.
	if _, err := Get[*Slider2D](&pn.Group, "xy"); err != nil {
		t.Errorf("same-kind lookup failed: %v", err)
	}
}

func TestGroupEmptyNameNeverMatches(t *testing.T) {
	pn := NewPanel(200, 200)
	pn.Add("", NewButton("anon", nil))

	if _, err := Get[*Button](&pn.Group, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty-name lookup: %v; want ErrNotFound", err)
	}
	if pn.Len() != 1 {
		t.Error("nameless widget not stored")
	}
}

func TestGroupDuplicateNamesFirstWins(t *testing.T) {
	pn := NewPanel(200, 200)
	first := NewButton("first", nil)
	second := NewButton("second", nil)
	pn.Add("dup", first)
	pn.Add("dup", second)

	got, err := Get[*Button](&pn.Group, "dup")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != first {
		t.Error("lookup did not return the first-added widget")
	}

	// Removing by name drops the first match only.
	pn.RemoveName("dup")
	got, err = Get[*Button](&pn.Group, "dup")
	if err != nil {
		t.Fatalf("Get after removal: %v", err)
	}
	if got != second {
		t.Error("second duplicate not reachable after first was removed")
	}
}

func TestGroupCopy(t *testing.T) {
	pn := NewPanel(200, 200)
	src := NewSlider2D()
	src.ReturnToCenter = false
	src.SetMinimum(geom.V(0, 0))
	src.SetMaximum(geom.V(10, 10))
	src.SetValue(geom.V(3, 7))
	pn.Add("src", src)

	clone, err := pn.CopyName("src", "dst")
	if err != nil {
		t.Fatalf("CopyName: %v", err)
	}
	cs, ok := clone.(*Slider2D)
	if !ok {
		t.Fatalf("clone is %T; want *Slider2D", clone)
	}
	if cs == src {
		t.Fatal("copy returned the original instance")
	}
	if cs.Value() != src.Value() || cs.Minimum() != src.Minimum() || cs.ReturnToCenter {
		t.Error("persistent state not carried into the clone")
	}
	if cs.Parent() != pn {
		t.Error("clone not parented to the container")
	}

	if _, err := pn.CopyName("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("copy of unknown name: %v; want ErrNotFound", err)
	}
}

func TestGroupRemoveClearsFocus(t *testing.T) {
	pn := NewPanel(200, 200)
	a := newProbe("a", nil, 0, 0, 100, 100)
	pn.Add("a", a)

	pn.MousePressed(geom.V(50, 50))
	if pn.FocusedWidget() != a {
		t.Fatal("press did not focus")
	}
	pn.MouseReleased(geom.V(50, 50))

	pn.Remove(a)
	if pn.FocusedWidget() != nil {
		t.Error("focus survived removal")
	}
}

func TestGroupZOrderMoves(t *testing.T) {
	pn := NewPanel(200, 200)
	a := pn.Add("a", NewLabel("a"))
	pn.Add("b", NewLabel("b"))
	c := pn.Add("c", NewLabel("c"))

	pn.MoveToFront(a)
	if got := pn.Names(); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Errorf("after MoveToFront: %v", got)
	}
	pn.MoveToBack(c)
	if got := pn.Names(); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Errorf("after MoveToBack: %v", got)
	}
}

func TestGroupRemoveAll(t *testing.T) {
	pn := NewPanel(200, 200)
	pn.Add("a", newProbe("a", nil, 0, 0, 100, 100))
	pn.Add("b", newProbe("b", nil, 100, 0, 100, 100))
	pn.MousePressed(geom.V(50, 50))

	pn.RemoveAll()
	if pn.Len() != 0 {
		t.Errorf("%d children left", pn.Len())
	}
	if pn.FocusedWidget() != nil {
		t.Error("focus survived RemoveAll")
	}
}
