package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/ingarrune/retina/geom"
	"github.com/ingarrune/retina/theme"
)

var _ Widget = (*ChildWindow)(nil)

// Side selects which end of the title bar holds the close button.
type Side uint8

const (
	SideRight Side = iota
	SideLeft
)

// Insets are border thicknesses around the client area.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// resizeEdge identifies the window edge a resize drag started on.
type resizeEdge uint8

const (
	resizeNone resizeEdge = iota
	resizeRight
	resizeBottom
	resizeCorner
)

const (
	resizeArea      = 5.0
	minWindowWidth  = 50.0
	minWindowHeight = 20.0
)

// ChildWindow is a Panel with a title bar above the client area. The title
// bar supports drag-to-move and holds a close button; the right and bottom
// edges support resizing. Size refers to the client area only; the title bar
// extends above it.
//
// A window starts unloaded: every pointer and draw method is a silent no-op
// until Create or Load has run, so a partially configured window never
// crashes.
//
// Closing removes the window from its parent container. The removal is
// performed by the parent's dispatcher after MouseReleased returns; callers
// must not touch the window afterwards.
type ChildWindow struct {
	Panel

	Title          string
	TitleSide      Side
	DistanceToSide float64
	BorderColor    color.RGBA
	TitleBarColor  color.RGBA

	borders        Insets
	titleBarHeight float64
	closeButton    *Button

	dragging   bool
	dragOffset geom.Vec2

	resizing    resizeEdge
	resizeStart geom.Vec2
	startSize   geom.Vec2

	loaded bool
}

// NewChildWindow returns an unloaded window. Call Create or Load before use.
func NewChildWindow() *ChildWindow {
	cw := &ChildWindow{
		closeButton: NewButton("x", nil),
	}
	cw.Base = newBase()
	cw.Group.setup(cw)
	return cw
}

// Create configures the window with the built-in default skin and marks it
// loaded.
func (cw *ChildWindow) Create(width, height float64, background color.RGBA) {
	cw.Base.SetSize(geom.V(width, height))
	cw.Background = background
	cw.applyTheme(theme.Default())
	cw.loaded = true
}

// Load configures the window from a theme directory. On failure the window
// stays unloaded and inert.
func (cw *ChildWindow) Load(width, height float64, background color.RGBA, themeDir string) error {
	cw.loaded = false
	if themeDir == "" {
		return errors.New("empty theme directory")
	}
	th, err := theme.Load(themeDir)
	if err != nil {
		return errors.Wrap(err, "load child window theme")
	}
	cw.Base.SetSize(geom.V(width, height))
	cw.Background = background
	cw.applyTheme(th)
	cw.loaded = true
	return nil
}

// Loaded reports whether the window has been configured.
func (cw *ChildWindow) Loaded() bool { return cw.loaded }

func (cw *ChildWindow) applyTheme(th *theme.Theme) {
	cw.titleBarHeight = th.TitleBarHeight
	cw.DistanceToSide = th.DistanceToSide
	cw.TitleSide = SideRight
	if th.TitleSide == theme.SideLeft {
		cw.TitleSide = SideLeft
	}
	cw.borders = Insets{
		Left:   th.Borders.Left,
		Top:    th.Borders.Top,
		Right:  th.Borders.Right,
		Bottom: th.Borders.Bottom,
	}
	cw.BorderColor = th.Border.RGBA
	cw.TitleBarColor = th.TitleBar.RGBA
	sz := cw.titleBarHeight * 0.8
	cw.closeButton.SetSize(geom.V(sz, sz))
	cw.positionCloseButton()
}

// TitleBarHeight returns the current title bar height.
func (cw *ChildWindow) TitleBarHeight() float64 { return cw.titleBarHeight }

// SetTitleBarHeight changes the title bar height and rescales the close
// button to fit. No-op while unloaded.
func (cw *ChildWindow) SetTitleBarHeight(h float64) {
	if !cw.loaded {
		return
	}
	cw.titleBarHeight = h
	sz := h * 0.8
	cw.closeButton.SetSize(geom.V(sz, sz))
	cw.positionCloseButton()
}

// SetBorders changes the border insets around the client area.
func (cw *ChildWindow) SetBorders(left, top, right, bottom float64) {
	cw.borders = Insets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// SetTransparency applies a uniform alpha to the window and its close
// button.
func (cw *ChildWindow) SetTransparency(alpha uint8) {
	cw.SetOpacity(alpha)
	cw.closeButton.SetOpacity(alpha)
}

// Transparency returns the uniform alpha.
func (cw *ChildWindow) Transparency() uint8 { return cw.Opacity() }

func (cw *ChildWindow) SetSize(size geom.Vec2) {
	cw.Base.SetSize(size)
	cw.positionCloseButton()
}

// positionCloseButton keeps the close button at the configured title bar
// side. The position is window-local.
func (cw *ChildWindow) positionCloseButton() {
	cb := cw.closeButton.ScaledSize()
	y := (cw.titleBarHeight - cb.Y) / 2
	if cw.TitleSide == SideRight {
		cw.closeButton.SetPosition(geom.V(cw.Size().X-cw.DistanceToSide-cb.X, y))
	} else {
		cw.closeButton.SetPosition(geom.V(cw.DistanceToSide, y))
	}
}

// titleBarRect is the title bar region in window-local coordinates.
func (cw *ChildWindow) titleBarRect() geom.Rect {
	return geom.R(0, 0, cw.Size().X, cw.titleBarHeight)
}

// ContainsPoint covers the title bar and the client area.
func (cw *ChildWindow) ContainsPoint(p geom.Vec2) bool {
	if !cw.loaded {
		return false
	}
	pos := cw.Position()
	sz := cw.Size()
	return geom.R(pos.X, pos.Y, sz.X, cw.titleBarHeight+sz.Y).Contains(p)
}

// resizeEdgeAt reports which resize edge the window-local point falls on.
func (cw *ChildWindow) resizeEdgeAt(local geom.Vec2) resizeEdge {
	sz := cw.Size()
	fullH := cw.titleBarHeight + sz.Y
	right := local.X >= sz.X-resizeArea && local.X <= sz.X
	bottom := local.Y >= fullH-resizeArea && local.Y <= fullH
	switch {
	case right && bottom:
		return resizeCorner
	case right:
		return resizeRight
	case bottom:
		return resizeBottom
	default:
		return resizeNone
	}
}

func (cw *ChildWindow) MousePressed(pt geom.Vec2) {
	if !cw.loaded {
		return
	}
	cw.Base.MousePressed(pt)
	local := pt.Sub(cw.Position())

	if edge := cw.resizeEdgeAt(local); edge != resizeNone {
		cw.resizing = edge
		cw.resizeStart = pt
		cw.startSize = cw.Size()
		return
	}

	if cw.titleBarRect().Contains(local) {
		if cw.closeButton.ContainsPoint(local) {
			cw.closeButton.MousePressed(local)
		} else {
			cw.dragging = true
			cw.dragOffset = local
		}
		return
	}

	cw.Panel.MousePressed(pt.Sub(geom.V(0, cw.titleBarHeight)))
}

func (cw *ChildWindow) MouseMoved(pt geom.Vec2) {
	if !cw.loaded {
		return
	}
	if cw.dragging {
		cw.SetPosition(pt.Sub(cw.dragOffset))
		return
	}
	if cw.resizing != resizeNone {
		cw.resizeTo(pt)
		return
	}

	local := pt.Sub(cw.Position())
	if cw.titleBarRect().Contains(local) {
		// The pointer sits on the title bar; the client widgets must not
		// keep stale hover state.
		cw.clearHover()
		if cw.closeButton.ContainsPoint(local) {
			cw.closeButton.MouseMoved(local)
		} else {
			cw.closeButton.MouseLeft()
		}
		cw.Base.MouseMoved(pt)
		return
	}

	cw.closeButton.MouseLeft()
	cw.Panel.MouseMoved(pt.Sub(geom.V(0, cw.titleBarHeight)))
}

func (cw *ChildWindow) MouseReleased(pt geom.Vec2) Action {
	if !cw.loaded {
		return ActionNone
	}
	cw.dragging = false
	cw.resizing = resizeNone

	local := pt.Sub(cw.Position())
	if cw.titleBarRect().Contains(local) {
		cw.Base.MouseReleased(pt)
		if cw.closeButton.ContainsPoint(local) && cw.closeButton.isPressed() {
			// Close protocol: notify, destroy children, then let the parent
			// dispatcher remove the window itself.
			cw.bubble(cw, TriggerClosed, geom.Vec2{})
			cw.RemoveAll()
			return ActionClose
		}
		cw.closeButton.MouseNoLongerDown()
		// A press that started on a client child must not keep capturing
		// moves after a release on the title bar.
		cw.releaseButtons()
		return ActionNone
	}

	cw.closeButton.MouseNoLongerDown()
	return cw.Panel.MouseReleased(pt.Sub(geom.V(0, cw.titleBarHeight)))
}

func (cw *ChildWindow) MouseLeft() {
	cw.Base.MouseLeft()
	cw.closeButton.MouseLeft()
	cw.clearHover()
}

func (cw *ChildWindow) MouseNoLongerDown() {
	cw.Base.MouseNoLongerDown()
	cw.dragging = false
	cw.resizing = resizeNone
	cw.closeButton.MouseNoLongerDown()
	cw.releaseButtons()
}

// resizeTo applies a resize drag, clamping to the minimum window size.
func (cw *ChildWindow) resizeTo(pt geom.Vec2) {
	delta := pt.Sub(cw.resizeStart)
	sz := cw.Size()
	if cw.resizing == resizeRight || cw.resizing == resizeCorner {
		sz.X = maxFloat(minWindowWidth, cw.startSize.X+delta.X)
	}
	if cw.resizing == resizeBottom || cw.resizing == resizeCorner {
		sz.Y = maxFloat(minWindowHeight, cw.startSize.Y+delta.Y)
	}
	cw.SetSize(sz)
}

// cursorHint reports the cursor shape for the point, in parent space.
func (cw *ChildWindow) cursorHint(pt geom.Vec2) ebiten.CursorShapeType {
	local := pt.Sub(cw.Position())
	switch cw.resizeEdgeAt(local) {
	case resizeRight:
		return ebiten.CursorShapeEWResize
	case resizeBottom:
		return ebiten.CursorShapeNSResize
	case resizeCorner:
		return ebiten.CursorShapeNWSEResize
	}
	if cw.titleBarRect().Contains(local) && !cw.closeButton.ContainsPoint(local) {
		return ebiten.CursorShapeMove
	}
	return cw.Panel.cursorHint(pt.Sub(geom.V(0, cw.titleBarHeight)))
}

func (cw *ChildWindow) Tick(elapsed time.Duration) {
	cw.closeButton.Tick(elapsed)
	cw.Group.Tick(elapsed)
}

func (cw *ChildWindow) Draw(dst *ebiten.Image, origin geom.Vec2) {
	if !cw.loaded {
		return
	}
	abs := origin.Add(cw.Position())
	sz := cw.Size()
	op := cw.Opacity()
	tbh := cw.titleBarHeight

	vector.DrawFilledRect(dst, float32(abs.X), float32(abs.Y),
		float32(sz.X), float32(tbh), fade(cw.TitleBarColor, op), true)

	if cw.Title != "" {
		tx := abs.X + cw.DistanceToSide
		if cw.TitleSide == SideLeft {
			tx = abs.X + 2*cw.DistanceToSide + cw.closeButton.ScaledSize().X
		}
		ebitenutil.DebugPrintAt(dst, cw.Title, int(tx), int(abs.Y+tbh/2-8))
	}

	cw.closeButton.Draw(dst, abs)

	vector.DrawFilledRect(dst, float32(abs.X), float32(abs.Y+tbh),
		float32(sz.X), float32(sz.Y), fade(cw.BorderColor, op), true)
	b := cw.borders
	vector.DrawFilledRect(dst, float32(abs.X+b.Left), float32(abs.Y+tbh+b.Top),
		float32(sz.X-b.Left-b.Right), float32(sz.Y-b.Top-b.Bottom),
		fade(cw.Background, op), true)

	cw.draw(dst, abs.Add(geom.V(0, tbh)))
}

func (cw *ChildWindow) Clone() Widget {
	c := &ChildWindow{
		Title:          cw.Title,
		TitleSide:      cw.TitleSide,
		DistanceToSide: cw.DistanceToSide,
		BorderColor:    cw.BorderColor,
		TitleBarColor:  cw.TitleBarColor,
		borders:        cw.borders,
		titleBarHeight: cw.titleBarHeight,
		closeButton:    cw.closeButton.Clone().(*Button),
		loaded:         cw.loaded,
	}
	c.Base = cw.cloneBase()
	c.Background = cw.Background
	c.Group.setup(c)
	cw.Group.cloneInto(&c.Group)
	return c
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
