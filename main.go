package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingarrune/retina/geom"
	"github.com/ingarrune/retina/ui"
)

const (
	initialWidth  = 800
	initialHeight = 600
)

// Demo implements ebiten.Game and hosts a small widget tree exercising the
// toolkit: a toolbar layout, a child window with a 2D slider, and polygon
// shapes loaded from a shapefile when one is provided.
type Demo struct {
	ui     *ui.Controller
	status string
}

func (d *Demo) Update() error {
	if err := d.ui.Update(); err != nil {
		return err
	}

	for {
		cb, ok := d.ui.PollCallback()
		if !ok {
			break
		}
		switch cb.Trigger {
		case ui.TriggerClosed:
			d.status = "window closed"
		case ui.TriggerValueChanged:
			d.status = fmt.Sprintf("slider: %.2f, %.2f", cb.Value.X, cb.Value.Y)
		case ui.TriggerClicked:
			d.status = fmt.Sprintf("clicked #%d", cb.ID)
		}
	}
	return nil
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x28, 0x30, 0xff})
	d.ui.Draw(screen)
	ebitenutil.DebugPrint(screen, d.status)
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func buildUI() *ui.Controller {
	c := ui.NewController(initialWidth, initialHeight)
	root := c.Root()

	// Toolbar: fixed-size label, ratio-sized buttons.
	bar := ui.NewHorizontalLayout(300, 30)
	bar.SetPosition(geom.V(10, 560))
	root.Add("toolbar", bar)

	title := ui.NewLabel("retina demo")
	bar.Add("caption", title)
	bar.SetFixedSize(title, 90)

	for i, name := range []string{"One", "Two", "Three"} {
		b := ui.NewButton(name, nil)
		b.SetCallbackID(uint(i + 1))
		bar.Add("", b)
	}

	// A draggable child window holding a 2D slider.
	win := ui.NewChildWindow()
	win.Create(180, 180, color.RGBA{0xe6, 0xe6, 0xe6, 0xff})
	win.Title = "Slider"
	win.SetCallbackID(100)
	win.SetPosition(geom.V(40, 40))
	root.Add("sliderWindow", win)

	slider := ui.NewSlider2D()
	slider.SetPosition(geom.V(30, 30))
	slider.SetSize(geom.V(120, 120))
	slider.SetCallbackID(101)
	win.Add("xy", slider)

	// Optional: fill the background with shapefile polygons.
	if path := os.Getenv("RETINA_SHAPEFILE"); path != "" {
		shapes, err := ui.LoadShapes(path, color.RGBA{0x2e, 0x86, 0x5c, 0xff})
		if err != nil {
			log.Printf("shapefile not loaded: %v", err)
		}
		for i, s := range shapes {
			root.Add(fmt.Sprintf("shape%d", i), s)
		}
	}

	return c
}

func main() {
	app := &Demo{ui: buildUI()}

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("retina")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
