package ui

import "image/color"

// fade scales a color's alpha by the widget opacity byte. The color channels
// are scaled too, keeping the premultiplied form ebiten expects.
func fade(c color.RGBA, opacity uint8) color.RGBA {
	if opacity == 0xff {
		return c
	}
	o := uint32(opacity)
	return color.RGBA{
		R: uint8(uint32(c.R) * o / 0xff),
		G: uint8(uint32(c.G) * o / 0xff),
		B: uint8(uint32(c.B) * o / 0xff),
		A: uint8(uint32(c.A) * o / 0xff),
	}
}
