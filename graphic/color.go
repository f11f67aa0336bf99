// Copyright © 2019 The Rurtle authors

package graphic

import "image/color"

// Color is an RGBA color with float64 channels in the range [0, 1].  Values
// outside the range are clamped during rasterization, matching the behavior
// of the draw commands that accept caller supplied channel values.
type Color struct {
	R, G, B, A float64
}

// Predefined colors used as screen defaults.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// RGB returns an opaque color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// NRGBA converts c to an 8-bit non-premultiplied color suitable for writing
// into an image buffer.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Point is a position on the drawing plane.  The origin lies at the center of
// the screen with positive coordinates extending right and up.
type Point struct {
	X, Y float64
}
