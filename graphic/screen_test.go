// Copyright © 2019 The Rurtle authors

package graphic_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/ligthyear/rurtle/graphic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, s *graphic.TurtleScreen) *image.NRGBA {
	t.Helper()
	img, err := s.Screenshot()
	require.NoError(t, err)
	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	return nrgba
}

func TestScreenshotDimensionsAndBackground(t *testing.T) {
	s := graphic.NewScreen(64, 48)
	s.SetTurtleHidden(true)
	img := snapshot(t, s)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
	assert.Equal(t, graphic.White.NRGBA(), img.NRGBAAt(0, 0))

	s.SetBackgroundColor(graphic.RGB(0, 0, 1))
	img = snapshot(t, s)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(32, 24))
}

func TestScreenshotEmptyScreen(t *testing.T) {
	s := graphic.NewScreen(0, 0)
	_, err := s.Screenshot()
	assert.Error(t, err)
}

func TestLineRasterization(t *testing.T) {
	s := graphic.NewScreen(100, 100)
	s.SetTurtleHidden(true)
	// A horizontal segment through the origin maps to the raster center row.
	s.AddLine(graphic.Point{X: -10, Y: 0}, graphic.Point{X: 10, Y: 0}, graphic.Black)
	img := snapshot(t, s)
	for x := 40; x <= 60; x++ {
		assert.Equalf(t, graphic.Black.NRGBA(), img.NRGBAAt(x, 50), "x=%d", x)
	}
	assert.Equal(t, graphic.White.NRGBA(), img.NRGBAAt(50, 40), "off-line pixels keep the background")

	// Positive y is up: a point above the origin lands in the upper half.
	s.AddLine(graphic.Point{X: 0, Y: 20}, graphic.Point{X: 0, Y: 20}, graphic.RGB(1, 0, 0))
	img = snapshot(t, s)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(50, 30))
}

func TestClearRemovesPrimitivesOnly(t *testing.T) {
	s := graphic.NewScreen(40, 40)
	s.SetTurtleHidden(true)
	s.SetBackgroundColor(graphic.RGB(0, 1, 0))
	s.AddLine(graphic.Point{X: -10, Y: 0}, graphic.Point{X: 10, Y: 0}, graphic.Black)
	s.Clear()
	img := snapshot(t, s)
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, img.NRGBAAt(20, 20),
		"clear removes lines but keeps the background")
}

func TestFloodFill(t *testing.T) {
	s := graphic.NewScreen(50, 50)
	s.SetTurtleHidden(true)
	s.FloodFill(graphic.Point{X: 0, Y: 0}, graphic.RGB(1, 0, 0))
	img := snapshot(t, s)
	// Nothing bounds the region, so the fill reaches every corner.
	red := color.NRGBA{255, 0, 0, 255}
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(49, 49))
	assert.Equal(t, red, img.NRGBAAt(25, 25))
}

func TestFloodFillBounded(t *testing.T) {
	s := graphic.NewScreen(50, 50)
	s.SetTurtleHidden(true)
	// A full-height vertical wall splits the screen; the fill must not cross.
	s.AddLine(graphic.Point{X: 10, Y: -25}, graphic.Point{X: 10, Y: 25}, graphic.Black)
	s.FloodFill(graphic.Point{X: 0, Y: 0}, graphic.RGB(0, 0, 1))
	img := snapshot(t, s)
	blue := color.NRGBA{0, 0, 255, 255}
	assert.Equal(t, blue, img.NRGBAAt(25, 25))
	assert.Equal(t, graphic.White.NRGBA(), img.NRGBAAt(45, 25),
		"fill stays inside the walled region")
}

func TestFloodFillOrdering(t *testing.T) {
	s := graphic.NewScreen(50, 50)
	s.SetTurtleHidden(true)
	// Primitives added after a fill draw on top of it.
	s.FloodFill(graphic.Point{X: 0, Y: 0}, graphic.RGB(1, 0, 0))
	s.AddLine(graphic.Point{X: 0, Y: 0}, graphic.Point{X: 0, Y: 0}, graphic.Black)
	img := snapshot(t, s)
	assert.Equal(t, graphic.Black.NRGBA(), img.NRGBAAt(25, 25))
}

func TestAddTextRenders(t *testing.T) {
	s := graphic.NewScreen(100, 100)
	s.SetTurtleHidden(true)
	s.AddText(graphic.Point{X: 0, Y: 0}, 0, graphic.Black, "X")
	img := snapshot(t, s)
	found := false
	for y := 30; y < 60 && !found; y++ {
		for x := 45; x < 70 && !found; x++ {
			if img.NRGBAAt(x, y) == graphic.Black.NRGBA() {
				found = true
			}
		}
	}
	assert.True(t, found, "text leaves glyph pixels near its anchor")
}

func TestTurtleMarker(t *testing.T) {
	s := graphic.NewScreen(60, 60)
	img := snapshot(t, s)
	// The marker base line passes through the turtle position at the origin.
	assert.Equal(t, graphic.Black.NRGBA(), img.NRGBAAt(30, 30))

	s.SetTurtleHidden(true)
	img = snapshot(t, s)
	assert.Equal(t, graphic.White.NRGBA(), img.NRGBAAt(30, 30))
}

func TestDrawAndUpdateKeepsFrame(t *testing.T) {
	s := graphic.NewScreen(10, 10)
	s.SetTurtleHidden(true)
	s.DrawAndUpdate()
	w, h := s.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}
