// Copyright © 2019 The Rurtle authors

// Package graphic provides a headless software canvas for the turtle to draw
// onto.  The screen keeps a display list of drawing primitives and replays it
// into an RGBA raster on every update, so a screenshot always reflects the
// primitives recorded so far.  The coordinate origin is the center of the
// screen with positive x extending right and positive y extending up.
package graphic

import (
	"image"
	"image/draw"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// op is a single drawing primitive in the display list.
type op interface {
	draw(s *TurtleScreen, dst *image.NRGBA)
}

type lineOp struct {
	from, to Point
	color    Color
}

type textOp struct {
	at          Point
	orientation float64
	color       Color
	body        string
}

type fillOp struct {
	at    Point
	color Color
}

// TurtleScreen is a fixed-size raster canvas.  It records the primitives the
// turtle draws along with the turtle's last-known pose so the cursor marker
// can be rendered on top of the scene.
type TurtleScreen struct {
	width, height int

	background        Color
	turtlePos         Point
	turtleOrientation float64
	turtleColor       Color
	turtleHidden      bool

	ops   []op
	frame *image.NRGBA
}

// NewScreen returns a screen with the given pixel dimensions, a white
// background, and a black turtle marker at the origin facing north.
func NewScreen(width, height int) *TurtleScreen {
	return &TurtleScreen{
		width:       width,
		height:      height,
		background:  White,
		turtleColor: Black,
	}
}

// Size returns the pixel dimensions of the screen.
func (s *TurtleScreen) Size() (width, height int) {
	return s.width, s.height
}

// AddLine records a line segment from one point to another.
func (s *TurtleScreen) AddLine(from, to Point, c Color) {
	s.ops = append(s.ops, lineOp{from: from, to: to, color: c})
}

// AddText records text anchored at its lower-left corner.
func (s *TurtleScreen) AddText(at Point, orientation float64, c Color, text string) {
	s.ops = append(s.ops, textOp{at: at, orientation: orientation, color: c, body: text})
}

// FloodFill records a flood fill seeded at the given point.  The fill is
// applied during rendering after all primitives recorded before it, so it
// fills the contiguous region as it appears at that point in the display
// list.
func (s *TurtleScreen) FloodFill(at Point, c Color) {
	s.ops = append(s.ops, fillOp{at: at, color: c})
}

// Clear removes all recorded primitives.  The background color and turtle
// pose are unaffected.
func (s *TurtleScreen) Clear() {
	s.ops = nil
}

// SetTurtlePos updates the displayed turtle marker position.
func (s *TurtleScreen) SetTurtlePos(p Point) {
	s.turtlePos = p
}

// SetTurtleOrientation updates the displayed turtle marker heading, in
// degrees with 0 facing north and positive values counter-clockwise.
func (s *TurtleScreen) SetTurtleOrientation(deg float64) {
	s.turtleOrientation = deg
}

// SetTurtleColor updates the color of the turtle marker.
func (s *TurtleScreen) SetTurtleColor(c Color) {
	s.turtleColor = c
}

// SetTurtleHidden toggles rendering of the turtle marker.
func (s *TurtleScreen) SetTurtleHidden(hidden bool) {
	s.turtleHidden = hidden
}

// SetBackgroundColor sets the color the raster is cleared to before the
// display list is replayed.
func (s *TurtleScreen) SetBackgroundColor(c Color) {
	s.background = c
}

// DrawAndUpdate re-renders the screen from the display list.  A windowed
// backend would present the frame here; the software screen retains it for
// Screenshot.
func (s *TurtleScreen) DrawAndUpdate() {
	s.frame = s.render()
}

// Screenshot returns the currently rendered frame.  The screen is rendered on
// demand so a screenshot taken before any draw call still reflects the
// recorded state.
func (s *TurtleScreen) Screenshot() (image.Image, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, errors.Errorf("screen has no pixels: %dx%d", s.width, s.height)
	}
	return s.render(), nil
}

func (s *TurtleScreen) render() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.background.NRGBA()), image.Point{}, draw.Src)
	for _, op := range s.ops {
		op.draw(s, dst)
	}
	if !s.turtleHidden {
		s.drawMarker(dst)
	}
	return dst
}

// device converts a logical point to raster coordinates.
func (s *TurtleScreen) device(p Point) (x, y float64) {
	return float64(s.width)/2 + p.X, float64(s.height)/2 - p.Y
}

func (s *TurtleScreen) setPixel(dst *image.NRGBA, x, y int, c Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	dst.SetNRGBA(x, y, c.NRGBA())
}

func (op lineOp) draw(s *TurtleScreen, dst *image.NRGBA) {
	s.rasterLine(dst, op.from, op.to, op.color)
}

// rasterLine steps along the segment one pixel at a time.
func (s *TurtleScreen) rasterLine(dst *image.NRGBA, from, to Point, c Color) {
	x0, y0 := s.device(from)
	x1, y1 := s.device(to)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		s.setPixel(dst, int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + t*(x1-x0)
		y := y0 + t*(y1-y0)
		s.setPixel(dst, int(math.Round(x)), int(math.Round(y)), c)
	}
}

func (op textOp) draw(s *TurtleScreen, dst *image.NRGBA) {
	// The software rasterizer renders text axis-aligned; the recorded
	// orientation is kept for backends that can rotate glyphs.
	x, y := s.device(op.at)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(op.color.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(op.body)
}

func (op fillOp) draw(s *TurtleScreen, dst *image.NRGBA) {
	x := int(math.Round(float64(s.width)/2 + op.at.X))
	y := int(math.Round(float64(s.height)/2 - op.at.Y))
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	target := dst.NRGBAAt(x, y)
	repl := op.color.NRGBA()
	if target == repl {
		return
	}
	queue := []image.Point{{X: x, Y: y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
			continue
		}
		if dst.NRGBAAt(p.X, p.Y) != target {
			continue
		}
		dst.SetNRGBA(p.X, p.Y, repl)
		queue = append(queue,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
}

// drawMarker renders the turtle cursor as a small arrowhead pointing along
// the turtle's heading.
func (s *TurtleScreen) drawMarker(dst *image.NRGBA) {
	rad := math.Pi * s.turtleOrientation / 180
	dir := Point{X: -math.Sin(rad), Y: math.Cos(rad)}
	perp := Point{X: -dir.Y, Y: dir.X}
	tip := Point{X: s.turtlePos.X + 10*dir.X, Y: s.turtlePos.Y + 10*dir.Y}
	left := Point{X: s.turtlePos.X + 5*perp.X, Y: s.turtlePos.Y + 5*perp.Y}
	right := Point{X: s.turtlePos.X - 5*perp.X, Y: s.turtlePos.Y - 5*perp.Y}
	s.rasterLine(dst, left, tip, s.turtleColor)
	s.rasterLine(dst, right, tip, s.turtleColor)
	s.rasterLine(dst, left, right, s.turtleColor)
}
