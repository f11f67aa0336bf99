// Copyright © 2019 The Rurtle authors

// Package turtle implements the drawing cursor at the heart of the runtime.
// A Turtle starts at the center of its screen facing north and is driven with
// commands such as Forward(100) or Left(90).  While moving it draws its path
// onto the screen whenever the pen is down.
package turtle

import (
	"image"
	"math"

	"github.com/ligthyear/rurtle/graphic"
)

// PenState determines whether turtle movement leaves a trail.
type PenState uint8

// Possible PenState values.
const (
	PenDown PenState = iota
	PenUp
)

// Screen is the rendering collaborator a Turtle draws onto.  The turtle is
// the only writer; implementations need no synchronization.
type Screen interface {
	// AddLine records a drawn segment.
	AddLine(from, to graphic.Point, c graphic.Color)
	// AddText records text anchored at its lower-left corner.
	AddText(at graphic.Point, orientation float64, c graphic.Color, text string)
	// FloodFill fills the contiguous region containing at.
	FloodFill(at graphic.Point, c graphic.Color)
	// Clear removes all drawn primitives, leaving the background color and
	// turtle pose untouched.
	Clear()
	SetTurtlePos(p graphic.Point)
	SetTurtleOrientation(deg float64)
	SetTurtleColor(c graphic.Color)
	SetTurtleHidden(hidden bool)
	SetBackgroundColor(c graphic.Color)
	// DrawAndUpdate re-renders the current state.  The turtle calls it after
	// every mutating operation so the displayed cursor never lags the
	// logical state.
	DrawAndUpdate()
	// Screenshot returns the current rendered frame.
	Screenshot() (image.Image, error)
}

// Turtle is the cursor that walks across a screen.  It exclusively owns its
// Screen; all canvas mutation goes through turtle commands.
type Turtle struct {
	screen      Screen
	position    graphic.Point
	orientation float64
	color       graphic.Color
	pen         PenState
	hidden      bool
}

// New returns a turtle bound to screen, positioned at the origin facing
// north, drawing in black with the pen down.
func New(screen Screen) *Turtle {
	return &Turtle{
		screen: screen,
		color:  graphic.Black,
		pen:    PenDown,
	}
}

// Screen returns the underlying screen collaborator.
func (t *Turtle) Screen() Screen {
	return t.screen
}

// moveTo is the shared move primitive.  It draws the traveled segment when
// the pen is down, then pushes the new pose to the screen and triggers a
// redraw unconditionally so the displayed marker stays in sync even when the
// pen is up or the turtle is hidden.
func (t *Turtle) moveTo(x, y float64) {
	start := t.position
	end := graphic.Point{X: x, Y: y}
	if t.pen == PenDown {
		t.screen.AddLine(start, end, t.color)
	}
	t.position = end
	t.screen.SetTurtlePos(t.position)
	t.screen.DrawAndUpdate()
}

// headingVector converts a path length into the cartesian displacement
// walked when heading in the current direction.  Orientation 0 points north
// and positive degrees rotate counter-clockwise, which fixes the signs used
// here.
func (t *Turtle) headingVector(length float64) (dx, dy float64) {
	rad := math.Pi * t.orientation / 180
	return -math.Sin(rad) * length, math.Cos(rad) * length
}

// turn rotates the turtle by deg degrees, counter-clockwise when positive.
func (t *Turtle) turn(deg float64) {
	t.SetOrientation(t.orientation + deg)
}

// Forward moves the turtle along its heading by the given length.
func (t *Turtle) Forward(length float64) {
	dx, dy := t.headingVector(length)
	t.moveTo(t.position.X+dx, t.position.Y+dy)
}

// Backward moves the turtle against its heading by the given length.
func (t *Turtle) Backward(length float64) {
	dx, dy := t.headingVector(length)
	t.moveTo(t.position.X-dx, t.position.Y-dy)
}

// Left turns the turtle counter-clockwise by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.turn(deg)
}

// Right turns the turtle clockwise by deg degrees.
func (t *Turtle) Right(deg float64) {
	t.turn(-deg)
}

// SetOrientation points the turtle at deg degrees, 0 being north and
// positive values counting counter-clockwise.  The stored orientation is
// normalized with math.Mod, so it keeps the sign of deg and lies in the open
// interval (-360, 360).
func (t *Turtle) SetOrientation(deg float64) {
	t.orientation = math.Mod(deg, 360)
	t.screen.SetTurtleOrientation(t.orientation)
	t.screen.DrawAndUpdate()
}

// Teleport moves the turtle directly to (x, y) without changing its heading.
// It uses the same move primitive as Forward, so a line is drawn when the
// pen is down.
func (t *Turtle) Teleport(x, y float64) {
	t.moveTo(x, y)
}

// Home moves the turtle to the origin and points it north.
func (t *Turtle) Home() {
	t.Teleport(0, 0)
	t.SetOrientation(0)
}

// PenUp lifts the pen so subsequent moves draw no lines.
func (t *Turtle) PenUp() {
	t.pen = PenUp
}

// PenDown sinks the pen so subsequent moves draw lines again.
func (t *Turtle) PenDown() {
	t.pen = PenDown
}

// Pen returns the current pen state.
func (t *Turtle) Pen() PenState {
	return t.pen
}

// SetColor sets the drawing color.  Each channel is a float in [0, 1];
// existing lines keep the color they were drawn with.
func (t *Turtle) SetColor(red, green, blue float64) {
	t.color = graphic.RGB(red, green, blue)
	t.screen.SetTurtleColor(t.color)
	t.screen.DrawAndUpdate()
}

// Color returns the current drawing color.
func (t *Turtle) Color() graphic.Color {
	return t.color
}

// SetBackgroundColor sets the background color of the screen.
func (t *Turtle) SetBackgroundColor(red, green, blue float64) {
	t.screen.SetBackgroundColor(graphic.RGB(red, green, blue))
	t.screen.DrawAndUpdate()
}

// Position returns the turtle's position.
func (t *Turtle) Position() (x, y float64) {
	return t.position.X, t.position.Y
}

// Orientation returns the turtle's heading in degrees.
func (t *Turtle) Orientation() float64 {
	return t.orientation
}

// Hide stops the turtle marker from being drawn on the screen.
func (t *Turtle) Hide() {
	t.hidden = true
	t.screen.SetTurtleHidden(true)
	t.screen.DrawAndUpdate()
}

// Show draws the turtle marker again after it has been hidden.
func (t *Turtle) Show() {
	t.hidden = false
	t.screen.SetTurtleHidden(false)
	t.screen.DrawAndUpdate()
}

// IsHidden reports whether the turtle marker is currently hidden.
func (t *Turtle) IsHidden() bool {
	return t.hidden
}

// Write draws text on the screen with its lower-left corner at the turtle's
// position.  The turtle does not move.  The text becomes visible on the next
// redraw.
func (t *Turtle) Write(text string) {
	t.screen.AddText(t.position, t.orientation, t.color, text)
}

// Flood fills the contiguous region containing the turtle's position with
// the current drawing color.
func (t *Turtle) Flood() {
	t.screen.FloodFill(t.position, t.color)
}

// Clear removes all drawn lines and text.  The turtle's position,
// orientation, pen state, and color are unaffected.
func (t *Turtle) Clear() {
	t.screen.Clear()
}
