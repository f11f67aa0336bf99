// Copyright © 2019 The Rurtle authors

// Package rurtletest provides test utilities for the rurtle runtime: a
// recording screen that captures every collaborator call the turtle issues,
// and a table-driven runner for builtin invocation sequences.
package rurtletest

import (
	"image"

	"github.com/ligthyear/rurtle/graphic"
	"github.com/ligthyear/rurtle/turtle"
)

// Line is a recorded AddLine call.
type Line struct {
	From, To graphic.Point
	Color    graphic.Color
}

// Text is a recorded AddText call.
type Text struct {
	At          graphic.Point
	Orientation float64
	Color       graphic.Color
	Body        string
}

// Fill is a recorded FloodFill call.
type Fill struct {
	At    graphic.Point
	Color graphic.Color
}

// Screen records every call a turtle issues to its screen collaborator so
// tests can assert on the draw side-effect contract.  The zero value is
// ready to use.
type Screen struct {
	Lines  []Line
	Texts  []Text
	Fills  []Fill
	Clears int

	// Redraws counts DrawAndUpdate calls.
	Redraws int

	// Last-known turtle pose pushed by the turtle.
	Pos         graphic.Point
	PosUpdates  int
	Orientation float64
	Color       graphic.Color
	Hidden      bool
	Background  graphic.Color

	// ScreenshotErr, when set, is returned by Screenshot in place of an
	// image to exercise export failure paths.
	ScreenshotErr error
}

var _ turtle.Screen = (*Screen)(nil)

func (s *Screen) AddLine(from, to graphic.Point, c graphic.Color) {
	s.Lines = append(s.Lines, Line{From: from, To: to, Color: c})
}

func (s *Screen) AddText(at graphic.Point, orientation float64, c graphic.Color, text string) {
	s.Texts = append(s.Texts, Text{At: at, Orientation: orientation, Color: c, Body: text})
}

func (s *Screen) FloodFill(at graphic.Point, c graphic.Color) {
	s.Fills = append(s.Fills, Fill{At: at, Color: c})
}

func (s *Screen) Clear() {
	s.Clears++
}

func (s *Screen) SetTurtlePos(p graphic.Point) {
	s.Pos = p
	s.PosUpdates++
}

func (s *Screen) SetTurtleOrientation(deg float64) {
	s.Orientation = deg
}

func (s *Screen) SetTurtleColor(c graphic.Color) {
	s.Color = c
}

func (s *Screen) SetTurtleHidden(hidden bool) {
	s.Hidden = hidden
}

func (s *Screen) SetBackgroundColor(c graphic.Color) {
	s.Background = c
}

func (s *Screen) DrawAndUpdate() {
	s.Redraws++
}

func (s *Screen) Screenshot() (image.Image, error) {
	if s.ScreenshotErr != nil {
		return nil, s.ScreenshotErr
	}
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}
