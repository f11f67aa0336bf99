// Copyright © 2019 The Rurtle authors

package graphic_test

import (
	"image/color"
	"testing"

	"github.com/ligthyear/rurtle/graphic"
	"github.com/stretchr/testify/assert"
)

func TestNRGBA(t *testing.T) {
	tests := []struct {
		c    graphic.Color
		want color.NRGBA
	}{
		{graphic.Black, color.NRGBA{0, 0, 0, 255}},
		{graphic.White, color.NRGBA{255, 255, 255, 255}},
		{graphic.RGB(1, 0, 0), color.NRGBA{255, 0, 0, 255}},
		{graphic.RGB(0.5, 0.5, 0.5), color.NRGBA{128, 128, 128, 255}},
		// Out-of-range channels clamp instead of wrapping.
		{graphic.RGB(2, -1, 0), color.NRGBA{255, 0, 0, 255}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.c.NRGBA())
	}
}
