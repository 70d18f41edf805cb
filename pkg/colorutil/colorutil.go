// Package colorutil provides shared color utilities for the circuit viewer.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Copper = color.RGBA{R: 148, G: 94, B: 46, A: 255}
	Gray   = color.RGBA{R: 158, G: 158, B: 158, A: 255}
)

// Darken reduces the brightness of a color.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - factor)),
		G: uint8(float64(c.G) * (1 - factor)),
		B: uint8(float64(c.B) * (1 - factor)),
		A: c.A,
	}
}

// Blend mixes top over base at the given opacity. Opacity outside [0,1]
// is clamped. The result is fully opaque.
func Blend(base, top color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return color.RGBA{R: top.R, G: top.G, B: top.B, A: 255}
	}
	inv := 1 - opacity
	return color.RGBA{
		R: uint8(float64(top.R)*opacity + float64(base.R)*inv),
		G: uint8(float64(top.G)*opacity + float64(base.G)*inv),
		B: uint8(float64(top.B)*opacity + float64(base.B)*inv),
		A: 255,
	}
}
