// Package view owns the world-to-screen transform: the mutable view
// parameters (zoom, pan, quadrant rotation, global scale factor) and the
// pure projection from world positions to screen pixels.
package view

import (
	"math"

	"circuit-viewer/internal/circuit"
	"circuit-viewer/pkg/geometry"
)

// nominalExtent is the world span BaseScale normalizes to the surface.
const nominalExtent = 1000.0

// Params is the per-frame snapshot of the view transform consumed by the
// projection and the renderer. Projecting with equal Params always yields
// equal results; there is no hidden state.
type Params struct {
	Quadrant    int              // scene rotation: 0, 90, 180 or 270 degrees
	Zoom        float64          // zoom scale
	Pan         geometry.Point2D // pan offset in pixels
	BaseScale   float64          // surface normalization, see BaseScale
	ScaleFactor float64          // global world-to-pixel multiplier, pre-zoom
}

// BaseScale normalizes the nominal 1000x1000 world extent to the surface
// pixel size with a 10% margin. Recomputed only when the surface resizes;
// independent of zoom.
func BaseScale(width, height int) float64 {
	w := float64(width) / nominalExtent
	h := float64(height) / nominalExtent
	return math.Min(w, h) * 0.9
}

// Project maps a world position to screen pixels. localScale is the
// per-device glyph scale override; wire endpoints pass 1. Rotation is by
// exact quadrant, not a general matrix: only 0/90/180/270 are legal and any
// other value falls back to 0.
func Project(pos circuit.Position, p Params, localScale float64) geometry.Point2D {
	if localScale <= 0 {
		localScale = 1
	}
	sx := pos.X * p.ScaleFactor
	sz := pos.Z * p.ScaleFactor
	k := p.BaseScale * p.Zoom * localScale

	switch p.Quadrant {
	case 90:
		return geometry.Point2D{X: -sz*k + p.Pan.X, Y: sx*k + p.Pan.Y}
	case 180:
		return geometry.Point2D{X: -sx*k + p.Pan.X, Y: -sz*k + p.Pan.Y}
	case 270:
		return geometry.Point2D{X: sz*k + p.Pan.X, Y: -sx*k + p.Pan.Y}
	default:
		return geometry.Point2D{X: sx*k + p.Pan.X, Y: sz*k + p.Pan.Y}
	}
}

// SuggestScaleFactor derives a scale factor that maps the graph's world
// extent onto the nominal 1000-unit span, clamped to the legal range.
// Returns the current default for an empty or degenerate graph.
func SuggestScaleFactor(g *circuit.Graph) float64 {
	extent := g.Bounds().Extent()
	if extent <= 0 {
		return DefaultScaleFactor
	}
	return clamp(nominalExtent/extent, MinScaleFactor, MaxScaleFactor)
}
