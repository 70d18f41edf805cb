package view

import (
	"circuit-viewer/pkg/geometry"
)

// Transform limits and steps.
const (
	MinZoom  = 0.1
	MaxZoom  = 10.0
	ZoomStep = 0.05 // per wheel notch

	MinScaleFactor     = 1000.0
	MaxScaleFactor     = 15000.0
	DefaultScaleFactor = 5000.0
)

// Transform holds the mutable view parameters. It is owned by the rendering
// widget and mutated only through the methods below; the single-owner
// invariant means no locking is needed. The scale factor is the only
// parameter surfaced to external observers.
type Transform struct {
	zoom        float64
	pan         geometry.Point2D
	quadrant    int
	scaleFactor float64

	onScaleFactorChange func(float64)
}

// NewTransform creates a transform with default zoom, pan and rotation and
// the given global scale factor (clamped to the legal range).
func NewTransform(scaleFactor float64) *Transform {
	return &Transform{
		zoom:        1.0,
		quadrant:    0,
		scaleFactor: clamp(scaleFactor, MinScaleFactor, MaxScaleFactor),
	}
}

// Zoom returns the current zoom scale.
func (t *Transform) Zoom() float64 { return t.zoom }

// Pan returns the current pan offset in pixels.
func (t *Transform) Pan() geometry.Point2D { return t.pan }

// Quadrant returns the current scene rotation in degrees (0/90/180/270).
func (t *Transform) Quadrant() int { return t.quadrant }

// ScaleFactor returns the current global scale factor.
func (t *Transform) ScaleFactor() float64 { return t.scaleFactor }

// ZoomBy adjusts the zoom by the given number of wheel notches (positive
// zooms in), clamped to [MinZoom, MaxZoom].
func (t *Transform) ZoomBy(notches float64) {
	t.zoom = clamp(t.zoom+notches*ZoomStep, MinZoom, MaxZoom)
}

// PanBy shifts the pan offset by a pointer displacement in pixels.
func (t *Transform) PanBy(dx, dy float64) {
	t.pan.X += dx
	t.pan.Y += dy
}

// RotateStep advances the scene rotation by 90 degrees, wrapping 270 to 0.
func (t *Transform) RotateStep() {
	t.quadrant = (t.quadrant + 90) % 360
}

// SetScaleFactor sets the global scale factor, clamped to
// [MinScaleFactor, MaxScaleFactor], and notifies the change listener so
// dependent displays stay consistent.
func (t *Transform) SetScaleFactor(v float64) {
	t.scaleFactor = clamp(v, MinScaleFactor, MaxScaleFactor)
	if t.onScaleFactorChange != nil {
		t.onScaleFactorChange(t.scaleFactor)
	}
}

// OnScaleFactorChange registers the callback invoked with the new value
// whenever the scale factor is set.
func (t *Transform) OnScaleFactorChange(fn func(float64)) {
	t.onScaleFactorChange = fn
}

// Params snapshots the transform for one frame with the given base scale.
func (t *Transform) Params(baseScale float64) Params {
	return Params{
		Quadrant:    t.quadrant,
		Zoom:        t.zoom,
		Pan:         t.pan,
		BaseScale:   baseScale,
		ScaleFactor: t.scaleFactor,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
