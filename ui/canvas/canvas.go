// Package canvas provides the interactive circuit canvas with pan, zoom,
// quadrant rotation, and an adjustable world-to-screen scale factor.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"circuit-viewer/internal/circuit"
	"circuit-viewer/internal/render"
	"circuit-viewer/internal/view"
)

// CircuitView displays a circuit graph on a software-rendered raster.
// The widget owns the view transform; every event mutates the transform
// synchronously and triggers a full repaint.
type CircuitView struct {
	widget.BaseWidget

	raster    *fynecanvas.Raster
	transform *view.Transform

	graph *circuit.Graph
	nodes map[string]circuit.Position

	// Last seen surface size, for base-scale recomputation on resize.
	lastW, lastH int
	baseScale    float64
}

// NewCircuitView creates a circuit canvas with the given initial global
// scale factor.
func NewCircuitView(scaleFactor float64) *CircuitView {
	cv := &CircuitView{
		transform: view.NewTransform(scaleFactor),
	}

	cv.raster = fynecanvas.NewRaster(cv.draw)
	cv.raster.ScaleMode = fynecanvas.ImageScalePixels
	cv.raster.SetMinSize(fyne.NewSize(400, 300))

	cv.ExtendBaseWidget(cv)
	return cv
}

// SetGraph replaces the displayed graph wholesale and re-resolves node
// positions.
func (cv *CircuitView) SetGraph(g *circuit.Graph) {
	cv.graph = g
	if g != nil {
		cv.nodes = circuit.ResolveNodes(g.Devices)
	} else {
		cv.nodes = nil
	}
	cv.Refresh()
}

// Transform returns the view transform owned by this canvas.
func (cv *CircuitView) Transform() *view.Transform {
	return cv.transform
}

// RotateStep advances the scene rotation by 90 degrees.
func (cv *CircuitView) RotateStep() {
	cv.transform.RotateStep()
	cv.Refresh()
}

// ZoomIn zooms in by one wheel notch.
func (cv *CircuitView) ZoomIn() {
	cv.transform.ZoomBy(1)
	cv.Refresh()
}

// ZoomOut zooms out by one wheel notch.
func (cv *CircuitView) ZoomOut() {
	cv.transform.ZoomBy(-1)
	cv.Refresh()
}

// SetScaleFactor sets the global scale factor (clamped) and repaints. The
// registered change callback receives the clamped value.
func (cv *CircuitView) SetScaleFactor(v float64) {
	cv.transform.SetScaleFactor(v)
	cv.Refresh()
}

// ScaleFactor returns the current global scale factor.
func (cv *CircuitView) ScaleFactor() float64 {
	return cv.transform.ScaleFactor()
}

// OnScaleFactorChange sets the callback invoked with the new value whenever
// the scale factor changes.
func (cv *CircuitView) OnScaleFactorChange(fn func(float64)) {
	cv.transform.OnScaleFactorChange(fn)
}

// Dragged pans the view by the pointer displacement.
func (cv *CircuitView) Dragged(ev *fyne.DragEvent) {
	cv.transform.PanBy(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	cv.Refresh()
}

// DragEnd ends a pan drag. There is no momentum.
func (cv *CircuitView) DragEnd() {}

// Scrolled zooms on wheel input: scroll up zooms in.
func (cv *CircuitView) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		cv.transform.ZoomBy(1)
	} else if ev.Scrolled.DY < 0 {
		cv.transform.ZoomBy(-1)
	}
	cv.Refresh()
}

// Refresh repaints the raster.
func (cv *CircuitView) Refresh() {
	cv.raster.Refresh()
}

// MinSize implements fyne.Widget.
func (cv *CircuitView) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// CreateRenderer implements fyne.Widget.
func (cv *CircuitView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cv.raster)
}

// draw is the raster drawing function: a full repaint sized to the surface.
func (cv *CircuitView) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		// No drawable surface; render nothing.
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	if w != cv.lastW || h != cv.lastH {
		cv.lastW, cv.lastH = w, h
		cv.baseScale = view.BaseScale(w, h)
	}

	output := image.NewRGBA(image.Rect(0, 0, w, h))
	render.Draw(output, cv.graph, cv.nodes, cv.transform.Params(cv.baseScale))
	return output
}
