// Package render repaints the circuit scene into an RGBA surface: fixed
// checkerboard background, wires on the back layer, device glyphs on the
// front layer so components occlude wire ends at their anchor points.
// Nothing in the render path returns an error; a dangling reference or an
// unknown device type degrades that one entity, never the frame.
package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"circuit-viewer/internal/circuit"
	"circuit-viewer/internal/view"
	"circuit-viewer/pkg/colorutil"
)

const (
	tileSize = 20 // checkerboard tile in pixels, zoom-independent

	wireWidth = 2.0

	deviceGlyphW   = 84.0
	deviceGlyphH   = 48.0
	cornerRadius   = 10.0
	junctionRadius = 6.0

	shadowOffsetX = 3.0
	shadowOffsetY = 3.0
	shadowOpacity = 0.35
)

var (
	tileLight = color.RGBA{R: 238, G: 238, B: 238, A: 255}
	tileDark  = color.RGBA{R: 221, G: 221, B: 221, A: 255}
	wireColor = colorutil.Copper
)

// Draw performs a full repaint of dst: clear to the background pattern,
// wires, then devices. nodes is the resolved node-position map from
// circuit.ResolveNodes. A nil destination is a silent no-op (nothing to
// draw onto); a nil graph paints only the background.
func Draw(dst *image.RGBA, g *circuit.Graph, nodes map[string]circuit.Position, p view.Params) {
	if dst == nil {
		return
	}
	drawBackground(dst)
	if g == nil {
		return
	}
	for _, w := range g.Wires {
		drawWire(dst, g, nodes, w, p)
	}
	for _, d := range g.Devices {
		drawDevice(dst, d, p)
	}
}

// drawBackground paints the fixed-size checkerboard. Tile parity follows
// ((x+y)/tileSize) mod 2 over tile origins.
func drawBackground(dst *image.RGBA) {
	b := dst.Bounds()
	for y0 := b.Min.Y; y0 < b.Max.Y; y0 += tileSize {
		for x0 := b.Min.X; x0 < b.Max.X; x0 += tileSize {
			col := tileLight
			if ((x0+y0)/tileSize)%2 != 0 {
				col = tileDark
			}
			fillRect(dst, x0, y0, x0+tileSize, y0+tileSize, col)
		}
	}
}

// drawWire strokes a straight segment between the wire's two resolved
// endpoints. A wire with fewer than two nodes, or an endpoint whose owning
// device cannot be found, is skipped silently.
func drawWire(dst *image.RGBA, g *circuit.Graph, nodes map[string]circuit.Position, w *circuit.Wire, p view.Params) {
	if w == nil || len(w.Nodes) < 2 {
		return
	}
	startPos, ok := circuit.EndpointPosition(g, nodes, w.Nodes[0])
	if !ok {
		return
	}
	endPos, ok := circuit.EndpointPosition(g, nodes, w.Nodes[1])
	if !ok {
		return
	}

	// Wire endpoints do not apply the per-device local scale.
	start := view.Project(startPos, p, 1)
	end := view.Project(endPos, p, 1)

	thickness := int(math.Round(wireWidth * p.Zoom))
	if thickness < 1 {
		thickness = 1
	}
	thickLine(dst, int(start.X), int(start.Y), int(end.X), int(end.Y), wireColor, thickness)
}

// drawDevice renders one device glyph. Junctions are a small filled and
// stroked circle with no label; all other types are a rotated rounded
// rectangle with a drop shadow and an upright label.
func drawDevice(dst *image.RGBA, d *circuit.Device, p view.Params) {
	if d == nil {
		return
	}
	center := view.Project(d.Position, p, d.Position.LocalScale())
	st := StyleFor(d.Type)

	if d.IsJunction() {
		r := int(junctionRadius * p.Zoom)
		if r < 2 {
			r = 2
		}
		fillCircle(dst, int(center.X), int(center.Y), r, st.Fill)
		drawCircle(dst, int(center.X), int(center.Y), r, st.Stroke)
		return
	}

	w := deviceGlyphW * p.Zoom
	h := deviceGlyphH * p.Zoom
	radius := cornerRadius * p.Zoom
	drawDeviceBox(dst, center.X, center.Y, w, h, radius, d.Rotation, st, p.Zoom)

	label := strings.TrimSpace(st.Glyph + " " + strings.ToLower(d.Type))
	drawLabel(dst, label, int(center.X), int(center.Y), labelSize(p.Zoom), st.Stroke)
}

// drawDeviceBox paints a rounded rectangle rotated by rotationDeg around
// (cx, cy), with a drop shadow behind it. Pixels in the rotated box's
// bounding area are inverse-mapped into box-local coordinates and tested
// against the rounded-rect distance, so arbitrary rotation angles work
// without resampling.
func drawDeviceBox(dst *image.RGBA, cx, cy, w, h, radius, rotationDeg float64, st Style, zoom float64) {
	bounds := dst.Bounds()
	halfW, halfH := w/2, h/2
	if halfW <= 0 || halfH <= 0 {
		return
	}
	if radius > math.Min(halfW, halfH) {
		radius = math.Min(halfW, halfH)
	}

	edge := 2 * zoom
	if edge < 1 {
		edge = 1
	}

	sin, cos := math.Sincos(rotationDeg * math.Pi / 180)
	shadowDX := shadowOffsetX * zoom
	shadowDY := shadowOffsetY * zoom

	// Circumscribed radius covers the box at any rotation, plus shadow reach.
	reach := math.Hypot(halfW, halfH) + math.Max(shadowDX, shadowDY) + 1
	minX := int(cx - reach)
	maxX := int(cx + reach)
	minY := int(cy - reach)
	maxY := int(cy + reach)

	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy

			// Inverse-rotate into box-local coordinates.
			lx := dx*cos + dy*sin
			ly := -dx*sin + dy*cos

			dist := roundedRectDist(lx, ly, halfW, halfH, radius)
			if dist <= 0 {
				if dist > -edge {
					dst.SetRGBA(x, y, st.Stroke)
				} else {
					dst.SetRGBA(x, y, st.Fill)
				}
				continue
			}

			// Shadow test against the box displaced by the shadow offset.
			sdx := dx - shadowDX
			sdy := dy - shadowDY
			slx := sdx*cos + sdy*sin
			sly := -sdx*sin + sdy*cos
			if roundedRectDist(slx, sly, halfW, halfH, radius) <= 0 {
				dst.SetRGBA(x, y, colorutil.Blend(dst.RGBAAt(x, y), colorutil.Black, shadowOpacity))
			}
		}
	}
}

// roundedRectDist is the signed distance from a box-local point to the edge
// of a rounded rectangle centered at the origin. Negative inside.
func roundedRectDist(x, y, halfW, halfH, r float64) float64 {
	qx := math.Abs(x) - (halfW - r)
	qy := math.Abs(y) - (halfH - r)
	outer := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inner := math.Min(math.Max(qx, qy), 0)
	return outer + inner - r
}
