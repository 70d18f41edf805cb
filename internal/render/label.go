package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"circuit-viewer/pkg/colorutil"
)

const (
	labelBackingOpacity = 0.72
	labelPadding        = 3
)

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFaces    = map[int]font.Face{}
)

// labelFace returns a cached Go Regular face at the given pixel size.
// The drawing surface is owned by a single goroutine, so the cache is
// not locked.
func labelFace(size int) font.Face {
	labelFontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err) // embedded font always parses
		}
		labelFont = f
	})

	if face, ok := labelFaces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	labelFaces[size] = face
	return face
}

// labelSize picks a font pixel size for the current zoom.
func labelSize(zoom float64) int {
	size := int(11 * zoom)
	if size < 8 {
		size = 8
	}
	if size > 32 {
		size = 32
	}
	return size
}

// drawLabel draws upright text centered at (cx, cy) over a semi-transparent
// white backing rectangle sized to the measured text extent. The label is
// never rotated, regardless of the owning device's rotation.
func drawLabel(dst *image.RGBA, text string, cx, cy, size int, col color.RGBA) {
	if text == "" {
		return
	}
	face := labelFace(size)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	height := ascent + descent

	x1 := cx - width/2 - labelPadding
	y1 := cy - height/2 - labelPadding
	x2 := cx + width/2 + labelPadding
	y2 := cy + height/2 + labelPadding
	fillRectBlend(dst, x1, y1, x2, y2, colorutil.White, labelBackingOpacity)

	d.Dot = fixed.P(cx-width/2, cy-height/2+ascent)
	d.DrawString(text)
}
