package render

import (
	"image/color"
	"strings"

	"circuit-viewer/internal/circuit"
)

// Style is the fill/stroke color pair and icon glyph for a device type.
type Style struct {
	Fill   color.RGBA
	Stroke color.RGBA
	Glyph  string
}

// deviceStyles indexes styles by lower-cased device type.
var deviceStyles = map[string]Style{
	circuit.TypeResistor:      {Fill: color.RGBA{239, 154, 154, 255}, Stroke: color.RGBA{183, 28, 28, 255}, Glyph: "R"},
	circuit.TypeCapacitor:     {Fill: color.RGBA{144, 202, 249, 255}, Stroke: color.RGBA{13, 71, 161, 255}, Glyph: "C"},
	circuit.TypeInductor:      {Fill: color.RGBA{165, 214, 167, 255}, Stroke: color.RGBA{27, 94, 32, 255}, Glyph: "L"},
	circuit.TypeVoltageSource: {Fill: color.RGBA{255, 224, 130, 255}, Stroke: color.RGBA{255, 111, 0, 255}, Glyph: "V"},
	circuit.TypeCurrentSource: {Fill: color.RGBA{255, 204, 128, 255}, Stroke: color.RGBA{230, 81, 0, 255}, Glyph: "I"},
	circuit.TypeGround:        {Fill: color.RGBA{176, 190, 197, 255}, Stroke: color.RGBA{55, 71, 79, 255}, Glyph: "G"},
	circuit.TypeJunction:      {Fill: color.RGBA{69, 90, 100, 255}, Stroke: color.RGBA{38, 50, 56, 255}, Glyph: ""},
	circuit.TypeOther:         {Fill: color.RGBA{224, 224, 224, 255}, Stroke: color.RGBA{97, 97, 97, 255}, Glyph: "?"},
}

// fallbackStyle is used for unrecognized device types, which must never
// fail to render.
var fallbackStyle = Style{
	Fill:   color.RGBA{224, 224, 224, 255},
	Stroke: color.RGBA{97, 97, 97, 255},
	Glyph:  "?",
}

// StyleFor returns the style for a device type, case-insensitively, falling
// back to the default pair and glyph for unknown types.
func StyleFor(deviceType string) Style {
	if s, ok := deviceStyles[strings.ToLower(deviceType)]; ok {
		return s
	}
	return fallbackStyle
}
