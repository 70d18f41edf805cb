// Package circuit defines the reconstructed circuit graph: devices and wires
// referencing shared electrical nodes. The graph is supplied wholesale by an
// external collaborator (file upload or JSON editor) and is immutable from
// the renderer's perspective per frame.
package circuit

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"circuit-viewer/pkg/geometry"
)

// Known device types. DeviceType values outside this set still render with
// the fallback style, so the list is informational rather than a closed enum.
const (
	TypeResistor      = "resistor"
	TypeCapacitor     = "capacitor"
	TypeInductor      = "inductor"
	TypeVoltageSource = "voltage_source"
	TypeCurrentSource = "current_source"
	TypeGround        = "ground"
	TypeJunction      = "junction"
	TypeOther         = "other"
)

// Position is a point in the external, unit-less world coordinate space.
// Only X and Z take part in projection; Y is carried through untouched.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z"`

	// ScaleFactor is an optional per-entity glyph scale override.
	// Zero means unset and is treated as 1.
	ScaleFactor float64 `json:"scaleFactor,omitempty"`
}

// LocalScale returns the per-entity scale override, defaulting to 1.
func (p Position) LocalScale() float64 {
	if p.ScaleFactor <= 0 {
		return 1
	}
	return p.ScaleFactor
}

// Device is a discrete component placed at a world position. A device owns
// its position and intrinsic rotation but not the nodes it references; node
// ids are shared identifiers, many-to-many across devices and wires.
type Device struct {
	ID       string   `json:"deviceId"`
	Type     string   `json:"deviceType"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation"` // degrees, glyph rotation around its own screen position
	Nodes    []string `json:"nodes"`
}

// IsJunction reports whether the device is a bare wire-connection point.
// The type match is case-insensitive.
func (d *Device) IsJunction() bool {
	return strings.EqualFold(d.Type, TypeJunction)
}

// HasNode reports whether the device's node list contains the given id.
func (d *Device) HasNode(nodeID string) bool {
	for _, n := range d.Nodes {
		if n == nodeID {
			return true
		}
	}
	return false
}

// Wire connects exactly two nodes. A wire has no position of its own; its
// geometry is derived entirely by resolving its node ids.
type Wire struct {
	ID    string   `json:"wireId"`
	Nodes []string `json:"nodes"`
}

// Graph is the complete reconstructed circuit.
type Graph struct {
	Devices []*Device `json:"devices"`
	Wires   []*Wire   `json:"wires"`
}

// Device returns the device with the given id, or nil.
func (g *Graph) Device(id string) *Device {
	for _, d := range g.Devices {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// DeviceForNode returns the first device in iteration order whose node list
// contains the given id, or nil. Iteration order is the order devices appear
// in the source document; when several non-junction devices share a node id
// the first one wins.
func (g *Graph) DeviceForNode(nodeID string) *Device {
	for _, d := range g.Devices {
		if d.HasNode(nodeID) {
			return d
		}
	}
	return nil
}

// Bounds returns the axis-aligned world extent (X by Z) covering all device
// positions. An empty graph yields the zero rectangle.
func (g *Graph) Bounds() geometry.Rect {
	if g == nil || len(g.Devices) == 0 {
		return geometry.Rect{}
	}
	xs := make([]float64, len(g.Devices))
	zs := make([]float64, len(g.Devices))
	for i, d := range g.Devices {
		xs[i] = d.Position.X
		zs[i] = d.Position.Z
	}
	minX, maxX := floats.Min(xs), floats.Max(xs)
	minZ, maxZ := floats.Min(zs), floats.Max(zs)
	return geometry.Rect{X: minX, Y: minZ, Width: maxX - minX, Height: maxZ - minZ}
}
