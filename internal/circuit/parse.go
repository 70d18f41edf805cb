package circuit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// graphSchema is the structural contract a circuit graph document must meet
// before it reaches the rendering core. Wires must reference exactly two
// nodes; devices must carry a type and a position with x and z.
const graphSchema = `{
  "type": "object",
  "required": ["devices", "wires"],
  "properties": {
    "devices": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["deviceType", "position"],
        "properties": {
          "deviceId": {"type": "string"},
          "deviceType": {"type": "string"},
          "rotation": {"type": "number"},
          "position": {
            "type": "object",
            "required": ["x", "z"],
            "properties": {
              "x": {"type": "number"},
              "y": {"type": "number"},
              "z": {"type": "number"},
              "scaleFactor": {"type": "number"}
            }
          },
          "nodes": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    },
    "wires": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["nodes"],
        "properties": {
          "wireId": {"type": "string"},
          "nodes": {
            "type": "array",
            "minItems": 2,
            "maxItems": 2,
            "items": {"type": "string"}
          }
        }
      }
    }
  }
}`

// Parse decodes and validates a circuit graph document. Structurally invalid
// input is rejected here so the renderer can assume a validated shape.
func Parse(data []byte) (*Graph, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("circuit graph is not valid JSON")
	}

	// Cheap structural precheck before running the full schema.
	if !gjson.GetBytes(data, "devices").IsArray() || !gjson.GetBytes(data, "wires").IsArray() {
		return nil, fmt.Errorf("circuit graph must contain devices and wires arrays")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(graphSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid circuit graph: %s", strings.Join(msgs, "; "))
	}

	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decode circuit graph: %w", err)
	}

	normalize(&g)
	return &g, nil
}

// normalize fills in missing entity ids so every device and wire is
// addressable, and replaces nil node lists with empty ones.
func normalize(g *Graph) {
	for _, d := range g.Devices {
		if d.ID == "" {
			d.ID = "device-" + uuid.NewString()
		}
		if d.Nodes == nil {
			d.Nodes = []string{}
		}
	}
	for _, w := range g.Wires {
		if w.ID == "" {
			w.ID = "wire-" + uuid.NewString()
		}
	}
}
