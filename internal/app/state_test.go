package app

import (
	"testing"

	"circuit-viewer/internal/circuit"
)

func TestSetGraph_ResolvesNodesAndEmits(t *testing.T) {
	s := NewState()

	var events int
	s.On(EventGraphChanged, func(data interface{}) {
		events++
	})

	g := &circuit.Graph{Devices: []*circuit.Device{
		{ID: "j1", Type: circuit.TypeJunction,
			Position: circuit.Position{X: 1, Z: 2}, Nodes: []string{"n1"}},
	}}
	s.SetGraph(g)

	got, nodes := s.Graph()
	if got != g {
		t.Error("installed graph not returned")
	}
	if pos, ok := nodes["n1"]; !ok || pos.X != 1 || pos.Z != 2 {
		t.Errorf("node n1 not resolved: %+v", nodes)
	}
	if events != 1 {
		t.Errorf("got %d change events, want 1", events)
	}
}

func TestSetGraphJSON_InvalidKeepsCurrent(t *testing.T) {
	s := NewState()

	valid := []byte(`{
	  "devices": [{"deviceId": "R1", "deviceType": "resistor", "position": {"x": 0, "z": 0}}],
	  "wires": []
	}`)
	if err := s.SetGraphJSON(valid); err != nil {
		t.Fatalf("valid graph rejected: %v", err)
	}

	if err := s.SetGraphJSON([]byte(`{"devices": 5}`)); err == nil {
		t.Fatal("invalid graph accepted")
	}

	g, _ := s.Graph()
	if g.Device("R1") == nil {
		t.Error("previous graph was discarded on invalid input")
	}
}

func TestOn_MultipleListeners(t *testing.T) {
	s := NewState()

	var a, b bool
	s.On(EventScaleFactorChanged, func(data interface{}) { a = true })
	s.On(EventScaleFactorChanged, func(data interface{}) { b = true })

	s.Emit(EventScaleFactorChanged, 5000.0)

	if !a || !b {
		t.Errorf("listeners called: a=%v b=%v, want both", a, b)
	}
}
