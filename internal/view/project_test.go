package view

import (
	"math"
	"testing"

	"circuit-viewer/internal/circuit"
	"circuit-viewer/pkg/geometry"
)

// TestProject_Deterministic verifies the projection is a pure function of
// its inputs.
func TestProject_Deterministic(t *testing.T) {
	pos := circuit.Position{X: 1.5, Z: -2.25}
	p := Params{
		Quadrant:    90,
		Zoom:        1.7,
		Pan:         geometry.Point2D{X: 12, Y: -8},
		BaseScale:   0.9,
		ScaleFactor: 4200,
	}

	first := Project(pos, p, 1.5)
	for i := 0; i < 10; i++ {
		got := Project(pos, p, 1.5)
		if got != first {
			t.Fatalf("call %d: got %+v, want %+v", i, got, first)
		}
	}
}

// TestProject_ExampleScenario checks the worked example: a device at
// {x:1, z:0} with quadrant 0, zoom 1, pan {0,0}, scale factor 1000 and base
// scale 0.9 lands at (900, 0).
func TestProject_ExampleScenario(t *testing.T) {
	pos := circuit.Position{X: 1, Z: 0}
	p := Params{Quadrant: 0, Zoom: 1, BaseScale: 0.9, ScaleFactor: 1000}

	got := Project(pos, p, 1)
	if got.X != 900 || got.Y != 0 {
		t.Errorf("got (%v, %v), want (900, 0)", got.X, got.Y)
	}
}

// TestProject_QuadrantRoundTrip verifies that rotating by Q and Q+180 with
// zero pan yields screen points that are negatives of each other.
func TestProject_QuadrantRoundTrip(t *testing.T) {
	pos := circuit.Position{X: 2.5, Z: -1.75}

	for _, q := range []int{0, 90} {
		p := Params{Quadrant: q, Zoom: 1.3, BaseScale: 0.72, ScaleFactor: 3000}
		opposite := p
		opposite.Quadrant = (q + 180) % 360

		a := Project(pos, p, 1)
		b := Project(pos, opposite, 1)

		if math.Abs(a.X+b.X) > 1e-9 || math.Abs(a.Y+b.Y) > 1e-9 {
			t.Errorf("quadrant %d vs %d: %+v and %+v are not negatives", q, opposite.Quadrant, a, b)
		}
	}
}

// TestProject_AllQuadrants exercises the exact-quadrant cases.
func TestProject_AllQuadrants(t *testing.T) {
	pos := circuit.Position{X: 2, Z: 1}
	base := Params{Zoom: 1, BaseScale: 1, ScaleFactor: 100}

	tests := []struct {
		quadrant int
		wantX    float64
		wantY    float64
	}{
		{0, 200, 100},
		{90, -100, 200},
		{180, -200, -100},
		{270, 100, -200},
	}

	for _, tt := range tests {
		p := base
		p.Quadrant = tt.quadrant
		got := Project(pos, p, 1)
		if got.X != tt.wantX || got.Y != tt.wantY {
			t.Errorf("quadrant %d: got (%v, %v), want (%v, %v)",
				tt.quadrant, got.X, got.Y, tt.wantX, tt.wantY)
		}
	}
}

// TestProject_ZoomMonotonic verifies that increasing zoom strictly increases
// the screen offset magnitude for a non-origin position.
func TestProject_ZoomMonotonic(t *testing.T) {
	pos := circuit.Position{X: 0.5, Z: 0.25}
	prev := -1.0

	for _, zoom := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		p := Params{Quadrant: 0, Zoom: zoom, BaseScale: 0.9, ScaleFactor: 2000}
		got := Project(pos, p, 1)
		mag := math.Hypot(got.X, got.Y)
		if mag <= prev {
			t.Errorf("zoom %v: magnitude %v not greater than previous %v", zoom, mag, prev)
		}
		prev = mag
	}
}

// TestProject_LocalScale verifies the per-device scale multiplies the
// projected offset and that non-positive values fall back to 1.
func TestProject_LocalScale(t *testing.T) {
	pos := circuit.Position{X: 1, Z: 1}
	p := Params{Quadrant: 0, Zoom: 1, BaseScale: 1, ScaleFactor: 100}

	unit := Project(pos, p, 1)
	doubled := Project(pos, p, 2)
	if doubled.X != unit.X*2 || doubled.Y != unit.Y*2 {
		t.Errorf("local scale 2: got %+v, want %+v doubled", doubled, unit)
	}

	fallback := Project(pos, p, 0)
	if fallback != unit {
		t.Errorf("local scale 0: got %+v, want %+v", fallback, unit)
	}
}

// TestProject_PanApplied verifies the pan offset is added after scaling.
func TestProject_PanApplied(t *testing.T) {
	pos := circuit.Position{X: 1, Z: 1}
	p := Params{Quadrant: 0, Zoom: 1, BaseScale: 1, ScaleFactor: 100,
		Pan: geometry.Point2D{X: 30, Y: -40}}

	got := Project(pos, p, 1)
	if got.X != 130 || got.Y != 60 {
		t.Errorf("got (%v, %v), want (130, 60)", got.X, got.Y)
	}
}

// TestBaseScale verifies surface normalization with its 10% margin.
func TestBaseScale(t *testing.T) {
	tests := []struct {
		width, height int
		want          float64
	}{
		{1000, 1000, 0.9},
		{2000, 1000, 0.9},
		{1000, 500, 0.45},
		{500, 2000, 0.45},
	}

	for _, tt := range tests {
		got := BaseScale(tt.width, tt.height)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("BaseScale(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

// TestSuggestScaleFactor verifies the extent-derived suggestion clamps to
// the legal range and defaults for empty graphs.
func TestSuggestScaleFactor(t *testing.T) {
	empty := &circuit.Graph{}
	if got := SuggestScaleFactor(empty); got != DefaultScaleFactor {
		t.Errorf("empty graph: got %v, want %v", got, DefaultScaleFactor)
	}

	g := &circuit.Graph{Devices: []*circuit.Device{
		{ID: "a", Type: circuit.TypeResistor, Position: circuit.Position{X: 0, Z: 0}},
		{ID: "b", Type: circuit.TypeResistor, Position: circuit.Position{X: 0.2, Z: 0}},
	}}
	if got := SuggestScaleFactor(g); got != 5000 {
		t.Errorf("extent 0.2: got %v, want 5000", got)
	}

	tiny := &circuit.Graph{Devices: []*circuit.Device{
		{ID: "a", Type: circuit.TypeResistor, Position: circuit.Position{X: 0, Z: 0}},
		{ID: "b", Type: circuit.TypeResistor, Position: circuit.Position{X: 10, Z: 0}},
	}}
	if got := SuggestScaleFactor(tiny); got != MinScaleFactor {
		t.Errorf("extent 10: got %v, want clamp to %v", got, MinScaleFactor)
	}
}
