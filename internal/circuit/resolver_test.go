package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNodes_JunctionWins(t *testing.T) {
	devices := []*Device{
		{ID: "R1", Type: TypeResistor, Position: Position{X: 5, Z: 5}, Nodes: []string{"n1", "n2"}},
		{ID: "J1", Type: TypeJunction, Position: Position{X: 1, Z: 0}, Nodes: []string{"n1"}},
	}

	resolved := ResolveNodes(devices)

	require.Contains(t, resolved, "n1")
	assert.Equal(t, Position{X: 1, Z: 0}, resolved["n1"])
	assert.NotContains(t, resolved, "n2", "non-junction devices contribute no positions")
}

func TestResolveNodes_CaseInsensitiveType(t *testing.T) {
	devices := []*Device{
		{ID: "J1", Type: "Junction", Position: Position{X: 2, Z: 3}, Nodes: []string{"a"}},
		{ID: "J2", Type: "JUNCTION", Position: Position{X: 4, Z: 5}, Nodes: []string{"b"}},
	}

	resolved := ResolveNodes(devices)

	assert.Equal(t, Position{X: 2, Z: 3}, resolved["a"])
	assert.Equal(t, Position{X: 4, Z: 5}, resolved["b"])
}

func TestResolveNodes_MultiNodeJunction(t *testing.T) {
	devices := []*Device{
		{ID: "J1", Type: TypeJunction, Position: Position{X: 1, Z: 2}, Nodes: []string{"a", "b", "c"}},
	}

	resolved := ResolveNodes(devices)

	require.Len(t, resolved, 3)
	for _, n := range []string{"a", "b", "c"} {
		assert.Equal(t, Position{X: 1, Z: 2}, resolved[n])
	}
}

func TestEndpointPosition_FallsBackToFirstDevice(t *testing.T) {
	g := &Graph{Devices: []*Device{
		{ID: "R1", Type: TypeResistor, Position: Position{X: 1, Z: 0}, Nodes: []string{"n2"}},
		{ID: "C1", Type: TypeCapacitor, Position: Position{X: 9, Z: 9}, Nodes: []string{"n2"}},
	}}
	resolved := ResolveNodes(g.Devices)

	pos, ok := EndpointPosition(g, resolved, "n2")

	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Z: 0}, pos, "first device in iteration order wins")
}

func TestEndpointPosition_PrefersJunction(t *testing.T) {
	g := &Graph{Devices: []*Device{
		{ID: "R1", Type: TypeResistor, Position: Position{X: 5, Z: 5}, Nodes: []string{"n1"}},
		{ID: "J1", Type: TypeJunction, Position: Position{X: 1, Z: 0}, Nodes: []string{"n1"}},
	}}
	resolved := ResolveNodes(g.Devices)

	pos, ok := EndpointPosition(g, resolved, "n1")

	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Z: 0}, pos)
}

func TestEndpointPosition_UnknownNode(t *testing.T) {
	g := &Graph{Devices: []*Device{
		{ID: "R1", Type: TypeResistor, Position: Position{X: 1, Z: 0}, Nodes: []string{"n1"}},
	}}
	resolved := ResolveNodes(g.Devices)

	_, ok := EndpointPosition(g, resolved, "nowhere")

	assert.False(t, ok)
}

func TestGraphBounds(t *testing.T) {
	g := &Graph{Devices: []*Device{
		{ID: "a", Type: TypeResistor, Position: Position{X: -1, Z: 2}},
		{ID: "b", Type: TypeResistor, Position: Position{X: 3, Z: -4}},
	}}

	b := g.Bounds()

	assert.Equal(t, -1.0, b.X)
	assert.Equal(t, -4.0, b.Y)
	assert.Equal(t, 4.0, b.Width)
	assert.Equal(t, 6.0, b.Height)
	assert.Equal(t, 6.0, b.Extent())
}

func TestPositionLocalScale(t *testing.T) {
	assert.Equal(t, 1.0, Position{}.LocalScale())
	assert.Equal(t, 1.0, Position{ScaleFactor: -2}.LocalScale())
	assert.Equal(t, 2.5, Position{ScaleFactor: 2.5}.LocalScale())
}
