package circuit

// ResolveNodes builds the mapping from node id to authoritative position.
// Only junction devices contribute: each node id a junction lists maps to
// that junction's position. Other device types never register positions.
// Nodes claimed by no junction are absent from the map; resolution is
// best-effort and never fails.
func ResolveNodes(devices []*Device) map[string]Position {
	resolved := make(map[string]Position)
	for _, d := range devices {
		if d == nil || !d.IsJunction() {
			continue
		}
		for _, n := range d.Nodes {
			resolved[n] = d.Position
		}
	}
	return resolved
}

// EndpointPosition returns the drawing position for a wire endpoint: the
// junction position when the node is resolved, otherwise the raw position of
// the first device listing the node. The second return is false when no
// device references the node at all, in which case the caller skips the wire.
func EndpointPosition(g *Graph, resolved map[string]Position, nodeID string) (Position, bool) {
	if pos, ok := resolved[nodeID]; ok {
		return pos, true
	}
	if d := g.DeviceForNode(nodeID); d != nil {
		return d.Position, true
	}
	return Position{}, false
}
