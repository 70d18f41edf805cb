// Package app provides application state and events for the circuit viewer.
package app

import (
	"fmt"
	"os"
	"sync"

	"circuit-viewer/internal/circuit"
)

// EventType identifies different application events.
type EventType int

const (
	EventGraphChanged EventType = iota
	EventGraphLoaded
	EventScaleFactorChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the current circuit graph and its resolved node positions.
// The graph is replaced wholesale (file load or JSON editor apply), never
// mutated incrementally.
type State struct {
	mu sync.RWMutex

	GraphPath string

	graph *circuit.Graph
	nodes map[string]circuit.Position

	listeners map[EventType][]EventListener
}

// NewState creates a new application state with an empty graph.
func NewState() *State {
	return &State{
		graph:     &circuit.Graph{Devices: []*circuit.Device{}, Wires: []*circuit.Wire{}},
		nodes:     map[string]circuit.Position{},
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Graph returns the current graph and its resolved node positions.
func (s *State) Graph() (*circuit.Graph, map[string]circuit.Position) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph, s.nodes
}

// SetGraph replaces the graph wholesale, re-resolves node positions, and
// notifies listeners.
func (s *State) SetGraph(g *circuit.Graph) {
	s.mu.Lock()
	s.graph = g
	s.nodes = circuit.ResolveNodes(g.Devices)
	s.mu.Unlock()

	s.Emit(EventGraphChanged, g)
}

// SetGraphJSON parses, validates, and installs a graph document supplied by
// the JSON editor collaborator. Invalid input leaves the current graph in
// place.
func (s *State) SetGraphJSON(data []byte) error {
	g, err := circuit.Parse(data)
	if err != nil {
		return err
	}
	s.SetGraph(g)
	return nil
}

// LoadGraph reads and installs a circuit graph file.
func (s *State) LoadGraph(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read circuit graph: %w", err)
	}
	if err := s.SetGraphJSON(data); err != nil {
		return err
	}

	s.mu.Lock()
	s.GraphPath = path
	s.mu.Unlock()

	s.Emit(EventGraphLoaded, path)
	return nil
}
