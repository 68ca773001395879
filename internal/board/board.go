// Package board loads seed boards: a YAML description of the nodes and the
// initial view a canvas opens with. Boards are read-only input; the canvas
// never writes them back.
//
//	view:
//	  x: 0
//	  y: 0
//	  scale: 1
//	nodes:
//	  - id: root
//	    x: 0
//	    y: 0
//	    rx: 120
//	    ry: 60
//	    label: Main node
package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/infinicanvas"
)

// Board is a parsed seed board.
type Board struct {
	View  *View  `yaml:"view,omitempty"`
	Nodes []Node `yaml:"nodes"`
}

// View is the initial camera. A zero Scale keeps the engine default.
type View struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale,omitempty"`
}

// Node is one ellipse on the board, in world units.
type Node struct {
	ID    string  `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	RX    float64 `yaml:"rx"`
	RY    float64 `yaml:"ry"`
	Label string  `yaml:"label,omitempty"`
}

// Default returns the board shown when none is configured: one node at the
// world origin.
func Default() *Board {
	return &Board{
		Nodes: []Node{{ID: "root", RX: 120, RY: 60, Label: "Main node"}},
	}
}

// Load reads and validates the board at path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a board.
func Parse(data []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate rejects nodes the canvas could not hit-test: missing or repeated
// IDs and non-positive radii.
func (b *Board) Validate() error {
	seen := make(map[string]bool, len(b.Nodes))
	for i, n := range b.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: missing id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("node %d: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = true
		if n.RX <= 0 || n.RY <= 0 {
			return fmt.Errorf("node %q: radius (%v, %v) must be positive", n.ID, n.RX, n.RY)
		}
	}
	if b.View != nil && b.View.Scale < 0 {
		return fmt.Errorf("view: scale %v must not be negative", b.View.Scale)
	}
	return nil
}

// EngineNodes converts the board nodes for Engine.SetNodes.
func (b *Board) EngineNodes() []infinicanvas.Node {
	out := make([]infinicanvas.Node, len(b.Nodes))
	for i, n := range b.Nodes {
		out[i] = infinicanvas.Node{
			ID:     n.ID,
			Center: infinicanvas.Vec2{X: n.X, Y: n.Y},
			Radius: infinicanvas.Vec2{X: n.RX, Y: n.RY},
			Label:  n.Label,
		}
	}
	return out
}

// Apply replaces e's nodes with the board's and sets the initial view.
func (b *Board) Apply(e *infinicanvas.Engine) {
	e.SetNodes(b.EngineNodes())
	if b.View != nil {
		scale := b.View.Scale
		if scale == 0 {
			scale = e.Camera().Scale
		}
		e.SetView(infinicanvas.Vec2{X: b.View.X, Y: b.View.Y}, scale)
	}
	infinicanvas.Logger().Info("board applied", "nodes", len(b.Nodes))
}
