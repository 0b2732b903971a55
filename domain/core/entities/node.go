package entities

import (
	"flowedit/domain/core/valueobjects"
)

// Node is one shape on the canvas. Nodes are plain snapshot records:
// commands never mutate a node in place, they produce updated copies,
// so the document can be treated as immutable per history step.
type Node struct {
	ID       valueobjects.EntityID
	Position valueobjects.Position
	Size     valueobjects.Size
	Label    string
	Style    valueobjects.Style
	LayerID  valueobjects.LayerID
	// ZIndex orders painting within the document. Incremental reorders
	// may leave fractional values; the normalization pass restores
	// dense integers without changing relative order.
	ZIndex   float64
	Selected bool
}

// NewNode creates a node on the default layer with default styling
func NewNode(id valueobjects.EntityID, position valueobjects.Position, size valueobjects.Size, label string) Node {
	return Node{
		ID:       id,
		Position: position,
		Size:     size,
		Label:    label,
		Style:    valueobjects.DefaultStyle(),
		LayerID:  valueobjects.DefaultLayerID,
	}
}

// Clone returns a copy of the node
func (n Node) Clone() Node {
	return n
}
