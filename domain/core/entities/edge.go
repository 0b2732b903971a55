package entities

import (
	"flowedit/domain/core/valueobjects"
)

// Edge is a connection between two nodes. An edge whose source or
// target node is absent from the document is structurally invalid and
// must never survive a command application.
type Edge struct {
	ID       valueobjects.EntityID
	Source   valueobjects.EntityID
	Target   valueobjects.EntityID
	Label    string
	Style    valueobjects.Style
	LayerID  valueobjects.LayerID
	Selected bool
}

// NewEdge creates an edge on the default layer with default styling
func NewEdge(id, source, target valueobjects.EntityID) Edge {
	return Edge{
		ID:      id,
		Source:  source,
		Target:  target,
		Style:   valueobjects.DefaultStyle(),
		LayerID: valueobjects.DefaultLayerID,
	}
}

// Clone returns a copy of the edge
func (e Edge) Clone() Edge {
	return e
}

// Touches reports whether the edge references the given node
func (e Edge) Touches(nodeID valueobjects.EntityID) bool {
	return e.Source.Equals(nodeID) || e.Target.Equals(nodeID)
}
