package entities

import (
	"flowedit/domain/core/valueobjects"
)

// Layer is a named grouping of nodes and edges carrying visibility,
// lock and opacity flags. The document always contains the reserved
// default layer.
type Layer struct {
	ID      valueobjects.LayerID
	Name    string
	Visible bool
	Locked  bool
	Opacity float64
	Order   int
}

// DefaultLayer returns the reserved layer every document starts with
func DefaultLayer() Layer {
	return Layer{
		ID:      valueobjects.DefaultLayerID,
		Name:    "Default",
		Visible: true,
		Opacity: 1,
	}
}

// Clone returns a copy of the layer
func (l Layer) Clone() Layer {
	return l
}
