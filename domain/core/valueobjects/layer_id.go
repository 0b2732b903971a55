package valueobjects

import "errors"

// LayerID identifies a layer. Layers group nodes and edges for
// visibility, locking and opacity control.
type LayerID string

// DefaultLayerID is the reserved layer every document carries.
// It can never be deleted; deleted layers hand their members to it.
const DefaultLayerID LayerID = "layer-default"

// NewLayerIDFromString creates a LayerID from an existing string
func NewLayerIDFromString(id string) (LayerID, error) {
	if id == "" {
		return "", errors.New("layer ID cannot be empty")
	}
	return LayerID(id), nil
}

// String returns the string representation
func (id LayerID) String() string {
	return string(id)
}

// IsDefault reports whether this is the reserved default layer
func (id LayerID) IsDefault() bool {
	return id == DefaultLayerID
}

// IsZero checks if the LayerID is the zero value
func (id LayerID) IsZero() bool {
	return id == ""
}
