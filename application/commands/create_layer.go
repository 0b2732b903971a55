package commands

import (
	"fmt"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// CreateLayerCommand adds a layer record to the document. Creating a
// layer that already exists is a no-op, so redo after an out-of-band
// change stays safe.
type CreateLayerCommand struct {
	base
	layer entities.Layer
}

// NewCreateLayerCommand creates a command that adds the given layer
func NewCreateLayerCommand(layer entities.Layer) (*CreateLayerCommand, error) {
	if layer.ID.IsZero() {
		return nil, pkgerrors.NewValidationError("layer ID cannot be empty")
	}
	if layer.Name == "" {
		return nil, pkgerrors.NewValidationError("layer name cannot be empty")
	}

	return &CreateLayerCommand{
		base:  newBase(fmt.Sprintf("Create layer %q", layer.Name)),
		layer: layer,
	}, nil
}

// Execute appends the layer unless one with the same ID already exists
func (c *CreateLayerCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	if doc.HasLayer(c.layer.ID) {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Layers = append(out.Layers, c.layer.Clone())
	return out, OutcomeApplied
}

// Undo removes the layer record and moves any entities still assigned
// to it back to the default layer
func (c *CreateLayerCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if !doc.HasLayer(c.layer.ID) {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	layers := out.Layers[:0:0]
	for _, layer := range out.Layers {
		if layer.ID != c.layer.ID {
			layers = append(layers, layer)
		}
	}
	out.Layers = layers

	for i := range out.Nodes {
		if out.Nodes[i].LayerID == c.layer.ID {
			out.Nodes[i].LayerID = valueobjects.DefaultLayerID
		}
	}
	for i := range out.Edges {
		if out.Edges[i].LayerID == c.layer.ID {
			out.Edges[i].LayerID = valueobjects.DefaultLayerID
		}
	}
	return out, OutcomeApplied
}
