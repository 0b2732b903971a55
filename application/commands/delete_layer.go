package commands

import (
	"fmt"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// layerMember records one entity that lived on a deleted layer
type layerMember struct {
	id     valueobjects.EntityID
	isNode bool
}

// DeleteLayerCommand removes a layer record and moves its members to
// the default layer in the same step, so the document never holds a
// dangling layer reference. The default layer cannot be deleted.
type DeleteLayerCommand struct {
	base
	id      valueobjects.LayerID
	removed entities.Layer
	members []layerMember
}

// NewDeleteLayerCommand creates a command that deletes the given layer
func NewDeleteLayerCommand(id valueobjects.LayerID) (*DeleteLayerCommand, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("layer deletion requires a layer ID")
	}
	if id.IsDefault() {
		return nil, pkgerrors.NewValidationError("the default layer cannot be deleted")
	}

	return &DeleteLayerCommand{
		base: newBase(fmt.Sprintf("Delete layer %s", id)),
		id:   id,
	}, nil
}

// Execute captures the layer and its membership, reassigns members to
// the default layer, and drops the record. Re-capturing on every
// execution keeps redo correct after intervening edits.
func (c *DeleteLayerCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	removed, ok := doc.LayerByID(c.id)
	if !ok {
		return doc, OutcomeSkipped
	}
	c.removed = removed.Clone()
	c.members = nil

	out := doc.Clone()
	layers := out.Layers[:0:0]
	for _, layer := range out.Layers {
		if layer.ID != c.id {
			layers = append(layers, layer)
		}
	}
	out.Layers = layers

	for i := range out.Nodes {
		if out.Nodes[i].LayerID == c.id {
			c.members = append(c.members, layerMember{id: out.Nodes[i].ID, isNode: true})
			out.Nodes[i].LayerID = valueobjects.DefaultLayerID
		}
	}
	for i := range out.Edges {
		if out.Edges[i].LayerID == c.id {
			c.members = append(c.members, layerMember{id: out.Edges[i].ID})
			out.Edges[i].LayerID = valueobjects.DefaultLayerID
		}
	}
	return out, OutcomeApplied
}

// Undo restores the layer record and moves the captured members back
func (c *DeleteLayerCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if c.removed.ID.IsZero() || doc.HasLayer(c.id) {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Layers = append(out.Layers, c.removed.Clone())

	for _, member := range c.members {
		if member.isNode {
			for i := range out.Nodes {
				if out.Nodes[i].ID.Equals(member.id) {
					out.Nodes[i].LayerID = c.id
				}
			}
			continue
		}
		for i := range out.Edges {
			if out.Edges[i].ID.Equals(member.id) {
				out.Edges[i].LayerID = c.id
			}
		}
	}
	return out, OutcomeApplied
}
