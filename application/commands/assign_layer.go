package commands

import (
	"fmt"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// LayerAssignment records one entity's layer before and after a move
type LayerAssignment struct {
	ID   valueobjects.EntityID
	From valueobjects.LayerID
	To   valueobjects.LayerID
}

// AssignLayerCommand moves nodes and edges between layers by swapping
// the layer ID stored on each entity
type AssignLayerCommand struct {
	base
	assignments []LayerAssignment
}

// NewAssignLayerCommand creates a command moving the given targets to a
// layer. Previous layer IDs are captured from the supplied document.
func NewAssignLayerCommand(doc aggregates.Document, targets []valueobjects.EntityID, to valueobjects.LayerID) (*AssignLayerCommand, error) {
	if len(targets) == 0 {
		return nil, pkgerrors.NewValidationError("layer assignment requires at least one target")
	}
	if to.IsZero() {
		return nil, pkgerrors.NewValidationError("target layer ID cannot be empty")
	}

	assignments := make([]LayerAssignment, 0, len(targets))
	for _, id := range targets {
		if node, ok := doc.NodeByID(id); ok {
			assignments = append(assignments, LayerAssignment{ID: id, From: node.LayerID, To: to})
			continue
		}
		if edge, ok := doc.EdgeByID(id); ok {
			assignments = append(assignments, LayerAssignment{ID: id, From: edge.LayerID, To: to})
		}
	}

	return &AssignLayerCommand{
		base:        newBase(fmt.Sprintf("Move %d item(s) to layer %s", len(targets), to)),
		assignments: assignments,
	}, nil
}

// Execute writes each target's new layer ID
func (c *AssignLayerCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(a LayerAssignment) valueobjects.LayerID { return a.To })
}

// Undo writes each target's previous layer ID back
func (c *AssignLayerCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(a LayerAssignment) valueobjects.LayerID { return a.From })
}

func (c *AssignLayerCommand) apply(doc aggregates.Document, pick func(LayerAssignment) valueobjects.LayerID) (aggregates.Document, Outcome) {
	if len(c.assignments) == 0 {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	applied := 0
	for _, assignment := range c.assignments {
		for i := range out.Nodes {
			if out.Nodes[i].ID.Equals(assignment.ID) {
				out.Nodes[i].LayerID = pick(assignment)
				applied++
			}
		}
		for i := range out.Edges {
			if out.Edges[i].ID.Equals(assignment.ID) {
				out.Edges[i].LayerID = pick(assignment)
				applied++
			}
		}
	}

	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.assignments))
}
