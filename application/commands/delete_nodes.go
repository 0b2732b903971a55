package commands

import (
	"fmt"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// DeleteNodesCommand removes a set of nodes and every edge incident to
// them in one atomic step, so no edge is ever left dangling.
type DeleteNodesCommand struct {
	base
	ids []valueobjects.EntityID

	// Captured at execute time, before filtering. Both are needed to
	// reconstruct the exact prior graph on undo, including edges
	// between two deleted nodes.
	removedNodes []entities.Node
	removedEdges []entities.Edge
}

// NewDeleteNodesCommand creates a command deleting the given nodes
func NewDeleteNodesCommand(ids []valueobjects.EntityID) (*DeleteNodesCommand, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.NewValidationError("delete requires at least one node ID")
	}

	return &DeleteNodesCommand{
		base: newBase(fmt.Sprintf("Delete %d node(s)", len(ids))),
		ids:  ids,
	}, nil
}

// Execute captures the full node records and their incident edges, then
// filters both out of the document. IDs absent from the document are
// skipped; the remaining targets still apply.
func (c *DeleteNodesCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	set := valueobjects.NewIDSet(c.ids...)

	removedNodes := make([]entities.Node, 0, len(c.ids))
	for _, node := range doc.Nodes {
		if set.Contains(node.ID) {
			removedNodes = append(removedNodes, node)
		}
	}
	c.removedNodes = removedNodes
	c.removedEdges = doc.EdgesTouching(set)

	if len(removedNodes) == 0 {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Nodes = filterNodes(out.Nodes, set)
	out.Edges = filterEdgesTouching(out.Edges, set)
	return out, outcomeFor(len(removedNodes), len(c.ids))
}

// Undo concatenates the captured nodes and edges back into the document
func (c *DeleteNodesCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if len(c.removedNodes) == 0 {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	restored := 0
	for _, node := range c.removedNodes {
		if out.HasNode(node.ID) {
			continue
		}
		out.Nodes = append(out.Nodes, node)
		restored++
	}
	for _, edge := range c.removedEdges {
		if out.HasEdge(edge.ID) {
			continue
		}
		out.Edges = append(out.Edges, edge)
	}

	return out, outcomeFor(restored, len(c.removedNodes))
}
