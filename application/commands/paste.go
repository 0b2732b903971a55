package commands

import (
	"fmt"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// PasteCommand inserts clipboard content that has already been prepared
// with fresh IDs and offset positions. Execution clears the current
// selection and selects the pasted entities instead. Edges are inserted
// only when both endpoints exist after the nodes land.
type PasteCommand struct {
	base
	nodes []entities.Node
	edges []entities.Edge
	cfg   *config.DomainConfig

	pastedNodes valueobjects.IDSet
	pastedEdges valueobjects.IDSet
}

// NewPasteCommand creates the command using default configuration
func NewPasteCommand(nodes []entities.Node, edges []entities.Edge) (*PasteCommand, error) {
	return NewPasteCommandWithConfig(nodes, edges, config.DefaultDomainConfig())
}

// NewPasteCommandWithConfig creates the command with configuration
func NewPasteCommandWithConfig(nodes []entities.Node, edges []entities.Edge, cfg *config.DomainConfig) (*PasteCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(nodes) == 0 && len(edges) == 0 {
		return nil, pkgerrors.NewValidationError("paste requires clipboard content")
	}

	return &PasteCommand{
		base:  newBase(fmt.Sprintf("Paste %d item(s)", len(nodes)+len(edges))),
		nodes: nodes,
		edges: edges,
		cfg:   cfg,
	}, nil
}

// Execute inserts the prepared content, skipping entities whose IDs
// already exist, and records exactly what landed so undo removes only
// that
func (c *PasteCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc.ClearSelection()

	c.pastedNodes = valueobjects.NewIDSet()
	c.pastedEdges = valueobjects.NewIDSet()

	for _, node := range c.nodes {
		if out.HasNode(node.ID) || len(out.Nodes) >= c.cfg.MaxNodesPerDocument {
			continue
		}
		inserted := node.Clone()
		inserted.Selected = true
		out.Nodes = append(out.Nodes, inserted)
		c.pastedNodes[node.ID] = struct{}{}
	}
	for _, edge := range c.edges {
		if out.HasEdge(edge.ID) || len(out.Edges) >= c.cfg.MaxEdgesPerDocument {
			continue
		}
		if !out.HasNode(edge.Source) || !out.HasNode(edge.Target) {
			continue
		}
		inserted := edge.Clone()
		inserted.Selected = true
		out.Edges = append(out.Edges, inserted)
		c.pastedEdges[edge.ID] = struct{}{}
	}

	applied := len(c.pastedNodes) + len(c.pastedEdges)
	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.nodes)+len(c.edges))
}

// Undo removes exactly the entities the last execution inserted
func (c *PasteCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if len(c.pastedNodes) == 0 && len(c.pastedEdges) == 0 {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Nodes = filterNodes(out.Nodes, c.pastedNodes)
	edges := out.Edges[:0:0]
	for _, edge := range out.Edges {
		if _, pasted := c.pastedEdges[edge.ID]; pasted {
			continue
		}
		if _, gone := c.pastedNodes[edge.Source]; gone {
			continue
		}
		if _, gone := c.pastedNodes[edge.Target]; gone {
			continue
		}
		edges = append(edges, edge)
	}
	out.Edges = edges
	return out, OutcomeApplied
}
