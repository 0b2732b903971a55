package commands

import (
	"fmt"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// CreateNodeCommand places a new node on the canvas
type CreateNodeCommand struct {
	base
	node entities.Node
	cfg  *config.DomainConfig
}

// NewCreateNodeCommand creates the command using default configuration
func NewCreateNodeCommand(node entities.Node) (*CreateNodeCommand, error) {
	return NewCreateNodeCommandWithConfig(node, config.DefaultDomainConfig())
}

// NewCreateNodeCommandWithConfig creates the command with configuration
func NewCreateNodeCommandWithConfig(node entities.Node, cfg *config.DomainConfig) (*CreateNodeCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if node.ID.IsZero() {
		return nil, pkgerrors.NewValidationError("node ID cannot be empty")
	}
	if node.LayerID.IsZero() {
		node.LayerID = valueobjects.DefaultLayerID
	}

	return &CreateNodeCommand{
		base: newBase(fmt.Sprintf("Create node %q", nodeName(node))),
		node: node,
		cfg:  cfg,
	}, nil
}

// Execute appends the node. Executing twice is idempotent: an existing
// node with the same ID leaves the document unchanged.
func (c *CreateNodeCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	if doc.HasNode(c.node.ID) {
		return doc, OutcomeSkipped
	}
	if len(doc.Nodes) >= c.cfg.MaxNodesPerDocument {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Nodes = append(out.Nodes, c.node.Clone())
	return out, OutcomeApplied
}

// Undo removes the node by ID, along with any edges that reference it,
// mirroring node deletion.
func (c *CreateNodeCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if !doc.HasNode(c.node.ID) {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Nodes = filterNodes(out.Nodes, valueobjects.NewIDSet(c.node.ID))
	out.Edges = filterEdgesTouching(out.Edges, valueobjects.NewIDSet(c.node.ID))
	return out, OutcomeApplied
}

func nodeName(node entities.Node) string {
	if node.Label != "" {
		return node.Label
	}
	return node.ID.String()
}

// filterNodes returns the nodes whose IDs are not in the removal set
func filterNodes(nodes []entities.Node, remove valueobjects.IDSet) []entities.Node {
	kept := make([]entities.Node, 0, len(nodes))
	for _, node := range nodes {
		if !remove.Contains(node.ID) {
			kept = append(kept, node)
		}
	}
	return kept
}

// filterEdges returns the edges whose IDs are not in the removal set
func filterEdges(edges []entities.Edge, remove valueobjects.IDSet) []entities.Edge {
	kept := make([]entities.Edge, 0, len(edges))
	for _, edge := range edges {
		if !remove.Contains(edge.ID) {
			kept = append(kept, edge)
		}
	}
	return kept
}

// filterEdgesTouching returns the edges that reference none of the
// given node IDs
func filterEdgesTouching(edges []entities.Edge, nodes valueobjects.IDSet) []entities.Edge {
	kept := make([]entities.Edge, 0, len(edges))
	for _, edge := range edges {
		if !nodes.Contains(edge.Source) && !nodes.Contains(edge.Target) {
			kept = append(kept, edge)
		}
	}
	return kept
}
