package commands

import (
	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// CreateEdgeCommand connects two nodes
type CreateEdgeCommand struct {
	base
	edge entities.Edge
	cfg  *config.DomainConfig
}

// NewCreateEdgeCommand creates the command using default configuration
func NewCreateEdgeCommand(edge entities.Edge) (*CreateEdgeCommand, error) {
	return NewCreateEdgeCommandWithConfig(edge, config.DefaultDomainConfig())
}

// NewCreateEdgeCommandWithConfig creates the command with configuration
func NewCreateEdgeCommandWithConfig(edge entities.Edge, cfg *config.DomainConfig) (*CreateEdgeCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if edge.ID.IsZero() {
		return nil, pkgerrors.NewValidationError("edge ID cannot be empty")
	}
	if edge.Source.IsZero() || edge.Target.IsZero() {
		return nil, pkgerrors.NewValidationError("edge endpoints cannot be empty")
	}
	if edge.LayerID.IsZero() {
		edge.LayerID = valueobjects.DefaultLayerID
	}

	return &CreateEdgeCommand{
		base: newBase("Create edge"),
		edge: edge,
		cfg:  cfg,
	}, nil
}

// Execute appends the edge. The command is skipped when an edge with
// the same ID already exists or when either endpoint is absent, so a
// dangling edge never enters the document.
func (c *CreateEdgeCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	if doc.HasEdge(c.edge.ID) {
		return doc, OutcomeSkipped
	}
	if !doc.HasNode(c.edge.Source) || !doc.HasNode(c.edge.Target) {
		return doc, OutcomeSkipped
	}
	if len(doc.Edges) >= c.cfg.MaxEdgesPerDocument {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Edges = append(out.Edges, c.edge.Clone())
	return out, OutcomeApplied
}

// Undo removes the edge by ID
func (c *CreateEdgeCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if !doc.HasEdge(c.edge.ID) {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	out.Edges = filterEdges(out.Edges, valueobjects.NewIDSet(c.edge.ID))
	return out, OutcomeApplied
}
