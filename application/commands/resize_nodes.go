package commands

import (
	"fmt"
	"time"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// NodeResize records one node's size before and after a resize
type NodeResize struct {
	ID   valueobjects.EntityID
	From valueobjects.Size
	To   valueobjects.Size
}

// ResizeNodesCommand changes node dimensions. Like moves, successive
// resizes of the same node set merge within the window so a handle drag
// is one undo step.
type ResizeNodesCommand struct {
	base
	resizes []NodeResize
	window  time.Duration
}

// NewResizeNodesCommand creates the command using default configuration
func NewResizeNodesCommand(resizes []NodeResize) (*ResizeNodesCommand, error) {
	return NewResizeNodesCommandWithConfig(resizes, config.DefaultDomainConfig())
}

// NewResizeNodesCommandWithConfig creates the command with configuration
func NewResizeNodesCommandWithConfig(resizes []NodeResize, cfg *config.DomainConfig) (*ResizeNodesCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(resizes) == 0 {
		return nil, pkgerrors.NewValidationError("resize requires at least one node")
	}

	return &ResizeNodesCommand{
		base:    newBase(fmt.Sprintf("Resize %d node(s)", len(resizes))),
		resizes: resizes,
		window:  cfg.ResizeMergeWindow,
	}, nil
}

// Execute writes each target's destination size
func (c *ResizeNodesCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(r NodeResize) valueobjects.Size { return r.To })
}

// Undo writes each target's original size back
func (c *ResizeNodesCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(r NodeResize) valueobjects.Size { return r.From })
}

func (c *ResizeNodesCommand) apply(doc aggregates.Document, pick func(NodeResize) valueobjects.Size) (aggregates.Document, Outcome) {
	out := doc.Clone()
	applied := 0
	for _, resize := range c.resizes {
		for i := range out.Nodes {
			if out.Nodes[i].ID.Equals(resize.ID) {
				out.Nodes[i].Size = pick(resize)
				applied++
				break
			}
		}
	}
	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.resizes))
}

// Merge absorbs a later resize of the exact same node set, keeping the
// original From and the latest To
func (c *ResizeNodesCommand) Merge(next Command) (Command, bool) {
	other, ok := next.(*ResizeNodesCommand)
	if !ok {
		return nil, false
	}
	if !valueobjects.SameIDSet(c.targetIDs(), other.targetIDs()) {
		return nil, false
	}
	if !withinWindow(c, other, c.window) {
		return nil, false
	}

	merged := make([]NodeResize, 0, len(c.resizes))
	for _, first := range c.resizes {
		resize := first
		for _, latest := range other.resizes {
			if latest.ID.Equals(first.ID) {
				resize.To = latest.To
				break
			}
		}
		merged = append(merged, resize)
	}

	return &ResizeNodesCommand{
		base:    base{description: other.description, timestamp: other.timestamp},
		resizes: merged,
		window:  c.window,
	}, true
}

func (c *ResizeNodesCommand) targetIDs() []valueobjects.EntityID {
	ids := make([]valueobjects.EntityID, len(c.resizes))
	for i, resize := range c.resizes {
		ids[i] = resize.ID
	}
	return ids
}
