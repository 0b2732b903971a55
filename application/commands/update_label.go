package commands

import (
	"time"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// UpdateLabelCommand rewrites the text label of one node or edge.
// Keystrokes land as individual commands, so the merge window is wide
// enough (1-2s) to tolerate pauses in typing while still collapsing a
// typing burst into one undo step. The first previous value in a merge
// chain is always retained.
type UpdateLabelCommand struct {
	base
	id       valueobjects.EntityID
	previous string
	next     string
	window   time.Duration
}

// NewUpdateLabelCommand creates the command using default configuration
func NewUpdateLabelCommand(id valueobjects.EntityID, previous, next string) (*UpdateLabelCommand, error) {
	return NewUpdateLabelCommandWithConfig(id, previous, next, config.DefaultDomainConfig())
}

// NewUpdateLabelCommandWithConfig creates the command with configuration
func NewUpdateLabelCommandWithConfig(id valueobjects.EntityID, previous, next string, cfg *config.DomainConfig) (*UpdateLabelCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("label update requires a target ID")
	}

	return &UpdateLabelCommand{
		base:     newBase("Edit label"),
		id:       id,
		previous: previous,
		next:     next,
		window:   cfg.TextMergeWindow,
	}, nil
}

// Execute writes the new label
func (c *UpdateLabelCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, c.next)
}

// Undo restores the previous label
func (c *UpdateLabelCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, c.previous)
}

func (c *UpdateLabelCommand) apply(doc aggregates.Document, label string) (aggregates.Document, Outcome) {
	out := doc.Clone()
	for i := range out.Nodes {
		if out.Nodes[i].ID.Equals(c.id) {
			out.Nodes[i].Label = label
			return out, OutcomeApplied
		}
	}
	for i := range out.Edges {
		if out.Edges[i].ID.Equals(c.id) {
			out.Edges[i].Label = label
			return out, OutcomeApplied
		}
	}
	return doc, OutcomeSkipped
}

// Merge absorbs a later edit of the same label, keeping the first
// previous value and the latest text
func (c *UpdateLabelCommand) Merge(next Command) (Command, bool) {
	other, ok := next.(*UpdateLabelCommand)
	if !ok {
		return nil, false
	}
	if !c.id.Equals(other.id) {
		return nil, false
	}
	if !withinWindow(c, other, c.window) {
		return nil, false
	}

	return &UpdateLabelCommand{
		base:     base{description: other.description, timestamp: other.timestamp},
		id:       c.id,
		previous: c.previous,
		next:     other.next,
		window:   c.window,
	}, true
}
