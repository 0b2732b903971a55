package commands

import (
	"flowedit/domain/core/aggregates"
	pkgerrors "flowedit/pkg/errors"
)

// CompositeCommand groups several commands into one history entry.
// Execution runs the children in order; undo runs them in reverse.
// Composites never merge with neighboring commands.
type CompositeCommand struct {
	base
	children []Command
}

// NewCompositeCommand creates a composite with the given description
func NewCompositeCommand(description string, children []Command) (*CompositeCommand, error) {
	if description == "" {
		return nil, pkgerrors.NewValidationError("composite requires a description")
	}
	if len(children) == 0 {
		return nil, pkgerrors.NewValidationError("composite requires at least one command")
	}

	return &CompositeCommand{
		base:     newBase(description),
		children: children,
	}, nil
}

// Execute runs the children first to last
func (c *CompositeCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc
	applied := 0
	for _, child := range c.children {
		next, outcome := child.Execute(out)
		if outcome != OutcomeSkipped {
			applied++
		}
		out = next
	}
	return out, c.aggregate(applied)
}

// Undo runs the children last to first
func (c *CompositeCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc
	applied := 0
	for i := len(c.children) - 1; i >= 0; i-- {
		next, outcome := c.children[i].Undo(out)
		if outcome != OutcomeSkipped {
			applied++
		}
		out = next
	}
	return out, c.aggregate(applied)
}

func (c *CompositeCommand) aggregate(applied int) Outcome {
	switch {
	case applied == 0:
		return OutcomeSkipped
	case applied < len(c.children):
		return OutcomePartial
	default:
		return OutcomeApplied
	}
}
