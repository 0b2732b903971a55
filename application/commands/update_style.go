package commands

import (
	"fmt"
	"time"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// PreviousStyle captures one entity's full style before a patch
type PreviousStyle struct {
	ID    valueobjects.EntityID
	Style valueobjects.Style
}

// UpdateStyleCommand applies a partial style change to a set of nodes
// and edges. Patches merge shallowly: in a merge chain the latest value
// per field wins, untouched fields survive, and the first previous
// styles are retained so undo restores the pre-tweak appearance.
type UpdateStyleCommand struct {
	base
	targets  []valueobjects.EntityID
	previous []PreviousStyle
	patch    valueobjects.StylePatch
	window   time.Duration
}

// NewUpdateStyleCommand creates the command using default configuration.
// Previous styles are captured from the supplied document, so construct
// the command before applying it.
func NewUpdateStyleCommand(doc aggregates.Document, targets []valueobjects.EntityID, patch valueobjects.StylePatch) (*UpdateStyleCommand, error) {
	return NewUpdateStyleCommandWithConfig(doc, targets, patch, config.DefaultDomainConfig())
}

// NewUpdateStyleCommandWithConfig creates the command with configuration
func NewUpdateStyleCommandWithConfig(doc aggregates.Document, targets []valueobjects.EntityID, patch valueobjects.StylePatch, cfg *config.DomainConfig) (*UpdateStyleCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(targets) == 0 {
		return nil, pkgerrors.NewValidationError("style update requires at least one target")
	}
	if patch.IsEmpty() {
		return nil, pkgerrors.NewValidationError("style patch is empty")
	}

	previous := make([]PreviousStyle, 0, len(targets))
	for _, id := range targets {
		if node, ok := doc.NodeByID(id); ok {
			previous = append(previous, PreviousStyle{ID: id, Style: node.Style})
			continue
		}
		if edge, ok := doc.EdgeByID(id); ok {
			previous = append(previous, PreviousStyle{ID: id, Style: edge.Style})
		}
	}

	return &UpdateStyleCommand{
		base:     newBase(fmt.Sprintf("Update style of %d item(s)", len(targets))),
		targets:  targets,
		previous: previous,
		patch:    patch,
		window:   cfg.StyleMergeWindow,
	}, nil
}

// Execute applies the patch over each target's current style
func (c *UpdateStyleCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	set := valueobjects.NewIDSet(c.targets...)

	out := doc.Clone()
	applied := 0
	for i := range out.Nodes {
		if set.Contains(out.Nodes[i].ID) {
			out.Nodes[i].Style = c.patch.ApplyTo(out.Nodes[i].Style)
			applied++
		}
	}
	for i := range out.Edges {
		if set.Contains(out.Edges[i].ID) {
			out.Edges[i].Style = c.patch.ApplyTo(out.Edges[i].Style)
			applied++
		}
	}

	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.targets))
}

// Undo restores each target's captured previous style
func (c *UpdateStyleCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc.Clone()
	applied := 0
	for _, prev := range c.previous {
		for i := range out.Nodes {
			if out.Nodes[i].ID.Equals(prev.ID) {
				out.Nodes[i].Style = prev.Style
				applied++
			}
		}
		for i := range out.Edges {
			if out.Edges[i].ID.Equals(prev.ID) {
				out.Edges[i].Style = prev.Style
				applied++
			}
		}
	}

	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.previous))
}

// Merge absorbs a later style tweak on the exact same target set. The
// patches merge shallowly and the first previous styles are kept.
func (c *UpdateStyleCommand) Merge(next Command) (Command, bool) {
	other, ok := next.(*UpdateStyleCommand)
	if !ok {
		return nil, false
	}
	if !valueobjects.SameIDSet(c.targets, other.targets) {
		return nil, false
	}
	if !withinWindow(c, other, c.window) {
		return nil, false
	}

	return &UpdateStyleCommand{
		base:     base{description: other.description, timestamp: other.timestamp},
		targets:  c.targets,
		previous: c.previous,
		patch:    c.patch.MergedWith(other.patch),
		window:   c.window,
	}, true
}
