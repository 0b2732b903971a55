package commands

import (
	"fmt"
	"time"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/entities"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// LayerPatch is a partial layer change. Nil fields are left untouched.
type LayerPatch struct {
	Name    *string
	Visible *bool
	Locked  *bool
	Opacity *float64
}

// IsEmpty reports whether the patch changes nothing
func (p LayerPatch) IsEmpty() bool {
	return p.Name == nil && p.Visible == nil && p.Locked == nil && p.Opacity == nil
}

// ApplyTo returns a copy of the layer with the patch applied
func (p LayerPatch) ApplyTo(layer entities.Layer) entities.Layer {
	out := layer
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Visible != nil {
		out.Visible = *p.Visible
	}
	if p.Locked != nil {
		out.Locked = *p.Locked
	}
	if p.Opacity != nil {
		out.Opacity = *p.Opacity
	}
	return out
}

// MergedWith combines two patches; the later patch wins per field
func (p LayerPatch) MergedWith(next LayerPatch) LayerPatch {
	out := p
	if next.Name != nil {
		out.Name = next.Name
	}
	if next.Visible != nil {
		out.Visible = next.Visible
	}
	if next.Locked != nil {
		out.Locked = next.Locked
	}
	if next.Opacity != nil {
		out.Opacity = next.Opacity
	}
	return out
}

// UpdateLayerCommand applies a partial change to one layer's properties.
// Rapid property tweaks, like dragging an opacity slider, merge within
// the window; the first previous layer state is retained so undo
// restores the pre-tweak properties.
type UpdateLayerCommand struct {
	base
	id       valueobjects.LayerID
	previous entities.Layer
	patch    LayerPatch
	window   time.Duration
}

// NewUpdateLayerCommand creates the command using default configuration.
// The previous layer state is captured from the supplied document.
func NewUpdateLayerCommand(doc aggregates.Document, id valueobjects.LayerID, patch LayerPatch) (*UpdateLayerCommand, error) {
	return NewUpdateLayerCommandWithConfig(doc, id, patch, config.DefaultDomainConfig())
}

// NewUpdateLayerCommandWithConfig creates the command with configuration
func NewUpdateLayerCommandWithConfig(doc aggregates.Document, id valueobjects.LayerID, patch LayerPatch, cfg *config.DomainConfig) (*UpdateLayerCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("layer update requires a layer ID")
	}
	if patch.IsEmpty() {
		return nil, pkgerrors.NewValidationError("layer patch is empty")
	}

	previous, ok := doc.LayerByID(id)
	if !ok {
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("layer %s", id))
	}

	return &UpdateLayerCommand{
		base:     newBase(fmt.Sprintf("Update layer %q", previous.Name)),
		id:       id,
		previous: previous,
		patch:    patch,
		window:   cfg.StyleMergeWindow,
	}, nil
}

// Execute applies the patch over the layer's current properties
func (c *UpdateLayerCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc.Clone()
	for i := range out.Layers {
		if out.Layers[i].ID == c.id {
			out.Layers[i] = c.patch.ApplyTo(out.Layers[i])
			return out, OutcomeApplied
		}
	}
	return doc, OutcomeSkipped
}

// Undo restores the captured previous layer state
func (c *UpdateLayerCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	out := doc.Clone()
	for i := range out.Layers {
		if out.Layers[i].ID == c.id {
			out.Layers[i] = c.previous.Clone()
			return out, OutcomeApplied
		}
	}
	return doc, OutcomeSkipped
}

// Merge absorbs a later tweak of the same layer, merging the patches
// shallowly and keeping the first previous state
func (c *UpdateLayerCommand) Merge(next Command) (Command, bool) {
	other, ok := next.(*UpdateLayerCommand)
	if !ok {
		return nil, false
	}
	if c.id != other.id {
		return nil, false
	}
	if !withinWindow(c, other, c.window) {
		return nil, false
	}

	return &UpdateLayerCommand{
		base:     base{description: other.description, timestamp: other.timestamp},
		id:       c.id,
		previous: c.previous,
		patch:    c.patch.MergedWith(other.patch),
		window:   c.window,
	}, true
}
