package commands

import (
	"math"
	"sort"

	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	"flowedit/domain/zorder"
	pkgerrors "flowedit/pkg/errors"
)

// ReorderDirection selects how a reorder moves its targets in the
// stacking order
type ReorderDirection int

const (
	// BringToFront stacks the targets above everything else
	BringToFront ReorderDirection = iota
	// SendToBack stacks the targets below everything else
	SendToBack
	// BringForward moves each target up by exactly one rank
	BringForward
	// SendBackward moves each target down by exactly one rank
	SendBackward
)

// String returns a human-readable direction name
func (d ReorderDirection) String() string {
	switch d {
	case BringToFront:
		return "Bring to front"
	case SendToBack:
		return "Send to back"
	case BringForward:
		return "Bring forward"
	default:
		return "Send backward"
	}
}

// zRecord captures one node's z-index before a reorder
type zRecord struct {
	id valueobjects.EntityID
	z  float64
}

// ReorderNodesCommand changes node stacking order. Front/back writes
// fresh integers strictly beyond the document's current extrema;
// forward/backward writes a fractional value between neighboring ranks
// so only the moved nodes are touched. The fractional values accumulate
// until the cosmetic normalization pass restores dense integers.
// Reorder commands never merge.
type ReorderNodesCommand struct {
	base
	ids       []valueobjects.EntityID
	direction ReorderDirection
	previous  []zRecord
}

// NewReorderNodesCommand creates a reorder of the given nodes
func NewReorderNodesCommand(ids []valueobjects.EntityID, direction ReorderDirection) (*ReorderNodesCommand, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.NewValidationError("reorder requires at least one node ID")
	}

	return &ReorderNodesCommand{
		base:      newBase(direction.String()),
		ids:       ids,
		direction: direction,
	}, nil
}

// Execute captures the targets' current z-indexes, then rewrites them
// per the direction. Targets keep their relative order among
// themselves.
func (c *ReorderNodesCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	set := valueobjects.NewIDSet(c.ids...)
	out := doc.Clone()

	var targets []int
	for i, node := range out.Nodes {
		if set.Contains(node.ID) {
			targets = append(targets, i)
		}
	}
	sort.SliceStable(targets, func(a, b int) bool {
		return out.Nodes[targets[a]].ZIndex < out.Nodes[targets[b]].ZIndex
	})

	c.previous = make([]zRecord, len(targets))
	for i, idx := range targets {
		c.previous[i] = zRecord{id: out.Nodes[idx].ID, z: out.Nodes[idx].ZIndex}
	}

	if len(targets) == 0 {
		return doc, OutcomeSkipped
	}

	switch c.direction {
	case BringToFront:
		next := math.Floor(doc.MaxZIndex()) + 1
		for _, idx := range targets {
			out.Nodes[idx].ZIndex = next
			next++
		}
	case SendToBack:
		next := math.Ceil(doc.MinZIndex()) - float64(len(targets))
		for _, idx := range targets {
			out.Nodes[idx].ZIndex = next
			next++
		}
	case BringForward:
		// Topmost target first, so targets never leapfrog each other
		for i := len(targets) - 1; i >= 0; i-- {
			idx := targets[i]
			distinct := zorder.DistinctValues(out.Nodes)
			out.Nodes[idx].ZIndex = zorder.RaiseOne(distinct, out.Nodes[idx].ZIndex)
		}
	case SendBackward:
		for _, idx := range targets {
			distinct := zorder.DistinctValues(out.Nodes)
			out.Nodes[idx].ZIndex = zorder.LowerOne(distinct, out.Nodes[idx].ZIndex)
		}
	}

	// Targets already at the extreme rank keep their value; when no
	// z-index moved at all the command must not occupy an undo slot
	changed := false
	for i, idx := range targets {
		if out.Nodes[idx].ZIndex != c.previous[i].z {
			changed = true
			break
		}
	}
	if !changed {
		c.previous = nil
		return doc, OutcomeSkipped
	}

	return out, outcomeFor(len(targets), len(c.ids))
}

// Undo restores the captured z-indexes
func (c *ReorderNodesCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	if len(c.previous) == 0 {
		return doc, OutcomeSkipped
	}

	out := doc.Clone()
	applied := 0
	for _, prev := range c.previous {
		for i := range out.Nodes {
			if out.Nodes[i].ID.Equals(prev.id) {
				out.Nodes[i].ZIndex = prev.z
				applied++
				break
			}
		}
	}

	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.previous))
}
