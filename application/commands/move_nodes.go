package commands

import (
	"fmt"
	"time"

	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
	"flowedit/domain/core/valueobjects"
	pkgerrors "flowedit/pkg/errors"
)

// NodeMove records one node's position before and after a move
type NodeMove struct {
	ID   valueobjects.EntityID
	From valueobjects.Position
	To   valueobjects.Position
}

// MoveNodesCommand repositions a set of nodes. Successive moves of the
// same node set inside the merge window collapse into one undo step, so
// a drag gesture undoes back to its starting point in a single hop.
type MoveNodesCommand struct {
	base
	moves  []NodeMove
	window time.Duration
}

// NewMoveNodesCommand creates the command using default configuration
func NewMoveNodesCommand(moves []NodeMove) (*MoveNodesCommand, error) {
	return NewMoveNodesCommandWithConfig(moves, config.DefaultDomainConfig())
}

// NewMoveNodesCommandWithConfig creates the command with configuration
func NewMoveNodesCommandWithConfig(moves []NodeMove, cfg *config.DomainConfig) (*MoveNodesCommand, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if len(moves) == 0 {
		return nil, pkgerrors.NewValidationError("move requires at least one node")
	}

	return &MoveNodesCommand{
		base:   newBase(fmt.Sprintf("Move %d node(s)", len(moves))),
		moves:  moves,
		window: cfg.MoveMergeWindow,
	}, nil
}

// Execute writes each target's destination position
func (c *MoveNodesCommand) Execute(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(m NodeMove) valueobjects.Position { return m.To })
}

// Undo writes each target's original position back
func (c *MoveNodesCommand) Undo(doc aggregates.Document) (aggregates.Document, Outcome) {
	return c.apply(doc, func(m NodeMove) valueobjects.Position { return m.From })
}

func (c *MoveNodesCommand) apply(doc aggregates.Document, pick func(NodeMove) valueobjects.Position) (aggregates.Document, Outcome) {
	out := doc.Clone()
	applied := 0
	for _, move := range c.moves {
		for i := range out.Nodes {
			if out.Nodes[i].ID.Equals(move.ID) {
				out.Nodes[i].Position = pick(move)
				applied++
				break
			}
		}
	}
	if applied == 0 {
		return doc, OutcomeSkipped
	}
	return out, outcomeFor(applied, len(c.moves))
}

// Merge absorbs a later move of the exact same node set. The merged
// command keeps the original From and the latest To. The merged
// timestamp is the later command's, so a continuous drag keeps
// collapsing as long as each step lands inside the window.
func (c *MoveNodesCommand) Merge(next Command) (Command, bool) {
	other, ok := next.(*MoveNodesCommand)
	if !ok {
		return nil, false
	}
	if !valueobjects.SameIDSet(c.targetIDs(), other.targetIDs()) {
		return nil, false
	}
	if !withinWindow(c, other, c.window) {
		return nil, false
	}

	merged := make([]NodeMove, 0, len(c.moves))
	for _, first := range c.moves {
		move := first
		for _, latest := range other.moves {
			if latest.ID.Equals(first.ID) {
				move.To = latest.To
				break
			}
		}
		merged = append(merged, move)
	}

	return &MoveNodesCommand{
		base:   base{description: other.description, timestamp: other.timestamp},
		moves:  merged,
		window: c.window,
	}, true
}

func (c *MoveNodesCommand) targetIDs() []valueobjects.EntityID {
	ids := make([]valueobjects.EntityID, len(c.moves))
	for i, move := range c.moves {
		ids[i] = move.ID
	}
	return ids
}
