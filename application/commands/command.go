// Package commands holds the reversible edit operations of the editor
// core. Each command captures whatever previous values it needs before
// mutation, applies cleanly to a document snapshot, and can reverse its
// own effect exactly.
package commands

import (
	"time"

	"flowedit/domain/core/aggregates"
)

// Outcome reports how much of a command actually applied. Commands
// never fail: targets missing from the document degrade to per-target
// no-ops, and the outcome lets callers and tests tell a full
// application from a partial or skipped one.
type Outcome int

const (
	// OutcomeSkipped means the command changed nothing
	OutcomeSkipped Outcome = iota
	// OutcomePartial means some targets applied and some were missing
	OutcomePartial
	// OutcomeApplied means every target applied
	OutcomeApplied
)

// String returns a human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomePartial:
		return "partial"
	default:
		return "skipped"
	}
}

// Command encapsulates one reversible edit to a document.
//
// Execute and Undo are side-effect-free on their input snapshot and
// return a new one. For any command C and document D,
// C.Undo(C.Execute(D)) must equal D structurally.
type Command interface {
	Execute(doc aggregates.Document) (aggregates.Document, Outcome)
	Undo(doc aggregates.Document) (aggregates.Document, Outcome)
	Description() string
	Timestamp() time.Time
}

// Merger is implemented by commands that can absorb a subsequent
// command into a single undo step. Merge returns the replacement
// command representing "this, then next" and true when the two are
// compatible: same target set, and next's timestamp inside the
// command's merge window.
type Merger interface {
	Merge(next Command) (Command, bool)
}

// base carries the metadata shared by every command
type base struct {
	description string
	timestamp   time.Time
}

func newBase(description string) base {
	return base{description: description, timestamp: time.Now()}
}

// Description returns the human-readable description
func (b base) Description() string {
	return b.description
}

// Timestamp returns when the command was constructed
func (b base) Timestamp() time.Time {
	return b.timestamp
}

// withinWindow reports whether next follows prev closely enough to merge
func withinWindow(prev, next Command, window time.Duration) bool {
	delta := next.Timestamp().Sub(prev.Timestamp())
	return delta >= 0 && delta <= window
}

// outcomeFor derives an outcome from how many requested targets applied
func outcomeFor(applied, requested int) Outcome {
	switch {
	case requested == 0 || applied == 0:
		return OutcomeSkipped
	case applied < requested:
		return OutcomePartial
	default:
		return OutcomeApplied
	}
}
