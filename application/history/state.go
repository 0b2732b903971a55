// Package history provides the undo/redo manager that owns the current
// document and the command stacks. All document mutation flows through
// it: commands are executed against the current document, pushed onto
// the undo stack (or merged into its top), and reversed on demand.
package history

// State is a snapshot of the manager's history position, derived from
// the stacks whenever they change. UI bindings consume it to enable or
// disable undo/redo affordances.
type State struct {
	CanUndo         bool
	CanRedo         bool
	UndoStackSize   int
	RedoStackSize   int
	UndoDescription string
	RedoDescription string
}
