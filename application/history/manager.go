package history

import (
	"sync"

	"go.uber.org/zap"

	"flowedit/application/commands"
	"flowedit/domain/config"
	"flowedit/domain/core/aggregates"
)

// Manager owns the current document and the undo/redo stacks. It is
// safe for concurrent use; observers are notified outside the lock so
// they may call back into the manager.
type Manager struct {
	mu        sync.Mutex
	current   aggregates.Document
	undoStack []commands.Command
	redoStack []commands.Command
	maxSize   int
	logger    *zap.Logger
	observers *observerRegistry
}

// NewManager creates a manager seeded with the initial document. A
// non-positive maxSize falls back to the configured default; a nil
// logger is replaced with a no-op one.
func NewManager(initial aggregates.Document, maxSize int, logger *zap.Logger) *Manager {
	if maxSize <= 0 {
		maxSize = config.DefaultDomainConfig().MaxHistorySize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{
		current:   initial.Clone(),
		maxSize:   maxSize,
		logger:    logger,
		observers: newObserverRegistry(),
	}
}

// ExecuteCommand applies the command to the current document. Applied
// and partial commands clear the redo stack and either merge into the
// undo stack's top or push onto it; skipped commands leave all history
// untouched. The updated document and the command's outcome are
// returned.
func (m *Manager) ExecuteCommand(cmd commands.Command) (aggregates.Document, commands.Outcome) {
	m.mu.Lock()

	next, outcome := cmd.Execute(m.current)
	if outcome == commands.OutcomeSkipped {
		doc := m.current.Clone()
		m.mu.Unlock()
		m.logger.Debug("command skipped", zap.String("command", cmd.Description()))
		return doc, outcome
	}

	m.current = next
	m.redoStack = nil

	merged := false
	if top := m.top(); top != nil {
		if merger, ok := top.(commands.Merger); ok {
			if combined, ok := merger.Merge(cmd); ok {
				m.undoStack[len(m.undoStack)-1] = combined
				merged = true
			}
		}
	}
	if !merged {
		m.undoStack = append(m.undoStack, cmd)
		if len(m.undoStack) > m.maxSize {
			evicted := len(m.undoStack) - m.maxSize
			m.undoStack = append([]commands.Command(nil), m.undoStack[evicted:]...)
		}
	}

	doc := m.current.Clone()
	state, observers := m.stateLocked(), m.observers.snapshot()
	m.mu.Unlock()

	m.logger.Debug("command executed",
		zap.String("command", cmd.Description()),
		zap.String("outcome", outcome.String()),
		zap.Bool("merged", merged),
		zap.Int("undo_stack", state.UndoStackSize))
	notify(observers, state)
	return doc, outcome
}

// Undo reverses the most recent command. It reports false when the undo
// stack is empty. A command whose undo finds nothing to restore still
// moves to the redo stack.
func (m *Manager) Undo() (aggregates.Document, bool) {
	m.mu.Lock()
	if len(m.undoStack) == 0 {
		doc := m.current.Clone()
		m.mu.Unlock()
		return doc, false
	}

	cmd := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	next, outcome := cmd.Undo(m.current)
	m.current = next
	m.redoStack = append(m.redoStack, cmd)
	// The redo stack honors the same bound as the undo stack. Undoing
	// can never push it past the bound on its own, but the cap is
	// enforced here rather than assumed.
	if len(m.redoStack) > m.maxSize {
		evicted := len(m.redoStack) - m.maxSize
		m.redoStack = append([]commands.Command(nil), m.redoStack[evicted:]...)
	}

	doc := m.current.Clone()
	state, observers := m.stateLocked(), m.observers.snapshot()
	m.mu.Unlock()

	m.logger.Debug("command undone",
		zap.String("command", cmd.Description()),
		zap.String("outcome", outcome.String()))
	notify(observers, state)
	return doc, true
}

// Redo re-applies the most recently undone command. It reports false
// when the redo stack is empty.
func (m *Manager) Redo() (aggregates.Document, bool) {
	m.mu.Lock()
	if len(m.redoStack) == 0 {
		doc := m.current.Clone()
		m.mu.Unlock()
		return doc, false
	}

	cmd := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	next, outcome := cmd.Execute(m.current)
	m.current = next
	m.undoStack = append(m.undoStack, cmd)

	doc := m.current.Clone()
	state, observers := m.stateLocked(), m.observers.snapshot()
	m.mu.Unlock()

	m.logger.Debug("command redone",
		zap.String("command", cmd.Description()),
		zap.String("outcome", outcome.String()))
	notify(observers, state)
	return doc, true
}

// Clear drops both stacks while keeping the current document, for
// boundaries like loading a file
func (m *Manager) Clear() {
	m.mu.Lock()
	m.undoStack = nil
	m.redoStack = nil
	state, observers := m.stateLocked(), m.observers.snapshot()
	m.mu.Unlock()

	m.logger.Debug("history cleared")
	notify(observers, state)
}

// Document returns a snapshot of the current document
func (m *Manager) Document() aggregates.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// SetDocument replaces the current document without touching the
// stacks, for boundaries like loading a file. Callers that derive the
// replacement from the current document must use UpdateDocument
// instead, or a command committed between their read and this write
// would be silently overwritten.
func (m *Manager) SetDocument(doc aggregates.Document) {
	m.mu.Lock()
	m.current = doc.Clone()
	m.mu.Unlock()
}

// UpdateDocument rewrites the current document through transform while
// holding the lock, so no command can commit between the read and the
// write. The rewrite bypasses the stacks; it exists for cosmetic passes
// like z-index normalization that must never occupy a history entry.
// Commands already on the stacks keep working because they restore
// from captured values.
func (m *Manager) UpdateDocument(transform func(aggregates.Document) aggregates.Document) {
	m.mu.Lock()
	m.current = transform(m.current.Clone())
	m.mu.Unlock()
}

// State returns the current history snapshot
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// Subscribe registers an observer called after every history change.
// The returned function detaches it.
func (m *Manager) Subscribe(observer func(State)) func() {
	m.mu.Lock()
	id := m.observers.add(observer)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		m.observers.remove(id)
		m.mu.Unlock()
	}
}

func (m *Manager) top() commands.Command {
	if len(m.undoStack) == 0 {
		return nil
	}
	return m.undoStack[len(m.undoStack)-1]
}

func (m *Manager) stateLocked() State {
	state := State{
		CanUndo:       len(m.undoStack) > 0,
		CanRedo:       len(m.redoStack) > 0,
		UndoStackSize: len(m.undoStack),
		RedoStackSize: len(m.redoStack),
	}
	if state.CanUndo {
		state.UndoDescription = m.undoStack[len(m.undoStack)-1].Description()
	}
	if state.CanRedo {
		state.RedoDescription = m.redoStack[len(m.redoStack)-1].Description()
	}
	return state
}

func notify(observers []func(State), state State) {
	for _, observer := range observers {
		observer(state)
	}
}
