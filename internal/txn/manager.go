package txn

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo on an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrNotRepeatable is returned by Repeat when the last transaction
	// cannot be repeated.
	ErrNotRepeatable = errors.New("last transaction cannot be repeated")
)

// Manager runs transactions and keeps the undo and redo stacks for one
// document. Undo and redo are strictly LIFO.
type Manager struct {
	mu     sync.Mutex
	undo   []Transaction
	redo   []Transaction
	logger *slog.Logger
}

// NewManager returns a manager with empty stacks.
func NewManager() *Manager {
	return &Manager{logger: slog.Default().With("component", "txn")}
}

// Execute runs t. An undoable transaction is pushed onto the undo stack and
// the redo stack is cleared; a transaction that cannot be undone clears
// both stacks. Nothing is pushed when Execute fails.
func (m *Manager) Execute(t Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := t.Execute()
	record("execute", err)
	if err != nil {
		m.logger.Debug("execute failed", "txn", t.Name(), "error", err)
		return fmt.Errorf("%s: %w", t.Name(), err)
	}

	if t.IsUndoable() {
		m.undo = append(m.undo, t)
	} else {
		m.undo = nil
	}
	m.redo = nil
	undoDepth.Set(float64(len(m.undo)))
	m.logger.Debug("executed", "txn", t.Name(), "undo_depth", len(m.undo))
	return nil
}

// Undo reverts the most recent transaction and moves it to the redo stack.
func (m *Manager) Undo() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undo) == 0 {
		record("undo", ErrNothingToUndo)
		return ErrNothingToUndo
	}
	t := m.undo[len(m.undo)-1]
	err := t.Undo()
	record("undo", err)
	if err != nil {
		return fmt.Errorf("undo %s: %w", t.Name(), err)
	}
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, t)
	undoDepth.Set(float64(len(m.undo)))
	m.logger.Debug("undone", "txn", t.Name())
	return nil
}

// Redo re-executes the most recently undone transaction.
func (m *Manager) Redo() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redo) == 0 {
		record("redo", ErrNothingToRedo)
		return ErrNothingToRedo
	}
	t := m.redo[len(m.redo)-1]
	err := t.Execute()
	record("redo", err)
	if err != nil {
		return fmt.Errorf("redo %s: %w", t.Name(), err)
	}
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, t)
	undoDepth.Set(float64(len(m.undo)))
	m.logger.Debug("redone", "txn", t.Name())
	return nil
}

// Repeat executes a fresh clone of the most recent transaction when it is
// repeatable. The clone goes through the normal Execute path.
func (m *Manager) Repeat() error {
	m.mu.Lock()
	if len(m.undo) == 0 || !m.undo[len(m.undo)-1].IsRepeatable() {
		m.mu.Unlock()
		record("repeat", ErrNotRepeatable)
		return ErrNotRepeatable
	}
	clone := m.undo[len(m.undo)-1].Clone()
	m.mu.Unlock()

	record("repeat", nil)
	return m.Execute(clone)
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// UndoName returns the name of the transaction Undo would revert.
func (m *Manager) UndoName() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undo) == 0 {
		return "", false
	}
	return m.undo[len(m.undo)-1].Name(), true
}

// RedoName returns the name of the transaction Redo would run.
func (m *Manager) RedoName() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.redo) == 0 {
		return "", false
	}
	return m.redo[len(m.redo)-1].Name(), true
}

// History returns copies of both stacks, oldest first.
func (m *Manager) History() (undo, redo []Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Transaction(nil), m.undo...), append([]Transaction(nil), m.redo...)
}

// Load replaces both stacks. The transactions must already be in the state
// the stacks imply: undo entries applied, redo entries reverted.
func (m *Manager) Load(undo, redo []Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append([]Transaction(nil), undo...)
	m.redo = append([]Transaction(nil), redo...)
	undoDepth.Set(float64(len(m.undo)))
}

// Clear empties both stacks.
func (m *Manager) Clear() {
	m.Load(nil, nil)
}
