// Package txn provides reversible commands and the undo/redo manager that
// runs them.
package txn

import (
	"errors"
	"fmt"
)

// Transaction is a reversible change to a document.
//
// Execute applies the change and Undo reverts it. A transaction may be
// executed again after Undo (redo). Clone returns an unexecuted copy that
// Repeat can run.
type Transaction interface {
	Name() string
	Execute() error
	Undo() error
	IsUndoable() bool
	IsRepeatable() bool
	Clone() Transaction
}

// Macro runs several transactions as one. If a step fails, the steps
// already applied are undone before the error is returned.
type Macro struct {
	name string
	txns []Transaction
}

// NewMacro returns a macro transaction with the given steps.
func NewMacro(name string, steps ...Transaction) *Macro {
	return &Macro{name: name, txns: append([]Transaction(nil), steps...)}
}

// Add appends a step.
func (m *Macro) Add(t Transaction) {
	m.txns = append(m.txns, t)
}

// Len returns the number of steps.
func (m *Macro) Len() int {
	return len(m.txns)
}

// Steps returns the steps in execution order.
func (m *Macro) Steps() []Transaction {
	return append([]Transaction(nil), m.txns...)
}

func (m *Macro) Name() string {
	return m.name
}

func (m *Macro) Execute() error {
	for i, t := range m.txns {
		if err := t.Execute(); err != nil {
			err = fmt.Errorf("%s: step %d (%s): %w", m.name, i+1, t.Name(), err)
			for j := i - 1; j >= 0; j-- {
				if uerr := m.txns[j].Undo(); uerr != nil {
					return errors.Join(err, fmt.Errorf("rollback %s: %w", m.txns[j].Name(), uerr))
				}
			}
			return err
		}
	}
	return nil
}

func (m *Macro) Undo() error {
	for i := len(m.txns) - 1; i >= 0; i-- {
		if err := m.txns[i].Undo(); err != nil {
			return fmt.Errorf("%s: undo step %d (%s): %w", m.name, i+1, m.txns[i].Name(), err)
		}
	}
	return nil
}

func (m *Macro) IsUndoable() bool {
	for _, t := range m.txns {
		if !t.IsUndoable() {
			return false
		}
	}
	return true
}

func (m *Macro) IsRepeatable() bool {
	if len(m.txns) == 0 {
		return false
	}
	for _, t := range m.txns {
		if !t.IsRepeatable() {
			return false
		}
	}
	return true
}

func (m *Macro) Clone() Transaction {
	c := &Macro{name: m.name, txns: make([]Transaction, len(m.txns))}
	for i, t := range m.txns {
		c.txns[i] = t.Clone()
	}
	return c
}
