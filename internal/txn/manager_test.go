package txn

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appendTxn appends a value to a shared slice and removes it on undo.
type appendTxn struct {
	target     *[]int
	value      int
	failOn     bool
	undoable   bool
	repeatable bool
}

func newAppend(target *[]int, value int) *appendTxn {
	return &appendTxn{target: target, value: value, undoable: true}
}

func (a *appendTxn) Name() string { return "Append" }

func (a *appendTxn) Execute() error {
	if a.failOn {
		return errors.New("boom")
	}
	*a.target = append(*a.target, a.value)
	return nil
}

func (a *appendTxn) Undo() error {
	s := *a.target
	if len(s) == 0 || s[len(s)-1] != a.value {
		return errors.New("unexpected state")
	}
	*a.target = s[:len(s)-1]
	return nil
}

func (a *appendTxn) IsUndoable() bool   { return a.undoable }
func (a *appendTxn) IsRepeatable() bool { return a.repeatable }

func (a *appendTxn) Clone() Transaction {
	c := *a
	return &c
}

func TestExecuteUndoRedoLIFO(t *testing.T) {
	var s []int
	m := NewManager()

	for i := 1; i <= 3; i++ {
		require.NoError(t, m.Execute(newAppend(&s, i)))
	}
	assert.Equal(t, []int{1, 2, 3}, s)

	require.NoError(t, m.Undo())
	require.NoError(t, m.Undo())
	assert.Equal(t, []int{1}, s)

	require.NoError(t, m.Redo())
	assert.Equal(t, []int{1, 2}, s)
	assert.True(t, m.CanRedo())

	name, ok := m.UndoName()
	assert.True(t, ok)
	assert.Equal(t, "Append", name)
}

func TestExecuteClearsRedo(t *testing.T) {
	var s []int
	m := NewManager()

	require.NoError(t, m.Execute(newAppend(&s, 1)))
	require.NoError(t, m.Undo())
	require.True(t, m.CanRedo())

	require.NoError(t, m.Execute(newAppend(&s, 2)))
	assert.False(t, m.CanRedo())
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
}

func TestEmptyStacks(t *testing.T) {
	m := NewManager()

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("undo", "error"))
	assert.ErrorIs(t, m.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
	assert.ErrorIs(t, m.Repeat(), ErrNotRepeatable)
	assert.Equal(t, before+1, testutil.ToFloat64(operationsTotal.WithLabelValues("undo", "error")))
}

func TestFailedExecuteIsNotPushed(t *testing.T) {
	var s []int
	m := NewManager()
	bad := newAppend(&s, 1)
	bad.failOn = true

	err := m.Execute(bad)
	require.Error(t, err)
	assert.False(t, m.CanUndo())
	assert.Empty(t, s)
}

func TestNonUndoableClearsHistory(t *testing.T) {
	var s []int
	m := NewManager()
	require.NoError(t, m.Execute(newAppend(&s, 1)))

	final := newAppend(&s, 2)
	final.undoable = false
	require.NoError(t, m.Execute(final))

	assert.False(t, m.CanUndo())
	assert.Equal(t, []int{1, 2}, s)
}

func TestRepeat(t *testing.T) {
	var s []int
	m := NewManager()
	rep := newAppend(&s, 7)
	rep.repeatable = true

	require.NoError(t, m.Execute(rep))
	require.NoError(t, m.Repeat())
	assert.Equal(t, []int{7, 7}, s)

	undo, _ := m.History()
	assert.Len(t, undo, 2)
	assert.NotSame(t, undo[0], undo[1])
}

func TestMacroIsAtomic(t *testing.T) {
	var s []int
	m := NewManager()
	bad := newAppend(&s, 3)
	bad.failOn = true

	macro := NewMacro("Batch", newAppend(&s, 1), newAppend(&s, 2), bad)
	err := m.Execute(macro)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 3")
	assert.Empty(t, s)
	assert.False(t, m.CanUndo())
}

func TestMacroUndoReverses(t *testing.T) {
	var s []int
	m := NewManager()

	macro := NewMacro("Batch")
	macro.Add(newAppend(&s, 1))
	macro.Add(newAppend(&s, 2))
	require.Equal(t, 2, macro.Len())

	require.NoError(t, m.Execute(macro))
	assert.Equal(t, []int{1, 2}, s)

	require.NoError(t, m.Undo())
	assert.Empty(t, s)

	require.NoError(t, m.Redo())
	assert.Equal(t, []int{1, 2}, s)
	assert.False(t, macro.IsRepeatable())
	assert.True(t, macro.IsUndoable())
}

func TestLoadAndClear(t *testing.T) {
	var s []int
	m := NewManager()
	m.Load([]Transaction{newAppend(&s, 1)}, []Transaction{newAppend(&s, 2)})

	assert.True(t, m.CanUndo())
	assert.True(t, m.CanRedo())

	m.Clear()
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}
