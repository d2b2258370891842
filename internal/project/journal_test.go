package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/store"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reopen saves d, loads the file into a fresh document and replays the
// journal into it.
func reopen(t *testing.T, d *Document) *Document {
	t.Helper()
	data, err := d.Marshal()
	require.NoError(t, err)
	undo, redo, err := d.Journal()
	require.NoError(t, err)

	fresh, err := Unmarshal(data)
	require.NoError(t, err)
	require.NoError(t, fresh.RestoreJournal(undo, redo))
	return fresh
}

func TestJournalReplay(t *testing.T) {
	d := New("splice", ModeSplice, bridge.Default())

	first, err := d.InsertLoad(pointOn(load.DC, 5, 0, 0), nil, false)
	require.NoError(t, err)
	withEvent, err := d.InsertLoad(pointOn(load.DW, timeline.CreateEventID, 1, 1),
		&timeline.Event{Description: "Utilities", Day: 100, Duration: 1}, false)
	require.NoError(t, err)

	edited := first.Record.(load.PointLoad)
	edited.Magnitude = 99
	_, err = d.EditLoad(first.ID, edited, nil, false)
	require.NoError(t, err)

	_, err = d.AddEvent(timeline.Event{Description: "Inspect", Day: 200, Duration: 1}, false)
	require.NoError(t, err)
	require.NoError(t, d.DeleteLoads(first.ID, withEvent.ID))
	require.NoError(t, d.Undo())

	fresh := reopen(t, d)
	assert.True(t, fresh.History.CanRedo())

	wantUndo, wantRedo := d.History.History()
	gotUndo, gotRedo := fresh.History.History()
	require.Len(t, gotUndo, len(wantUndo))
	require.Len(t, gotRedo, len(wantRedo))
	for i := range wantUndo {
		assert.Equal(t, wantUndo[i].Name(), gotUndo[i].Name())
	}

	// redo the delete, then walk all the way back in both documents
	require.NoError(t, fresh.Redo())
	assert.Equal(t, 0, fresh.Ledger.Len())
	require.NoError(t, fresh.Undo())
	assert.Equal(t, 2, fresh.Ledger.Len())

	require.NoError(t, fresh.Undo()) // add event
	assert.Equal(t, 9, fresh.Timeline.Count())

	require.NoError(t, fresh.Undo()) // edit
	stored, ok := fresh.Ledger.FindByID(first.ID)
	require.True(t, ok)
	assert.Equal(t, 12.0, stored.(load.PointLoad).Magnitude)

	require.NoError(t, fresh.Undo()) // insert with new event
	assert.Equal(t, 8, fresh.Timeline.Count())
	_, ok = fresh.Ledger.FindByID(withEvent.ID)
	assert.False(t, ok)

	require.NoError(t, fresh.Undo())
	assert.Equal(t, 0, fresh.Ledger.Len())
	assert.False(t, fresh.History.CanUndo())

	require.NoError(t, fresh.Redo())
	require.NoError(t, fresh.Redo())
	assert.Equal(t, 9, fresh.Timeline.Count())
	_, ok = fresh.Ledger.FindByID(withEvent.ID)
	assert.True(t, ok)
}

func TestSessionHistory(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	defer st.Close()

	path := filepath.Join(t.TempDir(), "girderloads.yaml")
	s, err := CreateSession(ctx, path, newGirderDoc(), st)
	require.NoError(t, err)

	_, err = s.InsertLoad(pointOn(load.DC, evDeck, 0, 0), nil, false)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))

	s, err = OpenSession(ctx, path, st)
	require.NoError(t, err)
	require.Equal(t, 1, s.Ledger.Len())
	name, ok := s.History.UndoName()
	require.True(t, ok)
	assert.Equal(t, "Insert Point Load", name)

	require.NoError(t, s.Undo())
	require.NoError(t, s.Save(ctx))

	s, err = OpenSession(ctx, path, st)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Ledger.Len())
	require.NoError(t, s.Redo())
	assert.Equal(t, 1, s.Ledger.Len())

	t.Run("stale history is discarded", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, append(data, []byte("\n# edited by hand\n")...), 0o644))

		s, err := OpenSession(ctx, path, st)
		require.NoError(t, err)
		assert.False(t, s.History.CanUndo())
		assert.False(t, s.History.CanRedo())

		_, err = st.LoadHistory(ctx, s.Path())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSessionWithoutStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "p.yaml")
	s, err := CreateSession(ctx, path, newGirderDoc(), nil)
	require.NoError(t, err)

	_, err = s.InsertLoad(pointOn(load.DW, evRailing, 0, 0), nil, false)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))

	s, err = OpenSession(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Ledger.Len())
	assert.False(t, s.History.CanUndo())
}
