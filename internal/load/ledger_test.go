package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLoadAssignsStableIDs(t *testing.T) {
	l := NewLedger()

	p := l.AddLoad(point(0.5, DC, evDeck))
	d := l.AddLoad(distributed(0.1, 0.9, true))
	m := l.AddLoad(moment(1))

	assert.Equal(t, ID(1), p)
	assert.Equal(t, ID(2), d)
	assert.Equal(t, ID(3), m)
	assert.Equal(t, 1, l.Count(Point))
	assert.Equal(t, 1, l.Count(Distributed))
	assert.Equal(t, 1, l.Count(Moment))
	assert.Equal(t, 3, l.Len())

	r, ok := l.FindByID(d)
	require.True(t, ok)
	assert.Equal(t, Distributed, r.Kind())
	assert.Equal(t, d, r.Base().ID)
}

func TestUpdateLoad(t *testing.T) {
	l := NewLedger()
	id := l.AddLoad(point(0.5, DC, evDeck))

	updated := point(0.25, DW, evRailing)
	require.NoError(t, l.UpdateLoad(id, updated))

	r, ok := l.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, 0.25, r.(PointLoad).Location)
	assert.Equal(t, id, r.Base().ID)

	assert.ErrorIs(t, l.UpdateLoad(99, updated), ErrLoadNotFound)
	assert.ErrorIs(t, l.UpdateLoad(id, moment(0)), ErrKindMismatch)
}

func TestRemoveLoadIsIdempotent(t *testing.T) {
	l := NewLedger()
	id := l.AddLoad(point(0.5, DC, evDeck))
	keep := l.AddLoad(point(0.75, DC, evDeck))

	_, ok := l.RemoveLoad(id)
	assert.True(t, ok)
	after := l.All()

	_, ok = l.RemoveLoad(id)
	assert.False(t, ok)
	assert.Equal(t, after, l.All())

	_, ok = l.FindByID(keep)
	assert.True(t, ok)
}

func TestRestoreKeepsID(t *testing.T) {
	l := NewLedger()
	id := l.AddLoad(point(0.5, DC, evDeck))
	r, _ := l.RemoveLoad(id)

	require.NoError(t, l.Restore(r))
	got, ok := l.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, r, got)

	assert.ErrorIs(t, l.Restore(r), ErrDuplicateID)
	assert.Equal(t, ID(2), l.AddLoad(point(0.1, DC, evDeck)))
}

func TestGetByIndex(t *testing.T) {
	l := NewLedger()
	l.AddLoad(point(0.1, DC, evDeck))
	second := l.AddLoad(point(0.2, DC, evDeck))

	r, err := l.GetByIndex(Point, 1)
	require.NoError(t, err)
	assert.Equal(t, second, r.Base().ID)

	_, err = l.GetByIndex(Moment, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEventAndCaseQueries(t *testing.T) {
	l := NewLedger()
	l.AddLoad(point(0.5, LLIM, evLiveLoad))
	l.AddLoad(moment(0))

	assert.True(t, l.HasLoadCase(LLIM))
	assert.False(t, l.HasLoadCase(DW))
	assert.Len(t, l.LoadsAtEvent(evLiveLoad), 1)
	assert.True(t, l.HasLoadsAtEvent(evDeck))
	assert.False(t, l.HasLoadsAtEvent(evErect))
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewLedger()
	id := l.AddLoad(point(0.5, DC, evDeck))
	c := l.Clone()

	l.RemoveLoad(id)
	_, ok := c.FindByID(id)
	assert.True(t, ok)
	assert.Equal(t, 0, l.Len())
}

func TestFixBadLoads(t *testing.T) {
	tl := testTimeline(t)
	l := NewLedger()
	l.AddLoad(point(0.5, DC, evDeck))

	orphan := point(0.5, DC, 42)
	orphan.Key = SpanGirderKey{Span: AllSpans, Girder: 1}
	orphan.Description = "sign"
	l.AddLoad(orphan)

	messages := l.FixBadLoads(tl)
	require.Len(t, messages, 1)
	assert.Equal(t, "Point Load: Span All Spans, Girder B, sign", messages[0])
	assert.Equal(t, 1, l.Len())
}

func TestReserve(t *testing.T) {
	l := NewLedger()
	l.Reserve(10)
	l.Reserve(4)
	assert.Equal(t, ID(10), l.NextID())
	assert.Equal(t, ID(10), l.AddLoad(moment(0)))
}
