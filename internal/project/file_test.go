package project

import (
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) *Document {
	t.Helper()
	d := newGirderDoc()
	_, err := d.InsertLoad(pointOn(load.DC, evDeck, 0, 1), nil, false)
	require.NoError(t, err)
	_, err = d.InsertLoad(load.DistributedLoad{
		Common:        load.Common{Key: load.SpanGirderKey{Span: 1, Girder: load.AllGirders}, Case: load.DW, EventID: evRailing, Description: "wearing surface"},
		Type:          load.Trapezoidal,
		WStart:        1.5,
		WEnd:          2.5,
		StartLocation: 2,
		EndLocation:   10,
	}, nil, false)
	require.NoError(t, err)
	_, err = d.InsertLoad(load.MomentLoad{
		Common:    load.Common{Key: load.SpanGirderKey{Span: 2, Girder: 4}, Case: load.LLIM, EventID: evLiveLoad},
		Magnitude: -30,
		Location:  0.9,
	}, nil, false)
	require.NoError(t, err)
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := populated(t)
	path := filepath.Join(t.TempDir(), "bridge.yaml")

	data, err := d.Save(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: girder")
	assert.Contains(t, string(data), "load_case: LLIM")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Mode, got.Mode)
	assert.Equal(t, *d.Bridge, *got.Bridge)
	assert.Equal(t, d.Timeline.Events(), got.Timeline.Events())
	assert.Equal(t, d.Ledger.All(), got.Ledger.All())
	assert.Equal(t, d.Ledger.NextID(), got.Ledger.NextID())

	again, err := got.Marshal()
	require.NoError(t, err)
	assert.Equal(t, Checksum(data), Checksum(again))
}

func TestUnmarshalKeepsProblemLoads(t *testing.T) {
	src := `
name: problems
mode: girder
bridge:
  name: Test
  spans:
    - length: 30
      girders: 4
timeline:
  next_id: 5
  events:
    - {id: 0, description: Construct, day: 0, duration: 1, activities: {construct_segments: true, erect_piers: true}}
    - {id: 1, description: Erect, day: 90, duration: 1, activities: {erect_segments: true}}
    - {id: 2, description: Deck, day: 120, duration: 1, activities: {cast_deck: true}}
    - {id: 3, description: Railing, day: 150, duration: 1, activities: {install_railing_system: true, install_overlay: true}}
    - {id: 4, description: Traffic, day: 180, duration: 1, activities: {open_to_traffic: true}}
loads:
  next_id: 10
  point:
    - {id: 3, key: {span: 5, girder: 0}, load_case: DC, event: 2, magnitude: 5, location: 0.25, fractional: true}
    - {id: 4, key: {span: 0, girder: 0}, load_case: DW, event: 42, magnitude: 5, location: 0.25, fractional: true}
  distributed:
    - {id: 5, key: {span: 0, girder: 1}, load_case: DW, event: 3, w_start: 2, w_end: 4, start_location: 5, end_location: 2}
`
	d, err := Unmarshal([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Ledger.Len())
	assert.Equal(t, load.ID(10), d.Ledger.NextID())

	clamped, ok := d.Ledger.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, 0, clamped.Base().Key.Span)

	orphan, ok := d.Ledger.FindByID(4)
	require.True(t, ok)
	assert.Equal(t, int64(42), int64(orphan.Base().EventID))
	assert.Len(t, d.Status.ItemsForLoad(4), 1)

	reversed, ok := d.Ledger.FindByID(5)
	require.True(t, ok)
	dl := reversed.(load.DistributedLoad)
	assert.Equal(t, load.Trapezoidal, dl.Type)
	assert.Equal(t, 4.0, dl.WEnd)
	assert.Equal(t, 5.0, dl.StartLocation)
	assert.Len(t, d.Status.ItemsForLoad(5), 1)
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", "name: [unclosed"},
		{"bad mode", "name: x\nmode: arch\n"},
		{"no spans", "name: x\nmode: girder\nbridge: {name: x}\n"},
		{"load without id", `
name: x
mode: girder
bridge: {spans: [{length: 10, girders: 1}]}
timeline:
  events:
    - {id: 0, description: Erect, day: 0, activities: {erect_segments: true, open_to_traffic: true}}
loads:
  point:
    - {key: {span: 0, girder: 0}, load_case: DC, event: 0, magnitude: 1, location: 0, fractional: true}
`},
		{"two live load events", `
name: x
mode: girder
bridge: {spans: [{length: 10, girders: 1}]}
timeline:
  events:
    - {id: 0, description: Erect, day: 0, duration: 1, activities: {erect_segments: true, open_to_traffic: true}}
    - {id: 1, description: Traffic, day: 10, duration: 1, activities: {open_to_traffic: true}}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalBridgeValidation(t *testing.T) {
	_, err := Unmarshal([]byte("name: x\nmode: girder\nbridge: {spans: [{length: -3, girders: 2}]}\n"))
	var verr *bridge.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSummary(t *testing.T) {
	d := populated(t)
	s := d.Summary()

	assert.Equal(t, 1, s.Counts[load.Point])
	assert.Equal(t, 1, s.Counts[load.Distributed])
	assert.Equal(t, 1, s.Counts[load.Moment])

	assert.InDelta(t, 12.0, s.Force.DC, 1e-9)
	// 2.0 average over 8 m on each of the five girders of span 2
	assert.InDelta(t, 80.0, s.Force.DW, 1e-9)
	assert.InDelta(t, -30.0, s.Moment.LLIM, 1e-9)

	require.Len(t, s.Factored, 5)
	assert.Equal(t, "Strength I", s.GoverningCombo.ID)
	assert.InDelta(t, 1.25*12+1.5*80, s.GoverningForce, 1e-9)
}
