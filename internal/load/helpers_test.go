package load

import (
	"testing"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/stretchr/testify/require"
)

const (
	evConstruct timeline.EventID = 0
	evErect     timeline.EventID = 1
	evDeck      timeline.EventID = 2
	evRailing   timeline.EventID = 3
	evLiveLoad  timeline.EventID = 4
)

func testTimeline(t *testing.T) *timeline.Registry {
	t.Helper()
	r, err := timeline.FromEvents([]timeline.Event{
		{ID: evConstruct, Description: "Construct Girders", Day: 0, Duration: 1, Activities: timeline.Activities{ConstructSegments: true, ErectPiers: true}},
		{ID: evErect, Description: "Erect Girders", Day: 90, Duration: 1, Activities: timeline.Activities{ErectSegments: true}},
		{ID: evDeck, Description: "Cast Deck", Day: 120, Duration: 1, Activities: timeline.Activities{CastDeck: true}},
		{ID: evRailing, Description: "Final without Live Load", Day: 150, Duration: 1, Activities: timeline.Activities{InstallRailingSystem: true, InstallOverlay: true}},
		{ID: evLiveLoad, Description: "Final with Live Load", Day: 180, Duration: 1, Activities: timeline.Activities{OpenToTraffic: true}},
	})
	require.NoError(t, err)
	return r
}

func testBridge() *bridge.Bridge {
	return &bridge.Bridge{
		Spans: []bridge.Span{
			{Length: 30, Girders: 5},
			{Length: 36, Girders: 4},
			{Length: 30, Girders: 5},
		},
		StartCantilever: 1.2,
	}
}

func point(loc float64, c Case, ev timeline.EventID) PointLoad {
	return PointLoad{
		Common:     Common{Key: SpanGirderKey{Span: 0, Girder: 0}, Case: c, EventID: ev, Description: "point"},
		Magnitude:  10,
		Location:   loc,
		Fractional: true,
	}
}

func distributed(start, end float64, fractional bool) DistributedLoad {
	return DistributedLoad{
		Common:        Common{Key: SpanGirderKey{Span: 1, Girder: 2}, Case: DW, EventID: evRailing, Description: "distributed"},
		Type:          Trapezoidal,
		WStart:        2,
		WEnd:          4,
		StartLocation: start,
		EndLocation:   end,
		Fractional:    fractional,
	}
}

func moment(loc float64) MomentLoad {
	return MomentLoad{
		Common:    Common{Key: SpanGirderKey{Span: 2, Girder: AllGirders}, Case: DC, EventID: evDeck, Description: "moment"},
		Magnitude: 50,
		Location:  loc,
	}
}
