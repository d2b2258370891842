package project

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Mode is the kind of project. It selects the timeline policies applied to
// load editing.
type Mode int

const (
	// ModeGirder is a precast girder project with a fixed construction
	// sequence.
	ModeGirder Mode = iota
	// ModeSplice is a spliced girder project with a user defined timeline.
	ModeSplice
)

func (m Mode) String() string {
	switch m {
	case ModeGirder:
		return "girder"
	case ModeSplice:
		return "splice"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts "girder" or "splice" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "girder", "precast":
		return ModeGirder, nil
	case "splice", "spliced":
		return ModeSplice, nil
	}
	return 0, fmt.Errorf("unknown project mode %q (want girder or splice)", s)
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseMode(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CanCreateEvents reports whether a load operation may add a new event to
// the timeline.
func (m Mode) CanCreateEvents() bool {
	return m == ModeSplice
}

// DefaultTimeline returns the construction sequence a new project starts with.
func DefaultTimeline(m Mode) *timeline.Registry {
	var events []timeline.Event
	if m == ModeSplice {
		events = []timeline.Event{
			{ID: 0, Description: "Construct Segments", Day: 0, Duration: 28, Activities: timeline.Activities{ConstructSegments: true}},
			{ID: 1, Description: "Erect Piers", Day: 28, Duration: 1, Activities: timeline.Activities{ErectPiers: true}},
			{ID: 2, Description: "Erect Segments", Day: 60, Duration: 1, Activities: timeline.Activities{ErectSegments: true}},
			{ID: 3, Description: "Cast Closure Joints", Day: 70, Duration: 1, Activities: timeline.Activities{CastClosureJoints: true}},
			{ID: 4, Description: "Stress Tendons, Remove Temporary Supports", Day: 80, Duration: 1, Activities: timeline.Activities{StressTendons: true, RemoveTemporarySupports: true}},
			{ID: 5, Description: "Cast Deck", Day: 90, Duration: 1, Activities: timeline.Activities{CastDeck: true}},
			{ID: 6, Description: "Install Railing System and Overlay", Day: 120, Duration: 1, Activities: timeline.Activities{InstallRailingSystem: true, InstallOverlay: true}},
			{ID: 7, Description: "Open to Traffic", Day: 150, Duration: 1, Activities: timeline.Activities{OpenToTraffic: true}},
		}
	} else {
		events = []timeline.Event{
			{ID: 0, Description: "Construct Girders, Erect Piers", Day: 0, Duration: 1, Activities: timeline.Activities{ConstructSegments: true, ErectPiers: true}},
			{ID: 1, Description: "Erect Girders", Day: 90, Duration: 1, Activities: timeline.Activities{ErectSegments: true}},
			{ID: 2, Description: "Cast Deck", Day: 120, Duration: 1, Activities: timeline.Activities{CastDeck: true}},
			{ID: 3, Description: "Final without Live Load", Day: 150, Duration: 1, Activities: timeline.Activities{InstallRailingSystem: true, InstallOverlay: true}},
			{ID: 4, Description: "Final with Live Load", Day: 180, Duration: 1, Activities: timeline.Activities{OpenToTraffic: true}},
		}
	}
	r, err := timeline.FromEvents(events)
	if err != nil {
		panic(err)
	}
	return r
}
