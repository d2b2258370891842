// Package timeline keeps the ordered construction schedule that user loads
// are attached to.
//
// Events are identified by a stable EventID. An event's index is its position
// in chronological order and changes whenever events are added or removed.
package timeline

import (
	"fmt"
	"strings"
)

// EventID is the stable identifier of a timeline event.
type EventID int64

const (
	// InvalidEventID marks a missing event reference.
	InvalidEventID EventID = -1
	// CreateEventID asks the caller to create a new event for a load.
	CreateEventID EventID = -2
)

// Activities are the construction activities attached to an event.
type Activities struct {
	ConstructSegments       bool `yaml:"construct_segments,omitempty" json:"construct_segments,omitempty"`
	ErectPiers              bool `yaml:"erect_piers,omitempty" json:"erect_piers,omitempty"`
	ErectSegments           bool `yaml:"erect_segments,omitempty" json:"erect_segments,omitempty"`
	CastClosureJoints       bool `yaml:"cast_closure_joints,omitempty" json:"cast_closure_joints,omitempty"`
	StressTendons           bool `yaml:"stress_tendons,omitempty" json:"stress_tendons,omitempty"`
	RemoveTemporarySupports bool `yaml:"remove_temporary_supports,omitempty" json:"remove_temporary_supports,omitempty"`
	CastDeck                bool `yaml:"cast_deck,omitempty" json:"cast_deck,omitempty"`
	InstallRailingSystem    bool `yaml:"install_railing_system,omitempty" json:"install_railing_system,omitempty"`
	InstallOverlay          bool `yaml:"install_overlay,omitempty" json:"install_overlay,omitempty"`
	OpenToTraffic           bool `yaml:"open_to_traffic,omitempty" json:"open_to_traffic,omitempty"`
}

// Names lists the enabled activities in schedule order.
func (a Activities) Names() []string {
	var names []string
	add := func(on bool, name string) {
		if on {
			names = append(names, name)
		}
	}
	add(a.ConstructSegments, "construct segments")
	add(a.ErectPiers, "erect piers")
	add(a.ErectSegments, "erect segments")
	add(a.CastClosureJoints, "cast closure joints")
	add(a.StressTendons, "stress tendons")
	add(a.RemoveTemporarySupports, "remove temporary supports")
	add(a.CastDeck, "cast deck")
	add(a.InstallRailingSystem, "install railing system")
	add(a.InstallOverlay, "install overlay")
	add(a.OpenToTraffic, "open to traffic")
	return names
}

func (a Activities) String() string {
	names := a.Names()
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

// Event is one entry of the construction schedule.
type Event struct {
	ID          EventID    `yaml:"id" json:"id"`
	Description string     `yaml:"description" json:"description"`
	Day         float64    `yaml:"day" json:"day"`
	Duration    float64    `yaml:"duration,omitempty" json:"duration,omitempty"`
	Activities  Activities `yaml:"activities" json:"activities"`
}

// End returns the day the event's minimum elapsed time runs out.
func (e Event) End() float64 {
	return e.Day + e.Duration
}

// Activity names an activity that at most one event may carry.
type Activity int

const (
	CastDeck Activity = iota
	RailingSystem
	Overlay
	LiveLoad
)

var singleActivities = []Activity{CastDeck, RailingSystem, Overlay, LiveLoad}

var activityNames = map[Activity]string{
	CastDeck:      "cast-deck",
	RailingSystem: "railing",
	Overlay:       "overlay",
	LiveLoad:      "live-load",
}

func (a Activity) String() string {
	if s, ok := activityNames[a]; ok {
		return s
	}
	return fmt.Sprintf("activity(%d)", int(a))
}

// ParseActivity converts a command line name to an Activity.
func ParseActivity(s string) (Activity, error) {
	for a, name := range activityNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown activity %q (want cast-deck, railing, overlay or live-load)", s)
}

func (a Activities) has(act Activity) bool {
	switch act {
	case CastDeck:
		return a.CastDeck
	case RailingSystem:
		return a.InstallRailingSystem
	case Overlay:
		return a.InstallOverlay
	case LiveLoad:
		return a.OpenToTraffic
	}
	return false
}

func (a *Activities) set(act Activity, on bool) {
	switch act {
	case CastDeck:
		a.CastDeck = on
	case RailingSystem:
		a.InstallRailingSystem = on
	case Overlay:
		a.InstallOverlay = on
	case LiveLoad:
		a.OpenToTraffic = on
	}
}

// With returns a copy of a with the activity switched on.
func (a Activities) With(act Activity) Activities {
	a.set(act, true)
	return a
}
