package timeline

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/alexiusacademia/girderloads/internal/numeric"
)

// Registry is the ordered sequence of timeline events for one project.
type Registry struct {
	events []Event
	nextID EventID
	logger *slog.Logger
}

// NewRegistry returns an empty timeline.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default().With("component", "timeline"),
	}
}

// FromEvents builds a registry from stored events. Events are ordered by
// day; IDs must be unique and non-negative, and no two events may share a
// single occurrence activity.
func FromEvents(events []Event) (*Registry, error) {
	r := NewRegistry()
	seen := make(map[EventID]bool, len(events))
	holder := make(map[Activity]EventID, len(singleActivities))
	for _, ev := range events {
		if ev.ID < 0 {
			return nil, fmt.Errorf("event %q: id %d: %w", ev.Description, ev.ID, ErrInvalidEvent)
		}
		if seen[ev.ID] {
			return nil, fmt.Errorf("event %d: %w", ev.ID, ErrDuplicateEvent)
		}
		if ev.Day < 0 || ev.Duration < 0 {
			return nil, fmt.Errorf("event %d: %w", ev.ID, ErrInvalidEvent)
		}
		for _, act := range singleActivities {
			if !ev.Activities.has(act) {
				continue
			}
			if prev, ok := holder[act]; ok {
				return nil, fmt.Errorf("events %d and %d both %s: %w", prev, ev.ID, act, ErrDuplicateActivity)
			}
			holder[act] = ev.ID
		}
		seen[ev.ID] = true
		r.events = append(r.events, ev)
		if ev.ID >= r.nextID {
			r.nextID = ev.ID + 1
		}
	}
	sort.SliceStable(r.events, func(i, j int) bool {
		return r.events[i].Day < r.events[j].Day
	})
	return r, nil
}

// Snapshot is the serializable state of a registry.
type Snapshot struct {
	NextID EventID `yaml:"next_id" json:"next_id"`
	Events []Event `yaml:"events" json:"events"`
}

// Snapshot returns the current state of the registry.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{NextID: r.nextID, Events: r.Events()}
}

// FromSnapshot rebuilds a registry. The next ID is never lower than one
// past the largest event ID.
func FromSnapshot(s Snapshot) (*Registry, error) {
	r, err := FromEvents(s.Events)
	if err != nil {
		return nil, err
	}
	if s.NextID > r.nextID {
		r.nextID = s.NextID
	}
	return r, nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		events: make([]Event, len(r.events)),
		nextID: r.nextID,
		logger: r.logger,
	}
	copy(c.events, r.events)
	return c
}

// Restore replaces the contents of r with a copy of snapshot.
func (r *Registry) Restore(snapshot *Registry) {
	r.events = make([]Event, len(snapshot.events))
	copy(r.events, snapshot.events)
	r.nextID = snapshot.nextID
}

// Count returns the number of events.
func (r *Registry) Count() int {
	return len(r.events)
}

// Events returns a copy of the events in chronological order.
func (r *Registry) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// EventByIndex returns the event at a chronological position.
func (r *Registry) EventByIndex(idx int) (Event, bool) {
	if idx < 0 || idx >= len(r.events) {
		return Event{}, false
	}
	return r.events[idx], true
}

// EventByID returns the event with the given ID.
func (r *Registry) EventByID(id EventID) (Event, bool) {
	idx := r.IndexOf(id)
	if idx < 0 {
		return Event{}, false
	}
	return r.events[idx], true
}

// IndexOf resolves an event ID to its chronological index, or -1.
func (r *Registry) IndexOf(id EventID) int {
	for i, ev := range r.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// NextID returns the ID the next added event will receive.
func (r *Registry) NextID() EventID {
	return r.nextID
}

// AddEvent inserts an event and returns its ID and index. An event with a
// negative ID is assigned the next free ID.
//
// Without adjust, an event that overlaps its neighbours is rejected with a
// ConflictError. With adjust, later events are pushed back until nothing
// overlaps. Single occurrence activities carried by the new event are moved
// off whichever event held them before.
func (r *Registry) AddEvent(ev Event, adjust bool) (EventID, int, error) {
	if ev.Day < 0 || ev.Duration < 0 {
		return InvalidEventID, -1, ErrInvalidEvent
	}
	if ev.ID >= 0 && r.IndexOf(ev.ID) >= 0 {
		return InvalidEventID, -1, fmt.Errorf("event %d: %w", ev.ID, ErrDuplicateEvent)
	}
	if !adjust {
		if err := r.validateEvent(ev); err != nil {
			return InvalidEventID, -1, err
		}
	}

	if ev.ID < 0 {
		ev.ID = r.nextID
	}
	if ev.ID >= r.nextID {
		r.nextID = ev.ID + 1
	}

	for _, act := range singleActivities {
		if ev.Activities.has(act) {
			for i := range r.events {
				r.events[i].Activities.set(act, false)
			}
		}
	}

	r.events = append(r.events, ev)
	r.sort()

	idx := r.IndexOf(ev.ID)
	r.logger.Debug("event added", "id", ev.ID, "index", idx, "day", ev.Day, "adjust", adjust)
	return ev.ID, idx, nil
}

// validateEvent checks that ev fits between its neighbours.
func (r *Registry) validateEvent(ev Event) error {
	pos := sort.Search(len(r.events), func(i int) bool {
		return numeric.IsLE(ev.Day, r.events[i].Day)
	})
	if pos > 0 {
		prev := r.events[pos-1]
		if numeric.IsLT(ev.Day, prev.End()) {
			return &ConflictError{Code: CodeOverlapsPreviousEvent, EventID: prev.ID}
		}
	}
	if pos < len(r.events) {
		next := r.events[pos]
		if numeric.IsLT(next.Day, ev.End()) {
			return &ConflictError{Code: CodeOverrunsNextEvent, EventID: next.ID}
		}
	}
	return nil
}

// sort orders events by day and pushes events back so none overlaps its
// predecessor.
func (r *Registry) sort() {
	sort.SliceStable(r.events, func(i, j int) bool {
		return r.events[i].Day < r.events[j].Day
	})
	for i := 1; i < len(r.events); i++ {
		prevEnd := r.events[i-1].End()
		if numeric.IsLT(r.events[i].Day, prevEnd) {
			r.events[i].Day = prevEnd
		}
	}
}

// CanRemoveEvent reports why an event may not be removed. hasUserLoads,
// when non-nil, tells whether any user load references the event.
func (r *Registry) CanRemoveEvent(id EventID, hasUserLoads func(EventID) bool) error {
	ev, ok := r.EventByID(id)
	if !ok {
		return fmt.Errorf("event %d: %w", id, ErrEventNotFound)
	}
	if hasUserLoads != nil && hasUserLoads(id) {
		return &ConflictError{Code: CodeUserLoadRequired, EventID: id}
	}

	checks := []struct {
		on   func(Activities) bool
		code Code
	}{
		{func(a Activities) bool { return a.ConstructSegments }, CodeConstructSegmentsRequired},
		{func(a Activities) bool { return a.ErectPiers }, CodeErectPiersRequired},
		{func(a Activities) bool { return a.ErectSegments }, CodeErectSegmentsRequired},
		{func(a Activities) bool { return a.CastClosureJoints }, CodeClosureJointsRequired},
		{func(a Activities) bool { return a.StressTendons }, CodeStressTendonsRequired},
		{func(a Activities) bool { return a.RemoveTemporarySupports }, CodeRemoveTemporarySupportsRequired},
		{func(a Activities) bool { return a.CastDeck }, CodeCastDeckRequired},
		{func(a Activities) bool { return a.InstallRailingSystem }, CodeRailingSystemRequired},
		{func(a Activities) bool { return a.InstallOverlay }, CodeOverlayRequired},
		{func(a Activities) bool { return a.OpenToTraffic }, CodeLiveLoadRequired},
	}
	for _, c := range checks {
		if c.on(ev.Activities) && r.countWith(c.on) == 1 {
			return &ConflictError{Code: c.code, EventID: id}
		}
	}
	return nil
}

// RemoveEvent deletes an event when CanRemoveEvent allows it.
func (r *Registry) RemoveEvent(id EventID, hasUserLoads func(EventID) bool) error {
	if err := r.CanRemoveEvent(id, hasUserLoads); err != nil {
		return err
	}
	idx := r.IndexOf(id)
	r.events = append(r.events[:idx], r.events[idx+1:]...)
	r.logger.Debug("event removed", "id", id, "index", idx)
	return nil
}

// AssignActivity moves a single occurrence activity onto the event.
func (r *Registry) AssignActivity(act Activity, id EventID) error {
	idx := r.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("event %d: %w", id, ErrEventNotFound)
	}
	for i := range r.events {
		r.events[i].Activities.set(act, i == idx)
	}
	return nil
}

// Validate checks the schedule as a whole.
func (r *Registry) Validate() error {
	if r.FirstSegmentErectionIndex() < 0 {
		return &ConflictError{Code: CodeErectSegmentsRequired, EventID: InvalidEventID}
	}
	if r.LiveLoadEventIndex() < 0 {
		return &ConflictError{Code: CodeLiveLoadRequired, EventID: InvalidEventID}
	}
	deck, railing := r.CastDeckEventIndex(), r.RailingSystemEventIndex()
	if deck >= 0 && railing >= 0 && railing < deck {
		return &ConflictError{Code: CodeRailingSystemBeforeDeck, EventID: r.events[railing].ID}
	}
	for i := 1; i < len(r.events); i++ {
		if numeric.IsLT(r.events[i].Day, r.events[i-1].End()) {
			return &ConflictError{Code: CodeOverlapsPreviousEvent, EventID: r.events[i].ID}
		}
	}
	return nil
}

func (r *Registry) countWith(on func(Activities) bool) int {
	n := 0
	for _, ev := range r.events {
		if on(ev.Activities) {
			n++
		}
	}
	return n
}

func (r *Registry) firstIndex(on func(Activities) bool) int {
	for i, ev := range r.events {
		if on(ev.Activities) {
			return i
		}
	}
	return -1
}

func (r *Registry) idAt(idx int) EventID {
	if idx < 0 {
		return InvalidEventID
	}
	return r.events[idx].ID
}

// FirstSegmentErectionIndex returns the index of the first event that erects
// segments, or -1.
func (r *Registry) FirstSegmentErectionIndex() int {
	return r.firstIndex(func(a Activities) bool { return a.ErectSegments })
}

// FirstSegmentErectionID returns the ID of the first segment erection event.
func (r *Registry) FirstSegmentErectionID() EventID {
	return r.idAt(r.FirstSegmentErectionIndex())
}

// LiveLoadEventIndex returns the index of the event that opens the bridge to
// traffic, or -1.
func (r *Registry) LiveLoadEventIndex() int {
	return r.firstIndex(func(a Activities) bool { return a.OpenToTraffic })
}

// LiveLoadEventID returns the ID of the live load event.
func (r *Registry) LiveLoadEventID() EventID {
	return r.idAt(r.LiveLoadEventIndex())
}

// CastDeckEventIndex returns the index of the deck casting event, or -1.
func (r *Registry) CastDeckEventIndex() int {
	return r.firstIndex(func(a Activities) bool { return a.CastDeck })
}

// CastDeckEventID returns the ID of the deck casting event.
func (r *Registry) CastDeckEventID() EventID {
	return r.idAt(r.CastDeckEventIndex())
}

// RailingSystemEventIndex returns the index of the railing installation
// event, or -1.
func (r *Registry) RailingSystemEventIndex() int {
	return r.firstIndex(func(a Activities) bool { return a.InstallRailingSystem })
}

// RailingSystemEventID returns the ID of the railing installation event.
func (r *Registry) RailingSystemEventID() EventID {
	return r.idAt(r.RailingSystemEventIndex())
}

// OverlayEventIndex returns the index of the overlay installation event,
// or -1.
func (r *Registry) OverlayEventIndex() int {
	return r.firstIndex(func(a Activities) bool { return a.InstallOverlay })
}

// OverlayEventID returns the ID of the overlay installation event.
func (r *Registry) OverlayEventID() EventID {
	return r.idAt(r.OverlayEventIndex())
}

// Label formats an event the way it is shown in event choices:
// "Event 3: Cast Deck". Event numbers are one-based.
func (r *Registry) Label(id EventID) string {
	idx := r.IndexOf(id)
	if idx < 0 {
		return fmt.Sprintf("Event ?: (missing id %d)", id)
	}
	return fmt.Sprintf("Event %d: %s", idx+1, r.events[idx].Description)
}
