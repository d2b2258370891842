package load

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/girderloads/internal/timeline"
)

var (
	// ErrLoadNotFound is returned when a load ID is not in the ledger.
	ErrLoadNotFound = errors.New("load not found")
	// ErrDuplicateID is returned when restoring a record whose ID is in use.
	ErrDuplicateID = errors.New("load id already in use")
	// ErrKindMismatch is returned when an update would change a load's kind.
	ErrKindMismatch = errors.New("load kind cannot change")
	// ErrIndexOutOfRange is returned by GetByIndex for a bad ordinal.
	ErrIndexOutOfRange = errors.New("load index out of range")
)

// Ledger owns the user defined loads of one project, one ordered list per
// kind. It does not validate records and never touches the timeline.
type Ledger struct {
	loads  map[Kind][]Record
	nextID ID
	logger *slog.Logger
}

// NewLedger returns an empty ledger. The first load gets ID 1.
func NewLedger() *Ledger {
	return &Ledger{
		loads:  make(map[Kind][]Record, len(Kinds)),
		nextID: 1,
		logger: slog.Default().With("component", "ledger"),
	}
}

// AddLoad assigns a fresh ID to the record and appends it.
func (l *Ledger) AddLoad(r Record) ID {
	id := l.nextID
	l.nextID++
	r = WithID(r, id)
	l.loads[r.Kind()] = append(l.loads[r.Kind()], r)
	l.logger.Debug("load added", "id", id, "kind", r.Kind())
	return id
}

// Restore re-inserts a record under its existing ID.
func (l *Ledger) Restore(r Record) error {
	id := r.Base().ID
	if id == 0 {
		return fmt.Errorf("restore %s: %w", Name(r.Kind()), ErrLoadNotFound)
	}
	if _, ok := l.FindByID(id); ok {
		return fmt.Errorf("restore load %d: %w", id, ErrDuplicateID)
	}
	l.loads[r.Kind()] = append(l.loads[r.Kind()], r)
	if id >= l.nextID {
		l.nextID = id + 1
	}
	l.logger.Debug("load restored", "id", id, "kind", r.Kind())
	return nil
}

// UpdateLoad replaces the record with the given ID, keeping the ID.
func (l *Ledger) UpdateLoad(id ID, r Record) error {
	kind, idx := l.locate(id)
	if idx < 0 {
		return fmt.Errorf("update load %d: %w", id, ErrLoadNotFound)
	}
	if kind != r.Kind() {
		return fmt.Errorf("update load %d from %s to %s: %w", id, kind, r.Kind(), ErrKindMismatch)
	}
	l.loads[kind][idx] = WithID(r, id)
	l.logger.Debug("load updated", "id", id, "kind", kind)
	return nil
}

// RemoveLoad deletes the load with the given ID and returns it. Removing an
// absent ID is a no-op that returns false.
func (l *Ledger) RemoveLoad(id ID) (Record, bool) {
	kind, idx := l.locate(id)
	if idx < 0 {
		return nil, false
	}
	list := l.loads[kind]
	r := list[idx]
	l.loads[kind] = append(list[:idx:idx], list[idx+1:]...)
	l.logger.Debug("load removed", "id", id, "kind", kind)
	return r, true
}

// FindByID returns the load with the given ID.
func (l *Ledger) FindByID(id ID) (Record, bool) {
	kind, idx := l.locate(id)
	if idx < 0 {
		return nil, false
	}
	return l.loads[kind][idx], true
}

// GetByIndex returns the load at an ordinal position within its kind.
func (l *Ledger) GetByIndex(kind Kind, ordinal int) (Record, error) {
	list := l.loads[kind]
	if ordinal < 0 || ordinal >= len(list) {
		return nil, fmt.Errorf("%s %d of %d: %w", Name(kind), ordinal, len(list), ErrIndexOutOfRange)
	}
	return list[ordinal], nil
}

// Count returns the number of loads of a kind.
func (l *Ledger) Count(kind Kind) int {
	return len(l.loads[kind])
}

// Len returns the number of loads of every kind.
func (l *Ledger) Len() int {
	n := 0
	for _, list := range l.loads {
		n += len(list)
	}
	return n
}

// All returns every load: point loads, then distributed, then moment.
func (l *Ledger) All() []Record {
	out := make([]Record, 0, l.Len())
	for _, k := range Kinds {
		out = append(out, l.loads[k]...)
	}
	return out
}

// LoadsAtEvent returns the loads assigned to an event.
func (l *Ledger) LoadsAtEvent(event timeline.EventID) []Record {
	var out []Record
	for _, r := range l.All() {
		if r.Base().EventID == event {
			out = append(out, r)
		}
	}
	return out
}

// HasLoadsAtEvent reports whether any load is assigned to the event.
func (l *Ledger) HasLoadsAtEvent(event timeline.EventID) bool {
	return len(l.LoadsAtEvent(event)) > 0
}

// HasLoadCase reports whether any load contributes to a load case.
func (l *Ledger) HasLoadCase(c Case) bool {
	for _, r := range l.All() {
		if r.Base().Case == c {
			return true
		}
	}
	return false
}

// NextID returns the ID the next added load will receive.
func (l *Ledger) NextID() ID {
	return l.nextID
}

// Reserve makes sure no load added later receives an ID below next.
func (l *Ledger) Reserve(next ID) {
	if next > l.nextID {
		l.nextID = next
	}
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		loads:  make(map[Kind][]Record, len(l.loads)),
		nextID: l.nextID,
		logger: l.logger,
	}
	for k, list := range l.loads {
		c.loads[k] = append([]Record(nil), list...)
	}
	return c
}

// FixBadLoads removes loads whose event is no longer in the timeline. It
// returns one message per removed load.
func (l *Ledger) FixBadLoads(tl interface{ IndexOf(timeline.EventID) int }) []string {
	var messages []string
	for _, r := range l.All() {
		if tl.IndexOf(r.Base().EventID) >= 0 {
			continue
		}
		l.RemoveLoad(r.Base().ID)
		messages = append(messages, Describe(r))
		l.logger.Warn("load removed, event missing", "id", r.Base().ID, "event", r.Base().EventID)
	}
	return messages
}

func (l *Ledger) locate(id ID) (Kind, int) {
	for _, k := range Kinds {
		for i, r := range l.loads[k] {
			if r.Base().ID == id {
				return k, i
			}
		}
	}
	return 0, -1
}
