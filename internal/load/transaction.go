package load

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/alexiusacademia/girderloads/internal/txn"
)

// pendingEvent adds an event to the timeline as part of a load transaction
// and restores the previous schedule on undo. A cloned pending event has no
// ID yet; the timeline assigns one and the record is moved off previousID.
type pendingEvent struct {
	event      *timeline.Event
	before     *timeline.Registry
	renumber   bool
	previousID timeline.EventID
}

func (p *pendingEvent) apply(tl *timeline.Registry) (timeline.EventID, error) {
	if p.event == nil {
		return timeline.InvalidEventID, nil
	}
	before := tl.Clone()
	id, _, err := tl.AddEvent(*p.event, true)
	if err != nil {
		return timeline.InvalidEventID, fmt.Errorf("add event %q: %w", p.event.Description, err)
	}
	p.event.ID = id
	p.before = before
	return id, nil
}

// retarget points r at the event assigned on the first run of a clone.
func (p *pendingEvent) retarget(r Record, id timeline.EventID) Record {
	if !p.renumber {
		return r
	}
	p.renumber = false
	c := r.Base()
	if c.EventID != p.previousID {
		return r
	}
	c.EventID = id
	return r.withBase(c)
}

func (p *pendingEvent) revert(tl *timeline.Registry) {
	if p.before != nil {
		tl.Restore(p.before)
		p.before = nil
	}
}

func (p pendingEvent) clone() pendingEvent {
	if p.event == nil {
		return pendingEvent{}
	}
	ev := *p.event
	ev.ID = timeline.InvalidEventID
	return pendingEvent{event: &ev, renumber: true, previousID: p.event.ID}
}

// InsertTxn adds a load to the ledger. The first Execute assigns the load
// its ID; executing again after Undo re-inserts it under the same ID.
type InsertTxn struct {
	ledger   *Ledger
	timeline *timeline.Registry
	record   Record
	pending  pendingEvent
}

// NewInsert returns a transaction that inserts record. When newEvent is not
// nil it is added to the timeline first; it must already carry the ID the
// record refers to.
func NewInsert(ledger *Ledger, tl *timeline.Registry, record Record, newEvent *timeline.Event) *InsertTxn {
	return &InsertTxn{
		ledger:   ledger,
		timeline: tl,
		record:   WithID(record, 0),
		pending:  pendingEvent{event: copyEvent(newEvent)},
	}
}

// RestoreInsert rebuilds an insert that already ran once. record carries
// the assigned ID. timelineBefore is the schedule captured before newEvent
// was added; pass it only when the transaction is currently applied.
func RestoreInsert(ledger *Ledger, tl *timeline.Registry, record Record, newEvent *timeline.Event, timelineBefore *timeline.Registry) *InsertTxn {
	return &InsertTxn{
		ledger:   ledger,
		timeline: tl,
		record:   record,
		pending:  pendingEvent{event: copyEvent(newEvent), before: timelineBefore},
	}
}

func (t *InsertTxn) Name() string {
	return "Insert " + Name(t.record.Kind())
}

// ID returns the load's ID, zero before the first Execute.
func (t *InsertTxn) ID() ID {
	return t.record.Base().ID
}

// Record returns the inserted record.
func (t *InsertTxn) Record() Record {
	return t.record
}

// NewEvent returns the event this transaction adds, or nil.
func (t *InsertTxn) NewEvent() *timeline.Event {
	return copyEvent(t.pending.event)
}

// TimelineBefore returns the schedule captured when the new event was
// added, nil if no event was added or the transaction is not applied.
func (t *InsertTxn) TimelineBefore() *timeline.Registry {
	return t.pending.before
}

func (t *InsertTxn) Execute() error {
	evID, err := t.pending.apply(t.timeline)
	if err != nil {
		return err
	}
	t.record = t.pending.retarget(t.record, evID)
	if t.record.Base().ID == 0 {
		id := t.ledger.AddLoad(t.record)
		t.record = WithID(t.record, id)
		return nil
	}
	if err := t.ledger.Restore(t.record); err != nil {
		t.pending.revert(t.timeline)
		return err
	}
	return nil
}

func (t *InsertTxn) Undo() error {
	if _, ok := t.ledger.RemoveLoad(t.record.Base().ID); !ok {
		return fmt.Errorf("undo insert of load %d: %w", t.record.Base().ID, ErrLoadNotFound)
	}
	t.pending.revert(t.timeline)
	return nil
}

func (t *InsertTxn) IsUndoable() bool   { return true }
func (t *InsertTxn) IsRepeatable() bool { return false }

func (t *InsertTxn) Clone() txn.Transaction {
	return &InsertTxn{
		ledger:   t.ledger,
		timeline: t.timeline,
		record:   WithID(t.record, 0),
		pending:  t.pending.clone(),
	}
}

// EditTxn replaces a load with a new version under the same ID.
type EditTxn struct {
	ledger   *Ledger
	timeline *timeline.Registry
	id       ID
	before   Record
	after    Record
	pending  pendingEvent
}

// NewEdit returns a transaction that changes load id from before to after.
func NewEdit(ledger *Ledger, tl *timeline.Registry, id ID, before, after Record, newEvent *timeline.Event) *EditTxn {
	return &EditTxn{
		ledger:   ledger,
		timeline: tl,
		id:       id,
		before:   WithID(before, id),
		after:    WithID(after, id),
		pending:  pendingEvent{event: copyEvent(newEvent)},
	}
}

func (t *EditTxn) Name() string {
	return "Edit " + Name(t.after.Kind())
}

// ID returns the edited load's ID.
func (t *EditTxn) ID() ID { return t.id }

// Before returns the record as it was before the edit.
func (t *EditTxn) Before() Record { return t.before }

// After returns the record as it is after the edit.
func (t *EditTxn) After() Record { return t.after }

// NewEvent returns the event this transaction adds, or nil.
func (t *EditTxn) NewEvent() *timeline.Event {
	return copyEvent(t.pending.event)
}

// TimelineBefore returns the schedule captured when the new event was
// added, nil if no event was added or the transaction is not applied.
func (t *EditTxn) TimelineBefore() *timeline.Registry {
	return t.pending.before
}

// SetTimelineBefore primes a transaction that is being rebuilt in its
// applied state.
func (t *EditTxn) SetTimelineBefore(before *timeline.Registry) {
	t.pending.before = before
}

func (t *EditTxn) Execute() error {
	current, ok := t.ledger.FindByID(t.id)
	if !ok {
		return fmt.Errorf("edit load %d: %w", t.id, ErrLoadNotFound)
	}
	evID, err := t.pending.apply(t.timeline)
	if err != nil {
		return err
	}
	t.after = t.pending.retarget(t.after, evID)
	t.before = current
	if err := t.ledger.UpdateLoad(t.id, t.after); err != nil {
		t.pending.revert(t.timeline)
		return err
	}
	return nil
}

func (t *EditTxn) Undo() error {
	if err := t.ledger.UpdateLoad(t.id, t.before); err != nil {
		return err
	}
	t.pending.revert(t.timeline)
	return nil
}

func (t *EditTxn) IsUndoable() bool   { return true }
func (t *EditTxn) IsRepeatable() bool { return true }

func (t *EditTxn) Clone() txn.Transaction {
	return &EditTxn{
		ledger:   t.ledger,
		timeline: t.timeline,
		id:       t.id,
		before:   t.before,
		after:    t.after,
		pending:  t.pending.clone(),
	}
}

// DeleteTxn removes a load. Undo puts it back under the same ID.
type DeleteTxn struct {
	ledger   *Ledger
	id       ID
	snapshot Record
	kind     Kind
}

// NewDelete returns a transaction that deletes the load. The kind is used
// for the transaction name only.
func NewDelete(ledger *Ledger, id ID, kind Kind) *DeleteTxn {
	return &DeleteTxn{ledger: ledger, id: id, kind: kind}
}

func (t *DeleteTxn) Name() string {
	return "Delete " + Name(t.kind)
}

// ID returns the deleted load's ID.
func (t *DeleteTxn) ID() ID { return t.id }

// Kind returns the deleted load's kind.
func (t *DeleteTxn) Kind() Kind { return t.kind }

// Snapshot returns the removed record, nil before the first Execute.
func (t *DeleteTxn) Snapshot() Record { return t.snapshot }

// SetSnapshot primes a transaction that is being rebuilt in its executed
// state.
func (t *DeleteTxn) SetSnapshot(r Record) {
	t.snapshot = r
	t.kind = r.Kind()
}

func (t *DeleteTxn) Execute() error {
	r, ok := t.ledger.RemoveLoad(t.id)
	if !ok {
		return fmt.Errorf("delete load %d: %w", t.id, ErrLoadNotFound)
	}
	t.snapshot = r
	return nil
}

func (t *DeleteTxn) Undo() error {
	if t.snapshot == nil {
		return fmt.Errorf("undo delete of load %d: nothing was deleted", t.id)
	}
	return t.ledger.Restore(t.snapshot)
}

func (t *DeleteTxn) IsUndoable() bool   { return true }
func (t *DeleteTxn) IsRepeatable() bool { return false }

func (t *DeleteTxn) Clone() txn.Transaction {
	return &DeleteTxn{ledger: t.ledger, id: t.id, kind: t.kind}
}

func copyEvent(ev *timeline.Event) *timeline.Event {
	if ev == nil {
		return nil
	}
	c := *ev
	return &c
}
