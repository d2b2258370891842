// Package project is one open bridge project: its geometry, timeline, user
// loads, transaction history and status items, together with the file and
// history persistence used by the command line.
package project

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/status"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/alexiusacademia/girderloads/internal/txn"
)

var (
	// ErrTimelineLocked is returned when a load operation tries to create an
	// event in a project whose timeline is fixed.
	ErrTimelineLocked = errors.New("this project type does not allow new timeline events")
	// ErrNewEventRequired is returned when a record asks for a new event but
	// no event was supplied.
	ErrNewEventRequired = errors.New("a new event description is required")
	// ErrEventNotOffered is returned when a load is placed on an event the
	// project does not offer for its load case.
	ErrEventNotOffered = errors.New("the event is not available for this load case")
	// ErrNoLoads is returned when a delete names no loads.
	ErrNoLoads = errors.New("no loads selected")
)

// Document owns everything that belongs to one open project.
type Document struct {
	Name     string
	Mode     Mode
	Bridge   *bridge.Bridge
	Timeline *timeline.Registry
	Ledger   *load.Ledger
	History  *txn.Manager
	Status   *status.Center

	logger *slog.Logger
}

// New returns a document with the default timeline for the mode.
func New(name string, mode Mode, b *bridge.Bridge) *Document {
	return assemble(name, mode, b, DefaultTimeline(mode), load.NewLedger())
}

func assemble(name string, mode Mode, b *bridge.Bridge, tl *timeline.Registry, ledger *load.Ledger) *Document {
	d := &Document{
		Name:     name,
		Mode:     mode,
		Bridge:   b,
		Timeline: tl,
		Ledger:   ledger,
		History:  txn.NewManager(),
		Status:   status.NewCenter(),
		logger:   slog.Default().With("component", "project"),
	}
	d.Status.Refresh(d.Ledger, d.Timeline, d.Bridge)
	return d
}

// Outcome describes an accepted insert or edit.
type Outcome struct {
	ID        load.ID
	Record    load.Record
	Warnings  []load.Warning
	NewEvent  timeline.EventID
	Unchanged bool
}

// EventChoices returns the events a load of the given case may be placed on.
// LL+IM loads are only ever offered the live load event.
func (d *Document) EventChoices(c load.Case) []timeline.Event {
	var choices []timeline.Event
	add := func(id timeline.EventID) {
		if ev, ok := d.Timeline.EventByID(id); ok {
			for _, seen := range choices {
				if seen.ID == id {
					return
				}
			}
			choices = append(choices, ev)
		}
	}

	if c == load.LLIM {
		add(d.Timeline.LiveLoadEventID())
		return choices
	}
	if d.Mode == ModeGirder {
		add(d.Timeline.CastDeckEventID())
		add(d.Timeline.RailingSystemEventID())
		return choices
	}

	first := d.Timeline.FirstSegmentErectionIndex()
	if first < 0 {
		return nil
	}
	for _, ev := range d.Timeline.Events()[first:] {
		add(ev.ID)
	}
	return choices
}

func (d *Document) offered(c load.Case, id timeline.EventID, tl *timeline.Registry) bool {
	if d.Mode != ModeGirder || c == load.LLIM {
		return true
	}
	return id == tl.CastDeckEventID() || id == tl.RailingSystemEventID()
}

// prepare resolves a pending event and validates the record against the
// timeline as it will be once that event exists.
func (d *Document) prepare(r load.Record, newEvent *timeline.Event, adjust bool) (load.Result, *timeline.Event, error) {
	tl := d.Timeline
	var pending *timeline.Event

	if newEvent != nil || r.Base().EventID == timeline.CreateEventID {
		if newEvent == nil {
			return load.Result{}, nil, ErrNewEventRequired
		}
		if !d.Mode.CanCreateEvents() {
			return load.Result{}, nil, ErrTimelineLocked
		}
		tl = d.Timeline.Clone()
		ev := *newEvent
		ev.ID = timeline.InvalidEventID
		id, _, err := tl.AddEvent(ev, adjust)
		if err != nil {
			return load.Result{}, nil, fmt.Errorf("create event %q: %w", ev.Description, err)
		}
		ev.ID = id
		pending = &ev
		r = load.WithEvent(r, id)
	}

	res, err := load.Validate(r, tl, d.Bridge)
	if err != nil {
		return load.Result{}, nil, err
	}
	if !d.offered(res.Record.Base().Case, res.Record.Base().EventID, tl) {
		return load.Result{}, nil, fmt.Errorf("%s: %w", tl.Label(res.Record.Base().EventID), ErrEventNotOffered)
	}
	return res, pending, nil
}

// InsertLoad validates a new load and inserts it through the transaction
// manager. newEvent, when not nil, is created as part of the same
// transaction and the load is placed on it.
func (d *Document) InsertLoad(r load.Record, newEvent *timeline.Event, adjust bool) (Outcome, error) {
	res, pending, err := d.prepare(r, newEvent, adjust)
	if err != nil {
		return Outcome{}, err
	}

	t := load.NewInsert(d.Ledger, d.Timeline, res.Record, pending)
	if err := d.execute(t); err != nil {
		return Outcome{}, err
	}
	out := Outcome{ID: t.ID(), Record: t.Record(), Warnings: res.Warnings, NewEvent: timeline.InvalidEventID}
	if pending != nil {
		out.NewEvent = pending.ID
	}
	d.logger.Info("load inserted", "id", out.ID, "kind", r.Kind(), "warnings", len(out.Warnings))
	return out, nil
}

// EditLoad validates and applies a new version of an existing load. Nothing
// is recorded when the load and its event are unchanged.
func (d *Document) EditLoad(id load.ID, r load.Record, newEvent *timeline.Event, adjust bool) (Outcome, error) {
	prior, ok := d.Ledger.FindByID(id)
	if !ok {
		return Outcome{}, fmt.Errorf("edit load %d: %w", id, load.ErrLoadNotFound)
	}
	if prior.Kind() != r.Kind() {
		return Outcome{}, fmt.Errorf("edit load %d: %w", id, load.ErrKindMismatch)
	}

	res, pending, err := d.prepare(load.WithID(r, id), newEvent, adjust)
	if err != nil {
		return Outcome{}, err
	}
	after := load.WithID(res.Record, id)
	out := Outcome{ID: id, Record: after, Warnings: res.Warnings, NewEvent: timeline.InvalidEventID}
	if pending == nil && after == prior {
		out.Unchanged = true
		return out, nil
	}

	if err := d.execute(load.NewEdit(d.Ledger, d.Timeline, id, prior, after, pending)); err != nil {
		return Outcome{}, err
	}
	if pending != nil {
		out.NewEvent = pending.ID
	}
	d.logger.Info("load edited", "id", id, "kind", r.Kind())
	return out, nil
}

// DeleteLoads removes loads. Several loads are removed by one macro
// transaction so a single undo restores them all.
func (d *Document) DeleteLoads(ids ...load.ID) error {
	if len(ids) == 0 {
		return ErrNoLoads
	}
	var steps []txn.Transaction
	for _, id := range ids {
		r, ok := d.Ledger.FindByID(id)
		if !ok {
			return fmt.Errorf("delete load %d: %w", id, load.ErrLoadNotFound)
		}
		steps = append(steps, load.NewDelete(d.Ledger, id, r.Kind()))
	}
	if len(steps) == 1 {
		return d.execute(steps[0])
	}
	return d.execute(txn.NewMacro("Delete Loads", steps...))
}

// FixBadLoads deletes loads whose event is missing from the timeline, as one
// undoable step, and describes each removed load.
func (d *Document) FixBadLoads() ([]string, error) {
	trial := d.Ledger.Clone()
	messages := trial.FixBadLoads(d.Timeline)
	if len(messages) == 0 {
		return nil, nil
	}

	macro := txn.NewMacro("Fix Bad Loads")
	for _, r := range d.Ledger.All() {
		if _, kept := trial.FindByID(r.Base().ID); !kept {
			macro.Add(load.NewDelete(d.Ledger, r.Base().ID, r.Kind()))
		}
	}
	if err := d.execute(macro); err != nil {
		return nil, err
	}
	return messages, nil
}

// AddEvent adds a timeline event as an undoable step.
func (d *Document) AddEvent(ev timeline.Event, adjust bool) (timeline.EventID, error) {
	var id timeline.EventID
	err := d.editTimeline("Add Timeline Event", func(tl *timeline.Registry) error {
		var err error
		ev.ID = timeline.InvalidEventID
		id, _, err = tl.AddEvent(ev, adjust)
		return err
	})
	return id, err
}

// RemoveEvent removes a timeline event that no load or required activity
// depends on.
func (d *Document) RemoveEvent(id timeline.EventID) error {
	return d.editTimeline("Remove Timeline Event", func(tl *timeline.Registry) error {
		return tl.RemoveEvent(id, d.Ledger.HasLoadsAtEvent)
	})
}

// AssignActivity moves a single occurrence activity onto an event.
func (d *Document) AssignActivity(act timeline.Activity, id timeline.EventID) error {
	return d.editTimeline("Assign "+act.String(), func(tl *timeline.Registry) error {
		return tl.AssignActivity(act, id)
	})
}

func (d *Document) editTimeline(name string, op func(*timeline.Registry) error) error {
	after := d.Timeline.Clone()
	if err := op(after); err != nil {
		return err
	}
	return d.execute(&timelineTxn{
		name:     name,
		timeline: d.Timeline,
		before:   d.Timeline.Snapshot(),
		after:    after.Snapshot(),
	})
}

// Undo reverts the most recent transaction.
func (d *Document) Undo() error {
	defer d.refresh()
	return d.History.Undo()
}

// Redo re-applies the most recently undone transaction.
func (d *Document) Redo() error {
	defer d.refresh()
	return d.History.Redo()
}

// Repeat runs the most recent transaction again when it allows it.
func (d *Document) Repeat() error {
	defer d.refresh()
	return d.History.Repeat()
}

func (d *Document) execute(t txn.Transaction) error {
	defer d.refresh()
	return d.History.Execute(t)
}

func (d *Document) refresh() {
	d.Status.Refresh(d.Ledger, d.Timeline, d.Bridge)
}

// timelineTxn swaps the whole schedule between two snapshots.
type timelineTxn struct {
	name     string
	timeline *timeline.Registry
	before   timeline.Snapshot
	after    timeline.Snapshot
}

func (t *timelineTxn) Name() string { return t.name }

func (t *timelineTxn) Execute() error { return t.swap(t.after) }

func (t *timelineTxn) Undo() error { return t.swap(t.before) }

func (t *timelineTxn) swap(s timeline.Snapshot) error {
	r, err := timeline.FromSnapshot(s)
	if err != nil {
		return err
	}
	t.timeline.Restore(r)
	return nil
}

func (t *timelineTxn) IsUndoable() bool   { return true }
func (t *timelineTxn) IsRepeatable() bool { return false }

func (t *timelineTxn) Clone() txn.Transaction {
	c := *t
	return &c
}
