package project

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/alexiusacademia/girderloads/internal/timeline"
	"github.com/alexiusacademia/girderloads/internal/txn"
)

// Journal entry operations.
const (
	opInsert   = "insert"
	opEdit     = "edit"
	opDelete   = "delete"
	opTimeline = "timeline"
	opMacro    = "macro"
)

// entry is the serialized form of one transaction.
type entry struct {
	Op             string             `json:"op"`
	Name           string             `json:"name,omitempty"`
	ID             load.ID            `json:"id,omitempty"`
	Load           *envelope          `json:"load,omitempty"`
	Before         *envelope          `json:"before,omitempty"`
	NewEvent       *timeline.Event    `json:"new_event,omitempty"`
	TimelineBefore *timeline.Snapshot `json:"timeline_before,omitempty"`
	TimelineAfter  *timeline.Snapshot `json:"timeline_after,omitempty"`
	Steps          []entry            `json:"steps,omitempty"`
}

// envelope holds a record of any kind.
type envelope struct {
	Kind        string                `json:"kind"`
	Point       *load.PointLoad       `json:"point,omitempty"`
	Distributed *load.DistributedLoad `json:"distributed,omitempty"`
	Moment      *load.MomentLoad      `json:"moment,omitempty"`
}

func wrap(r load.Record) *envelope {
	if r == nil {
		return nil
	}
	e := &envelope{Kind: r.Kind().String()}
	switch v := r.(type) {
	case load.PointLoad:
		e.Point = &v
	case load.DistributedLoad:
		e.Distributed = &v
	case load.MomentLoad:
		e.Moment = &v
	}
	return e
}

func (e *envelope) record() (load.Record, error) {
	if e == nil {
		return nil, fmt.Errorf("journal entry is missing its load")
	}
	switch {
	case e.Point != nil:
		return *e.Point, nil
	case e.Distributed != nil:
		return *e.Distributed, nil
	case e.Moment != nil:
		return *e.Moment, nil
	}
	return nil, fmt.Errorf("journal load of kind %q is empty", e.Kind)
}

func snapshotOf(r *timeline.Registry) *timeline.Snapshot {
	if r == nil {
		return nil
	}
	s := r.Snapshot()
	return &s
}

func registryOf(s *timeline.Snapshot) (*timeline.Registry, error) {
	if s == nil {
		return nil, nil
	}
	return timeline.FromSnapshot(*s)
}

func encodeTxn(t txn.Transaction) (entry, error) {
	switch v := t.(type) {
	case *load.InsertTxn:
		return entry{
			Op:             opInsert,
			Load:           wrap(v.Record()),
			NewEvent:       v.NewEvent(),
			TimelineBefore: snapshotOf(v.TimelineBefore()),
		}, nil
	case *load.EditTxn:
		return entry{
			Op:             opEdit,
			ID:             v.ID(),
			Before:         wrap(v.Before()),
			Load:           wrap(v.After()),
			NewEvent:       v.NewEvent(),
			TimelineBefore: snapshotOf(v.TimelineBefore()),
		}, nil
	case *load.DeleteTxn:
		return entry{Op: opDelete, ID: v.ID(), Name: v.Kind().String(), Load: wrap(v.Snapshot())}, nil
	case *timelineTxn:
		before, after := v.before, v.after
		return entry{Op: opTimeline, Name: v.name, TimelineBefore: &before, TimelineAfter: &after}, nil
	case *txn.Macro:
		e := entry{Op: opMacro, Name: v.Name()}
		for _, step := range v.Steps() {
			se, err := encodeTxn(step)
			if err != nil {
				return entry{}, err
			}
			e.Steps = append(e.Steps, se)
		}
		return e, nil
	}
	return entry{}, fmt.Errorf("cannot journal transaction %q (%T)", t.Name(), t)
}

func (d *Document) decodeTxn(e entry) (txn.Transaction, error) {
	switch e.Op {
	case opInsert:
		r, err := e.Load.record()
		if err != nil {
			return nil, err
		}
		before, err := registryOf(e.TimelineBefore)
		if err != nil {
			return nil, err
		}
		return load.RestoreInsert(d.Ledger, d.Timeline, r, e.NewEvent, before), nil
	case opEdit:
		before, err := e.Before.record()
		if err != nil {
			return nil, err
		}
		after, err := e.Load.record()
		if err != nil {
			return nil, err
		}
		tlBefore, err := registryOf(e.TimelineBefore)
		if err != nil {
			return nil, err
		}
		t := load.NewEdit(d.Ledger, d.Timeline, e.ID, before, after, e.NewEvent)
		if tlBefore != nil {
			t.SetTimelineBefore(tlBefore)
		}
		return t, nil
	case opDelete:
		kind, err := load.ParseKind(e.Name)
		if err != nil {
			return nil, err
		}
		t := load.NewDelete(d.Ledger, e.ID, kind)
		if e.Load != nil {
			r, err := e.Load.record()
			if err != nil {
				return nil, err
			}
			t.SetSnapshot(r)
		}
		return t, nil
	case opTimeline:
		if e.TimelineBefore == nil || e.TimelineAfter == nil {
			return nil, fmt.Errorf("timeline journal entry %q is incomplete", e.Name)
		}
		return &timelineTxn{name: e.Name, timeline: d.Timeline, before: *e.TimelineBefore, after: *e.TimelineAfter}, nil
	case opMacro:
		m := txn.NewMacro(e.Name)
		for _, se := range e.Steps {
			step, err := d.decodeTxn(se)
			if err != nil {
				return nil, err
			}
			m.Add(step)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown journal operation %q", e.Op)
}

// Journal encodes the undo and redo stacks, oldest entry first.
func (d *Document) Journal() (undo, redo []json.RawMessage, err error) {
	u, r := d.History.History()
	if undo, err = encodeAll(u); err != nil {
		return nil, nil, err
	}
	if redo, err = encodeAll(r); err != nil {
		return nil, nil, err
	}
	return undo, redo, nil
}

func encodeAll(ts []txn.Transaction) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(ts))
	for _, t := range ts {
		e, err := encodeTxn(t)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("encode journal entry %q: %w", t.Name(), err)
		}
		out = append(out, data)
	}
	return out, nil
}

// RestoreJournal rebuilds the undo and redo stacks from a journal written
// by Journal against the same project state.
func (d *Document) RestoreJournal(undo, redo []json.RawMessage) error {
	u, err := d.decodeAll(undo)
	if err != nil {
		return err
	}
	r, err := d.decodeAll(redo)
	if err != nil {
		return err
	}
	d.History.Load(u, r)
	return nil
}

func (d *Document) decodeAll(raw []json.RawMessage) ([]txn.Transaction, error) {
	out := make([]txn.Transaction, 0, len(raw))
	for i, data := range raw {
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", i+1, err)
		}
		t, err := d.decodeTxn(e)
		if err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}
