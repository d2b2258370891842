package load

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/numeric"
	"github.com/alexiusacademia/girderloads/internal/timeline"
)

// Violation classifies a rejected load record.
type Violation int

const (
	UnknownEvent Violation = iota + 1
	EventTooEarly
	LiveLoadEventMismatch
	InvalidLocationOrder
	FractionOutOfRange
	NegativeLocation
)

func (v Violation) String() string {
	switch v {
	case UnknownEvent:
		return "UnknownEvent"
	case EventTooEarly:
		return "EventTooEarly"
	case LiveLoadEventMismatch:
		return "LiveLoadEventMismatch"
	case InvalidLocationOrder:
		return "InvalidLocationOrder"
	case FractionOutOfRange:
		return "FractionOutOfRange"
	case NegativeLocation:
		return "NegativeLocation"
	}
	return fmt.Sprintf("Violation(%d)", int(v))
}

// ValidationError is returned when a record breaks a hard rule. Nothing has
// been committed when it is returned.
type ValidationError struct {
	Violation Violation
	Field     string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsViolation reports whether err is a ValidationError of the given kind.
func IsViolation(err error, v Violation) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Violation == v
}

// Geometry is the bridge information the rules consult.
type Geometry interface {
	SpanCount() int
	GirderCount(span int) int
	HasCantilever(end bridge.End) bool
}

// Timeline is the schedule information the rules consult.
type Timeline interface {
	IndexOf(id timeline.EventID) int
	FirstSegmentErectionIndex() int
	LiveLoadEventID() timeline.EventID
}

// Warning describes a value that was corrected instead of rejected.
type Warning struct {
	Field   string
	Message string
}

// Result is an accepted, normalized record and the corrections made to it.
type Result struct {
	Record   Record
	Warnings []Warning
}

const (
	msgUnknownEvent  = "The load's event is not in the timeline"
	msgEventTooEarly = "User defined loads can only be applied at the bridge site"
	msgLiveLoadEvent = "The LL+IM load case can only be used in the events when live load is defined. Change the Load Case or Event."
	msgLocationOrder = "Invalid Value: The start location must be less than the end location"
	msgFraction      = "Invalid Value: Fractional values must range from 0.0 to 1.0"
	msgNegative      = "Invalid Value: Location values must be zero or greater"
	warnSpanReset    = "Warning - The span for this load is out of range. Resetting to Span 1"
	warnGirderReset  = "Warning - The Girder for this load is out of range. Resetting to Girder A"
	warnNoCantilever = "Warning - The span for this loading does not have a cantilever. Moving the load into the span"
)

// Validate checks a candidate record against the timeline and the bridge.
// It never mutates its arguments. Span and girder indices out of range are
// reset to zero and reported as warnings rather than rejected.
func Validate(r Record, tl Timeline, geom Geometry) (Result, error) {
	c := r.Base()

	eventIdx := tl.IndexOf(c.EventID)
	if eventIdx < 0 {
		return Result{}, &ValidationError{Violation: UnknownEvent, Field: "event", Message: msgUnknownEvent}
	}
	if eventIdx < tl.FirstSegmentErectionIndex() {
		return Result{}, &ValidationError{Violation: EventTooEarly, Field: "event", Message: msgEventTooEarly}
	}
	if c.Case == LLIM && c.EventID != tl.LiveLoadEventID() {
		return Result{}, &ValidationError{Violation: LiveLoadEventMismatch, Field: "load_case", Message: msgLiveLoadEvent}
	}

	var err error
	switch v := r.(type) {
	case PointLoad:
		r, err = checkPoint(v)
	case DistributedLoad:
		r, err = checkDistributed(v)
	case MomentLoad:
		r = normalizeMoment(v)
	default:
		return Result{}, fmt.Errorf("unsupported load record %T", r)
	}
	if err != nil {
		return Result{}, err
	}

	r, warnings := clampKey(r, geom)
	return Result{Record: r, Warnings: warnings}, nil
}

func checkPoint(p PointLoad) (Record, error) {
	loc, err := checkLocation("location", p.Location, p.Fractional)
	if err != nil {
		return nil, err
	}
	p.Location = loc
	return p, nil
}

func checkDistributed(d DistributedLoad) (Record, error) {
	if d.Type == Uniform {
		d.StartLocation, d.EndLocation = 0, 1
		d.Fractional = true
		d.WEnd = d.WStart
		return d, nil
	}

	if !numeric.IsLT(d.StartLocation, d.EndLocation) {
		return nil, &ValidationError{Violation: InvalidLocationOrder, Field: "end_location", Message: msgLocationOrder}
	}
	start, err := checkLocation("start_location", d.StartLocation, d.Fractional)
	if err != nil {
		return nil, err
	}
	end, err := checkLocation("end_location", d.EndLocation, d.Fractional)
	if err != nil {
		return nil, err
	}
	d.StartLocation, d.EndLocation = start, end
	return d, nil
}

// checkLocation applies the fractional and absolute bounds and snaps values
// within tolerance of a bound onto it.
func checkLocation(field string, loc float64, fractional bool) (float64, error) {
	if fractional {
		if !numeric.InRange(loc, 0, 1) {
			return 0, &ValidationError{Violation: FractionOutOfRange, Field: field, Message: msgFraction}
		}
		return numeric.Snap(numeric.Snap(loc, 0), 1), nil
	}
	if numeric.IsLT(loc, 0) {
		return 0, &ValidationError{Violation: NegativeLocation, Field: field, Message: msgNegative}
	}
	return numeric.Snap(loc, 0), nil
}

func normalizeMoment(m MomentLoad) Record {
	if m.Location < 0.5 {
		m.Location = 0
	} else {
		m.Location = 1
	}
	m.Fractional = true
	return m
}

func clampKey(r Record, geom Geometry) (Record, []Warning) {
	var warnings []Warning
	c := r.Base()
	spanReset := false

	if c.Key.Span != AllSpans && (c.Key.Span < 0 || c.Key.Span >= geom.SpanCount()) {
		c.Key.Span = 0
		spanReset = true
		warnings = append(warnings, Warning{Field: "span", Message: warnSpanReset})
	}
	if c.Key.Girder != AllGirders && (c.Key.Girder < 0 || c.Key.Girder >= geom.GirderCount(c.Key.Span)) {
		c.Key.Girder = 0
		warnings = append(warnings, Warning{Field: "girder", Message: warnGirderReset})
	}
	r = r.withBase(c)

	p, ok := r.(PointLoad)
	if !ok {
		return r, warnings
	}
	if spanReset {
		p.StartCantilever, p.EndCantilever = false, false
		return p, warnings
	}
	lastSpan := geom.SpanCount() - 1
	if p.StartCantilever && (p.Key.Span != 0 || !geom.HasCantilever(bridge.Start)) {
		p.StartCantilever = false
		warnings = append(warnings, Warning{Field: "start_cantilever", Message: warnNoCantilever})
	}
	if p.EndCantilever && (p.Key.Span != lastSpan || !geom.HasCantilever(bridge.Finish)) {
		p.EndCantilever = false
		warnings = append(warnings, Warning{Field: "end_cantilever", Message: warnNoCantilever})
	}
	return p, warnings
}
