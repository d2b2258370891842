package diagram

import (
	"fmt"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
)

// SpanSegment is one span or cantilever of the girder line, in stations
// measured from the first pier.
type SpanSegment struct {
	Label string
	Start float64
	End   float64
}

// LoadMark is a load placed on the girder line.
type LoadMark struct {
	ID    load.ID
	Kind  load.Kind
	Case  load.Case
	Start float64 // station
	End   float64 // station, equal to Start for point and moment loads

	Magnitude float64 // point force or moment
	WStart    float64 // distributed intensity at Start
	WEnd      float64 // distributed intensity at End
}

// GirderLineData holds everything needed to draw the loads on one girder.
type GirderLineData struct {
	Title    string
	Segments []SpanSegment
	Supports []float64 // stations of piers and abutments
	Marks    []LoadMark
}

// Length returns the overall station range of the girder line.
func (d GirderLineData) Length() (start, end float64) {
	if len(d.Segments) == 0 {
		return 0, 0
	}
	return d.Segments[0].Start, d.Segments[len(d.Segments)-1].End
}

// BuildGirderLine lays out the loads acting on one girder. Loads keyed to
// all spans or all girders appear on every span or girder they cover.
func BuildGirderLine(b *bridge.Bridge, records []load.Record, girder int) GirderLineData {
	data := GirderLineData{
		Title: fmt.Sprintf("%s - Girder %s", b.Name, bridge.GirderLabel(girder)),
	}
	if b.Name == "" {
		data.Title = "Girder " + bridge.GirderLabel(girder)
	}

	spanStart := make([]float64, len(b.Spans))
	station := 0.0
	if b.HasCantilever(bridge.Start) {
		data.Segments = append(data.Segments, SpanSegment{Label: "C", Start: -b.StartCantilever, End: 0})
	}
	data.Supports = append(data.Supports, 0)
	for i, s := range b.Spans {
		spanStart[i] = station
		data.Segments = append(data.Segments, SpanSegment{Label: bridge.SpanLabel(i), Start: station, End: station + s.Length})
		station += s.Length
		data.Supports = append(data.Supports, station)
	}
	if b.HasCantilever(bridge.Finish) {
		data.Segments = append(data.Segments, SpanSegment{Label: "C", Start: station, End: station + b.EndCantilever})
	}

	for _, r := range records {
		key := r.Base().Key
		if key.Girder != load.AllGirders && key.Girder != girder {
			continue
		}
		spans := []int{key.Span}
		if key.Span == load.AllSpans {
			spans = spans[:0]
			for i := range b.Spans {
				spans = append(spans, i)
			}
		}
		for _, span := range spans {
			if span < 0 || span >= len(b.Spans) || girder >= b.GirderCount(span) {
				continue
			}
			data.Marks = append(data.Marks, place(r, b, span, spanStart[span], station))
		}
	}
	return data
}

func place(r load.Record, b *bridge.Bridge, span int, origin, lineEnd float64) LoadMark {
	c := r.Base()
	m := LoadMark{ID: c.ID, Kind: r.Kind(), Case: c.Case}
	length := b.SpanLength(span)
	at := func(loc float64, fractional bool, scale float64) float64 {
		if fractional {
			return loc * scale
		}
		return loc
	}

	switch v := r.(type) {
	case load.PointLoad:
		m.Magnitude = v.Magnitude
		switch {
		case v.StartCantilever:
			m.Start = -b.StartCantilever + at(v.Location, v.Fractional, b.StartCantilever)
		case v.EndCantilever:
			m.Start = lineEnd + at(v.Location, v.Fractional, b.EndCantilever)
		default:
			m.Start = origin + at(v.Location, v.Fractional, length)
		}
		m.End = m.Start
	case load.DistributedLoad:
		m.Start = origin + at(v.StartLocation, v.Fractional, length)
		m.End = origin + at(v.EndLocation, v.Fractional, length)
		m.WStart, m.WEnd = v.WStart, v.WEnd
		m.Magnitude = (v.WStart + v.WEnd) / 2
	case load.MomentLoad:
		m.Magnitude = v.Magnitude
		m.Start = origin + v.Location*length
		m.End = m.Start
	}
	return m
}
