package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsLiveLoadAtLiveLoadEvent(t *testing.T) {
	res, err := Validate(point(0.5, LLIM, evLiveLoad), testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 0.5, res.Record.(PointLoad).Location)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		record    Record
		violation Violation
	}{
		{"live load outside live load event", point(0.5, LLIM, evDeck), LiveLoadEventMismatch},
		{"before erection", point(0.5, DC, evConstruct), EventTooEarly},
		{"unknown event", point(0.5, DC, 77), UnknownEvent},
		{"fraction above one", point(1.2, DC, evDeck), FractionOutOfRange},
		{"fraction below zero", point(-0.1, DC, evDeck), FractionOutOfRange},
		{"negative absolute", func() Record { p := point(-2, DC, evDeck); p.Fractional = false; return p }(), NegativeLocation},
		{"distributed order", distributed(5, 2, false), InvalidLocationOrder},
		{"distributed equal ends", distributed(0.4, 0.4, true), InvalidLocationOrder},
		{"distributed fraction", distributed(0.2, 1.4, true), FractionOutOfRange},
		{"distributed negative", distributed(-3, 2, false), NegativeLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.record, testTimeline(t), testBridge())
			require.Error(t, err)
			assert.True(t, IsViolation(err, tt.violation), "got %v", err)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	_, err := Validate(point(0.5, DC, evConstruct), testTimeline(t), testBridge())
	assert.EqualError(t, err, "User defined loads can only be applied at the bridge site")

	_, err = Validate(point(2, DC, evDeck), testTimeline(t), testBridge())
	assert.EqualError(t, err, "Invalid Value: Fractional values must range from 0.0 to 1.0")
}

func TestValidateClampsSpanOutOfRange(t *testing.T) {
	p := point(0.5, DC, evDeck)
	p.Key = SpanGirderKey{Span: 7, Girder: 1}
	p.StartCantilever = true

	res, err := Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)

	got := res.Record.(PointLoad)
	assert.Equal(t, 0, got.Key.Span)
	assert.Equal(t, 1, got.Key.Girder)
	assert.False(t, got.StartCantilever)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "span", res.Warnings[0].Field)
	assert.Equal(t, "Warning - The span for this load is out of range. Resetting to Span 1", res.Warnings[0].Message)
}

func TestValidateClampsGirderOutOfRange(t *testing.T) {
	d := distributed(0.1, 0.5, true)
	d.Key = SpanGirderKey{Span: 1, Girder: 4}

	res, err := Validate(d, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Record.Base().Key.Girder)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "girder", res.Warnings[0].Field)
}

func TestValidateGirderAgainstNarrowestSpan(t *testing.T) {
	p := point(0.5, DC, evDeck)
	p.Key = SpanGirderKey{Span: AllSpans, Girder: 4}

	res, err := Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Equal(t, SpanGirderKey{Span: AllSpans, Girder: 0}, res.Record.Base().Key)

	p.Key.Girder = 3
	res, err = Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
}

func TestValidateCantilever(t *testing.T) {
	p := point(0.5, DC, evDeck)
	p.StartCantilever = true

	res, err := Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.True(t, res.Record.(PointLoad).StartCantilever)
	assert.Empty(t, res.Warnings)

	p.StartCantilever = false
	p.EndCantilever = true
	p.Key.Span = 2
	res, err = Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.False(t, res.Record.(PointLoad).EndCantilever)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "does not have a cantilever")
}

func TestValidateSnapsFractionToBounds(t *testing.T) {
	res, err := Validate(point(1+1e-9, DC, evDeck), testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Record.(PointLoad).Location)
}

func TestValidateDistributedProperties(t *testing.T) {
	inputs := []DistributedLoad{
		distributed(0, 1, true),
		distributed(0.25, 0.75, true),
		distributed(0, 12, false),
		distributed(3.5, 3.6, false),
	}

	for _, d := range inputs {
		res, err := Validate(d, testTimeline(t), testBridge())
		require.NoError(t, err)
		got := res.Record.(DistributedLoad)
		assert.Less(t, got.StartLocation, got.EndLocation)
		if got.Fractional {
			assert.GreaterOrEqual(t, got.StartLocation, 0.0)
			assert.LessOrEqual(t, got.EndLocation, 1.0)
		}
	}
}

func TestValidateNormalizesUniform(t *testing.T) {
	d := distributed(7, 2, false)
	d.Type = Uniform
	d.WStart = 3
	d.WEnd = 9

	res, err := Validate(d, testTimeline(t), testBridge())
	require.NoError(t, err)
	got := res.Record.(DistributedLoad)
	assert.Equal(t, 0.0, got.StartLocation)
	assert.Equal(t, 1.0, got.EndLocation)
	assert.True(t, got.Fractional)
	assert.Equal(t, 3.0, got.WEnd)
	assert.True(t, got.IsUniform())
}

func TestValidateZeroTypeIsTrapezoidal(t *testing.T) {
	d := DistributedLoad{
		Common:        Common{Key: SpanGirderKey{Span: 1, Girder: 2}, Case: DW, EventID: evRailing},
		WStart:        2,
		WEnd:          4,
		StartLocation: 5,
		EndLocation:   2,
	}

	_, err := Validate(d, testTimeline(t), testBridge())
	require.Error(t, err)
	assert.True(t, IsViolation(err, InvalidLocationOrder), "got %v", err)

	d.StartLocation, d.EndLocation = 2, 5
	res, err := Validate(d, testTimeline(t), testBridge())
	require.NoError(t, err)
	got := res.Record.(DistributedLoad)
	assert.Equal(t, Trapezoidal, got.Type)
	assert.Equal(t, 4.0, got.WEnd)
	assert.Equal(t, 2.0, got.StartLocation)
	assert.Equal(t, 5.0, got.EndLocation)
	assert.False(t, got.Fractional)
}

func TestValidateMomentLocationIsBinary(t *testing.T) {
	for _, loc := range []float64{-4, 0, 0.2, 0.49, 0.5, 0.8, 1, 12} {
		m := moment(loc)
		m.Fractional = false

		res, err := Validate(m, testTimeline(t), testBridge())
		require.NoError(t, err)
		got := res.Record.(MomentLoad)
		assert.True(t, got.Location == 0 || got.Location == 1, "location %v", got.Location)
		assert.True(t, got.Fractional)
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	p := point(0.5, DC, evDeck)
	p.Key.Span = 9
	before := p

	_, err := Validate(p, testTimeline(t), testBridge())
	require.NoError(t, err)
	assert.Equal(t, before, p)
}
