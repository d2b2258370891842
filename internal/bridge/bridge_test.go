package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBridgeIsValid(t *testing.T) {
	b := Default()
	require.NoError(t, b.Validate())
	assert.Equal(t, 3, b.SpanCount())
	assert.Equal(t, 5, b.GirderCount(1))
	assert.InDelta(t, 96, b.Length(), 1e-9)
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name string
		b    Bridge
	}{
		{"no spans", Bridge{}},
		{"zero length", Bridge{Spans: []Span{{Length: 0, Girders: 4}}}},
		{"no girders", Bridge{Spans: []Span{{Length: 20, Girders: 0}}}},
		{"negative cantilever", Bridge{Spans: []Span{{Length: 20, Girders: 4}}, EndCantilever: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestGirderCountAllSpansUsesNarrowestSpan(t *testing.T) {
	b := &Bridge{Spans: []Span{{Length: 20, Girders: 6}, {Length: 25, Girders: 4}, {Length: 20, Girders: 5}}}

	assert.Equal(t, 4, b.GirderCount(AllSpans))
	assert.Equal(t, 0, b.GirderCount(7))
	assert.Equal(t, 0.0, b.SpanLength(-3))
}

func TestCantilevers(t *testing.T) {
	b := &Bridge{Spans: []Span{{Length: 20, Girders: 4}}, StartCantilever: 1.5}

	assert.True(t, b.HasCantilever(Start))
	assert.False(t, b.HasCantilever(Finish))
	assert.Equal(t, 1.5, b.CantileverLength(Start))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "A", GirderLabel(0))
	assert.Equal(t, "Z", GirderLabel(25))
	assert.Equal(t, "AA", GirderLabel(26))
	assert.Equal(t, "All Girders", GirderLabel(AllGirders))
	assert.Equal(t, "3", SpanLabel(2))
	assert.Equal(t, "All Spans", SpanLabel(AllSpans))
}

func TestParseLabels(t *testing.T) {
	for _, g := range []int{0, 1, 25, 26, 27, 51, 52, 700} {
		got, err := ParseGirderLabel(GirderLabel(g))
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
	got, err := ParseGirderLabel(" b ")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	got, err = ParseGirderLabel("All")
	require.NoError(t, err)
	assert.Equal(t, AllGirders, got)

	for _, bad := range []string{"", "A1", "-"} {
		_, err := ParseGirderLabel(bad)
		assert.Error(t, err, bad)
	}

	span, err := ParseSpanLabel("3")
	require.NoError(t, err)
	assert.Equal(t, 2, span)
	span, err = ParseSpanLabel("ALL")
	require.NoError(t, err)
	assert.Equal(t, AllSpans, span)
	for _, bad := range []string{"0", "x", ""} {
		_, err := ParseSpanLabel(bad)
		assert.Error(t, err, bad)
	}
}
