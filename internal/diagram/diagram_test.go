package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBridge() *bridge.Bridge {
	return &bridge.Bridge{
		Name:            "Test",
		Spans:           []bridge.Span{{Length: 20, Girders: 3}, {Length: 30, Girders: 2}},
		StartCantilever: 2,
	}
}

func sampleLoads() []load.Record {
	return []load.Record{
		load.PointLoad{Common: load.Common{ID: 1, Key: load.SpanGirderKey{Span: 0, Girder: 1}, Case: load.DC}, Magnitude: 10, Location: 0.5, Fractional: true},
		load.PointLoad{Common: load.Common{ID: 2, Key: load.SpanGirderKey{Span: 0, Girder: 0}, Case: load.DC}, Magnitude: 5, Location: 1, StartCantilever: true},
		load.DistributedLoad{Common: load.Common{ID: 3, Key: load.SpanGirderKey{Span: load.AllSpans, Girder: load.AllGirders}, Case: load.DW}, WStart: 2, WEnd: 2, StartLocation: 0, EndLocation: 1, Fractional: true},
		load.MomentLoad{Common: load.Common{ID: 4, Key: load.SpanGirderKey{Span: 1, Girder: 1}, Case: load.LLIM}, Magnitude: -8, Location: 1, Fractional: true},
		load.PointLoad{Common: load.Common{ID: 5, Key: load.SpanGirderKey{Span: 1, Girder: 2}, Case: load.DC}, Magnitude: 3, Location: 1},
	}
}

func TestBuildGirderLine(t *testing.T) {
	data := BuildGirderLine(sampleBridge(), sampleLoads(), 1)

	assert.Equal(t, "Test - Girder B", data.Title)
	require.Len(t, data.Segments, 3)
	assert.Equal(t, SpanSegment{Label: "C", Start: -2, End: 0}, data.Segments[0])
	assert.Equal(t, []float64{0, 20, 50}, data.Supports)

	first, last := data.Length()
	assert.Equal(t, -2.0, first)
	assert.Equal(t, 50.0, last)

	// point 1, distributed 3 on both spans, moment 4; girder C does not exist in span 2
	var ids []load.ID
	for _, m := range data.Marks {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []load.ID{1, 3, 3, 4}, ids)
	assert.InDelta(t, 10.0, data.Marks[0].Start, 1e-9)
	assert.InDelta(t, 20.0, data.Marks[2].Start, 1e-9)
	assert.InDelta(t, 50.0, data.Marks[2].End, 1e-9)
	assert.InDelta(t, 50.0, data.Marks[3].Start, 1e-9)

	cantilever := BuildGirderLine(sampleBridge(), sampleLoads(), 0)
	require.NotEmpty(t, cantilever.Marks)
	assert.InDelta(t, -1.0, cantilever.Marks[0].Start, 1e-9)
}

func TestDrawGirderLine(t *testing.T) {
	out := DrawGirderLine(BuildGirderLine(sampleBridge(), sampleLoads(), 1))

	assert.Contains(t, out, "TEST - GIRDER B")
	for _, glyph := range []string{"↓", "▾", "↺", "▲", "═"} {
		assert.Contains(t, out, glyph)
	}
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "w = 2.00 to 2.00")
	assert.Equal(t, 4, strings.Count(out, "▲"), "three supports and the legend")
}

func TestDrawGirderLineEmpty(t *testing.T) {
	assert.Contains(t, DrawGirderLine(GirderLineData{}), "empty girder line")

	out := DrawGirderLine(BuildGirderLine(sampleBridge(), nil, 0))
	assert.Contains(t, out, "No loads on this girder")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Totals", []string{"DC 10.0", "a longer line here"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "box edges must line up: %q", l)
	}
	assert.Contains(t, out, "Totals")
}

func TestSpanTable(t *testing.T) {
	lines := SpanTable(sampleBridge())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Start cantilever")
	assert.Contains(t, lines[2], "2 girders")
}

func TestExportGirderLine(t *testing.T) {
	data := BuildGirderLine(sampleBridge(), sampleLoads(), 1)
	dir := t.TempDir()

	for _, name := range []string{"line.png", "line.svg", "sub/line.pdf"} {
		written, err := ExportGirderLine(data, filepath.Join(dir, name))
		require.NoError(t, err, name)
		info, err := os.Stat(written)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	written, err := ExportGirderLine(data, filepath.Join(dir, "noext"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "noext.png"), written)

	_, err = ExportGirderLine(GirderLineData{}, filepath.Join(dir, "empty.png"))
	assert.Error(t, err)
}
