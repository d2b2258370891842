package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/load"
)

const lineWidth = 64

// DrawGirderLine creates an ASCII picture of a girder line with its loads
// and a legend listing each load's station.
func DrawGirderLine(data GirderLineData) string {
	var sb strings.Builder

	first, last := data.Length()
	if last <= first {
		return "\n  (empty girder line)\n"
	}
	column := func(station float64) int {
		c := int(math.Round((station - first) / (last - first) * float64(lineWidth-1)))
		return min(max(c, 0), lineWidth-1)
	}

	distributed := []rune(strings.Repeat(" ", lineWidth))
	concentrated := []rune(strings.Repeat(" ", lineWidth))
	girder := []rune(strings.Repeat("═", lineWidth))
	supports := []rune(strings.Repeat(" ", lineWidth))
	labels := []rune(strings.Repeat(" ", lineWidth))

	for _, m := range data.Marks {
		switch m.Kind {
		case load.Point:
			concentrated[column(m.Start)] = '↓'
		case load.Moment:
			if m.Magnitude < 0 {
				concentrated[column(m.Start)] = '↺'
			} else {
				concentrated[column(m.Start)] = '↻'
			}
		case load.Distributed:
			for c := column(m.Start); c <= column(m.End); c++ {
				distributed[c] = '▾'
			}
		}
	}
	for _, s := range data.Supports {
		supports[column(s)] = '▲'
	}
	for _, seg := range data.Segments {
		mid := column((seg.Start + seg.End) / 2)
		text := []rune(seg.Label)
		at := max(mid-len(text)/2, 0)
		for i, r := range text {
			if at+i < lineWidth {
				labels[at+i] = r
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len([]rune(data.Title)))))
	sb.WriteString(fmt.Sprintf("  %s\n", string(distributed)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(concentrated)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(girder)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(supports)))
	sb.WriteString(fmt.Sprintf("  %s\n", string(labels)))

	if len(data.Marks) == 0 {
		sb.WriteString("\n  No loads on this girder.\n")
		return sb.String()
	}

	sb.WriteString("\n  Legend:\n")
	sb.WriteString("  ↓ = Point load   ▾ = Distributed load   ↻/↺ = Moment   ▲ = Support\n\n")
	for _, m := range data.Marks {
		sb.WriteString("  " + describeMark(m) + "\n")
	}
	return sb.String()
}

func describeMark(m LoadMark) string {
	switch m.Kind {
	case load.Distributed:
		return fmt.Sprintf("#%-4d %-12s %-6s w = %.2f to %.2f from %.3f to %.3f",
			m.ID, load.Name(m.Kind), m.Case, m.WStart, m.WEnd, m.Start, m.End)
	default:
		return fmt.Sprintf("#%-4d %-12s %-6s %.2f at %.3f", m.ID, load.Name(m.Kind), m.Case, m.Magnitude, m.Start)
	}
}

// SpanTable describes the spans of a bridge as lines for DrawSummaryBox.
func SpanTable(b *bridge.Bridge) []string {
	var lines []string
	if b.HasCantilever(bridge.Start) {
		lines = append(lines, fmt.Sprintf("Start cantilever   %8.3f", b.StartCantilever))
	}
	for i, s := range b.Spans {
		lines = append(lines, fmt.Sprintf("Span %-3s %9.3f   %2d girders", bridge.SpanLabel(i), s.Length, s.Girders))
	}
	if b.HasCantilever(bridge.Finish) {
		lines = append(lines, fmt.Sprintf("End cantilever     %8.3f", b.EndCantilever))
	}
	return lines
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
