package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/load"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var caseColors = map[load.Case]color.Color{
	load.DC:   color.RGBA{R: 100, G: 149, B: 237, A: 255},
	load.DW:   color.RGBA{R: 139, G: 69, B: 19, A: 255},
	load.LLIM: color.RGBA{R: 220, G: 20, B: 60, A: 255},
}

// ExportGirderLine exports a girder line load diagram to an image file.
// The format follows the extension: .png, .svg or .pdf. Any other name
// gets .png appended. It returns the name of the file written.
func ExportGirderLine(data GirderLineData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Station"
	p.Y.Label.Text = "Load"

	first, last := data.Length()
	if last <= first {
		return "", fmt.Errorf("girder line has no length")
	}

	girder, err := plotter.NewLine(plotter.XYs{{X: first, Y: 0}, {X: last, Y: 0}})
	if err != nil {
		return "", err
	}
	girder.LineStyle.Width = vg.Points(3)
	girder.LineStyle.Color = color.Black
	p.Add(girder)

	supportPts := make(plotter.XYs, len(data.Supports))
	for i, s := range data.Supports {
		supportPts[i] = plotter.XY{X: s, Y: 0}
	}
	supports, err := plotter.NewScatter(supportPts)
	if err != nil {
		return "", err
	}
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	supports.GlyphStyle.Radius = vg.Points(6)
	supports.GlyphStyle.Color = color.Gray{Y: 80}
	p.Add(supports)

	var labelPts []plotter.XY
	var labelText []string
	for _, m := range data.Marks {
		c := caseColors[m.Case]
		switch m.Kind {
		case load.Distributed:
			poly, err := plotter.NewPolygon(plotter.XYs{
				{X: m.Start, Y: 0},
				{X: m.Start, Y: m.WStart},
				{X: m.End, Y: m.WEnd},
				{X: m.End, Y: 0},
			})
			if err != nil {
				return "", err
			}
			poly.Color = fade(c)
			poly.LineStyle.Color = c
			p.Add(poly)
			labelPts = append(labelPts, plotter.XY{X: (m.Start + m.End) / 2, Y: max(m.WStart, m.WEnd)})
		case load.Point:
			stem, err := plotter.NewLine(plotter.XYs{{X: m.Start, Y: 0}, {X: m.Start, Y: m.Magnitude}})
			if err != nil {
				return "", err
			}
			stem.LineStyle.Width = vg.Points(2)
			stem.LineStyle.Color = c
			p.Add(stem)
			labelPts = append(labelPts, plotter.XY{X: m.Start, Y: m.Magnitude})
		case load.Moment:
			ring, err := plotter.NewScatter(plotter.XYs{{X: m.Start, Y: 0}})
			if err != nil {
				return "", err
			}
			ring.GlyphStyle.Shape = draw.RingGlyph{}
			ring.GlyphStyle.Radius = vg.Points(8)
			ring.GlyphStyle.Color = c
			p.Add(ring)
			labelPts = append(labelPts, plotter.XY{X: m.Start, Y: 0})
		}
		labelText = append(labelText, fmt.Sprintf("#%d %s", m.ID, m.Case))
	}

	if len(labelPts) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labelText})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	width := 10 * vg.Inch
	height := 4 * vg.Inch

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func fade(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 90}
}
