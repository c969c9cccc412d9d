package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoSamples is returned when there is nothing to draw
var ErrNoSamples = errors.New("diagram has no samples")

var (
	shearColor  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	momentColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	fillAlpha   = uint8(70)
	markerColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportShearDiagram exports the shear force diagram to an image file
func ExportShearDiagram(data BeamDiagramData, filename string) error {
	p, err := shearPlot(data)
	if err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportMomentDiagram exports the bending moment diagram to an image file
func ExportMomentDiagram(data BeamDiagramData, filename string) error {
	p, err := momentPlot(data)
	if err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportCombinedDiagram stacks the shear and moment diagrams on one page
// with aligned axes
func ExportCombinedDiagram(data BeamDiagramData, filename string) error {
	sp, err := shearPlot(data)
	if err != nil {
		return err
	}
	mp, err := momentPlot(data)
	if err != nil {
		return err
	}

	width, height := 8*vg.Inch, 8*vg.Inch
	filename, format := formatOf(filename)
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{sp}, {mp}}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if err = ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err = c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func shearPlot(data BeamDiagramData) (*plot.Plot, error) {
	title := "Shear Force Diagram"
	if data.Title != "" {
		title = data.Title + " - " + title
	}
	return diagramPlot(data, data.Shear, title, "Shear (kN)", shearColor, []labelled{
		{data.Peaks.MaxShear.X, data.Peaks.MaxShear.Value, fmt.Sprintf("%.2f kN", data.Peaks.MaxShear.Value)},
		{data.Peaks.MinShear.X, data.Peaks.MinShear.Value, fmt.Sprintf("%.2f kN", data.Peaks.MinShear.Value)},
	})
}

func momentPlot(data BeamDiagramData) (*plot.Plot, error) {
	title := "Bending Moment Diagram"
	if data.Title != "" {
		title = data.Title + " - " + title
	}
	return diagramPlot(data, data.Moment, title, "Moment (kNm)", momentColor, []labelled{
		{data.Peaks.MaxMoment.X, data.Peaks.MaxMoment.Value, fmt.Sprintf("%.2f kNm", data.Peaks.MaxMoment.Value)},
		{data.Peaks.MinMoment.X, data.Peaks.MinMoment.Value, fmt.Sprintf("%.2f kNm", data.Peaks.MinMoment.Value)},
	})
}

type labelled struct {
	x, y float64
	text string
}

func diagramPlot(data BeamDiagramData, ys []float64, title, yLabel string, c color.RGBA, peaks []labelled) (*plot.Plot, error) {
	if len(data.X) == 0 || len(data.X) != len(ys) {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = yLabel
	p.X.Min = 0
	p.X.Max = data.Length
	p.Add(plotter.NewGrid())

	// Filled area between the diagram and the beam axis
	area := make(plotter.XYs, 0, len(ys)+2)
	area = append(area, plotter.XY{X: data.X[0], Y: 0})
	for i, x := range data.X {
		area = append(area, plotter.XY{X: x, Y: ys[i]})
	}
	area = append(area, plotter.XY{X: data.X[len(data.X)-1], Y: 0})
	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	fill.Color = color.RGBA{R: c.R, G: c.G, B: c.B, A: fillAlpha}
	fill.LineStyle.Width = 0
	p.Add(fill)

	curve, err := plotter.NewLine(area[1 : len(area)-1])
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = c
	p.Add(curve)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: data.Length, Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1.5)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	if err = addMarkers(p, data.Supports, draw.TriangleGlyph{}); err != nil {
		return nil, err
	}
	if err = addMarkers(p, data.Hinges, draw.RingGlyph{}); err != nil {
		return nil, err
	}

	for _, pk := range peaks {
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: pk.x, Y: pk.y}},
			Labels: []string{pk.text},
		})
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}
	return p, nil
}

func addMarkers(p *plot.Plot, markers []Marker, shape draw.GlyphDrawer) error {
	if len(markers) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(markers))
	names := make([]string, len(markers))
	for i, m := range markers {
		pts[i] = plotter.XY{X: m.X, Y: 0}
		names[i] = m.Label
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = markerColor
	sc.GlyphStyle.Radius = vg.Points(5)
	sc.GlyphStyle.Shape = shape
	p.Add(sc)

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return err
	}
	lbl.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(-14)}
	p.Add(lbl)
	return nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	filename, _ = formatOf(filename)
	if err := ensureDir(filename); err != nil {
		return err
	}
	return p.Save(width, height, filename)
}

// formatOf returns the file name to write and its image format; names
// without a known extension get ".png"
func formatOf(filename string) (string, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return filename, strings.TrimPrefix(ext, ".")
	default:
		return filename + ".png", "png"
	}
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
