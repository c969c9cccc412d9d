package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/guptarohit/asciigraph"
)

// Marker is a labelled position along the beam (supports, hinges)
type Marker struct {
	X     float64
	Label string
}

// BeamDiagramData holds data for drawing shear and moment diagrams
type BeamDiagramData struct {
	Title  string
	Length float64 // m

	// Samples, refined at every discontinuity
	X      []float64 // m
	Shear  []float64 // kN
	Moment []float64 // kNm

	Supports []Marker
	Hinges   []Marker

	Peaks beam.Peaks
}

// NewBeamDiagramData samples an analysis for drawing
func NewBeamDiagramData(a *beam.Analysis, title string, samples int) BeamDiagramData {
	xs := a.Positions(samples)
	data := BeamDiagramData{
		Title:  title,
		Length: a.Beam().Length,
		X:      xs,
		Shear:  a.ShearExpr().Map(xs),
		Moment: a.MomentExpr().Map(xs),
		Peaks:  a.Peaks(samples),
	}

	for _, ld := range a.Loads() {
		switch v := ld.(type) {
		case *load.Reaction:
			data.Supports = append(data.Supports, Marker{X: v.Pos, Label: v.Label})
		case *load.Hinge:
			data.Hinges = append(data.Hinges, Marker{X: v.Pos, Label: "hinge"})
		}
	}
	return data
}

// ASCIIOptions sizes the terminal charts
type ASCIIOptions struct {
	Width     int
	Height    int
	Precision uint
}

// DefaultASCIIOptions fits an 80 column terminal
var DefaultASCIIOptions = ASCIIOptions{Width: 60, Height: 12, Precision: 2}

// DrawASCIIShear renders the shear force diagram as a terminal chart
func DrawASCIIShear(data BeamDiagramData, opts ASCIIOptions) string {
	return drawASCII(data.Shear, opts, fmt.Sprintf("Shear force (kN), 0 to %g m", data.Length))
}

// DrawASCIIMoment renders the bending moment diagram as a terminal chart
func DrawASCIIMoment(data BeamDiagramData, opts ASCIIOptions) string {
	return drawASCII(data.Moment, opts, fmt.Sprintf("Bending moment (kNm), 0 to %g m", data.Length))
}

func drawASCII(ys []float64, opts ASCIIOptions, caption string) string {
	if len(ys) == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = DefaultASCIIOptions.Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultASCIIOptions.Height
	}

	// a flat diagram still gets a visible zero line
	lo, hi := bounds(ys)
	graphOpts := []asciigraph.Option{
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Precision(opts.Precision),
		asciigraph.Caption(caption),
	}
	if hi-lo < 1e-9 {
		graphOpts = append(graphOpts, asciigraph.LowerBound(lo-1), asciigraph.UpperBound(hi+1))
	}

	return asciigraph.Plot(ys, graphOpts...)
}

func bounds(ys []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	return lo, hi
}

// DrawBeamSchematic creates an ASCII sketch of the beam with its supports
// and loads
func DrawBeamSchematic(length float64, loads []load.Load) string {
	const widthChars = 60
	col := func(x float64) int {
		c := int(math.Round(x / length * float64(widthChars-1)))
		return min(max(c, 0), widthChars-1)
	}

	above := []rune(strings.Repeat(" ", widthChars))
	line := []rune(strings.Repeat("═", widthChars))
	below := []rune(strings.Repeat(" ", widthChars))
	labels := []rune(strings.Repeat(" ", widthChars+4))

	for _, ld := range loads {
		switch v := ld.(type) {
		case *load.PointLoad:
			above[col(v.Pos)] = arrow(v.Y)
		case *load.UDL:
			for c := col(v.Start); c <= col(v.End); c++ {
				above[c] = arrow(v.LoadPM)
			}
		case *load.UVL:
			for c := col(v.Start); c <= col(v.End); c++ {
				above[c] = '┊'
			}
			above[col(v.Start)] = arrow(v.NetLoad)
			above[col(v.End)] = arrow(v.NetLoad)
		case *load.PointMoment:
			if v.Mom >= 0 {
				above[col(v.Pos)] = '↺'
			} else {
				above[col(v.Pos)] = '↻'
			}
		case *load.Hinge:
			line[col(v.Pos)] = 'o'
		case *load.Reaction:
			c := col(v.Pos)
			switch v.Support {
			case load.Roller:
				below[c] = '○'
			case load.Pinned:
				below[c] = '▲'
			case load.Fixed:
				line[c] = '█'
				below[c] = '█'
			}
			for i, r := range v.Label {
				if c+i < len(labels) {
					labels[c+i] = r
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(above), " ")))
	sb.WriteString(fmt.Sprintf("  %s\n", string(line)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(below), " ")))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(labels), " ")))
	sb.WriteString(fmt.Sprintf("  0%*s\n", widthChars-1, fmt.Sprintf("%g m", length)))
	return sb.String()
}

func arrow(y float64) rune {
	if y > 0 {
		return '↑'
	}
	return '↓'
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
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads by runes; %-*s counts bytes and breaks on ² or ₁
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
