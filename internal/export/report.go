// Package export writes analysis results to spreadsheet and PDF files.
package export

import (
	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/macaulay"
)

// ReactionRow is one solved support
type ReactionRow struct {
	Label   string
	Support string
	X       float64 // m
	Rx      float64 // kN
	Ry      float64 // kN
	M       float64 // kNm, counter-clockwise positive
}

// SampleRow is one diagram sample
type SampleRow struct {
	X      float64 // m
	Shear  float64 // kN
	Moment float64 // kNm
}

// Report is the flattened result of an analysis, ready for export
type Report struct {
	Title       string
	Combination string
	Length      float64

	Reactions []ReactionRow
	Samples   []SampleRow
	Equations []string

	ShearTerms  []macaulay.Term
	MomentTerms []macaulay.Term
	ShearExpr   string
	MomentExpr  string

	Peaks beam.Peaks

	// PNG files to place in the PDF report
	Images []string
}

// FromAnalysis flattens an analysis, sampling the diagrams at the given
// number of points
func FromAnalysis(a *beam.Analysis, title string, samples int) Report {
	r := Report{
		Title:       title,
		Length:      a.Beam().Length,
		ShearTerms:  a.ShearExpr().Terms(),
		MomentTerms: a.MomentExpr().Terms(),
		ShearExpr:   a.ShearExpr().String(),
		MomentExpr:  a.MomentExpr().String(),
		Peaks:       a.Peaks(samples),
	}

	for _, rc := range a.Reactions() {
		r.Reactions = append(r.Reactions, ReactionRow{
			Label:   rc.Label,
			Support: rc.Support.String(),
			X:       rc.Pos,
			Rx:      rc.Value(load.ComponentX),
			Ry:      rc.Value(load.ComponentY),
			M:       rc.Value(load.ComponentMoment),
		})
	}

	sys := a.System()
	for _, eq := range sys.Equations() {
		r.Equations = append(r.Equations, eq.Format(sys.Unknowns()))
	}

	for _, x := range a.Positions(samples) {
		r.Samples = append(r.Samples, SampleRow{X: x, Shear: a.ShearAt(x), Moment: a.MomentAt(x)})
	}
	return r
}
