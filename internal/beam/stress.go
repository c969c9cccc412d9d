package beam

import (
	"errors"
	"math"
)

// ErrNoSection is returned by stress queries on a beam without a section
var ErrNoSection = errors.New("beam has no cross-section")

// Stress is the extreme fibre bending stress (MPa, tension positive) at
// the section of largest moment
type Stress struct {
	At     Peak    // governing moment
	Top    float64 // MPa
	Bottom float64 // MPa
}

// Max is the larger of the two fibre stresses by magnitude
func (s Stress) Max() float64 {
	if math.Abs(s.Top) > math.Abs(s.Bottom) {
		return s.Top
	}
	return s.Bottom
}

// MaxBendingStress evaluates σ = -M·y/I at the top and bottom fibres where
// |M| peaks
func (a *Analysis) MaxBendingStress(samples int) (Stress, error) {
	if a.beam.Section == nil {
		return Stress{}, ErrNoSection
	}
	props := a.beam.Section.CalculateProperties()
	peak := a.Peaks(samples).AbsMoment()

	return Stress{
		At:     peak,
		Top:    props.StressAt(peak.Value, props.MaxY),
		Bottom: props.StressAt(peak.Value, props.MinY),
	}, nil
}
