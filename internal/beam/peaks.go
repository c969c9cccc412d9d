package beam

import (
	"errors"
	"math"
	"sort"

	"github.com/alexiusacademia/beamcalc/internal/macaulay"
)

// DefaultSamples is the sample count used when none is given
const DefaultSamples = 1000

// Peak is a diagram value and where it occurs
type Peak struct {
	X     float64
	Value float64
}

// Peaks are the extreme values of both diagrams over the beam
type Peaks struct {
	MaxShear  Peak
	MinShear  Peak
	MaxMoment Peak
	MinMoment Peak
}

// AbsShear is the larger-magnitude shear peak
func (p Peaks) AbsShear() Peak {
	if math.Abs(p.MinShear.Value) > math.Abs(p.MaxShear.Value) {
		return p.MinShear
	}
	return p.MaxShear
}

// AbsMoment is the larger-magnitude moment peak
func (p Peaks) AbsMoment() Peak {
	if math.Abs(p.MinMoment.Value) > math.Abs(p.MaxMoment.Value) {
		return p.MinMoment
	}
	return p.MaxMoment
}

// Positions returns a sample grid over the beam refined with both sides of
// every discontinuity and every zero-shear point, sorted.
func (a *Analysis) Positions(samples int) []float64 {
	if samples < 2 {
		samples = DefaultSamples
	}
	length := a.beam.Length
	xs := macaulay.Linspace(0, length, samples)

	origins := append(a.shear.Origins(), a.moment.Origins()...)
	for _, o := range origins {
		if o < 0 || o > length {
			continue
		}
		xs = append(xs, o)
		if o > 0 {
			xs = append(xs, math.Nextafter(o, math.Inf(-1)))
		}
	}
	sort.Float64s(xs)
	xs = dedupe(xs)

	// moment extremes inside a segment sit where the shear crosses zero
	var roots []float64
	for i := 1; i < len(xs); i++ {
		x0, x1 := xs[i-1], xs[i]
		v0, v1 := a.shear.At(x0), a.shear.At(x1)
		if v0 == 0 || v1 == 0 || (v0 < 0) == (v1 < 0) {
			continue
		}
		if x, err := bisect(a.shear.At, x0, x1); err == nil {
			roots = append(roots, x)
		}
	}
	xs = append(xs, roots...)
	sort.Float64s(xs)

	return dedupe(xs)
}

// Peaks finds the extreme shear and moment values
func (a *Analysis) Peaks(samples int) Peaks {
	xs := a.Positions(samples)
	var p Peaks
	for i, x := range xs {
		v, m := a.shear.At(x), a.moment.At(x)
		if i == 0 {
			p = Peaks{
				MaxShear:  Peak{x, v},
				MinShear:  Peak{x, v},
				MaxMoment: Peak{x, m},
				MinMoment: Peak{x, m},
			}
			continue
		}
		if v > p.MaxShear.Value {
			p.MaxShear = Peak{x, v}
		}
		if v < p.MinShear.Value {
			p.MinShear = Peak{x, v}
		}
		if m > p.MaxMoment.Value {
			p.MaxMoment = Peak{x, m}
		}
		if m < p.MinMoment.Value {
			p.MinMoment = Peak{x, m}
		}
	}
	return p
}

var errNoSignChange = errors.New("no sign change")

func bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	flo := f(lo)
	if (flo < 0) == (f(hi) < 0) {
		return 0, errNoSignChange
	}
	for i := 0; i < 100 && hi-lo > 1e-12*math.Max(1, math.Abs(hi)); i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

func dedupe(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
