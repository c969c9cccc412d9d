package load

import (
	"fmt"
	"math"
)

// PointLoad is a concentrated force, optionally inclined to the beam axis
type PointLoad struct {
	Pos         float64 // m
	Magnitude   float64 // kN, as given
	Inclination float64 // degrees ccw from +x; 90 is a vertical load
	Inverted    bool    // flips the direction before decomposing

	X float64 // kN, rounded to Precision decimals
	Y float64 // kN, rounded to Precision decimals
}

// NewPointLoad creates a point load. An upward vertical load has
// inclination 90; pass inverted=true for the usual downward load.
func NewPointLoad(pos, magnitude, inclination float64, inverted bool) (*PointLoad, error) {
	if !finite(pos, magnitude, inclination) {
		return nil, fmt.Errorf("%w: point load values must be finite", ErrInvalidInput)
	}
	m := sign(inverted) * magnitude
	theta := inclination * math.Pi / 180
	return &PointLoad{
		Pos:         pos,
		Magnitude:   magnitude,
		Inclination: inclination,
		Inverted:    inverted,
		X:           round(m*math.Cos(theta), Precision),
		Y:           round(m*math.Sin(theta), Precision),
	}, nil
}

func (p *PointLoad) Kind() Kind          { return KindPointLoad }
func (p *PointLoad) Position() float64   { return p.Pos }
func (p *PointLoad) Net() Force          { return Force{X: p.X, Y: p.Y} }
func (p *PointLoad) Unknowns() []Unknown { return nil }
func (p *PointLoad) sealed()             {}

// UDL is a uniformly distributed load over [Start, End]
type UDL struct {
	Start    float64 // m
	Span     float64 // m
	End      float64 // m
	LoadPM   float64 // kN/m, signed (+ upward)
	Inverted bool

	NetLoad float64 // kN
	Pos     float64 // m, line of action of NetLoad
}

// NewUDL creates a UDL. The original tool treats distributed loads as
// downward unless told otherwise, so callers normally pass inverted=true.
func NewUDL(start, loadPM, span float64, inverted bool) (*UDL, error) {
	if !finite(start, loadPM, span) {
		return nil, fmt.Errorf("%w: UDL values must be finite", ErrInvalidInput)
	}
	if span <= 0 {
		return nil, fmt.Errorf("%w: UDL span must be positive, got %g", ErrInvalidInput, span)
	}
	return newUDL(start, sign(inverted)*loadPM, span, inverted), nil
}

func newUDL(start, w, span float64, inverted bool) *UDL {
	return &UDL{
		Start:    start,
		Span:     span,
		End:      start + span,
		LoadPM:   w,
		Inverted: inverted,
		NetLoad:  w * span,
		Pos:      start + span/2,
	}
}

func (u *UDL) Kind() Kind          { return KindUDL }
func (u *UDL) Position() float64   { return u.Pos }
func (u *UDL) Net() Force          { return Force{Y: u.NetLoad} }
func (u *UDL) Unknowns() []Unknown { return nil }
func (u *UDL) sealed()             {}

// Split cuts the load at x. A side is nil when x is outside it.
func (u *UDL) Split(x float64) (left, right *UDL) {
	switch {
	case x <= u.Start:
		return nil, u
	case x >= u.End:
		return u, nil
	}
	left = newUDL(u.Start, u.LoadPM, x-u.Start, u.Inverted)
	right = newUDL(x, u.LoadPM, u.End-x, u.Inverted)
	right.End = u.End
	return left, right
}

// UVL is a linearly varying (triangular or trapezoidal) distributed load
type UVL struct {
	Start     float64 // m
	Span      float64 // m
	End       float64 // m
	StartLoad float64 // kN/m at Start, signed
	EndLoad   float64 // kN/m at End, signed
	Inverted  bool

	Gradient float64 // kN/m per m
	TLoad    float64 // kN, magnitude of the triangular part
	RLoad    float64 // kN, magnitude of the rectangular part
	NetLoad  float64 // kN, signed
	Pos      float64 // m, centroid of the load diagram
}

// NewUVL creates a UVL running from startLoad at start to endLoad at
// start+span. Intensities must not change sign along the span.
func NewUVL(start, startLoad, span, endLoad float64, inverted bool) (*UVL, error) {
	if !finite(start, startLoad, span, endLoad) {
		return nil, fmt.Errorf("%w: UVL values must be finite", ErrInvalidInput)
	}
	if span <= 0 {
		return nil, fmt.Errorf("%w: UVL span must be positive, got %g", ErrInvalidInput, span)
	}
	if startLoad == 0 && endLoad == 0 {
		return nil, fmt.Errorf("%w: UVL must have a non-zero intensity", ErrInvalidInput)
	}
	if startLoad*endLoad < 0 {
		return nil, fmt.Errorf("%w: UVL intensities %g and %g change sign", ErrInvalidInput, startLoad, endLoad)
	}
	s := sign(inverted)
	return newUVL(start, s*startLoad, span, s*endLoad, inverted), nil
}

func newUVL(start, w0, span, w1 float64, inverted bool) *UVL {
	u := &UVL{
		Start:     start,
		Span:      span,
		End:       start + span,
		StartLoad: w0,
		EndLoad:   w1,
		Inverted:  inverted,
		Gradient:  (w1 - w0) / span,
		TLoad:     span * math.Abs(w1-w0) / 2,
		RLoad:     span * math.Min(math.Abs(w0), math.Abs(w1)),
		NetLoad:   span * (w0 + w1) / 2,
	}

	// the triangular excess sits at the far end when the end is heavier
	net := math.Abs(u.NetLoad)
	if math.Abs(w1) > math.Abs(w0) {
		u.Pos = start + (2*u.TLoad*span/3+u.RLoad*span/2)/net
	} else {
		u.Pos = start + (u.TLoad*span/3+u.RLoad*span/2)/net
	}
	return u
}

func (u *UVL) Kind() Kind          { return KindUVL }
func (u *UVL) Position() float64   { return u.Pos }
func (u *UVL) Net() Force          { return Force{Y: u.NetLoad} }
func (u *UVL) Unknowns() []Unknown { return nil }
func (u *UVL) sealed()             {}

// IntensityAt returns the signed intensity at x, zero outside the load
func (u *UVL) IntensityAt(x float64) float64 {
	if x < u.Start || x > u.End {
		return 0
	}
	return u.StartLoad + u.Gradient*(x-u.Start)
}

// Split cuts the load at x. A side is nil when x is outside it or the
// piece would carry no load.
func (u *UVL) Split(x float64) (left, right *UVL) {
	switch {
	case x <= u.Start:
		return nil, u
	case x >= u.End:
		return u, nil
	}
	wx := u.IntensityAt(x)
	if u.StartLoad != 0 || wx != 0 {
		left = newUVL(u.Start, u.StartLoad, x-u.Start, wx, u.Inverted)
	}
	if wx != 0 || u.EndLoad != 0 {
		right = newUVL(x, wx, u.End-x, u.EndLoad, u.Inverted)
		right.End = u.End
	}
	return left, right
}

// PointMoment is a pure couple applied at a point
type PointMoment struct {
	Pos       float64 // m
	Magnitude float64 // kNm, as given
	CCW       bool
	Mom       float64 // kNm, signed (+ counter-clockwise)
}

// NewPointMoment creates a couple; ccw=false makes it clockwise
func NewPointMoment(pos, magnitude float64, ccw bool) (*PointMoment, error) {
	if !finite(pos, magnitude) {
		return nil, fmt.Errorf("%w: point moment values must be finite", ErrInvalidInput)
	}
	mom := magnitude
	if !ccw {
		mom = -magnitude
	}
	return &PointMoment{Pos: pos, Magnitude: magnitude, CCW: ccw, Mom: mom}, nil
}

func (m *PointMoment) Kind() Kind          { return KindPointMoment }
func (m *PointMoment) Position() float64   { return m.Pos }
func (m *PointMoment) Net() Force          { return Force{} }
func (m *PointMoment) Unknowns() []Unknown { return nil }
func (m *PointMoment) sealed()             {}
