// Package beam runs the static analysis of a statically determinate beam:
// equilibrium, exact reactions and Macaulay shear and moment diagrams.
package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/beamcalc/internal/equilibrium"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/macaulay"
	"github.com/alexiusacademia/beamcalc/internal/section"
	"github.com/alexiusacademia/beamcalc/internal/solver"
	"github.com/sgostarter/i/l"
)

// Beam is a straight beam along +x from 0 to Length (m)
type Beam struct {
	Length float64

	// Material and section data, carried for reporting; the static
	// analysis does not need them
	E       float64 // kN/m²
	I       float64 // m⁴
	Section *section.Section

	// About is the reference point of the global moment equation
	About float64

	logger l.Wrapper
}

// Option configures a Beam
type Option func(*Beam)

// WithElasticity sets the modulus of elasticity (kN/m²)
func WithElasticity(e float64) Option {
	return func(b *Beam) {
		b.E = e
	}
}

// WithInertia sets the second moment of area (m⁴)
func WithInertia(i float64) Option {
	return func(b *Beam) {
		b.I = i
	}
}

// WithSection attaches a cross-section. I is derived from it unless set.
func WithSection(s *section.Section) Option {
	return func(b *Beam) {
		b.Section = s
	}
}

// WithAbout sets the moment reference point
func WithAbout(x float64) Option {
	return func(b *Beam) {
		b.About = x
	}
}

// WithLogger sets the logger; analyses are silent by default
func WithLogger(logger l.Wrapper) Option {
	return func(b *Beam) {
		b.logger = logger
	}
}

// New creates a beam of the given length
func New(length float64, opts ...Option) (*Beam, error) {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: beam length must be positive, got %g", load.ErrInvalidInput, length)
	}

	b := &Beam{Length: length}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = l.NewNopLoggerWrapper()
	}
	b.logger = b.logger.WithFields(l.StringField(l.ClsKey, "beam"))

	if b.Section != nil {
		if err := b.Section.Validate(); err != nil {
			return nil, fmt.Errorf("%w: section: %v", load.ErrInvalidInput, err)
		}
		if b.I == 0 {
			b.I = b.Section.CalculateProperties().InertiaM4()
		}
	}
	return b, nil
}

// EI is the flexural rigidity (kN·m²), zero when E or I is unknown
func (b *Beam) EI() float64 {
	return b.E * b.I
}

// Analyze solves the reactions of loads and builds the shear and moment
// diagrams. The reactions in loads are filled in place, so they must not
// be shared with another analysis.
func (b *Beam) Analyze(loads []load.Load) (*Analysis, error) {
	logger := b.logger.WithFields(l.StringField("length", fmt.Sprintf("%g", b.Length)), l.IntField("loads", len(loads)))

	sys, err := equilibrium.Build(loads, equilibrium.About(b.About))
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("build equilibrium failed")
		return nil, err
	}
	if err = b.checkPositions(loads); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid load position")
		return nil, err
	}
	for _, eq := range sys.Equations() {
		logger.Debug(eq.Format(sys.Unknowns()))
	}

	sol, err := solver.Solve(sys)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("solve reactions failed")
		return nil, err
	}
	for _, u := range sys.Unknowns() {
		logger.WithFields(l.StringField("unknown", u.Name()), l.StringField("value", sol.Rat(u).FloatString(6))).Debug("solved")
	}

	shear, moment, err := BuildDiagrams(b.Length, loads, sol)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("build diagrams failed")
		return nil, err
	}
	logger.WithFields(l.StringField("shear", shear.String()), l.StringField("moment", moment.String())).Debug("diagrams built")

	kept := make([]load.Load, len(loads))
	copy(kept, loads)

	return &Analysis{
		beam:     b,
		loads:    kept,
		system:   sys,
		solution: sol,
		shear:    shear,
		moment:   moment,
	}, nil
}

// checkPositions requires everything to sit on the beam and hinges to be
// internal. Loads must already have passed equilibrium.CheckLoad.
func (b *Beam) checkPositions(loads []load.Load) error {
	tol := 1e-9 * math.Max(1, b.Length)
	on := func(x float64) bool {
		return x >= -tol && x <= b.Length+tol
	}

	for i, ld := range loads {
		switch v := ld.(type) {
		case *load.UDL:
			if !on(v.Start) || !on(v.End) {
				return fmt.Errorf("%w: element %d (UDL %g..%g) extends beyond the beam [0, %g]", load.ErrInvalidInput, i, v.Start, v.End, b.Length)
			}
		case *load.UVL:
			if !on(v.Start) || !on(v.End) {
				return fmt.Errorf("%w: element %d (UVL %g..%g) extends beyond the beam [0, %g]", load.ErrInvalidInput, i, v.Start, v.End, b.Length)
			}
		case *load.Hinge:
			if v.Pos <= 0 || v.Pos >= b.Length {
				return fmt.Errorf("%w: element %d (hinge at %g) must be inside (0, %g)", load.ErrInvalidInput, i, v.Pos, b.Length)
			}
		default:
			if !on(ld.Position()) {
				return fmt.Errorf("%w: element %d (%s at %g) is off the beam [0, %g]", load.ErrInvalidInput, i, ld.Kind(), ld.Position(), b.Length)
			}
		}
	}
	return nil
}

// Analysis is a solved beam. It only exists once the reactions are solved
// and both diagrams are built.
type Analysis struct {
	beam     *Beam
	loads    []load.Load
	system   *equilibrium.System
	solution *solver.Solution
	shear    *macaulay.Expr
	moment   *macaulay.Expr
}

// Beam returns the analysed beam
func (a *Analysis) Beam() *Beam { return a.beam }

// Loads returns the analysed loads in their original order
func (a *Analysis) Loads() []load.Load {
	out := make([]load.Load, len(a.loads))
	copy(out, a.loads)
	return out
}

// System returns the equilibrium equations
func (a *Analysis) System() *equilibrium.System { return a.system }

// Solution returns the exact reaction values
func (a *Analysis) Solution() *solver.Solution { return a.solution }

// Reactions returns the solved supports
func (a *Analysis) Reactions() []*load.Reaction { return a.system.Reactions() }

// ShearExpr returns the Macaulay expression of the shear force
func (a *Analysis) ShearExpr() *macaulay.Expr { return a.shear }

// MomentExpr returns the Macaulay expression of the bending moment
func (a *Analysis) MomentExpr() *macaulay.Expr { return a.moment }

// ShearAt evaluates the shear force (kN) at x
func (a *Analysis) ShearAt(x float64) float64 { return a.shear.At(x) }

// MomentAt evaluates the bending moment (kNm) at x
func (a *Analysis) MomentAt(x float64) float64 { return a.moment.At(x) }

// Shear returns the shear force diagram as a function
func (a *Analysis) Shear() func(float64) float64 { return a.shear.Func() }

// Moment returns the bending moment diagram as a function
func (a *Analysis) Moment() func(float64) float64 { return a.moment.Func() }

// Check returns ΣF and ΣM about a point with the solved reactions; all
// are zero up to rounding for any about.
func (a *Analysis) Check(about float64) (load.Force, float64, error) {
	return equilibrium.Resultant(a.loads, about)
}
