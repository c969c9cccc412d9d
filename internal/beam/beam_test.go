package beam

import (
	"math"
	"testing"

	"github.com/alexiusacademia/beamcalc/internal/equilibrium"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/section"
	"github.com/alexiusacademia/beamcalc/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(t *testing.T, pos, mag float64) *load.PointLoad {
	t.Helper()
	p, err := load.NewPointLoad(pos, mag, 90, true)
	require.NoError(t, err)
	return p
}

func reaction(t *testing.T, pos float64, support, label string) *load.Reaction {
	t.Helper()
	r, err := load.NewReaction(pos, support, label)
	require.NoError(t, err)
	return r
}

func analyze(t *testing.T, length float64, loads []load.Load, opts ...Option) *Analysis {
	t.Helper()
	b, err := New(length, opts...)
	require.NoError(t, err)
	a, err := b.Analyze(loads)
	require.NoError(t, err)
	return a
}

func simplySupported(t *testing.T) (*Analysis, *load.Reaction, *load.Reaction) {
	ra := reaction(t, 0, "hinge", "A")
	rb := reaction(t, 10, "roller", "B")
	return analyze(t, 10, []load.Load{point(t, 5, 10), ra, rb}), ra, rb
}

func TestNewRejectsLength(t *testing.T) {
	for _, length := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := New(length)
		assert.ErrorIs(t, err, load.ErrInvalidInput, "length %v", length)
	}
}

func TestSimplySupportedPointLoad(t *testing.T) {
	a, ra, rb := simplySupported(t)

	assert.Equal(t, 5.0, ra.RyVal)
	assert.Equal(t, 5.0, rb.RyVal)
	assert.Equal(t, 0.0, ra.RxVal)

	assert.InDelta(t, 25, a.MomentAt(5), 1e-9)
	assert.InDelta(t, 5, a.ShearAt(math.Nextafter(5, 0)), 1e-9)
	assert.InDelta(t, -5, a.ShearAt(5.000001), 1e-9)
	assert.InDelta(t, 0, a.MomentAt(0), 1e-9)
	assert.InDelta(t, 0, a.MomentAt(10), 1e-9)
	assert.Len(t, a.Reactions(), 2)
}

func TestCantileverUDL(t *testing.T) {
	udl, err := load.NewUDL(10, 10, 10, true)
	require.NoError(t, err)
	ra := reaction(t, 0, "fixed", "A")
	a := analyze(t, 20, []load.Load{ra, udl})

	assert.Equal(t, 100.0, ra.RyVal)
	assert.Equal(t, 0.0, ra.RxVal)
	assert.Equal(t, 1500.0, math.Abs(ra.MomVal))

	assert.InDelta(t, -1500, a.MomentAt(0), 1e-9)
	assert.InDelta(t, -500, a.MomentAt(10), 1e-9)
	assert.InDelta(t, 0, a.MomentAt(20), 1e-9)
	assert.InDelta(t, 100, a.ShearAt(5), 1e-9)
	assert.InDelta(t, 50, a.ShearAt(15), 1e-9)
	assert.InDelta(t, 0, a.ShearAt(20), 1e-9)
}

func TestHingedBeam(t *testing.T) {
	ra := reaction(t, 0, "fixed", "A")
	rf := reaction(t, 10, "roller", "F")
	pm, err := load.NewPointMoment(4, 60, false)
	require.NoError(t, err)
	h, err := load.NewHinge(6, "r")
	require.NoError(t, err)
	udl, err := load.NewUDL(6, 20, 8, true)
	require.NoError(t, err)

	a := analyze(t, 14, []load.Load{udl, point(t, 2, 100), pm, ra, h, rf}, WithAbout(3.5))

	assert.InDelta(t, 160, rf.RyVal, 1e-9)
	assert.InDelta(t, 100, ra.RyVal, 1e-9)
	assert.InDelta(t, 260, ra.MomVal, 1e-9)
	assert.InDelta(t, 0, a.MomentAt(6), 1e-9)
	assert.InDelta(t, 0, a.MomentAt(14), 1e-9)
}

func TestHingeRequiredForDeterminacy(t *testing.T) {
	ra := reaction(t, 0, "fixed", "A")
	rf := reaction(t, 10, "roller", "F")
	b, err := New(14)
	require.NoError(t, err)

	_, err = b.Analyze([]load.Load{point(t, 2, 100), ra, rf})
	assert.ErrorIs(t, err, solver.ErrIndeterminate)
	assert.False(t, ra.Solved())
}

func TestCheckIsZeroAboutAnyPoint(t *testing.T) {
	udl, err := load.NewUDL(0, 10, 4, true)
	require.NoError(t, err)
	uvl, err := load.NewUVL(4, 2, 6, 8, true)
	require.NoError(t, err)
	pm, err := load.NewPointMoment(6, 50, true)
	require.NoError(t, err)
	inclined, err := load.NewPointLoad(11, 80, 30, true)
	require.NoError(t, err)
	loads := []load.Load{udl, uvl, pm, inclined, reaction(t, 0, "hinge", "A"), reaction(t, 8, "roller", "D")}
	a := analyze(t, 11, loads)

	for _, about := range []float64{0, 3.3, 8, 11, -20} {
		f, m, err := a.Check(about)
		require.NoError(t, err)
		assert.InDelta(t, 0, f.X, 1e-9, "about %v", about)
		assert.InDelta(t, 0, f.Y, 1e-9, "about %v", about)
		assert.InDelta(t, 0, m, 1e-9, "about %v", about)
	}
}

func TestReactionsIndependentOfAbout(t *testing.T) {
	var got []float64
	for _, about := range []float64{0, 2.5, 10} {
		uvl, err := load.NewUVL(0, 0, 10, 6, true)
		require.NoError(t, err)
		ra := reaction(t, 0, "hinge", "A")
		rb := reaction(t, 10, "roller", "B")
		analyze(t, 10, []load.Load{uvl, ra, rb}, WithAbout(about))
		got = append(got, ra.RyVal, rb.RyVal)
	}
	for i := 2; i < len(got); i += 2 {
		assert.InDelta(t, got[0], got[i], 1e-9)
		assert.InDelta(t, got[1], got[i+1], 1e-9)
	}
	assert.InDelta(t, 10, got[0], 1e-9)
	assert.InDelta(t, 20, got[1], 1e-9)
}

func TestShearIsDerivativeOfMoment(t *testing.T) {
	udl, err := load.NewUDL(1, 4, 3, true)
	require.NoError(t, err)
	uvl, err := load.NewUVL(5, 2, 4, 6, true)
	require.NoError(t, err)
	pm, err := load.NewPointMoment(4.5, 12, true)
	require.NoError(t, err)
	loads := []load.Load{udl, uvl, pm, point(t, 3, 7), reaction(t, 0, "hinge", "A"), reaction(t, 12, "roller", "B")}
	a := analyze(t, 12, loads)

	const h = 1e-6
	for _, x := range []float64{0.5, 2, 2.7, 3.5, 4.2, 6, 7.5, 8.8, 10, 11.5} {
		slope := (a.MomentAt(x+h) - a.MomentAt(x-h)) / (2 * h)
		assert.InDelta(t, a.ShearAt(x), slope, 1e-4, "x = %v", x)
	}
}

func TestAnalyzeRejectsPositions(t *testing.T) {
	cases := map[string]func() []load.Load{
		"point beyond end": func() []load.Load {
			return []load.Load{point(t, 12, 10), reaction(t, 0, "fixed", "A")}
		},
		"udl past end": func() []load.Load {
			udl, err := load.NewUDL(8, 10, 4, true)
			require.NoError(t, err)
			return []load.Load{udl, reaction(t, 0, "fixed", "A")}
		},
		"support before start": func() []load.Load {
			return []load.Load{point(t, 5, 10), reaction(t, -1, "fixed", "A")}
		},
		"hinge at support": func() []load.Load {
			h, err := load.NewHinge(0, "")
			require.NoError(t, err)
			return []load.Load{point(t, 5, 10), reaction(t, 0, "fixed", "A"), h}
		},
	}

	for name, mk := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := New(10)
			require.NoError(t, err)
			loads := mk()
			_, err = b.Analyze(loads)
			assert.ErrorIs(t, err, load.ErrInvalidInput)
			for _, ld := range loads {
				if r, ok := ld.(*load.Reaction); ok {
					assert.False(t, r.Solved())
				}
			}
		})
	}
}

func TestAnalyzeRejectsUnrecognizedLoad(t *testing.T) {
	type foreign struct{ load.Load }
	b, err := New(10)
	require.NoError(t, err)
	_, err = b.Analyze([]load.Load{foreign{}, reaction(t, 0, "fixed", "A")})
	assert.ErrorIs(t, err, load.ErrUnrecognizedLoad)
}

func TestBuildDiagramsRequiresSolution(t *testing.T) {
	ra := reaction(t, 0, "hinge", "A")
	rb := reaction(t, 10, "roller", "B")
	loads := []load.Load{point(t, 5, 10), ra, rb}

	_, _, err := BuildDiagrams(10, loads, nil)
	assert.ErrorIs(t, err, ErrNotSolved)

	sys, err := equilibrium.Build(loads)
	require.NoError(t, err)
	sol, err := solver.Solve(sys)
	require.NoError(t, err)

	// a support the solution knows nothing about
	other := append(loads, reaction(t, 7, "roller", "C"))
	_, _, err = BuildDiagrams(10, other, sol)
	assert.ErrorIs(t, err, ErrNotSolved)

	shear, moment, err := BuildDiagrams(10, loads, sol)
	require.NoError(t, err)
	assert.InDelta(t, 25, moment.At(5), 1e-9)
	assert.InDelta(t, 5, shear.At(1), 1e-9)
}

func TestPeaks(t *testing.T) {
	a, _, _ := simplySupported(t)
	p := a.Peaks(101)
	assert.InDelta(t, 5, p.MaxShear.Value, 1e-9)
	assert.InDelta(t, -5, p.MinShear.Value, 1e-9)
	assert.InDelta(t, 25, p.MaxMoment.Value, 1e-9)
	assert.InDelta(t, 5, p.MaxMoment.X, 1e-9)
	assert.InDelta(t, 0, p.MinMoment.Value, 1e-9)
	assert.Equal(t, p.MaxMoment, p.AbsMoment())
}

func TestPeaksFindsZeroShear(t *testing.T) {
	// triangular load rising to 6 kN/m: Mmax = wL²/(9√3) at L/√3
	uvl, err := load.NewUVL(0, 0, 10, 6, true)
	require.NoError(t, err)
	a := analyze(t, 10, []load.Load{uvl, reaction(t, 0, "hinge", "A"), reaction(t, 10, "roller", "B")})

	p := a.Peaks(7)
	assert.InDelta(t, 10/math.Sqrt(3), p.MaxMoment.X, 1e-6)
	assert.InDelta(t, 600/(9*math.Sqrt(3)), p.MaxMoment.Value, 1e-6)
}

func TestPositionsCoverDiscontinuity(t *testing.T) {
	a, _, _ := simplySupported(t)
	xs := a.Positions(11)
	assert.Contains(t, xs, 5.0)
	assert.Contains(t, xs, math.Nextafter(5, 0))
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 10.0, xs[len(xs)-1])
	for i := 1; i < len(xs); i++ {
		assert.Less(t, xs[i-1], xs[i])
	}
}

func TestMaxBendingStress(t *testing.T) {
	a, _, _ := simplySupported(t)
	_, err := a.MaxBendingStress(0)
	assert.ErrorIs(t, err, ErrNoSection)

	ra := reaction(t, 0, "hinge", "A")
	rb := reaction(t, 10, "roller", "B")
	a = analyze(t, 10, []load.Load{point(t, 5, 10), ra, rb}, WithSection(section.Rectangle(200, 400)))
	assert.InDelta(t, 200*math.Pow(400, 3)/12*1e-12, a.Beam().I, 1e-12)

	s, err := a.MaxBendingStress(101)
	require.NoError(t, err)
	// σ = M·c/I = 25e6 · 200 / (200·400³/12)
	assert.InDelta(t, -4.6875, s.Top, 1e-9)
	assert.InDelta(t, 4.6875, s.Bottom, 1e-9)
	assert.InDelta(t, 25, s.At.Value, 1e-9)
}
