package equilibrium

import (
	"math/big"
	"testing"

	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, pos, mag float64) *load.PointLoad {
	t.Helper()
	p, err := load.NewPointLoad(pos, mag, 90, true)
	require.NoError(t, err)
	return p
}

func mustReaction(t *testing.T, pos float64, support, label string) *load.Reaction {
	t.Helper()
	r, err := load.NewReaction(pos, support, label)
	require.NoError(t, err)
	return r
}

func unknown(r *load.Reaction, c load.Component) load.Unknown {
	return load.Unknown{Reaction: r, Component: c}
}

func assertRat(t *testing.T, want float64, got *big.Rat, msg string) {
	t.Helper()
	assert.Equal(t, 0, Rat(want).Cmp(got), "%s: want %v got %s", msg, want, got.FloatString(6))
}

func TestRatUsesDecimalForm(t *testing.T) {
	assert.Equal(t, "1/10", Rat(0.1).String())
	assert.Equal(t, "-34641/500", Rat(-69.282).String())
	assert.Equal(t, "5/1", Rat(5).String())
}

func TestBuildSimplySupported(t *testing.T) {
	p := mustPoint(t, 5, 10)
	a := mustReaction(t, 0, "hinge", "A")
	b := mustReaction(t, 10, "roller", "B")

	sys, err := Build([]load.Load{p, a, b})
	require.NoError(t, err)

	eqs := sys.Equations()
	require.Len(t, eqs, 3)
	assert.Equal(t, "Fx", eqs[0].Name)
	assert.Equal(t, "Fy", eqs[1].Name)
	assert.Equal(t, "M(0)", eqs[2].Name)

	assert.Equal(t, []load.Unknown{
		unknown(a, load.ComponentX),
		unknown(a, load.ComponentY),
		unknown(b, load.ComponentY),
	}, sys.Unknowns())

	fx, fy, m := eqs[0], eqs[1], eqs[2]
	assertRat(t, 1, fx.Coeff(unknown(a, load.ComponentX)), "Fx Ax")
	assertRat(t, 0, fx.Const, "Fx const")

	assertRat(t, 1, fy.Coeff(unknown(a, load.ComponentY)), "Fy Ay")
	assertRat(t, 1, fy.Coeff(unknown(b, load.ComponentY)), "Fy By")
	assertRat(t, -10, fy.Const, "Fy const")

	assertRat(t, 0, m.Coeff(unknown(a, load.ComponentY)), "M Ay")
	assertRat(t, 10, m.Coeff(unknown(b, load.ComponentY)), "M By")
	assertRat(t, -50, m.Const, "M const")

	assert.Equal(t, "Fy: 1.0000*R_A_y + 1.0000*R_B_y + -10.0000 = 0", fy.Format(sys.Unknowns()))
}

func TestBuildAboutOtherPoint(t *testing.T) {
	p := mustPoint(t, 5, 10)
	a := mustReaction(t, 0, "roller", "A")
	b := mustReaction(t, 10, "hinge", "B")

	sys, err := Build([]load.Load{p, a, b}, About(10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, sys.About())

	m := sys.Equations()[2]
	assert.Equal(t, "M(10)", m.Name)
	assertRat(t, -10, m.Coeff(unknown(a, load.ComponentY)), "M Ay")
	assertRat(t, 0, m.Coeff(unknown(b, load.ComponentY)), "M By")
	assertRat(t, 50, m.Const, "M const")
}

func TestBuildDistributedAndMoments(t *testing.T) {
	udl, err := load.NewUDL(10, 10, 10, true)
	require.NoError(t, err)
	pm, err := load.NewPointMoment(4, 60, false)
	require.NoError(t, err)
	inclined, err := load.NewPointLoad(11, 80, 30, true)
	require.NoError(t, err)
	a := mustReaction(t, 0, "fixed", "A")

	sys, err := Build([]load.Load{udl, pm, inclined, a})
	require.NoError(t, err)
	fx, fy, m := sys.Equations()[0], sys.Equations()[1], sys.Equations()[2]

	assertRat(t, -69.282, fx.Const, "Fx const")
	assertRat(t, -140, fy.Const, "Fy const")
	// 15*(-100) - 60 + 11*(-40)
	assertRat(t, -2000, m.Const, "M const")
	assertRat(t, 1, m.Coeff(unknown(a, load.ComponentMoment)), "M MA")
}

func hingeBeam(t *testing.T, hingePos float64, side string) ([]load.Load, *load.Reaction, *load.Reaction) {
	t.Helper()
	a := mustReaction(t, 0, "fixed", "A")
	p := mustPoint(t, 2, 100)
	pm, err := load.NewPointMoment(4, 60, false)
	require.NoError(t, err)
	h, err := load.NewHinge(hingePos, side)
	require.NoError(t, err)
	udl, err := load.NewUDL(6, 20, 8, true)
	require.NoError(t, err)
	f := mustReaction(t, 10, "roller", "F")
	return []load.Load{udl, p, pm, a, h, f}, a, f
}

func TestBuildHingeRightSide(t *testing.T) {
	loads, a, f := hingeBeam(t, 6, "r")
	sys, err := Build(loads, About(3.5))
	require.NoError(t, err)

	eqs := sys.Equations()
	require.Len(t, eqs, 4)
	hinge := eqs[3]
	assert.Equal(t, "M_hinge(6,right)", hinge.Name)
	assertRat(t, 4, hinge.Coeff(unknown(f, load.ComponentY)), "hinge Fy")
	assertRat(t, 0, hinge.Coeff(unknown(a, load.ComponentY)), "hinge Ay")
	assertRat(t, -640, hinge.Const, "hinge const")
	assert.Len(t, sys.Hinges(), 1)
}

func TestBuildHingeLeftSide(t *testing.T) {
	loads, a, f := hingeBeam(t, 6, "l")
	sys, err := Build(loads)
	require.NoError(t, err)

	hinge := sys.Equations()[3]
	assertRat(t, -6, hinge.Coeff(unknown(a, load.ComponentY)), "hinge Ay")
	assertRat(t, 1, hinge.Coeff(unknown(a, load.ComponentMoment)), "hinge MA")
	assertRat(t, 0, hinge.Coeff(unknown(f, load.ComponentY)), "hinge Fy")
	// (2-6)(-100) - 60, the UDL starts at the hinge
	assertRat(t, 340, hinge.Const, "hinge const")
}

func TestBuildHingeSplitsStraddlingLoad(t *testing.T) {
	loads, a, f := hingeBeam(t, 8, "right")
	sys, err := Build(loads)
	require.NoError(t, err)
	right := sys.Equations()[3]
	assertRat(t, 2, right.Coeff(unknown(f, load.ComponentY)), "right Fy")
	assertRat(t, -360, right.Const, "right const")

	loads, a, _ = hingeBeam(t, 8, "left")
	sys, err = Build(loads)
	require.NoError(t, err)
	left := sys.Equations()[3]
	assertRat(t, -8, left.Coeff(unknown(a, load.ComponentY)), "left Ay")
	assertRat(t, 580, left.Const, "left const")
}

type foreign struct {
	load.Load
}

func TestBuildRejects(t *testing.T) {
	a := mustReaction(t, 0, "hinge", "A")

	_, err := Build([]load.Load{a, foreign{}})
	assert.ErrorIs(t, err, load.ErrUnrecognizedLoad)

	var nilPoint *load.PointLoad
	_, err = Build([]load.Load{a, nilPoint})
	assert.ErrorIs(t, err, load.ErrUnrecognizedLoad)

	_, err = Build([]load.Load{a, nil})
	assert.ErrorIs(t, err, load.ErrUnrecognizedLoad)

	_, err = Build([]load.Load{a, a})
	assert.ErrorIs(t, err, load.ErrInvalidInput)

	_, err = Build([]load.Load{a, mustReaction(t, 5, "roller", "A")})
	assert.ErrorIs(t, err, load.ErrInvalidInput)
}

func TestResultant(t *testing.T) {
	p := mustPoint(t, 5, 10)
	a := mustReaction(t, 0, "hinge", "A")
	b := mustReaction(t, 10, "roller", "B")
	require.NoError(t, a.Assign(map[load.Component]float64{load.ComponentY: 5}))
	require.NoError(t, b.Assign(map[load.Component]float64{load.ComponentY: 5}))

	for _, about := range []float64{0, 2.5, 10, -3} {
		f, m, err := Resultant([]load.Load{p, a, b}, about)
		require.NoError(t, err)
		assert.InDelta(t, 0, f.X, 1e-12)
		assert.InDelta(t, 0, f.Y, 1e-12)
		assert.InDelta(t, 0, m, 1e-12, "about %v", about)
	}

	_, _, err := Resultant([]load.Load{foreign{}}, 0)
	assert.ErrorIs(t, err, load.ErrUnrecognizedLoad)
}
