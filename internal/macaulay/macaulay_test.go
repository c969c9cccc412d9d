package macaulay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularity(t *testing.T) {
	cases := []struct {
		x, a float64
		n    int
		want float64
	}{
		{x: 1, a: 2, n: 0, want: 0},
		{x: 2, a: 2, n: 0, want: 1},
		{x: 3, a: 2, n: 0, want: 1},
		{x: 2, a: 2, n: 1, want: 0},
		{x: 2, a: 2, n: 2, want: 0},
		{x: 5, a: 2, n: 1, want: 3},
		{x: 5, a: 2, n: 2, want: 9},
		{x: 5, a: 2, n: 3, want: 27},
		{x: 4, a: 2, n: 5, want: 32},
		{x: 5, a: 2, n: -1, want: 0},
		{x: 5, a: 2, n: -2, want: 0},
		{x: 1, a: 2, n: -2, want: 0},
	}
	for _, c := range cases {
		got, err := Singularity(c.x, c.a, c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "<%v-%v>^%d", c.x, c.a, c.n)
	}
}

func TestSingularityStepSwitchesOnAtOrigin(t *testing.T) {
	below, err := Singularity(math.Nextafter(3, 0), 3, 0)
	require.NoError(t, err)
	at, err := Singularity(3, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, below)
	assert.Equal(t, 1.0, at)
}

func TestSingularityDomain(t *testing.T) {
	_, err := Singularity(1, 0, -3)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Singularity(math.NaN(), 0, 1)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Singularity(1, math.Inf(1), 1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestExprEvaluate(t *testing.T) {
	// simply supported span of 10 with a downward 10 at midspan
	e, err := NewExpr(
		Term{Coef: 5, Origin: 0, Exp: 1},
		Term{Coef: -10, Origin: 5, Exp: 1},
		Term{Coef: 5, Origin: 10, Exp: 1},
	)
	require.NoError(t, err)

	assert.InDelta(t, 0, e.At(0), 1e-12)
	assert.InDelta(t, 25, e.At(5), 1e-12)
	assert.InDelta(t, 12.5, e.At(7.5), 1e-12)
	assert.InDelta(t, 0, e.At(10), 1e-12)
	assert.Equal(t, []float64{0, 5, 10}, e.Origins())
}

func TestExprMapIsPure(t *testing.T) {
	e := &Expr{}
	require.NoError(t, e.Add(2, 1, 2))
	require.NoError(t, e.Add(-1, 3, 0))

	xs := []float64{0, 1, 2, 3, 4}
	first := e.Map(xs)
	second := e.Map(xs)
	assert.Equal(t, first, second)
	assert.Equal(t, []float64{0, 0, 2, 7, 17}, first)

	f := e.Func()
	for i, x := range xs {
		assert.Equal(t, first[i], f(x))
	}
}

func TestExprAddRejectsBadTerms(t *testing.T) {
	e := &Expr{}
	assert.ErrorIs(t, e.Add(1, 0, -3), ErrDomain)
	assert.ErrorIs(t, e.Add(math.Inf(-1), 0, 1), ErrDomain)
	assert.NoError(t, e.Add(0, 4, 1))
	assert.Equal(t, 0, e.Len())
}

func TestExprSimplify(t *testing.T) {
	e, err := NewExpr(
		Term{Coef: 3, Origin: 2, Exp: 1},
		Term{Coef: 1, Origin: 0, Exp: 0},
		Term{Coef: -3, Origin: 2, Exp: 1},
		Term{Coef: 2, Origin: 0, Exp: 0},
	)
	require.NoError(t, err)

	s := e.Simplify()
	assert.Equal(t, []Term{{Coef: 3, Origin: 0, Exp: 0}}, s.Terms())
	assert.Equal(t, "3<x-0>^0", s.String())
	assert.Equal(t, 4, e.Len())
}

func TestExprString(t *testing.T) {
	e, err := NewExpr(
		Term{Coef: -5, Origin: 0, Exp: 0},
		Term{Coef: 2.5, Origin: 1, Exp: 2},
		Term{Coef: -1, Origin: 3, Exp: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, "-5<x-0>^0 + 2.5<x-1>^2 - 1<x-3>^1", e.String())
	assert.Equal(t, "0", (&Expr{}).String())
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, Linspace(0, 10, 5))
	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Nil(t, Linspace(0, 1, 0))

	xs, ys := (&Expr{}).Sample(0, 1, 3)
	assert.Len(t, xs, 3)
	assert.Equal(t, []float64{0, 0, 0}, ys)
}
