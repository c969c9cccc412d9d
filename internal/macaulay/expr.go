package macaulay

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Term is Coef * <x-Origin>^Exp
type Term struct {
	Coef   float64
	Origin float64
	Exp    int
}

// At evaluates the term at x
func (t Term) At(x float64) float64 {
	return t.Coef * singularity(x, t.Origin, t.Exp)
}

func (t Term) String() string {
	return fmt.Sprintf("%g<x-%g>^%d", t.Coef, t.Origin, t.Exp)
}

// Expr is a closed-form sum of singularity terms. The zero value is an
// empty expression that evaluates to 0 everywhere.
type Expr struct {
	terms []Term
}

// NewExpr builds an expression from already validated terms
func NewExpr(terms ...Term) (*Expr, error) {
	e := &Expr{}
	for _, t := range terms {
		if err := e.Add(t.Coef, t.Origin, t.Exp); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Add appends coef*<x-origin>^exp. Zero coefficients are dropped.
func (e *Expr) Add(coef, origin float64, exp int) error {
	if err := checkArgs(0, origin, exp); err != nil {
		return err
	}
	if math.IsNaN(coef) || math.IsInf(coef, 0) {
		return fmt.Errorf("%w: coefficient %v is not a finite real number", ErrDomain, coef)
	}
	if coef == 0 {
		return nil
	}
	e.terms = append(e.terms, Term{Coef: coef, Origin: origin, Exp: exp})
	return nil
}

// Terms returns a copy of the expression terms in insertion order
func (e *Expr) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// Len is the number of terms
func (e *Expr) Len() int {
	return len(e.terms)
}

// Origins returns the sorted, distinct switch-on positions of the terms
func (e *Expr) Origins() []float64 {
	seen := make(map[float64]struct{}, len(e.terms))
	var out []float64
	for _, t := range e.terms {
		if _, ok := seen[t.Origin]; ok {
			continue
		}
		seen[t.Origin] = struct{}{}
		out = append(out, t.Origin)
	}
	sort.Float64s(out)
	return out
}

// At evaluates the expression at a single position
func (e *Expr) At(x float64) float64 {
	var sum float64
	for _, t := range e.terms {
		sum += t.At(x)
	}
	return sum
}

// Map evaluates the expression at every position of xs into a new slice
func (e *Expr) Map(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = e.At(x)
	}
	return out
}

// Func returns the expression as a plain function of x. The function
// keeps its own copy of the terms.
func (e *Expr) Func() func(float64) float64 {
	terms := e.Terms()
	return func(x float64) float64 {
		var sum float64
		for _, t := range terms {
			sum += t.At(x)
		}
		return sum
	}
}

// Sample evaluates the expression at n evenly spaced positions in [from, to]
func (e *Expr) Sample(from, to float64, n int) (xs, ys []float64) {
	xs = Linspace(from, to, n)
	return xs, e.Map(xs)
}

// Simplify returns a new expression with like terms merged and
// cancelled terms removed, ordered by origin then exponent.
func (e *Expr) Simplify() *Expr {
	type key struct {
		origin float64
		exp    int
	}
	sums := make(map[key]float64)
	var order []key
	for _, t := range e.terms {
		k := key{t.Origin, t.Exp}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += t.Coef
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].origin != order[j].origin {
			return order[i].origin < order[j].origin
		}
		return order[i].exp < order[j].exp
	})

	out := &Expr{}
	for _, k := range order {
		c := sums[k]
		if math.Abs(c) < 1e-12 {
			continue
		}
		out.terms = append(out.terms, Term{Coef: c, Origin: k.origin, Exp: k.exp})
	}
	return out
}

func (e *Expr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range e.terms {
		c := t.Coef
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
			c = -c
		case i > 0 && c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(fmt.Sprintf("%g<x-%g>^%d", c, t.Origin, t.Exp))
	}
	return sb.String()
}

// Linspace returns n evenly spaced values from start to stop inclusive
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
