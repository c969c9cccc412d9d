// Package solver solves beam equilibrium systems exactly.
package solver

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/alexiusacademia/beamcalc/internal/equilibrium"
	"github.com/alexiusacademia/beamcalc/internal/load"
)

var (
	// ErrIndeterminate means more unknown reaction components than
	// equilibrium equations
	ErrIndeterminate = errors.New("statically indeterminate system")

	// ErrUnsolvable means the equations are inconsistent or rank
	// deficient, usually an unstable support arrangement
	ErrUnsolvable = errors.New("unsolvable system")
)

// Solution holds the exact solved value of every unknown
type Solution struct {
	system *equilibrium.System
	values map[load.Unknown]*big.Rat
	rank   int
}

// System is the system that was solved
func (s *Solution) System() *equilibrium.System { return s.system }

// Rank of the coefficient matrix
func (s *Solution) Rank() int { return s.rank }

// Rat returns the exact value of u; zero for unknowns outside the system
func (s *Solution) Rat(u load.Unknown) *big.Rat {
	if v, ok := s.values[u]; ok {
		return new(big.Rat).Set(v)
	}
	return new(big.Rat)
}

// Value returns u as the nearest float64
func (s *Solution) Value(u load.Unknown) float64 {
	f, _ := s.Rat(u).Float64()
	return f
}

// Component returns the solved component c of reaction r, zero when the
// support does not restrain it
func (s *Solution) Component(r *load.Reaction, c load.Component) float64 {
	return s.Value(load.Unknown{Reaction: r, Component: c})
}

type row struct {
	name string
	a    []*big.Rat // n coefficients followed by the right hand side
}

// Solve solves sys for all unknowns at once and writes the values back
// onto the reactions.
func Solve(sys *equilibrium.System) (*Solution, error) {
	unknowns := sys.Unknowns()
	eqs := sys.Equations()
	n, m := len(unknowns), len(eqs)

	if n > m {
		return nil, fmt.Errorf("%w: %d unknown reaction components but only %d equations", ErrIndeterminate, n, m)
	}
	for _, r := range sys.Reactions() {
		if r.Solved() {
			return nil, fmt.Errorf("%w: %s belongs to an earlier analysis", load.ErrAlreadySolved, r.Label)
		}
	}

	rows := make([]row, m)
	for i, eq := range eqs {
		a := make([]*big.Rat, n+1)
		for j, u := range unknowns {
			a[j] = eq.Coeff(u)
		}
		a[n] = new(big.Rat).Neg(eq.Const)
		rows[i] = row{name: eq.Name, a: a}
	}

	pivots := make([]int, 0, n)
	rank := 0
	for col := 0; col < n && rank < m; col++ {
		p := -1
		for r := rank; r < m; r++ {
			if rows[r].a[col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		rows[rank], rows[p] = rows[p], rows[rank]

		pivot := rows[rank].a
		inv := new(big.Rat).Inv(pivot[col])
		for j := col; j <= n; j++ {
			pivot[j].Mul(pivot[j], inv)
		}
		for r := 0; r < m; r++ {
			if r == rank || rows[r].a[col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(rows[r].a[col])
			for j := col; j <= n; j++ {
				rows[r].a[j].Sub(rows[r].a[j], new(big.Rat).Mul(f, pivot[j]))
			}
		}
		pivots = append(pivots, col)
		rank++
	}

	for r := rank; r < m; r++ {
		if rows[r].a[n].Sign() != 0 {
			return nil, fmt.Errorf("%w: equation %s cannot be satisfied by the supports", ErrUnsolvable, rows[r].name)
		}
	}
	if rank < n {
		return nil, fmt.Errorf("%w: only %d independent equations for %d unknowns, the beam is a mechanism", ErrUnsolvable, rank, n)
	}

	sol := &Solution{
		system: sys,
		values: make(map[load.Unknown]*big.Rat, n),
		rank:   rank,
	}
	for i, col := range pivots {
		sol.values[unknowns[col]] = new(big.Rat).Set(rows[i].a[n])
	}

	for _, r := range sys.Reactions() {
		vals := make(map[load.Component]float64, 3)
		for _, u := range r.Unknowns() {
			vals[u.Component] = sol.Value(u)
		}
		if err := r.Assign(vals); err != nil {
			return nil, err
		}
	}
	return sol, nil
}
