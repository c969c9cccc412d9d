package beam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/beamcalc/internal/equilibrium"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/macaulay"
	"github.com/alexiusacademia/beamcalc/internal/solver"
)

// ErrNotSolved is returned when diagrams are requested without a solution
// covering every reaction on the beam
var ErrNotSolved = errors.New("reactions not solved")

// BuildDiagrams builds the shear force and bending moment expressions by
// Macaulay's method. Reaction values come from sol, so the diagrams can
// only be built for a load set whose reactions have been solved.
func BuildDiagrams(length float64, loads []load.Load, sol *solver.Solution) (shear, moment *macaulay.Expr, err error) {
	if sol == nil {
		return nil, nil, ErrNotSolved
	}
	solved := make(map[*load.Reaction]bool)
	for _, r := range sol.System().Reactions() {
		solved[r] = true
	}

	shear, moment = &macaulay.Expr{}, &macaulay.Expr{}
	d := &diagrams{shear: shear, moment: moment}

	for i, ld := range loads {
		if err = equilibrium.CheckLoad(i, ld); err != nil {
			return nil, nil, err
		}
		switch v := ld.(type) {
		case *load.PointLoad:
			d.addShear(v.Y, v.Pos, 0)
			d.addMoment(v.Y, v.Pos, 1)

		case *load.Reaction:
			if !solved[v] {
				return nil, nil, fmt.Errorf("%w: reaction %s", ErrNotSolved, v.Label)
			}
			ry := sol.Component(v, load.ComponentY)
			d.addShear(ry, v.Pos, 0)
			d.addMoment(ry, v.Pos, 1)
			if v.Has(load.ComponentMoment) {
				d.addMoment(-sol.Component(v, load.ComponentMoment), v.Pos, 0)
			}

		case *load.PointMoment:
			// a counter-clockwise couple lowers the moment to its right
			d.addMoment(-v.Mom, v.Pos, 0)

		case *load.UDL:
			w := v.LoadPM
			d.addShear(w, v.Start, 1)
			d.addMoment(w/2, v.Start, 2)
			if v.End < length {
				d.addShear(-w, v.End, 1)
				d.addMoment(-w/2, v.End, 2)
			}

		case *load.UVL:
			g := v.Gradient
			d.addShear(v.StartLoad, v.Start, 1)
			d.addShear(g/2, v.Start, 2)
			d.addMoment(v.StartLoad/2, v.Start, 2)
			d.addMoment(g/6, v.Start, 3)
			if v.End < length {
				d.addShear(-v.EndLoad, v.End, 1)
				d.addShear(-g/2, v.End, 2)
				d.addMoment(-v.EndLoad/2, v.End, 2)
				d.addMoment(-g/6, v.End, 3)
			}

		case *load.Hinge:
		}
	}
	if d.err != nil {
		return nil, nil, d.err
	}
	return shear, moment, nil
}

// diagrams keeps the first error so the per-load arms stay flat
type diagrams struct {
	shear  *macaulay.Expr
	moment *macaulay.Expr
	err    error
}

func (d *diagrams) addShear(coef, origin float64, exp int) {
	if d.err == nil {
		d.err = d.shear.Add(coef, origin, exp)
	}
}

func (d *diagrams) addMoment(coef, origin float64, exp int) {
	if d.err == nil {
		d.err = d.moment.Add(coef, origin, exp)
	}
}
