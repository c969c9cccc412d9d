// Package equilibrium assembles the static equilibrium equations of a beam.
package equilibrium

import (
	"fmt"
	"math"
	"math/big"

	"github.com/alexiusacademia/beamcalc/internal/load"
)

// System is the immutable set of equilibrium equations of one load case:
// ΣFx, ΣFy, ΣM about a reference point, then one moment equation per
// internal hinge.
type System struct {
	about     float64
	equations []*Equation
	unknowns  []load.Unknown
	reactions []*load.Reaction
	hinges    []*load.Hinge
}

// About is the reference point of the global moment equation
func (s *System) About() float64 { return s.about }

// Equations returns the equations in order. They must not be modified.
func (s *System) Equations() []*Equation {
	out := make([]*Equation, len(s.equations))
	copy(out, s.equations)
	return out
}

// Unknowns returns the reaction unknowns in the order reactions appear
func (s *System) Unknowns() []load.Unknown {
	out := make([]load.Unknown, len(s.unknowns))
	copy(out, s.unknowns)
	return out
}

// Reactions returns the supports referenced by the system
func (s *System) Reactions() []*load.Reaction {
	out := make([]*load.Reaction, len(s.reactions))
	copy(out, s.reactions)
	return out
}

// Hinges returns the internal hinges that contributed an equation
func (s *System) Hinges() []*load.Hinge {
	out := make([]*load.Hinge, len(s.hinges))
	copy(out, s.hinges)
	return out
}

type options struct {
	about float64
}

// Option configures Build
type Option func(*options)

// About sets the reference point for the global moment equation
func About(x float64) Option {
	return func(o *options) {
		o.about = x
	}
}

// Build accumulates the equilibrium equations of loads in one pass.
func Build(loads []load.Load, opts ...Option) (*System, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.about) || math.IsInf(o.about, 0) {
		return nil, fmt.Errorf("%w: moment reference %v is not finite", load.ErrInvalidInput, o.about)
	}

	sys := &System{about: o.about}
	fx := newEquation("Fx")
	fy := newEquation("Fy")
	m := newEquation(fmt.Sprintf("M(%g)", o.about))
	about := Rat(o.about)

	reactions := make(map[*load.Reaction]bool)
	labels := make(map[string]bool)

	for i, ld := range loads {
		if err := CheckLoad(i, ld); err != nil {
			return nil, err
		}
		switch v := ld.(type) {
		case *load.PointLoad:
			fx.addConst(Rat(v.X))
			fy.addConst(Rat(v.Y))
		case *load.UDL:
			fy.addConst(Rat(v.NetLoad))
		case *load.UVL:
			fy.addConst(Rat(v.NetLoad))
		case *load.PointMoment:
		case *load.Reaction:
			if reactions[v] {
				return nil, fmt.Errorf("%w: reaction %s listed twice", load.ErrInvalidInput, v.Label)
			}
			if labels[v.Label] {
				return nil, fmt.Errorf("%w: duplicate reaction label %s", load.ErrInvalidInput, v.Label)
			}
			reactions[v] = true
			labels[v.Label] = true
			sys.reactions = append(sys.reactions, v)

			for _, u := range v.Unknowns() {
				sys.unknowns = append(sys.unknowns, u)
				switch u.Component {
				case load.ComponentX:
					fx.addUnknown(u, big.NewRat(1, 1))
				case load.ComponentY:
					fy.addUnknown(u, big.NewRat(1, 1))
				}
			}
		case *load.Hinge:
			sys.hinges = append(sys.hinges, v)
			continue
		}
		addMoment(m, ld, about)
	}

	sys.equations = []*Equation{fx, fy, m}
	for _, h := range sys.hinges {
		sys.equations = append(sys.equations, hingeEquation(h, loads))
	}
	return sys, nil
}

// CheckLoad rejects nil entries and anything outside the known variants.
// i is the element index used in the error message.
func CheckLoad(i int, ld load.Load) error {
	var isNil bool
	switch v := ld.(type) {
	case *load.PointLoad:
		isNil = v == nil
	case *load.UDL:
		isNil = v == nil
	case *load.UVL:
		isNil = v == nil
	case *load.PointMoment:
		isNil = v == nil
	case *load.Reaction:
		isNil = v == nil
	case *load.Hinge:
		isNil = v == nil
	default:
		return fmt.Errorf("%w: element %d (%T)", load.ErrUnrecognizedLoad, i, ld)
	}
	if isNil {
		return fmt.Errorf("%w: element %d is nil", load.ErrUnrecognizedLoad, i)
	}
	return nil
}

// addMoment adds the moment of ld about ref, counter-clockwise positive.
// ld must have passed CheckLoad.
func addMoment(eq *Equation, ld load.Load, ref *big.Rat) {
	switch v := ld.(type) {
	case *load.PointLoad:
		eq.addConst(mul(sub(Rat(v.Pos), ref), Rat(v.Y)))
	case *load.UDL:
		eq.addConst(mul(sub(Rat(v.Pos), ref), Rat(v.NetLoad)))
	case *load.UVL:
		eq.addConst(mul(sub(Rat(v.Pos), ref), Rat(v.NetLoad)))
	case *load.PointMoment:
		eq.addConst(Rat(v.Mom))
	case *load.Reaction:
		for _, u := range v.Unknowns() {
			switch u.Component {
			case load.ComponentY:
				eq.addUnknown(u, sub(Rat(v.Pos), ref))
			case load.ComponentMoment:
				eq.addUnknown(u, big.NewRat(1, 1))
			}
		}
	}
}

// hingeEquation takes moments about the hinge of the loads strictly on
// its side. Distributed loads crossing the hinge are cut there.
func hingeEquation(h *load.Hinge, loads []load.Load) *Equation {
	eq := newEquation(fmt.Sprintf("M_hinge(%g,%s)", h.Pos, h.Side))
	ref := Rat(h.Pos)

	for _, ld := range loads {
		switch v := ld.(type) {
		case *load.UDL:
			left, right := v.Split(h.Pos)
			if part := pickUDL(h.Side, left, right); part != nil {
				addMoment(eq, part, ref)
			}
		case *load.UVL:
			left, right := v.Split(h.Pos)
			if part := pickUVL(h.Side, left, right); part != nil {
				addMoment(eq, part, ref)
			}
		case *load.Hinge:
		default:
			if h.Holds(ld.Position()) {
				addMoment(eq, ld, ref)
			}
		}
	}
	return eq
}

func pickUDL(side load.Side, left, right *load.UDL) *load.UDL {
	if side == load.Left {
		return left
	}
	return right
}

func pickUVL(side load.Side, left, right *load.UVL) *load.UVL {
	if side == load.Left {
		return left
	}
	return right
}

// Resultant sums forces and moments about a point using solved reaction
// values. For a solved beam all three are zero for any about.
func Resultant(loads []load.Load, about float64) (load.Force, float64, error) {
	var f load.Force
	var m float64
	for i, ld := range loads {
		if err := CheckLoad(i, ld); err != nil {
			return load.Force{}, 0, err
		}
		n := ld.Net()
		f.X += n.X
		f.Y += n.Y
		m += (ld.Position() - about) * n.Y
		switch v := ld.(type) {
		case *load.PointMoment:
			m += v.Mom
		case *load.Reaction:
			m += v.MomVal
		}
	}
	return f, m, nil
}
