package input

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/load"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
	"github.com/alexiusacademia/beamcalc/internal/section"
)

// Build creates a fresh beam and load list for one load combination. Each
// load is scaled by the combination's factor for its case; loads whose
// factor is zero are left out. Supports and hinges are always present.
// Every call returns new reactions, so one definition can be analysed
// under many combinations.
func (d *Definition) Build(combo nscp.LoadCombination, opts ...beam.Option) (*beam.Beam, []load.Load, error) {
	b, err := d.newBeam(opts...)
	if err != nil {
		return nil, nil, err
	}

	var loads []load.Load
	for i, spec := range d.Loads {
		factor := combo.Factor(spec.Case)
		if factor == 0 {
			continue
		}
		ld, err := spec.build(d.Length, factor)
		if err != nil {
			return nil, nil, fmt.Errorf("load %d: %w", i, err)
		}
		loads = append(loads, ld)
	}

	for _, s := range d.Supports {
		r, err := load.NewReaction(s.At.Resolve(d.Length), s.Type, s.Label)
		if err != nil {
			return nil, nil, fmt.Errorf("support %s: %w", s.Label, err)
		}
		loads = append(loads, r)
	}
	for i, h := range d.Hinges {
		hinge, err := load.NewHinge(h.At.Resolve(d.Length), h.Side)
		if err != nil {
			return nil, nil, fmt.Errorf("hinge %d: %w", i, err)
		}
		loads = append(loads, hinge)
	}
	return b, loads, nil
}

// CombinationsToCheck returns the combinations named in the definition,
// or every NSCP basic combination when none are named
func (d *Definition) CombinationsToCheck() []nscp.LoadCombination {
	if len(d.Combinations) == 0 {
		return nscp.LoadCombinations
	}
	out := make([]nscp.LoadCombination, 0, len(d.Combinations))
	for _, id := range d.Combinations {
		if c, err := nscp.Find(nscp.LoadCombinations, id); err == nil {
			out = append(out, c)
		}
	}
	return out
}

func (d *Definition) newBeam(opts ...beam.Option) (*beam.Beam, error) {
	base := []beam.Option{beam.WithAbout(d.About.Resolve(d.Length))}

	if m := d.Material; m != nil {
		switch {
		case m.E > 0:
			base = append(base, beam.WithElasticity(nscp.ModulusKPa(m.E)))
		case m.Fc > 0:
			base = append(base, beam.WithElasticity(nscp.ModulusKPa(nscp.Ec(m.Fc))))
		}
	}
	if s := d.Section; s != nil {
		var sec *section.Section
		if len(s.Vertices) > 0 {
			sec = &section.Section{Name: s.Name, Vertices: s.Vertices}
		} else {
			sec = section.Rectangle(s.Width, s.Height)
			if s.Name != "" {
				sec.Name = s.Name
			}
		}
		base = append(base, beam.WithSection(sec))
	}

	return beam.New(d.Length, append(base, opts...)...)
}

func (s LoadSpec) build(length, factor float64) (load.Load, error) {
	switch strings.ToLower(s.Type) {
	case TypePoint:
		angle := 90.0
		if s.Angle != nil {
			angle = *s.Angle
		}
		down, err := s.down()
		if err != nil {
			return nil, err
		}
		return load.NewPointLoad(s.At.Resolve(length), s.Magnitude*factor, angle, down)

	case TypeUDL:
		down, err := s.down()
		if err != nil {
			return nil, err
		}
		start, span := s.extent(length)
		return load.NewUDL(start, s.Intensity*factor, span, down)

	case TypeUVL:
		down, err := s.down()
		if err != nil {
			return nil, err
		}
		start, span := s.extent(length)
		return load.NewUVL(start, s.StartIntensity*factor, span, s.EndIntensity*factor, down)

	case TypeMoment:
		var ccw bool
		switch strings.ToLower(strings.TrimSpace(s.Direction)) {
		case "", "ccw", "counterclockwise", "counter-clockwise":
			ccw = true
		case "cw", "clockwise":
		default:
			return nil, fmt.Errorf("%w: moment direction %q is not ccw or cw", ErrDefinition, s.Direction)
		}
		return load.NewPointMoment(s.At.Resolve(length), s.Magnitude*factor, ccw)
	}
	return nil, fmt.Errorf("%w: unknown load type %q", ErrDefinition, s.Type)
}

func (s LoadSpec) down() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s.Direction)) {
	case "", "down":
		return true, nil
	case "up":
		return false, nil
	}
	return false, fmt.Errorf("%w: direction %q is not down or up", ErrDefinition, s.Direction)
}

func (s LoadSpec) extent(length float64) (start, span float64) {
	start = s.Start.Resolve(length)
	if s.End.IsSet() {
		return start, s.End.Resolve(length) - start
	}
	return start, s.Span.Resolve(length)
}
