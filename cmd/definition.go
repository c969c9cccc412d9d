package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamcalc/internal/input"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// Beam definition, from a file or from flags
var (
	defFile     string
	defLength   float64
	defSupports []string
	defHinges   []string
	defPoints   []string
	defUDLs     []string
	defUVLs     []string
	defMoments  []string
)

func addDefinitionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&defFile, "file", "f", "", "Beam definition file (YAML or JSON)")
	cmd.Flags().Float64VarP(&defLength, "length", "L", 0, "Beam length (m) when no file is given")
	cmd.Flags().StringArrayVarP(&defSupports, "support", "s", nil, "Support label,type,at (type: roller, hinge, fixed)")
	cmd.Flags().StringArrayVar(&defHinges, "hinge", nil, "Internal hinge at[,side] (side: left, right)")
	cmd.Flags().StringArrayVarP(&defPoints, "point", "p", nil, "Point load at,magnitude[,angle[,case]] (kN, downward)")
	cmd.Flags().StringArrayVarP(&defUDLs, "udl", "u", nil, "UDL start,end,intensity[,case] (kN/m, downward)")
	cmd.Flags().StringArrayVar(&defUVLs, "uvl", nil, "UVL start,end,start intensity,end intensity[,case] (kN/m, downward)")
	cmd.Flags().StringArrayVarP(&defMoments, "moment", "m", nil, "Point moment at,magnitude[,cw|ccw[,case]] (kN·m)")
}

// loadDefinition reads --file, or assembles a definition from the inline
// flags. Positions accept L and L/<n> in both forms.
func loadDefinition() (*input.Definition, error) {
	if defFile != "" {
		return input.LoadFile(defFile)
	}
	if defLength <= 0 {
		return nil, fmt.Errorf("provide a definition --file or a beam --length")
	}

	def := &input.Definition{Length: defLength}

	for _, s := range defSupports {
		f, err := fields(s, 3, 3, "support")
		if err != nil {
			return nil, err
		}
		at, err := input.ParsePosition(f[2])
		if err != nil {
			return nil, err
		}
		def.Supports = append(def.Supports, input.SupportSpec{Label: f[0], Type: f[1], At: at})
	}

	for _, s := range defHinges {
		f, err := fields(s, 1, 2, "hinge")
		if err != nil {
			return nil, err
		}
		at, err := input.ParsePosition(f[0])
		if err != nil {
			return nil, err
		}
		h := input.HingeSpec{At: at}
		if len(f) > 1 {
			h.Side = f[1]
		}
		def.Hinges = append(def.Hinges, h)
	}

	for _, s := range defPoints {
		f, err := fields(s, 2, 4, "point")
		if err != nil {
			return nil, err
		}
		spec := input.LoadSpec{Type: input.TypePoint}
		if spec.At, err = input.ParsePosition(f[0]); err != nil {
			return nil, err
		}
		if spec.Magnitude, err = number(f[1]); err != nil {
			return nil, err
		}
		if len(f) > 2 && f[2] != "" {
			angle, err := number(f[2])
			if err != nil {
				return nil, err
			}
			spec.Angle = &angle
		}
		if len(f) > 3 {
			spec.Case = f[3]
		}
		def.Loads = append(def.Loads, spec)
	}

	for _, s := range defUDLs {
		f, err := fields(s, 3, 4, "udl")
		if err != nil {
			return nil, err
		}
		spec := input.LoadSpec{Type: input.TypeUDL}
		if spec.Start, err = input.ParsePosition(f[0]); err != nil {
			return nil, err
		}
		if spec.End, err = input.ParsePosition(f[1]); err != nil {
			return nil, err
		}
		if spec.Intensity, err = number(f[2]); err != nil {
			return nil, err
		}
		if len(f) > 3 {
			spec.Case = f[3]
		}
		def.Loads = append(def.Loads, spec)
	}

	for _, s := range defUVLs {
		f, err := fields(s, 4, 5, "uvl")
		if err != nil {
			return nil, err
		}
		spec := input.LoadSpec{Type: input.TypeUVL}
		if spec.Start, err = input.ParsePosition(f[0]); err != nil {
			return nil, err
		}
		if spec.End, err = input.ParsePosition(f[1]); err != nil {
			return nil, err
		}
		if spec.StartIntensity, err = number(f[2]); err != nil {
			return nil, err
		}
		if spec.EndIntensity, err = number(f[3]); err != nil {
			return nil, err
		}
		if len(f) > 4 {
			spec.Case = f[4]
		}
		def.Loads = append(def.Loads, spec)
	}

	for _, s := range defMoments {
		f, err := fields(s, 2, 4, "moment")
		if err != nil {
			return nil, err
		}
		spec := input.LoadSpec{Type: input.TypeMoment}
		if spec.At, err = input.ParsePosition(f[0]); err != nil {
			return nil, err
		}
		if spec.Magnitude, err = number(f[1]); err != nil {
			return nil, err
		}
		if len(f) > 2 {
			spec.Direction = f[2]
		}
		if len(f) > 3 {
			spec.Case = f[3]
		}
		def.Loads = append(def.Loads, spec)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

func fields(s string, lo, hi int, what string) ([]string, error) {
	f := strings.Split(s, ",")
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}
	if len(f) < lo || len(f) > hi {
		return nil, fmt.Errorf("--%s %q: expected %d to %d comma-separated values", what, s, lo, hi)
	}
	return f, nil
}

func number(s string) (float64, error) {
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
