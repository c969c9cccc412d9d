package input

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Position is a coordinate along the beam. It is written as a number, a
// numeric string, "L" for the beam length or "L/<n>" for a fraction of it.
type Position struct {
	raw     string
	value   float64
	divisor float64 // non-zero when relative to the length
	set     bool
}

// At returns a fixed position
func At(x float64) Position {
	return Position{raw: fmt.Sprint(x), value: x, set: true}
}

// ParsePosition parses the textual forms accepted in definition files
func ParsePosition(s string) (Position, error) {
	raw := strings.TrimSpace(s)
	p := Position{raw: raw, set: true}

	upper := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	switch {
	case upper == "L":
		p.divisor = 1
	case strings.HasPrefix(upper, "L/"):
		n, err := cast.ToFloat64E(upper[2:])
		if err != nil || n <= 0 || math.IsInf(n, 0) {
			return Position{}, fmt.Errorf("%w: position %q: divisor must be a positive number", ErrDefinition, s)
		}
		p.divisor = n
	default:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return Position{}, fmt.Errorf("%w: position %q is not a number, L or L/<n>", ErrDefinition, s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Position{}, fmt.Errorf("%w: position %q is not finite", ErrDefinition, s)
		}
		p.value = v
	}
	return p, nil
}

// UnmarshalYAML accepts any scalar
func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: position must be a scalar", ErrDefinition, node.Line)
	}
	v, err := ParsePosition(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = v
	return nil
}

// MarshalYAML writes the position back in the form it was given
func (p Position) MarshalYAML() (interface{}, error) {
	if p.divisor != 0 {
		return p.raw, nil
	}
	return p.value, nil
}

// IsSet reports whether the position appeared in the file
func (p Position) IsSet() bool { return p.set }

// Resolve returns the coordinate for a beam of the given length
func (p Position) Resolve(length float64) float64 {
	if p.divisor != 0 {
		return length / p.divisor
	}
	return p.value
}

func (p Position) String() string {
	return p.raw
}
