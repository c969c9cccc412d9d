package load

import (
	"fmt"
	"strings"
)

// Support is the restraint a reaction provides
type Support int

const (
	Roller Support = iota
	Pinned
	Fixed
)

// ParseSupport accepts roller/r, hinge/h/pin/pinned and fixed/f
func ParseSupport(s string) (Support, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roller", "r":
		return Roller, nil
	case "hinge", "h", "pin", "pinned":
		return Pinned, nil
	case "fixed", "f":
		return Fixed, nil
	}
	return 0, fmt.Errorf("%w: unidentified support type %q", ErrInvalidInput, s)
}

func (s Support) String() string {
	switch s {
	case Roller:
		return "roller"
	case Pinned:
		return "hinge"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Component is one force or moment direction of a reaction
type Component int

const (
	ComponentX Component = iota
	ComponentY
	ComponentMoment
)

func (c Component) String() string {
	switch c {
	case ComponentX:
		return "x"
	case ComponentY:
		return "y"
	case ComponentMoment:
		return "moment"
	}
	return "unknown"
}

// Unknown is a reaction component to be solved for. It is comparable and
// used as a map key.
type Unknown struct {
	Reaction  *Reaction
	Component Component
}

// Name follows the R_A_x, R_A_y, M_A scheme
func (u Unknown) Name() string {
	label := ""
	if u.Reaction != nil {
		label = u.Reaction.Label
	}
	switch u.Component {
	case ComponentX:
		return fmt.Sprintf("R_%s_x", label)
	case ComponentY:
		return fmt.Sprintf("R_%s_y", label)
	default:
		return fmt.Sprintf("M_%s", label)
	}
}

// Reaction is a support. Its values are zero until a solver assigns them.
type Reaction struct {
	Pos     float64 // m
	Support Support
	Label   string

	RxVal  float64 // kN
	RyVal  float64 // kN
	MomVal float64 // kNm, counter-clockwise positive

	solved bool
}

// NewReaction creates a support at pos
func NewReaction(pos float64, support, label string) (*Reaction, error) {
	st, err := ParseSupport(support)
	if err != nil {
		return nil, err
	}
	if !finite(pos) {
		return nil, fmt.Errorf("%w: reaction position must be finite", ErrInvalidInput)
	}
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: reaction needs a label", ErrInvalidInput)
	}
	return &Reaction{Pos: pos, Support: st, Label: label}, nil
}

func (r *Reaction) Kind() Kind        { return KindReaction }
func (r *Reaction) Position() float64 { return r.Pos }
func (r *Reaction) sealed()           {}

// Net of a reaction is its solved force, zero before solving
func (r *Reaction) Net() Force { return Force{X: r.RxVal, Y: r.RyVal} }

// Unknowns depend on the support type
func (r *Reaction) Unknowns() []Unknown {
	switch r.Support {
	case Roller:
		return []Unknown{{r, ComponentY}}
	case Pinned:
		return []Unknown{{r, ComponentX}, {r, ComponentY}}
	default:
		return []Unknown{{r, ComponentX}, {r, ComponentY}, {r, ComponentMoment}}
	}
}

// Has reports whether the support restrains c
func (r *Reaction) Has(c Component) bool {
	for _, u := range r.Unknowns() {
		if u.Component == c {
			return true
		}
	}
	return false
}

// Solved reports whether values were assigned
func (r *Reaction) Solved() bool { return r.solved }

// Value returns the solved value of component c
func (r *Reaction) Value(c Component) float64 {
	switch c {
	case ComponentX:
		return r.RxVal
	case ComponentY:
		return r.RyVal
	default:
		return r.MomVal
	}
}

// Assign stores solved values for the reaction's own unknowns. Components
// the support does not restrain stay zero. A reaction can only be
// assigned once.
func (r *Reaction) Assign(values map[Component]float64) error {
	if r.solved {
		return fmt.Errorf("%w: %s", ErrAlreadySolved, r.Label)
	}
	for _, u := range r.Unknowns() {
		v := values[u.Component]
		switch u.Component {
		case ComponentX:
			r.RxVal = v
		case ComponentY:
			r.RyVal = v
		case ComponentMoment:
			r.MomVal = v
		}
	}
	r.solved = true
	return nil
}

// Side selects which loads a hinge equation takes
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// ParseSide accepts l/left and r/right
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: unknown hinge side %q, use 'l' for left and 'r' for right", ErrInvalidInput, s)
}

// Hinge is an internal hinge. The bending moment there is zero, which
// gives one extra equation using the loads on Side only.
type Hinge struct {
	Pos  float64
	Side Side
}

// NewHinge creates an internal hinge; an empty side means left
func NewHinge(pos float64, side string) (*Hinge, error) {
	sd, err := ParseSide(side)
	if err != nil {
		return nil, err
	}
	if !finite(pos) {
		return nil, fmt.Errorf("%w: hinge position must be finite", ErrInvalidInput)
	}
	return &Hinge{Pos: pos, Side: sd}, nil
}

func (h *Hinge) Kind() Kind          { return KindHinge }
func (h *Hinge) Position() float64   { return h.Pos }
func (h *Hinge) Net() Force          { return Force{} }
func (h *Hinge) Unknowns() []Unknown { return nil }
func (h *Hinge) sealed()             {}

// Holds reports whether x is strictly on the hinge's designated side
func (h *Hinge) Holds(x float64) bool {
	if h.Side == Left {
		return x < h.Pos
	}
	return x > h.Pos
}
