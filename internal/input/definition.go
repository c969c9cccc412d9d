// Package input reads beam definitions from YAML (or JSON) files.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexiusacademia/beamcalc/internal/nscp"
	"github.com/alexiusacademia/beamcalc/internal/section"
	"gopkg.in/yaml.v3"
)

// ErrDefinition is returned for malformed or inconsistent definitions
var ErrDefinition = errors.New("invalid beam definition")

// Load type names
const (
	TypePoint  = "point"
	TypeUDL    = "udl"
	TypeUVL    = "uvl"
	TypeMoment = "moment"
)

// Definition is a beam with its supports, hinges and loads
type Definition struct {
	Title  string   `yaml:"title" json:"title"`
	Length float64  `yaml:"length" json:"length"` // m
	About  Position `yaml:"about" json:"about"`   // moment reference, default 0

	Material *Material     `yaml:"material,omitempty" json:"material,omitempty"`
	Section  *SectionSpec  `yaml:"section,omitempty" json:"section,omitempty"`
	Supports []SupportSpec `yaml:"supports" json:"supports"`
	Hinges   []HingeSpec   `yaml:"hinges,omitempty" json:"hinges,omitempty"`
	Loads    []LoadSpec    `yaml:"loads" json:"loads"`

	// Combinations restricts the envelope to these NSCP combination IDs
	Combinations []string `yaml:"combinations,omitempty" json:"combinations,omitempty"`
}

// Material gives the modulus directly or from the concrete strength
type Material struct {
	E  float64 `yaml:"e,omitempty" json:"e,omitempty"`   // MPa
	Fc float64 `yaml:"fc,omitempty" json:"fc,omitempty"` // MPa, E = 4700√f'c
}

// SectionSpec is a rectangle or a polygon in mm
type SectionSpec struct {
	Name     string          `yaml:"name,omitempty" json:"name,omitempty"`
	Width    float64         `yaml:"width,omitempty" json:"width,omitempty"`
	Height   float64         `yaml:"height,omitempty" json:"height,omitempty"`
	Vertices []section.Point `yaml:"vertices,omitempty" json:"vertices,omitempty"`
}

// SupportSpec is a roller, hinge (pinned) or fixed support
type SupportSpec struct {
	Label string   `yaml:"label" json:"label"`
	Type  string   `yaml:"type" json:"type"`
	At    Position `yaml:"at" json:"at"`
}

// HingeSpec is an internal hinge; Side picks the part of the beam its
// moment equation is taken over
type HingeSpec struct {
	At   Position `yaml:"at" json:"at"`
	Side string   `yaml:"side,omitempty" json:"side,omitempty"`
}

// LoadSpec is one applied load. Which fields apply depends on Type.
type LoadSpec struct {
	Type string `yaml:"type" json:"type"`
	Case string `yaml:"case,omitempty" json:"case,omitempty"` // D, L, Lr, W, E, R

	// point and moment
	At        Position `yaml:"at,omitempty" json:"at,omitempty"`
	Magnitude float64  `yaml:"magnitude,omitempty" json:"magnitude,omitempty"` // kN or kNm
	Angle     *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`         // degrees from +x, default 90

	// udl and uvl
	Start Position `yaml:"start,omitempty" json:"start,omitempty"`
	Span  Position `yaml:"span,omitempty" json:"span,omitempty"`
	End   Position `yaml:"end,omitempty" json:"end,omitempty"`

	Intensity      float64 `yaml:"intensity,omitempty" json:"intensity,omitempty"`             // kN/m
	StartIntensity float64 `yaml:"start_intensity,omitempty" json:"start_intensity,omitempty"` // kN/m
	EndIntensity   float64 `yaml:"end_intensity,omitempty" json:"end_intensity,omitempty"`     // kN/m

	// down/up for forces (default down), ccw/cw for moments (default ccw)
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// Decode reads a definition. JSON documents are valid YAML and decode the
// same way.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDefinition)
		}
		return nil, fmt.Errorf("%w: %v", ErrDefinition, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads a definition from disk
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Validate checks what can be checked without building the loads
func (d *Definition) Validate() error {
	if d.Length <= 0 {
		return fmt.Errorf("%w: length must be positive", ErrDefinition)
	}
	if len(d.Supports) == 0 {
		return fmt.Errorf("%w: at least one support is required", ErrDefinition)
	}

	for i, s := range d.Supports {
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("%w: support %d has no label", ErrDefinition, i)
		}
		if !s.At.IsSet() {
			return fmt.Errorf("%w: support %s has no position", ErrDefinition, s.Label)
		}
	}
	for i, h := range d.Hinges {
		if !h.At.IsSet() {
			return fmt.Errorf("%w: hinge %d has no position", ErrDefinition, i)
		}
	}

	for i, ld := range d.Loads {
		if !nscp.ValidCase(ld.Case) {
			return fmt.Errorf("%w: load %d: unknown load case %q", ErrDefinition, i, ld.Case)
		}
		switch strings.ToLower(ld.Type) {
		case TypePoint, TypeMoment:
			if !ld.At.IsSet() {
				return fmt.Errorf("%w: load %d: %s needs at", ErrDefinition, i, ld.Type)
			}
		case TypeUDL, TypeUVL:
			if !ld.Start.IsSet() {
				return fmt.Errorf("%w: load %d: %s needs start", ErrDefinition, i, ld.Type)
			}
			if ld.Span.IsSet() == ld.End.IsSet() {
				return fmt.Errorf("%w: load %d: %s needs exactly one of span or end", ErrDefinition, i, ld.Type)
			}
		default:
			return fmt.Errorf("%w: load %d: unknown type %q", ErrDefinition, i, ld.Type)
		}
	}

	for _, id := range d.Combinations {
		if _, err := nscp.Find(nscp.LoadCombinations, id); err != nil {
			return fmt.Errorf("%w: %v", ErrDefinition, err)
		}
	}
	return nil
}
