package section

import (
	"fmt"
	"math"
)

// Section is a beam cross-section outline. Coordinates are in mm in a
// local system where Y points up (towards the loaded face) and X to the
// right. The origin can be anywhere.
type Section struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Vertices of a simple polygon, counter-clockwise preferred
	Vertices []Point `yaml:"vertices" json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `yaml:"x" json:"x"` // mm
	Y float64 `yaml:"y" json:"y"` // mm
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moment of area about the horizontal centroidal axis (mm⁴)
	Ixx float64

	// Extreme fibre distances from the centroid (mm)
	CTop    float64
	CBottom float64

	// Elastic section moduli Ixx/c (mm³)
	STop    float64
	SBottom float64
}

// Rectangle returns a b×h section with its bottom-left corner at the origin
func Rectangle(b, h float64) *Section {
	return &Section{
		Name: fmt.Sprintf("%gx%g", b, h),
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: b, Y: 0},
			{X: b, Y: h},
			{X: 0, Y: h},
		},
	}
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	for i, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return &ValidationError{msg: fmt.Sprintf("vertex %d is not finite", i+1)}
		}
	}
	area, _, _ := s.calculateAreaAndCentroid()
	if area == 0 {
		return &ValidationError{"section has zero area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
