// Package load holds the load model of a 2D beam.
//
// Sign conventions: +x to the right along the beam, +y upward,
// counter-clockwise moments positive. Units: m, kN, kNm, degrees.
package load

import (
	"errors"
	"math"
)

var (
	// ErrInvalidInput marks malformed load definitions
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognizedLoad is returned for collection elements that are not
	// one of the known load kinds
	ErrUnrecognizedLoad = errors.New("unrecognized load type")

	// ErrAlreadySolved is returned when solved values are assigned twice
	ErrAlreadySolved = errors.New("reaction already solved")
)

// Kind identifies a load variant
type Kind int

const (
	KindPointLoad Kind = iota
	KindUDL
	KindUVL
	KindPointMoment
	KindReaction
	KindHinge
)

func (k Kind) String() string {
	switch k {
	case KindPointLoad:
		return "point load"
	case KindUDL:
		return "UDL"
	case KindUVL:
		return "UVL"
	case KindPointMoment:
		return "point moment"
	case KindReaction:
		return "reaction"
	case KindHinge:
		return "hinge"
	}
	return "unknown"
}

// Force is a force decomposed along the beam axes (kN)
type Force struct {
	X float64
	Y float64
}

// Load is the closed set of things placed on a beam: PointLoad, UDL, UVL,
// PointMoment, Reaction and Hinge.
type Load interface {
	Kind() Kind

	// Position is where the net equivalent force acts (m)
	Position() float64

	// Net is the net equivalent force; zero for moments and hinges
	Net() Force

	// Unknowns lists the reaction components this item contributes
	Unknowns() []Unknown

	sealed()
}

// Precision is the number of decimals point load components are rounded to
const Precision = 4

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func sign(inverted bool) float64 {
	if inverted {
		return -1
	}
	return 1
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
