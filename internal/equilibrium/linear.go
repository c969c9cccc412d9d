package equilibrium

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/alexiusacademia/beamcalc/internal/load"
)

// Rat converts a float to the rational of its shortest decimal form, so
// 0.1 becomes exactly 1/10 rather than the nearest binary fraction.
func Rat(v float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
	if !ok {
		// unreachable for finite input
		return new(big.Rat).SetFloat64(v)
	}
	return r
}

// Equation is  Σ Coeffs[u]·u + Const = 0  over the reaction unknowns
type Equation struct {
	Name   string
	Coeffs map[load.Unknown]*big.Rat
	Const  *big.Rat
}

func newEquation(name string) *Equation {
	return &Equation{
		Name:   name,
		Coeffs: make(map[load.Unknown]*big.Rat),
		Const:  new(big.Rat),
	}
}

func (e *Equation) addConst(v *big.Rat) {
	e.Const.Add(e.Const, v)
}

func (e *Equation) addUnknown(u load.Unknown, coef *big.Rat) {
	c, ok := e.Coeffs[u]
	if !ok {
		c = new(big.Rat)
		e.Coeffs[u] = c
	}
	c.Add(c, coef)
}

// Coeff returns the coefficient of u, zero when absent
func (e *Equation) Coeff(u load.Unknown) *big.Rat {
	if c, ok := e.Coeffs[u]; ok {
		return new(big.Rat).Set(c)
	}
	return new(big.Rat)
}

// Format prints the equation with unknowns in the given order
func (e *Equation) Format(order []load.Unknown) string {
	var parts []string
	for _, u := range order {
		c, ok := e.Coeffs[u]
		if !ok || c.Sign() == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s*%s", c.FloatString(4), u.Name()))
	}
	if e.Const.Sign() != 0 || len(parts) == 0 {
		parts = append(parts, e.Const.FloatString(4))
	}
	return fmt.Sprintf("%s: %s = 0", e.Name, strings.Join(parts, " + "))
}

func mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}
