package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa
)

// Ec calculates the modulus of elasticity of normal-weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c (MPa)
func Ec(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return 4700 * math.Sqrt(fc)
}

// ModulusKPa converts a modulus in MPa to kN/m² so that E·I is in kN·m²
// when I is in m⁴
func ModulusKPa(mpa float64) float64 {
	return mpa * 1000
}
