package semimath

import "math"

// Order selects which Fermi–Dirac integral to evaluate.
type Order int

const (
	// MinusHalf selects F₋½, the order −1/2 integral.
	MinusHalf Order = iota
	// Half selects F½, the order +1/2 integral.
	Half
)

// degenerateThreshold splits the two analytic branches of the
// approximations: the exponential form holds for x < 2, the power form
// for x >= 2.
const degenerateThreshold = 2.0

// FermiDiracHalf approximates the Fermi–Dirac integral of order +1/2,
//
//	F½(x) = (2/√π) ∫₀^∞ √t / (1 + exp(t−x)) dt,
//
// normalized so that F½(x) → eˣ for x → −∞.
//
// Branches:
//
//	x < 2:  eˣ / (1 + 0.27·eˣ)            (Boltzmann with degeneracy correction)
//	x ≥ 2:  4/(3√π) · (x² + π²/6)^¾       (Sommerfeld expansion)
//
// Accuracy is within ~10% near the branch point and improves rapidly
// toward both limits; sufficient for density-of-states estimates.
func FermiDiracHalf(x float64) float64 {
	if x < degenerateThreshold {
		e := math.Exp(x)
		return e / (1.0 + 0.27*e)
	}

	return 4.0 / (3.0 * math.Sqrt(math.Pi)) * math.Pow(x*x+math.Pi*math.Pi/6.0, 0.75)
}

// FermiDiracMinusHalf approximates the Fermi–Dirac integral of order −1/2.
// Since F₋½ = dF½/dx, the branches are the derivatives of the F½ forms:
//
//	x < 2:  eˣ / (1 + 0.27·eˣ)²
//	x ≥ 2:  2x/√π · (x² + π²/6)^(−¼)
func FermiDiracMinusHalf(x float64) float64 {
	if x < degenerateThreshold {
		e := math.Exp(x)
		d := 1.0 + 0.27*e

		return e / (d * d)
	}

	return 2.0 * x / math.Sqrt(math.Pi) * math.Pow(x*x+math.Pi*math.Pi/6.0, -0.25)
}

// FermiDirac evaluates the Fermi–Dirac integral of the given order at x.
// Only MinusHalf and Half are supported; any other order returns
// ErrUnsupportedOrder.
func FermiDirac(order Order, x float64) (float64, error) {
	switch order {
	case MinusHalf:
		return FermiDiracMinusHalf(x), nil
	case Half:
		return FermiDiracHalf(x), nil
	default:
		return 0, ErrUnsupportedOrder
	}
}
