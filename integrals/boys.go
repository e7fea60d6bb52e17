package integrals

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// boys evaluates the Boys function
//
//	F_n(x) = int_0^1 t^(2n) exp(-x t^2) dt
//
// through the regularized lower incomplete gamma function P:
//
//	F_n(x) = Gamma(n+1/2) P(n+1/2, x) / (2 x^(n+1/2))
//
// For x near zero the quotient degenerates, so the two leading terms of the
// Taylor series around x = 0 are used instead.
func boys(n int, x float64) float64 {
	a := float64(n) + 0.5
	if x < 1e-12 {
		return 1/(2*float64(n)+1) - x/(2*float64(n)+3)
	}
	return math.Gamma(a) * mathext.GammaIncReg(a, x) / (2 * math.Pow(x, a))
}
