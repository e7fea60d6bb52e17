package integrals

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/******************************************************************************

McMurchie-Davidson machinery begins here.

The product of two cartesian Gaussians is expanded into Hermite Gaussians;
hermiteExpansion computes the expansion coefficients E^{ij}_t and
coulombAuxiliary the Hermite Coulomb integrals R_tuv needed to contract that
expansion against 1/r operators. Both follow the recurrences as presented in

	[1] Goings, J. Integrals. https://joshuagoings.com/2017/04/28/integrals/

******************************************************************************/

// hermiteExpansion returns the Hermite expansion coefficient E^{ij}_t for two
// 1D Gaussians with exponents a and b whose centers are dist apart along the
// axis, and cartesian powers i and j on that axis.
func hermiteExpansion(i, j, t int, dist, a, b float64) float64 {
	p := a + b
	q := a * b / p

	switch {
	case t < 0 || t > i+j:
		return 0
	case i == 0 && j == 0 && t == 0:
		return math.Exp(-q * dist * dist)
	case j == 0:
		// decrement i
		return 1/(2*p)*hermiteExpansion(i-1, j, t-1, dist, a, b) -
			q*dist/a*hermiteExpansion(i-1, j, t, dist, a, b) +
			float64(t+1)*hermiteExpansion(i-1, j, t+1, dist, a, b)
	default:
		// decrement j
		return 1/(2*p)*hermiteExpansion(i, j-1, t-1, dist, a, b) +
			q*dist/b*hermiteExpansion(i, j-1, t, dist, a, b) +
			float64(t+1)*hermiteExpansion(i, j-1, t+1, dist, a, b)
	}
}

// coulombAuxiliary returns the Hermite Coulomb integral R(t,u,v,n) for
// exponent p and displacement diff. The recursion decrements the first
// nonzero index of (v, u, t), raising the Boys order n as it descends.
func coulombAuxiliary(t, u, v, n int, p float64, diff r3.Vec) float64 {
	switch {
	case t == 0 && u == 0 && v == 0:
		return math.Pow(-2*p, float64(n)) * boys(n, p*r3.Norm2(diff))
	case t == 0 && u == 0:
		result := diff.Z * coulombAuxiliary(t, u, v-1, n+1, p, diff)
		if v > 1 {
			result += float64(v-1) * coulombAuxiliary(t, u, v-2, n+1, p, diff)
		}
		return result
	case t == 0:
		result := diff.Y * coulombAuxiliary(t, u-1, v, n+1, p, diff)
		if u > 1 {
			result += float64(u-1) * coulombAuxiliary(t, u-2, v, n+1, p, diff)
		}
		return result
	default:
		result := diff.X * coulombAuxiliary(t-1, u, v, n+1, p, diff)
		if t > 1 {
			result += float64(t-1) * coulombAuxiliary(t-2, u, v, n+1, p, diff)
		}
		return result
	}
}

// productCenter returns the center of the Gaussian product of two primitives.
func productCenter(expA float64, posA r3.Vec, expB float64, posB r3.Vec) r3.Vec {
	return r3.Scale(1/(expA+expB), r3.Add(r3.Scale(expA, posA), r3.Scale(expB, posB)))
}
