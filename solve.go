package h2math

import "math"

// SolveLinear finds the real root of a linear equation.
//
// Returns the value of x for which b x + c = 0. If b is zero there is no
// root to report, not even in the degenerate case where c is zero too and
// every x satisfies the equation. A root that isn't finite is not reported.
func SolveLinear(b, c float64) Roots {
	if b == 0 {
		return Roots{}
	}
	root := -c / b
	if math.IsInf(root, 0) || math.IsNaN(root) {
		return Roots{}
	}
	return rootsOf(root)
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which a x² + b x + c = 0.
//
// If a is zero, or so small relative to the other coefficients that dividing
// by it overflows, the equation is solved as the linear equation b x + c = 0.
//
// When the discriminant b² - 4ac is positive, two roots are returned: first
// (-b + √D) / 2a, then (-b - √D) / 2a. Both are computed without the
// catastrophic cancellation of the textbook formula. A zero discriminant
// yields the repeated root once, a negative one yields no roots.
func SolveQuadratic(a, b, c float64) Roots {
	if a == 0 {
		return SolveLinear(b, c)
	}
	sb := b / a
	sc := c / a
	if math.IsInf(sb, 0) || math.IsInf(sc, 0) {
		// a is tiny compared to b or c
		return SolveLinear(b, c)
	}
	// arg has the sign of the discriminant, scaled by 1/a².
	arg := sb*sb - 4.0*sc
	var root1 float64
	if math.IsInf(arg, 0) {
		// sb² overflowed. The root of larger magnitude is close to -sb, the
		// other one is recovered from the product of the roots.
		root1 = -sb
	} else {
		if arg < 0.0 {
			return Roots{}
		} else if arg == 0.0 {
			return rootsOf(-0.5 * sb)
		}
		root1 = -0.5 * (sb + math.Copysign(math.Sqrt(arg), sb))
	}
	root2 := sc / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return rootsOf(root1)
	}
	// root1 took the sign of -sb for its square root term. It is the root of
	// the plus branch exactly when that sign matches the sign of a.
	if math.Signbit(sb) != math.Signbit(a) {
		return rootsOf(root1, root2)
	}
	return rootsOf(root2, root1)
}

// SolveCubic finds real roots of a cubic equation.
//
// Returns values of x for which a x³ + b x² + c x + d = 0.
//
// If a is zero, or so small that normalizing by it overflows, the equation
// is solved by [SolveQuadratic] instead.
//
// Otherwise, the equation is normalized and reduced to the depressed cubic
// y³ + 3p y + 2q = 0 by substituting x = y - b/3a, and the sign of the
// discriminant Δ = q² + p³ selects the method:
//
//   - p and q both zero: a triple root, returned once.
//   - Δ zero: a double root. The simple root is returned first, followed by
//     the double root.
//   - Δ < 0: three distinct real roots, found with the trigonometric method.
//   - Δ > 0: a single real root, found with Cardano's formula.
//
// Zero is tested with the relative tolerance [DiscriminantEpsilon]. Roots
// that are closer together than the tolerance permits to resolve are merged
// into a repeated root. Complex roots are never returned.
func SolveCubic(a, b, c, d float64) Roots {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}
	na := b / a
	nb := c / a
	nc := d / a
	if math.IsInf(na, 0) || math.IsInf(nb, 0) || math.IsInf(nc, 0) {
		// cubic coefficient is zero or nearly so.
		return SolveQuadratic(b, c, d)
	}

	offset := na / 3.0
	p := (nb - na*na/3.0) / 3.0
	q := (2.0*na*na*na/27.0 - na*nb/3.0 + nc) / 2.0
	disc := q*q + p*p*p
	// TODO: handle the cases where these intermediate results overflow.

	// Zero tests are relative to the magnitude of the roots, so that they
	// don't depend on the scale of x.
	scale := max(math.Abs(offset), math.Sqrt(math.Abs(p)), math.Cbrt(math.Abs(q)))
	if math.Abs(p) <= DiscriminantEpsilon*scale*scale &&
		math.Abs(q) <= DiscriminantEpsilon*scale*scale*scale {
		return rootsOf(-offset)
	}

	switch {
	case math.Abs(disc) <= DiscriminantEpsilon*(q*q+math.Abs(p*p*p)):
		u := math.Cbrt(-q)
		return rootsOf(2.0*u-offset, -u-offset)
	case disc < 0:
		// p is negative here, because q² + p³ < 0.
		cos3 := -q / math.Sqrt(-p*p*p)
		// Rounding can push the cosine just outside of its range.
		cos3 = min(max(cos3, -1.0), 1.0)
		phi := math.Acos(cos3) / 3.0
		t := 2.0 * math.Sqrt(-p)
		return rootsOf(
			t*math.Cos(phi)-offset,
			-t*math.Cos(phi+math.Pi/3.0)-offset,
			-t*math.Cos(phi-math.Pi/3.0)-offset,
		)
	case disc > 0:
		// Cardano's formula gives y = u + v with u = ∛(√Δ - q) and
		// v = -∛(√Δ + q). Since u v = -p, we compute the term of larger
		// magnitude directly and derive the other one, which avoids the
		// cancellation in √Δ ∓ q.
		sq := math.Sqrt(disc)
		w := math.Cbrt(-q - math.Copysign(sq, q))
		return rootsOf(w - p/w - offset)
	default:
		// NaN
		return Roots{}
	}
}
