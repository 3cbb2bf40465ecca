// Package h2math provides the numeric core of the Hydrogen math headers:
// closed-form solvers for real roots of low-degree polynomials, and
// closest-point projection onto quadratic Béziers.
//
// # Polynomial roots
//
// [SolveLinear], [SolveQuadratic] and [SolveCubic] find the real roots of
// polynomials of degree one, two and three. Coefficients are passed in
// decreasing order of degree, so SolveCubic(a, b, c, d) solves
// a x³ + b x² + c x + d = 0. Complex roots are never reported.
//
// The solvers return a [Roots] value, a sequence of at most three roots that
// is returned by value and never allocates. The order of roots is the order
// in which the solving method produces them; it is not sorted.
//
// SolveCubic uses Cardano's method for cubics with a single real root and the
// trigonometric method for cubics with three distinct real roots. Repeated
// roots are detected by comparing the discriminant of the depressed cubic
// against [DiscriminantEpsilon]. When the leading coefficient is zero, or so
// small that normalizing by it overflows, the solvers fall back to the next
// lower degree.
//
// # Vectors and curves
//
// Curves are generic over the vector type of their control points. Any type
// that implements [Vector], that is, addition, subtraction, scaling and an
// inner product, can be used. [Vec2] and [Vec3] are provided.
//
// [QuadBez] describes a quadratic Bézier. [QuadBez.Nearest] and
// [QuadBez.Project] find the point on the curve closest to an arbitrary
// point. The squared distance between the curve and the point is a quartic in
// t; its derivative is a cubic, whose roots in [0, 1] are the interior
// extrema. Those roots are compared against both endpoints of the curve, so a
// projection always exists for finite input.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Cubic equation] (Cardano's method and the trigonometric solution)
//   - [Numerically stable quadratic roots]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Cubic equation]: https://en.wikipedia.org/wiki/Cubic_equation
// [Numerically stable quadratic roots]: https://math.stackexchange.com/questions/866331
package h2math
