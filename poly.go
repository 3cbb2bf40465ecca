package h2math

import "fmt"

// Cubic is the polynomial A x³ + B x² + C x + D.
//
// Lower-degree polynomials are represented by leaving the leading
// coefficients zero.
type Cubic struct {
	A float64
	B float64
	C float64
	D float64
}

// Eval evaluates the polynomial at x.
func (c Cubic) Eval(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// Deriv returns the derivative of the polynomial.
func (c Cubic) Deriv() Cubic {
	return Cubic{
		B: 3.0 * c.A,
		C: 2.0 * c.B,
		D: c.C,
	}
}

// Roots returns the real roots of the polynomial. See [SolveCubic].
func (c Cubic) Roots() Roots {
	return SolveCubic(c.A, c.B, c.C, c.D)
}

func (c Cubic) String() string {
	return fmt.Sprintf("%gx³ + %gx² + %gx + %g", c.A, c.B, c.C, c.D)
}
