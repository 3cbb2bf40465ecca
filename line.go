package h2math

import "math"

// Line is the line segment between P0 and P1.
type Line[V Vector[V]] struct {
	P0 V
	P1 V
}

func (l Line[V]) Eval(t float64) V {
	return lerp(l.P0, l.P1, t)
}

func (l Line[V]) Start() V { return l.P0 }
func (l Line[V]) End() V   { return l.P1 }

func (l Line[V]) Length() float64 {
	d := l.P1.Sub(l.P0)
	return math.Sqrt(d.Dot(d))
}

// Nearest returns the squared distance between pt and the closest point on
// the segment, as well as the parameter of that point.
//
// A segment whose endpoints coincide reports t=0.
func (l Line[V]) Nearest(pt V) (distSq float64, t float64) {
	d := l.P1.Sub(l.P0)
	// The derivative of |P0 + t d - pt|² is 2 (d·d) t + 2 d·(P0 - pt).
	roots := SolveLinear(d.Dot(d), d.Dot(l.P0.Sub(pt)))
	if roots.Len() == 0 {
		return sqDist(l.P0, pt), 0.0
	}
	switch r := roots.At(0); {
	case r <= 0.0:
		return sqDist(l.P0, pt), 0.0
	case r >= 1.0:
		return sqDist(l.P1, pt), 1.0
	default:
		return sqDist(l.Eval(r), pt), r
	}
}
