package h2math

import "math"

// QuadBez is a quadratic Bézier with control points of vector type V.
//
// The curve is B(t) = (1-t)² P0 + 2t(1-t) P1 + t² P2 for t ∈ [0, 1].
type QuadBez[V Vector[V]] struct {
	P0 V
	P1 V
	P2 V
}

// Projection is the result of projecting a point onto a curve.
type Projection[V any] struct {
	// Point is the point on the curve closest to the query.
	Point V
	// T is the curve parameter of Point.
	T float64
	// DistSq is the squared distance between Point and the query.
	DistSq float64
}

func (q QuadBez[V]) Eval(t float64) V {
	mt := 1.0 - t
	a := q.P0.Mul(mt * mt)
	b := q.P1.Mul(mt * 2.0)
	c := q.P2.Mul(t)
	d := b.Add(c)
	return a.Add(d.Mul(t))
}

func (q QuadBez[V]) Start() V {
	return q.P0
}

func (q QuadBez[V]) End() V {
	return q.P2
}

// Deriv returns the first derivative of the curve at t.
func (q QuadBez[V]) Deriv(t float64) V {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return lerp(d0, d1, t).Mul(2.0)
}

func (q QuadBez[V]) Subdivide() (QuadBez[V], QuadBez[V]) {
	pm := q.Eval(0.5)
	return QuadBez[V]{q.P0, midpoint(q.P0, q.P1), pm},
		QuadBez[V]{pm, midpoint(q.P1, q.P2), q.P2}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (q QuadBez[V]) Subsegment(t0, t1 float64) QuadBez[V] {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Add(lerp(q.P1.Sub(q.P0), q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez[V]{p0, p1, p2}
}

// nearestCubic returns the cubic whose roots are the parameters of the
// extrema of the squared distance between the curve and pt.
//
// With A = P1 - P0, C = P2 - 2 P1 + P0 and M = P0 - pt, the curve is
// B(t) = P0 + 2t A + t² C, and the derivative of |B(t) - pt|² is four times
// (C·C) t³ + 3 (A·C) t² + (2 A·A + M·C) t + M·A.
func (q QuadBez[V]) nearestCubic(pt V) Cubic {
	a := q.P1.Sub(q.P0)
	c := q.P2.Sub(q.P1.Mul(2.0)).Add(q.P0)
	m := q.P0.Sub(pt)
	return Cubic{
		A: c.Dot(c),
		B: 3.0 * a.Dot(c),
		C: 2.0*a.Dot(a) + m.Dot(c),
		D: m.Dot(a),
	}
}

// Project finds the point on the curve closest to pt.
//
// The candidates are both endpoints and every root of the distance
// derivative that lies in [0, 1]. Of equally distant candidates, the
// endpoints win, and t=0 wins over t=1.
//
// The second return value is false only if no candidate's distance could be
// compared, which happens when the curve or pt contain NaNs.
func (q QuadBez[V]) Project(pt V) (Projection[V], bool) {
	var best option[Projection[V]]
	try := func(t float64, p V) {
		d := sqDist(p, pt)
		if math.IsNaN(d) {
			return
		}
		if !best.isSet || d < best.value.DistSq {
			best.set(Projection[V]{Point: p, T: t, DistSq: d})
		}
	}

	try(0.0, q.P0)
	try(1.0, q.P2)
	for t := range q.nearestCubic(pt).Roots().All() {
		if t >= 0.0 && t <= 1.0 {
			try(t, q.Eval(t))
		}
	}
	return best.value, best.isSet
}

// Nearest returns the squared distance between pt and the closest point on
// the curve, as well as the parameter of that point. Both are NaN when
// [QuadBez.Project] would report failure.
func (q QuadBez[V]) Nearest(pt V) (distSq, t float64) {
	proj, ok := q.Project(pt)
	if !ok {
		return math.NaN(), math.NaN()
	}
	return proj.DistSq, proj.T
}

// ProjectQuadBez finds the point on the quadratic Bézier (p0, p1, p2) closest
// to pt. It is shorthand for [QuadBez.Project].
func ProjectQuadBez[V Vector[V]](p0, p1, p2, pt V) (Projection[V], bool) {
	return QuadBez[V]{p0, p1, p2}.Project(pt)
}
