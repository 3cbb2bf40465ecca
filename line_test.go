package h2math

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineNearest(t *testing.T) {
	verify := func(l Line[Vec2], pt Vec2, wantDistSq, wantT float64) {
		t.Helper()
		distSq, tt := l.Nearest(pt)
		diff(t, [2]float64{wantDistSq, wantT}, [2]float64{distSq, tt}, cmpopts.EquateApprox(0, 1e-12))
	}

	l := Line[Vec2]{Vec(0, 0), Vec(4, 0)}
	verify(l, Vec(1, 1), 1, 0.25)
	verify(l, Vec(2, -3), 9, 0.5)
	verify(l, Vec(-1, 1), 2, 0)
	verify(l, Vec(5, 1), 2, 1)

	// Both endpoints coincide.
	p := Line[Vec2]{Vec(1, 1), Vec(1, 1)}
	verify(p, Vec(4, 5), 25, 0)
}

func TestLineLength(t *testing.T) {
	diff(t, 5.0, Line[Vec2]{Vec(1, 1), Vec(4, 5)}.Length())
	diff(t, 3.0, Line[Vec3]{Vec3Of(1, 2, 3), Vec3Of(2, 4, 5)}.Length())
}

func TestLineMatchesStraightQuadBez(t *testing.T) {
	// A quadratic Bézier whose control point is the midpoint of its chord is
	// a line with uniform parametrization.
	l := Line[Vec3]{Vec3Of(-1, 2, 0.5), Vec3Of(3, -2, 4)}
	q := QuadBez[Vec3]{l.P0, midpoint(l.P0, l.P1), l.P1}
	for _, pt := range []Vec3{
		Vec3Of(0, 0, 0),
		Vec3Of(1, 1, 1),
		Vec3Of(-5, 5, 0),
		Vec3Of(10, -10, 10),
	} {
		lDist, lT := l.Nearest(pt)
		qDist, qT := q.Nearest(pt)
		if math.Abs(lT-qT) > 1e-9 || math.Abs(lDist-qDist) > 1e-9 {
			t.Errorf("%v: line gives (%v, %v), curve gives (%v, %v)", pt, lDist, lT, qDist, qT)
		}
	}
}
