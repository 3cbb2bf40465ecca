package h2math

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	v := Vec(3, 4)
	diff(t, Vec(4, 6), v.Add(Vec(1, 2)))
	diff(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	diff(t, Vec(6, 8), v.Mul(2))
	diff(t, Vec(1.5, 2), v.Div(2))
	diff(t, Vec(-3, -4), v.Negate())
	diff(t, 11.0, v.Dot(Vec(1, 2)))
	diff(t, 2.0, v.Cross(Vec(1, 2)))
	diff(t, 5.0, v.Hypot())
	diff(t, 25.0, v.Hypot2())
	diff(t, Vec(2, 3), Vec(1, 2).Lerp(Vec(3, 4), 0.5))
	diff(t, "⟨3, 4⟩", v.String())
}

func TestVec2Distance(t *testing.T) {
	p1 := Vec(0, 10)
	p2 := Vec(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Vec(-11, 1)
	p4 := Vec(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	v := Vec3Of(1, 2, 2)
	diff(t, Vec3Of(2, 2, 5), v.Add(Vec3Of(1, 0, 3)))
	diff(t, Vec3Of(0, 2, -1), v.Sub(Vec3Of(1, 0, 3)))
	diff(t, Vec3Of(-2, -4, -4), v.Mul(-2))
	diff(t, 3.0, v.Hypot())
	diff(t, 7.0, v.Dot(Vec3Of(1, 0, 3)))
	diff(t, Vec3Of(0, 0, 1), Vec3Of(1, 0, 0).Cross(Vec3Of(0, 1, 0)))
	diff(t, Vec(1, 2), v.XY())
	diff(t, "⟨1, 2, 2⟩", v.String())
}

func TestVecNaNInf(t *testing.T) {
	if !Vec(math.NaN(), 0).IsNaN() || Vec(1, 2).IsNaN() {
		t.Error("Vec2.IsNaN")
	}
	if !Vec3Of(0, 0, math.Inf(-1)).IsInf() || Vec3Of(1, 2, 3).IsInf() {
		t.Error("Vec3.IsInf")
	}
	if n := Vec(0, 0).Normalize(); !n.IsNaN() {
		t.Errorf("normalizing the zero vector gave %v", n)
	}
}
