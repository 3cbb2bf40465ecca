package h2math

// Vector describes the operations curves need from the type of their control
// points. V is the implementing type itself, as in
//
//	func (v Vec2) Add(o Vec2) Vec2
//
// Types implementing Vector are expected to be values; curves copy them
// freely.
type Vector[V any] interface {
	// Add returns the componentwise sum of the vector and o.
	Add(o V) V
	// Sub returns the componentwise difference of the vector and o.
	Sub(o V) V
	// Mul scales the vector by f.
	Mul(f float64) V
	// Dot returns the inner product of the vector and o.
	Dot(o V) float64
}

var _ Vector[Vec2] = Vec2{}
var _ Vector[Vec3] = Vec3{}

func lerp[V Vector[V]](a, b V, t float64) V {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

func midpoint[V Vector[V]](a, b V) V {
	return a.Add(b).Mul(0.5)
}

func sqDist[V Vector[V]](a, b V) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
