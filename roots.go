package h2math

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// MaxRoots is the maximum number of real roots reported by the solvers.
const MaxRoots = 3

// DiscriminantEpsilon is the relative tolerance used by [SolveCubic] to decide
// whether a cubic has a repeated root.
//
// The discriminant Δ = q² + p³ of the depressed cubic counts as zero if
// |Δ| ≤ DiscriminantEpsilon (q² + |p³|). The coefficients p and q count as
// zero, making a triple root, if they are within DiscriminantEpsilon s² and
// DiscriminantEpsilon s³ of zero, where s estimates the magnitude of the
// roots.
const DiscriminantEpsilon = 1e-9

// Roots is an ordered sequence of at most [MaxRoots] real roots.
//
// The zero value is an empty sequence.
type Roots struct {
	vals [MaxRoots]float64
	n    int
}

// rootsOf returns a Roots holding xs. It panics if len(xs) > MaxRoots.
func rootsOf(xs ...float64) Roots {
	var r Roots
	for _, x := range xs {
		r.push(x)
	}
	return r
}

func (r *Roots) push(x float64) {
	if r.n == MaxRoots {
		panic("too many roots")
	}
	r.vals[r.n] = x
	r.n++
}

// Len returns the number of roots.
func (r Roots) Len() int { return r.n }

// At returns the i-th root. It panics if i is out of range.
func (r Roots) At(i int) float64 {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("root index %d out of range [0, %d)", i, r.n))
	}
	return r.vals[i]
}

// Slice returns the roots as a newly allocated slice.
func (r Roots) Slice() []float64 {
	out := make([]float64, r.n)
	copy(out, r.vals[:r.n])
	return out
}

// All returns an iterator over the roots, in order.
func (r Roots) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range r.vals[:r.n] {
			if !yield(x) {
				return
			}
		}
	}
}

func (r Roots) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range r.vals[:r.n] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
