// Package geom provides the fixed-dimension point type shared by the mesh
// generators, manifolds and smoothing routines. Points are value types:
// every operation returns a new Point and never aliases its receiver.
package geom

import (
	"fmt"
	"math"
)

// Point is a point (or displacement) in 1, 2 or 3 dimensional space.
// The zero value is not valid; use P1, P2, P3 or Zero.
type Point struct {
	dim int
	c   [3]float64
}

// P1 returns a one-dimensional point.
func P1(x float64) Point {
	return Point{dim: 1, c: [3]float64{x, 0, 0}}
}

// P2 returns a two-dimensional point.
func P2(x, y float64) Point {
	return Point{dim: 2, c: [3]float64{x, y, 0}}
}

// P3 returns a three-dimensional point.
func P3(x, y, z float64) Point {
	return Point{dim: 3, c: [3]float64{x, y, z}}
}

// Zero returns the origin of the given dimension. Panics unless dim is 1, 2 or 3.
func Zero(dim int) Point {
	if dim < 1 || dim > 3 {
		panic(fmt.Sprintf("geom: invalid dimension %d", dim))
	}
	return Point{dim: dim}
}

// FromSlice builds a point from the first len(c) coordinates. Panics unless
// len(c) is 1, 2 or 3.
func FromSlice(c []float64) Point {
	if len(c) < 1 || len(c) > 3 {
		panic(fmt.Sprintf("geom: invalid coordinate count %d", len(c)))
	}
	p := Point{dim: len(c)}
	copy(p.c[:], c)
	return p
}

// Dim returns the dimension of the point.
func (p Point) Dim() int { return p.dim }

// At returns coordinate i. Panics if i is out of range.
func (p Point) At(i int) float64 {
	p.checkIndex(i)
	return p.c[i]
}

// With returns a copy of p with coordinate i replaced by v.
func (p Point) With(i int, v float64) Point {
	p.checkIndex(i)
	q := p
	q.c[i] = v
	return q
}

// Coords returns the coordinates as a freshly allocated slice of length Dim.
func (p Point) Coords() []float64 {
	out := make([]float64, p.dim)
	copy(out, p.c[:p.dim])
	return out
}

// Add returns p + q. Panics on dimension mismatch.
func (p Point) Add(q Point) Point {
	p.checkDim(q)
	r := p
	for i := 0; i < p.dim; i++ {
		r.c[i] += q.c[i]
	}
	return r
}

// Sub returns p - q. Panics on dimension mismatch.
func (p Point) Sub(q Point) Point {
	p.checkDim(q)
	r := p
	for i := 0; i < p.dim; i++ {
		r.c[i] -= q.c[i]
	}
	return r
}

// Scale returns s * p.
func (p Point) Scale(s float64) Point {
	r := p
	for i := 0; i < p.dim; i++ {
		r.c[i] *= s
	}
	return r
}

// Dot returns the Euclidean inner product of p and q. Panics on dimension mismatch.
func (p Point) Dot(q Point) float64 {
	p.checkDim(q)
	var s float64
	for i := 0; i < p.dim; i++ {
		s += p.c[i] * q.c[i]
	}
	return s
}

// Norm returns the Euclidean norm of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// String formats the point as (x, y, z) truncated to its dimension.
func (p Point) String() string {
	switch p.dim {
	case 1:
		return fmt.Sprintf("(%g)", p.c[0])
	case 2:
		return fmt.Sprintf("(%g, %g)", p.c[0], p.c[1])
	default:
		return fmt.Sprintf("(%g, %g, %g)", p.c[0], p.c[1], p.c[2])
	}
}

func (p Point) checkDim(q Point) {
	if p.dim != q.dim {
		panic(fmt.Sprintf("geom: dimension mismatch %d vs %d", p.dim, q.dim))
	}
}

func (p Point) checkIndex(i int) {
	if i < 0 || i >= p.dim {
		panic(fmt.Sprintf("geom: coordinate %d out of range for dimension %d", i, p.dim))
	}
}
