package grids

import (
	"fmt"
	"math"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

// HyperCube fills the mesh with a single cell spanning [left,right] in every
// coordinate direction.
func HyperCube(m *mesh.Mesh, left, right float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if left >= right {
		return fmt.Errorf("%w: hyper cube interval [%g,%g] is empty", griderr.ErrInvalidArgument, left, right)
	}
	reps := make([]int, m.Dim)
	for k := range reps {
		reps[k] = 1
	}
	return subdividedBox(m, reps, corner(m.Dim, left), corner(m.Dim, right), false)
}

// SubdividedHyperCube tiles [left,right]^dim with repetitions^dim uniform
// cells.
func SubdividedHyperCube(m *mesh.Mesh, repetitions int, left, right float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if repetitions < 1 {
		return fmt.Errorf("%w: number of repetitions %d must be >= 1", griderr.ErrInvalidArgument, repetitions)
	}
	if left >= right {
		return fmt.Errorf("%w: hyper cube interval [%g,%g] is empty", griderr.ErrInvalidArgument, left, right)
	}
	reps := make([]int, m.Dim)
	for k := range reps {
		reps[k] = repetitions
	}
	return subdividedBox(m, reps, corner(m.Dim, left), corner(m.Dim, right), false)
}

// HyperRectangle fills the mesh with the single cell spanning the axis
// aligned box with opposite corners p1 and p2. With colorize, the face at the
// minimum coordinate of axis k receives boundary id 2k, the maximum face 2k+1.
func HyperRectangle(m *mesh.Mesh, p1, p2 geom.Point, colorize bool) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	reps := make([]int, m.Dim)
	for k := range reps {
		reps[k] = 1
	}
	return subdividedBox(m, reps, p1, p2, colorize)
}

// SubdividedHyperRectangle is HyperRectangle with an independent cell count
// per axis. repetitions must have one entry >= 1 per dimension.
func SubdividedHyperRectangle(m *mesh.Mesh, repetitions []int, p1, p2 geom.Point, colorize bool) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	return subdividedBox(m, repetitions, p1, p2, colorize)
}

func subdividedBox(m *mesh.Mesh, repetitions []int, p1, p2 geom.Point, colorize bool) error {
	dim := m.Dim
	if len(repetitions) != dim {
		return fmt.Errorf("%w: repetitions vector must have %d elements, got %d",
			griderr.ErrInvalidArgument, dim, len(repetitions))
	}
	for _, r := range repetitions {
		if r < 1 {
			return fmt.Errorf("%w: number of repetitions %d must be >= 1", griderr.ErrInvalidArgument, r)
		}
	}
	if p1.Dim() != dim || p2.Dim() != dim {
		return fmt.Errorf("%w: corner dimensions %d/%d in %dd mesh",
			griderr.ErrInvalidArgument, p1.Dim(), p2.Dim(), dim)
	}
	lo, hi := geom.Zero(dim), geom.Zero(dim)
	for k := 0; k < dim; k++ {
		a, b := p1.At(k), p2.At(k)
		if a == b {
			return fmt.Errorf("%w: box is degenerate along axis %d (%g)", griderr.ErrInvalidArgument, k, a)
		}
		lo = lo.With(k, math.Min(a, b))
		hi = hi.With(k, math.Max(a, b))
	}

	coords := make([][]float64, dim)
	for k := 0; k < dim; k++ {
		coords[k] = samples(lo.At(k), hi.At(k), repetitions[k])
	}
	if err := buildTensor(m, coords); err != nil {
		return err
	}
	if colorize {
		return colorizeBox(m, lo, hi, repetitions)
	}
	return nil
}

// colorizeBox implements the box coloring convention: 2k for the minimum face
// of axis k, 2k+1 for the maximum. Faces are matched by their center against
// the box bounds with a tolerance well below the smallest cell width.
func colorizeBox(m *mesh.Mesh, lo, hi geom.Point, repetitions []int) error {
	eps := math.Inf(1)
	for k := 0; k < m.Dim; k++ {
		eps = math.Min(eps, (hi.At(k)-lo.At(k))/float64(repetitions[k]))
	}
	eps /= 100

	for _, f := range m.BoundaryFaces() {
		center := m.Center(f)
		for k := 0; k < m.Dim; k++ {
			var id int
			switch {
			case math.Abs(center.At(k)-lo.At(k)) < eps:
				id = 2 * k
			case math.Abs(center.At(k)-hi.At(k)) < eps:
				id = 2*k + 1
			default:
				continue
			}
			if err := m.SetBoundaryID(f, id); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// EnclosedHyperCube surrounds the cube [left,right]^dim with one layer of
// cells of the given thickness. With colorize, the layer cells receive
// material id bits by outward direction (-x/+x: 1/2, -y/+y: 4/8, -z/+z:
// 16/32), or'd together at corners and edges; the inner cube keeps id 0.
// Only defined in 2d and 3d.
func EnclosedHyperCube(m *mesh.Mesh, left, right, thickness float64, colorize bool) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim == 1 {
		return fmt.Errorf("%w: enclosed hyper cube undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	if left >= right {
		return fmt.Errorf("%w: enclosed hyper cube interval [%g,%g] is empty",
			griderr.ErrInvalidArgument, left, right)
	}
	if thickness <= 0 {
		return fmt.Errorf("%w: layer thickness %g must be positive", griderr.ErrInvalidArgument, thickness)
	}

	coords := make([][]float64, m.Dim)
	for k := 0; k < m.Dim; k++ {
		coords[k] = []float64{left - thickness, left, right, right + thickness}
	}
	if err := buildTensor(m, coords); err != nil {
		return err
	}
	if !colorize {
		return nil
	}

	// Cells were appended in lexicographic order over the 3^dim layout, so
	// the cell's position per axis (0: below, 1: inside, 2: above) recovers
	// directly from its index.
	ncells := make([]int, m.Dim)
	for k := range ncells {
		ncells[k] = 3
	}
	cell := 0
	var firstErr error
	forEachIndex(ncells, func(pos []int) {
		id := 0
		for k := 0; k < m.Dim; k++ {
			switch pos[k] {
			case 0:
				id |= 1 << (2 * k)
			case 2:
				id |= 2 << (2 * k)
			}
		}
		if err := m.SetMaterialID(cell, id); err != nil && firstErr == nil {
			firstErr = err
		}
		cell++
	})
	return firstErr
}

// corner returns the point with every coordinate equal to v.
func corner(dim int, v float64) geom.Point {
	p := geom.Zero(dim)
	for k := 0; k < dim; k++ {
		p = p.With(k, v)
	}
	return p
}
