package grids

import (
	"fmt"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

// HyperL fills the mesh with the L-shaped domain [left,right]^dim minus the
// sub-cube [(left+right)/2, right]^dim, built from 2^dim - 1 cells.
// Undefined in 1d.
func HyperL(m *mesh.Mesh, left, right float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim == 1 {
		return fmt.Errorf("%w: hyper L undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	if left >= right {
		return fmt.Errorf("%w: hyper L interval [%g,%g] is empty", griderr.ErrInvalidArgument, left, right)
	}
	dim := m.Dim
	mid := (left + right) / 2

	// 3^dim grid points except the all-maximum corner, which only the removed
	// sub-cube would use. It is the last point in lexicographic order, so
	// dropping it leaves all other grid indices intact.
	coords := []float64{left, mid, right}
	npts := make([]int, dim)
	for k := range npts {
		npts[k] = 3
	}
	last := gridIndex(npts, []int{2, 2, 2}[:dim])
	var firstErr error
	forEachIndex(npts, func(idx []int) {
		if gridIndex(npts, idx) == last {
			return
		}
		c := make([]float64, dim)
		for k := 0; k < dim; k++ {
			c[k] = coords[idx[k]]
		}
		if _, err := m.AddVertex(geom.FromSlice(c)); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	if firstErr != nil {
		return firstErr
	}

	ncells := make([]int, dim)
	for k := range ncells {
		ncells[k] = 2
	}
	verts := make([]int, 1<<dim)
	corner := make([]int, dim)
	forEachIndex(ncells, func(cell []int) {
		skip := true
		for k := 0; k < dim; k++ {
			if cell[k] != 1 {
				skip = false
			}
		}
		if skip { // the removed sub-cube
			return
		}
		for b := 0; b < 1<<dim; b++ {
			for k := 0; k < dim; k++ {
				corner[k] = cell[k] + (b>>k)&1
			}
			verts[b] = gridIndex(npts, corner)
		}
		if _, err := m.AddCell(verts...); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}

// HyperCubeSlit fills the mesh with the square or cube [left,right]^dim cut
// from the midpoint of the lower edge up to the center, so the two lower
// cells touch along the cut without being connected. With colorize (2d only)
// the outer boundary keeps id 0 and the two slit sides receive ids 1 and 2.
// Undefined in 1d; colorization not implemented in 3d.
func HyperCubeSlit(m *mesh.Mesh, left, right float64, colorize bool) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim == 1 {
		return fmt.Errorf("%w: hyper cube slit undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	if left >= right {
		return fmt.Errorf("%w: hyper cube slit interval [%g,%g] is empty", griderr.ErrInvalidArgument, left, right)
	}
	if m.Dim == 3 && colorize {
		return fmt.Errorf("%w: slit colorization in 3d", griderr.ErrNotImplemented)
	}
	mid := (left + right) / 2

	// Two coincident vertices at (mid,left): index 1 belongs to the lower
	// left cell, index 2 to the lower right cell. The duplicated pair keeps
	// the two cells disconnected across the cut.
	plane := []geom.Point{
		geom.P2(left, left),
		geom.P2(mid, left),
		geom.P2(mid, left),
		geom.P2(right, left),
		geom.P2(left, mid),
		geom.P2(mid, mid),
		geom.P2(right, mid),
		geom.P2(left, right),
		geom.P2(mid, right),
		geom.P2(right, right),
	}
	quads := [][]int{
		{0, 1, 4, 5},
		{2, 3, 5, 6},
		{4, 5, 7, 8},
		{5, 6, 8, 9},
	}

	if m.Dim == 2 {
		if err := addVertsAndCells(m, plane, quads); err != nil {
			return err
		}
		if colorize {
			return colorizeSlit(m, 1, 5, 2)
		}
		return nil
	}

	// 3d: extrude the plane along z; the cut becomes a half plane.
	verts := make([]geom.Point, 0, 20)
	for _, z := range []float64{left, right} {
		for _, p := range plane {
			verts = append(verts, geom.P3(p.At(0), p.At(1), z))
		}
	}
	var cells [][]int
	for _, q := range quads {
		cells = append(cells, []int{
			q[0], q[1], q[2], q[3],
			q[0] + 10, q[1] + 10, q[2] + 10, q[3] + 10,
		})
	}
	return addVertsAndCells(m, verts, cells)
}

// colorizeSlit assigns id 1 to the slit edge owned by the lower left cell
// (vertices leftV..topV) and id 2 to its twin (rightV..topV); every other
// boundary face keeps id 0.
func colorizeSlit(m *mesh.Mesh, leftV, topV, rightV int) error {
	for _, f := range m.BoundaryFaces() {
		id := 0
		if hasVerts(f, leftV, topV) {
			id = 1
		} else if hasVerts(f, rightV, topV) {
			id = 2
		}
		if id != 0 {
			if err := m.SetBoundaryID(f, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasVerts(f mesh.Face, a, b int) bool {
	var foundA, foundB bool
	for _, v := range f.Verts {
		if v == a {
			foundA = true
		}
		if v == b {
			foundB = true
		}
	}
	return foundA && foundB
}
