// Package grids is a catalog of coarse meshes for standard computational
// domains: cubes, rectangles, balls, shells, L-shapes, cylinders and slit
// domains. Every generator populates a caller-supplied empty mesh with the
// initial vertex and cell topology of its domain and, where a colorize flag
// is offered, assigns the shape's boundary or material identifiers.
//
// Generators validate their parameters before touching the mesh; on error the
// mesh is left unmodified.
package grids

import (
	"fmt"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

func checkEmpty(m *mesh.Mesh) error {
	if !m.IsEmpty() {
		return fmt.Errorf("%w: generators require a void mesh (%d vertices, %d cells present)",
			griderr.ErrMeshNotEmpty, len(m.Vertices), len(m.Cells))
	}
	return nil
}

// forEachIndex iterates over all multi-indices below n, first index fastest.
func forEachIndex(n []int, f func(idx []int)) {
	idx := make([]int, len(n))
	for {
		f(idx)
		k := 0
		for ; k < len(n); k++ {
			idx[k]++
			if idx[k] < n[k] {
				break
			}
			idx[k] = 0
		}
		if k == len(n) {
			return
		}
	}
}

// gridIndex flattens a multi-index over a grid with npts points per axis.
func gridIndex(npts, idx []int) int {
	id := 0
	for k := len(npts) - 1; k >= 0; k-- {
		id = id*npts[k] + idx[k]
	}
	return id
}

// buildTensor fills the mesh with the tensor grid spanned by the per-axis
// coordinate samples: vertices in lexicographic order, then one cell per
// grid interval.
func buildTensor(m *mesh.Mesh, coords [][]float64) error {
	dim := m.Dim
	npts := make([]int, dim)
	for k := 0; k < dim; k++ {
		npts[k] = len(coords[k])
	}

	var firstErr error
	forEachIndex(npts, func(idx []int) {
		c := make([]float64, dim)
		for k := 0; k < dim; k++ {
			c[k] = coords[k][idx[k]]
		}
		if _, err := m.AddVertex(geom.FromSlice(c)); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	if firstErr != nil {
		return firstErr
	}

	ncells := make([]int, dim)
	for k := 0; k < dim; k++ {
		ncells[k] = npts[k] - 1
	}
	verts := make([]int, 1<<dim)
	corner := make([]int, dim)
	forEachIndex(ncells, func(cell []int) {
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

// samples returns n+1 uniformly spaced coordinates from a to b.
func samples(a, b float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = a + (b-a)*float64(i)/float64(n)
	}
	out[n] = b
	return out
}
