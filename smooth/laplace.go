// Package smooth relocates interior mesh vertices so that the mesh matches a
// new set of boundary positions, by solving one discrete Laplace problem per
// ambient coordinate with the new positions as Dirichlet data.
package smooth

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

// LaplaceTransform overwrites every vertex position of m with the solution of
// a discrete Laplace problem whose Dirichlet data is newPoints: vertex
// indices present in the map are pinned to their target positions, all other
// vertices become free unknowns. The mesh topology is unchanged. The per-axis
// solves are independent and run concurrently.
//
// Every key of newPoints must reference an existing vertex. Not implemented
// in 1d, where there is no interior worth smoothing.
func LaplaceTransform(m *mesh.Mesh, newPoints map[int]geom.Point) error {
	if m.Dim == 1 {
		return fmt.Errorf("%w: laplace transformation undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	n := len(m.Vertices)
	for idx, p := range newPoints {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: constraint references vertex %d, mesh has %d",
				griderr.ErrInvalidArgument, idx, n)
		}
		if p.Dim() != m.Dim {
			return fmt.Errorf("%w: constraint for vertex %d has dimension %d in %dd mesh",
				griderr.ErrInvalidArgument, idx, p.Dim(), m.Dim)
		}
	}

	if len(newPoints) == 0 {
		// Nothing is pinned, so the unconstrained harmonic system is
		// singular; there is also nothing to morph the mesh toward.
		return nil
	}

	adj := edgeAdjacency(m)

	// Number the free vertices; the constrained ones are eliminated by
	// substitution so the remaining system stays symmetric positive definite.
	freeIndex := make(map[int]int, n)
	var free []int
	for i := 0; i < n; i++ {
		if _, constrained := newPoints[i]; !constrained {
			freeIndex[i] = len(free)
			free = append(free, i)
		}
	}

	solution := make([][]float64, m.Dim)
	if len(free) > 0 {
		// Graph Laplacian restricted to the free vertices: vertex degree on
		// the diagonal, -1 per edge neighbor.
		dok := sparse.NewDOK(len(free), len(free))
		for i, fi := range free {
			dok.Set(i, i, float64(len(adj[fi])))
			for _, nb := range adj[fi] {
				if j, ok := freeIndex[nb]; ok {
					dok.Set(i, j, -1)
				}
			}
		}
		lap := dok.ToCSR()

		var g errgroup.Group
		for axis := 0; axis < m.Dim; axis++ {
			axis := axis
			g.Go(func() error {
				rhs := mat.NewVecDense(len(free), nil)
				for i, fi := range free {
					var b float64
					for _, nb := range adj[fi] {
						if target, ok := newPoints[nb]; ok {
							b += target.At(axis)
						}
					}
					rhs.SetVec(i, b)
				}
				u, err := solveCG(lap, rhs)
				if err != nil {
					return err
				}
				solution[axis] = u
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	for i, fi := range free {
		p := geom.Zero(m.Dim)
		for axis := 0; axis < m.Dim; axis++ {
			p = p.With(axis, solution[axis][i])
		}
		if err := m.SetVertex(fi, p); err != nil {
			return err
		}
	}
	for idx, p := range newPoints {
		if err := m.SetVertex(idx, p); err != nil {
			return err
		}
	}
	return nil
}

// edgeAdjacency collects, per vertex, the vertices connected to it by a cell
// edge. Cell edges join local vertices whose lexicographic indices differ in
// exactly one bit.
func edgeAdjacency(m *mesh.Mesh) [][]int {
	seen := make(map[[2]int]bool)
	adj := make([][]int, len(m.Vertices))
	for _, cell := range m.Cells {
		for a := 0; a < len(cell); a++ {
			for axis := 0; axis < m.Dim; axis++ {
				b := a ^ (1 << axis)
				if b < a {
					continue
				}
				va, vb := cell[a], cell[b]
				if va > vb {
					va, vb = vb, va
				}
				if seen[[2]int{va, vb}] {
					continue
				}
				seen[[2]int{va, vb}] = true
				adj[va] = append(adj[va], vb)
				adj[vb] = append(adj[vb], va)
			}
		}
	}
	return adj
}

// solveCG solves the symmetric positive definite system A u = b by conjugate
// gradients, to a relative residual of 1e-12.
func solveCG(a *sparse.CSR, b *mat.VecDense) ([]float64, error) {
	n := b.Len()
	u := mat.NewVecDense(n, nil)
	r := mat.NewVecDense(n, nil)
	r.CopyVec(b)

	bNorm := mat.Norm(b, 2)
	if bNorm == 0 {
		return u.RawVector().Data, nil
	}
	tol := 1e-12 * bNorm

	p := mat.NewVecDense(n, nil)
	p.CopyVec(r)
	ap := mat.NewVecDense(n, nil)
	rr := mat.Dot(r, r)

	for iter := 0; iter < 10*n+10; iter++ {
		if math.Sqrt(rr) <= tol {
			return u.RawVector().Data, nil
		}
		ap.MulVec(a, p)
		pap := mat.Dot(p, ap)
		if pap <= 0 {
			return nil, fmt.Errorf("%w: laplace system is not positive definite", griderr.ErrInternal)
		}
		alpha := rr / pap
		u.AddScaledVec(u, alpha, p)
		r.AddScaledVec(r, -alpha, ap)
		rrNew := mat.Dot(r, r)
		p.AddScaledVec(r, rrNew/rr, p)
		rr = rrNew
	}
	return nil, fmt.Errorf("%w: laplace solve did not converge", griderr.ErrInternal)
}
