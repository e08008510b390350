package grids

import (
	"fmt"
	"math"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

// HyperShell fills a 2d mesh with the annulus between two concentric circles
// around center. nCells is the number of cells; zero lets the routine pick
// the count that makes the circumferential edge length at the mean radius
// match the radial thickness, so the cell aspect ratio is near one. The count
// grows monotonically with the radius ratio. Not implemented in 3d; undefined
// in 1d.
func HyperShell(m *mesh.Mesh, center geom.Point, innerRadius, outerRadius float64, nCells int) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	switch m.Dim {
	case 1:
		return fmt.Errorf("%w: hyper shell undefined in 1d", griderr.ErrUnsupportedDimension)
	case 3:
		return fmt.Errorf("%w: hyper shell in 3d", griderr.ErrNotImplemented)
	}
	if err := checkShellArgs(m, center, innerRadius, outerRadius, nCells); err != nil {
		return err
	}

	n := nCells
	if n == 0 {
		n = int(math.Ceil(math.Pi * (innerRadius + outerRadius) / (outerRadius - innerRadius)))
		if n < 3 {
			n = 3
		}
	}

	// Vertices 0..n-1 on the outer circle, n..2n-1 on the inner one.
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p := geom.P2(math.Cos(angle), math.Sin(angle))
		if _, err := m.AddVertex(center.Add(p.Scale(outerRadius))); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p := geom.P2(math.Cos(angle), math.Sin(angle))
		if _, err := m.AddVertex(center.Add(p.Scale(innerRadius))); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// Outer edge first, inner edge second: counterclockwise tangent and
		// inward radial direction give positive orientation.
		if _, err := m.AddCell(i, j, n+i, n+j); err != nil {
			return err
		}
	}
	return nil
}

// HalfHyperShell fills a 2d mesh with the half of the annulus where the first
// coordinate is non-negative. nCells zero picks the aspect-ratio minimizing
// count as in HyperShell, halved for the half circumference. Only defined
// in 2d.
func HalfHyperShell(m *mesh.Mesh, center geom.Point, innerRadius, outerRadius float64, nCells int) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim != 2 {
		return fmt.Errorf("%w: half hyper shell only defined in 2d", griderr.ErrUnsupportedDimension)
	}
	if err := checkShellArgs(m, center, innerRadius, outerRadius, nCells); err != nil {
		return err
	}

	n := nCells
	if n == 0 {
		n = int(math.Ceil(math.Pi * (innerRadius + outerRadius) / (2 * (outerRadius - innerRadius))))
		if n < 2 {
			n = 2
		}
	}

	// n+1 samples per ring from -pi/2 to +pi/2; outer ring 0..n, inner ring
	// n+1..2n+1.
	for _, radius := range []float64{outerRadius, innerRadius} {
		for i := 0; i <= n; i++ {
			angle := -math.Pi/2 + math.Pi*float64(i)/float64(n)
			p := geom.P2(math.Cos(angle), math.Sin(angle))
			if _, err := m.AddVertex(center.Add(p.Scale(radius))); err != nil {
				return err
			}
		}
	}
	for i := 0; i < n; i++ {
		if _, err := m.AddCell(i, i+1, (n+1)+i, (n+1)+i+1); err != nil {
			return err
		}
	}
	return nil
}

func checkShellArgs(m *mesh.Mesh, center geom.Point, innerRadius, outerRadius float64, nCells int) error {
	if center.Dim() != m.Dim {
		return fmt.Errorf("%w: center dimension %d in %dd mesh", griderr.ErrInvalidArgument, center.Dim(), m.Dim)
	}
	if innerRadius <= 0 || outerRadius <= 0 || innerRadius >= outerRadius {
		return fmt.Errorf("%w: inner %g, outer %g", griderr.ErrInvalidRadii, innerRadius, outerRadius)
	}
	if nCells < 0 {
		return fmt.Errorf("%w: cell count %d must be non-negative", griderr.ErrInvalidArgument, nCells)
	}
	return nil
}
