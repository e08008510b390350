package grids

import (
	"fmt"
	"math"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/mesh"
)

// innerCellFactor scales the inner cell of the ball constructions relative to
// the enclosing cross: chosen so that one refinement step leaves the boundary
// cells with a small aspect ratio.
func innerCellFactor(dim int) float64 {
	return 1 / (1 + math.Sqrt(float64(dim)))
}

// HyperBall fills the mesh with a circle (2d, 5 cells) or ball (3d, 7 cells)
// of the given radius around center. The central cell's size follows the
// aspect-ratio heuristic of innerCellFactor. Undefined in 1d.
func HyperBall(m *mesh.Mesh, center geom.Point, radius float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim == 1 {
		return fmt.Errorf("%w: hyper ball undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	if center.Dim() != m.Dim {
		return fmt.Errorf("%w: center dimension %d in %dd mesh", griderr.ErrInvalidArgument, center.Dim(), m.Dim)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: ball radius %g must be positive", griderr.ErrInvalidArgument, radius)
	}
	if m.Dim == 2 {
		return hyperBall2(m, center, radius)
	}
	return hyperBall3(m, center, radius)
}

// hyperBall2 builds the five-cell circle: four outer vertices on the circle
// at the diagonals, four inner vertices spanning the central square.
func hyperBall2(m *mesh.Mesh, center geom.Point, radius float64) error {
	d := radius / math.Sqrt2
	a := d * innerCellFactor(2)

	verts := []geom.Point{
		center.Add(geom.P2(-d, -d)),
		center.Add(geom.P2(+d, -d)),
		center.Add(geom.P2(-a, -a)),
		center.Add(geom.P2(+a, -a)),
		center.Add(geom.P2(-a, +a)),
		center.Add(geom.P2(+a, +a)),
		center.Add(geom.P2(-d, +d)),
		center.Add(geom.P2(+d, +d)),
	}
	cells := [][]int{
		{0, 1, 2, 3},
		{0, 2, 6, 4},
		{2, 3, 4, 5},
		{1, 7, 3, 5},
		{6, 4, 7, 5},
	}
	return addVertsAndCells(m, verts, cells)
}

// hyperBall3 builds the seven-cell ball: an inner cube and six frustum cells
// joining its faces to the faces of the cube inscribed in the sphere.
func hyperBall3(m *mesh.Mesh, center geom.Point, radius float64) error {
	d := radius / math.Sqrt(3)
	a := d * innerCellFactor(3)

	verts := make([]geom.Point, 16)
	for b := 0; b < 8; b++ {
		sx := float64(2*((b>>0)&1) - 1)
		sy := float64(2*((b>>1)&1) - 1)
		sz := float64(2*((b>>2)&1) - 1)
		verts[b] = center.Add(geom.P3(sx*d, sy*d, sz*d))
		verts[8+b] = center.Add(geom.P3(sx*a, sy*a, sz*a))
	}

	cells := [][]int{{8, 9, 10, 11, 12, 13, 14, 15}}
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			var outer, inner []int
			for b := 0; b < 8; b++ {
				if (b>>axis)&1 == side {
					outer = append(outer, b)
					inner = append(inner, 8+b)
				}
			}
			cells = append(cells, frustum(verts, outer, inner))
		}
	}
	return addVertsAndCells(m, verts, cells)
}

// frustum builds a hexahedron from two parallel quadruples of vertices,
// ordering the layers so the cell's orientation comes out positive.
func frustum(verts []geom.Point, layer0, layer1 []int) []int {
	cell := append(append([]int{}, layer0...), layer1...)
	e0 := verts[cell[1]].Sub(verts[cell[0]])
	e1 := verts[cell[2]].Sub(verts[cell[0]])
	e2 := verts[cell[4]].Sub(verts[cell[0]])
	det := e0.At(0)*(e1.At(1)*e2.At(2)-e1.At(2)*e2.At(1)) -
		e0.At(1)*(e1.At(0)*e2.At(2)-e1.At(2)*e2.At(0)) +
		e0.At(2)*(e1.At(0)*e2.At(1)-e1.At(1)*e2.At(0))
	if det < 0 {
		cell = append(append([]int{}, layer1...), layer0...)
	}
	return cell
}

// HalfHyperBall fills the mesh with the half circle x >= center_x, four
// cells, sized like HyperBall. Only defined in 2d.
func HalfHyperBall(m *mesh.Mesh, center geom.Point, radius float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim != 2 {
		return fmt.Errorf("%w: half hyper ball only defined in 2d", griderr.ErrUnsupportedDimension)
	}
	if center.Dim() != 2 {
		return fmt.Errorf("%w: center dimension %d in 2d mesh", griderr.ErrInvalidArgument, center.Dim())
	}
	if radius <= 0 {
		return fmt.Errorf("%w: ball radius %g must be positive", griderr.ErrInvalidArgument, radius)
	}
	d := radius / math.Sqrt2
	a := d * innerCellFactor(2)

	verts := []geom.Point{
		center.Add(geom.P2(0, -radius)),
		center.Add(geom.P2(+d, -d)),
		center.Add(geom.P2(0, -a)),
		center.Add(geom.P2(+a, -a)),
		center.Add(geom.P2(0, +a)),
		center.Add(geom.P2(+a, +a)),
		center.Add(geom.P2(0, +radius)),
		center.Add(geom.P2(+d, +d)),
	}
	cells := [][]int{
		{0, 1, 2, 3},
		{2, 3, 4, 5},
		{1, 7, 3, 5},
		{6, 4, 7, 5},
	}
	return addVertsAndCells(m, verts, cells)
}

// Cylinder fills a 3d mesh with a tube along the x axis from -halfLength to
// +halfLength whose cross-section is the five-cell circle of the given
// radius. In 2d it degenerates to the axial projection, a plain rectangle.
// Boundary ids are always assigned: 0 for the hull, 1 for the x=-halfLength
// cap, 2 for the x=+halfLength cap. Undefined in 1d.
func Cylinder(m *mesh.Mesh, radius, halfLength float64) error {
	if err := checkEmpty(m); err != nil {
		return err
	}
	if m.Dim == 1 {
		return fmt.Errorf("%w: cylinder undefined in 1d", griderr.ErrUnsupportedDimension)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: cylinder radius %g must be positive", griderr.ErrInvalidArgument, radius)
	}
	if halfLength <= 0 {
		return fmt.Errorf("%w: cylinder half length %g must be positive", griderr.ErrInvalidArgument, halfLength)
	}

	if m.Dim == 2 {
		if err := buildTensor(m, [][]float64{
			{-halfLength, +halfLength},
			{-radius, +radius},
		}); err != nil {
			return err
		}
		return colorizeCylinder(m, halfLength)
	}

	// Cross-section vertices in the yz plane, extruded along x.
	d := radius / math.Sqrt2
	a := d * innerCellFactor(2)
	section := [][2]float64{
		{-d, -d}, {+d, -d},
		{-a, -a}, {+a, -a},
		{-a, +a}, {+a, +a},
		{-d, +d}, {+d, +d},
	}
	verts := make([]geom.Point, 0, 16)
	for _, x := range []float64{-halfLength, +halfLength} {
		for _, yz := range section {
			verts = append(verts, geom.P3(x, yz[0], yz[1]))
		}
	}
	quads := [][]int{
		{0, 1, 2, 3},
		{0, 2, 6, 4},
		{2, 3, 4, 5},
		{1, 7, 3, 5},
		{6, 4, 7, 5},
	}
	var cells [][]int
	for _, q := range quads {
		// Lexicographic hex order with x running fastest: each quad corner
		// contributes its x=-L copy then its x=+L copy.
		cells = append(cells, []int{
			q[0], q[0] + 8,
			q[1], q[1] + 8,
			q[2], q[2] + 8,
			q[3], q[3] + 8,
		})
	}
	if err := addVertsAndCells(m, verts, cells); err != nil {
		return err
	}
	return colorizeCylinder(m, halfLength)
}

func colorizeCylinder(m *mesh.Mesh, halfLength float64) error {
	eps := halfLength * 1e-10
	for _, f := range m.BoundaryFaces() {
		x := m.Center(f).At(0)
		id := 0
		switch {
		case math.Abs(x+halfLength) < eps:
			id = 1
		case math.Abs(x-halfLength) < eps:
			id = 2
		}
		if err := m.SetBoundaryID(f, id); err != nil {
			return err
		}
	}
	return nil
}

func addVertsAndCells(m *mesh.Mesh, verts []geom.Point, cells [][]int) error {
	for _, v := range verts {
		if _, err := m.AddVertex(v); err != nil {
			return err
		}
	}
	for _, c := range cells {
		if _, err := m.AddCell(c...); err != nil {
			return err
		}
	}
	return nil
}
