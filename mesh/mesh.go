// Package mesh holds the coarse mesh container the generators populate:
// vertices, hypercube-topology cells and boundary/material identifiers.
//
// Cells store their vertex indices in lexicographic tensor order, coordinate
// x running fastest: in 2d a cell reads [v00 v10 v01 v11], in 3d
// [v000 v100 v010 v110 v001 v101 v011 v111]. All cells of a valid mesh share
// positive orientation under this ordering (Check verifies it).
package mesh

import (
	"fmt"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
)

// Mesh is a coarse mesh in 1, 2 or 3 dimensions.
type Mesh struct {
	Dim      int
	Vertices []geom.Point
	Cells    [][]int

	// MaterialIDs holds one id per cell, zero by default.
	MaterialIDs []int

	boundaryIDs map[string]int
}

// New returns an empty mesh of the given dimension.
func New(dim int) (*Mesh, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%w: mesh dimension %d not in 1..3", griderr.ErrInvalidArgument, dim)
	}
	return &Mesh{
		Dim:         dim,
		boundaryIDs: make(map[string]int),
	}, nil
}

// VerticesPerCell returns 2^dim, the cell tuple length.
func (m *Mesh) VerticesPerCell() int { return 1 << m.Dim }

// FacesPerCell returns 2*dim, two faces per coordinate axis.
func (m *Mesh) FacesPerCell() int { return 2 * m.Dim }

// IsEmpty reports whether the mesh holds no vertices and no cells.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 && len(m.Cells) == 0
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p geom.Point) (int, error) {
	if p.Dim() != m.Dim {
		return 0, fmt.Errorf("%w: vertex dimension %d in %dd mesh", griderr.ErrInvalidArgument, p.Dim(), m.Dim)
	}
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1, nil
}

// AddCell appends a cell given its vertex indices in lexicographic tensor
// order and returns the cell index.
func (m *Mesh) AddCell(verts ...int) (int, error) {
	if len(verts) != m.VerticesPerCell() {
		return 0, fmt.Errorf("%w: cell needs %d vertices, got %d",
			griderr.ErrInvalidArgument, m.VerticesPerCell(), len(verts))
	}
	for _, v := range verts {
		if v < 0 || v >= len(m.Vertices) {
			return 0, fmt.Errorf("%w: cell vertex index %d out of range [0,%d)",
				griderr.ErrInvalidArgument, v, len(m.Vertices))
		}
	}
	cell := make([]int, len(verts))
	copy(cell, verts)
	m.Cells = append(m.Cells, cell)
	m.MaterialIDs = append(m.MaterialIDs, 0)
	return len(m.Cells) - 1, nil
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) geom.Point { return m.Vertices[i] }

// SetVertex overwrites the position of vertex i.
func (m *Mesh) SetVertex(i int, p geom.Point) error {
	if i < 0 || i >= len(m.Vertices) {
		return fmt.Errorf("%w: vertex index %d out of range [0,%d)",
			griderr.ErrInvalidArgument, i, len(m.Vertices))
	}
	if p.Dim() != m.Dim {
		return fmt.Errorf("%w: vertex dimension %d in %dd mesh", griderr.ErrInvalidArgument, p.Dim(), m.Dim)
	}
	m.Vertices[i] = p
	return nil
}

// SetMaterialID assigns a material id to cell c.
func (m *Mesh) SetMaterialID(c, id int) error {
	if c < 0 || c >= len(m.Cells) {
		return fmt.Errorf("%w: cell index %d out of range [0,%d)",
			griderr.ErrInvalidArgument, c, len(m.Cells))
	}
	m.MaterialIDs[c] = id
	return nil
}

// Check verifies the structural invariants of the mesh: index bounds, cell
// tuple lengths and consistent positive orientation of every cell.
func (m *Mesh) Check() error {
	for i, p := range m.Vertices {
		if p.Dim() != m.Dim {
			return fmt.Errorf("%w: vertex %d has dimension %d", griderr.ErrInternal, i, p.Dim())
		}
	}
	if len(m.MaterialIDs) != len(m.Cells) {
		return fmt.Errorf("%w: %d material ids for %d cells",
			griderr.ErrInternal, len(m.MaterialIDs), len(m.Cells))
	}
	for c, cell := range m.Cells {
		if len(cell) != m.VerticesPerCell() {
			return fmt.Errorf("%w: cell %d has %d vertices", griderr.ErrInternal, c, len(cell))
		}
		for _, v := range cell {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("%w: cell %d references vertex %d", griderr.ErrInternal, c, v)
			}
		}
		if det := m.cornerDet(cell); det <= 0 {
			return fmt.Errorf("%w: cell %d has non-positive orientation (det=%g)",
				griderr.ErrInternal, c, det)
		}
	}
	return nil
}

// cornerDet returns the determinant of the edge vectors emanating from the
// cell's first vertex. Positive for all cells of a consistently oriented mesh.
func (m *Mesh) cornerDet(cell []int) float64 {
	v0 := m.Vertices[cell[0]]
	var e [3]geom.Point
	for k := 0; k < m.Dim; k++ {
		e[k] = m.Vertices[cell[1<<k]].Sub(v0)
	}
	switch m.Dim {
	case 1:
		return e[0].At(0)
	case 2:
		return e[0].At(0)*e[1].At(1) - e[0].At(1)*e[1].At(0)
	default:
		return e[0].At(0)*(e[1].At(1)*e[2].At(2)-e[1].At(2)*e[2].At(1)) -
			e[0].At(1)*(e[1].At(0)*e[2].At(2)-e[1].At(2)*e[2].At(0)) +
			e[0].At(2)*(e[1].At(0)*e[2].At(1)-e[1].At(1)*e[2].At(0))
	}
}
