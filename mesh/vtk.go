package mesh

import (
	"fmt"
	"io"
)

// VTK legacy cell type ids and the permutation from lexicographic to VTK
// corner order.
var vtkCellInfo = map[int]struct {
	cellType int
	order    []int
}{
	1: {3, []int{0, 1}},                    // VTK_LINE
	2: {9, []int{0, 1, 3, 2}},              // VTK_QUAD
	3: {12, []int{0, 1, 3, 2, 4, 5, 7, 6}}, // VTK_HEXAHEDRON
}

// WriteVTK writes the mesh as a legacy-format VTK unstructured grid,
// including the per-cell material ids.
func (m *Mesh) WriteVTK(w io.Writer) error {
	info := vtkCellInfo[m.Dim]

	if _, err := fmt.Fprintf(w, "# vtk DataFile Version 3.0\ngridgen mesh\nASCII\nDATASET UNSTRUCTURED_GRID\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "POINTS %d double\n", len(m.Vertices)); err != nil {
		return err
	}
	for _, p := range m.Vertices {
		var xyz [3]float64
		for i := 0; i < m.Dim; i++ {
			xyz[i] = p.At(i)
		}
		if _, err := fmt.Fprintf(w, "%g %g %g\n", xyz[0], xyz[1], xyz[2]); err != nil {
			return err
		}
	}

	n := m.VerticesPerCell()
	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", len(m.Cells), len(m.Cells)*(n+1)); err != nil {
		return err
	}
	for _, cell := range m.Cells {
		if _, err := fmt.Fprintf(w, "%d", n); err != nil {
			return err
		}
		for _, local := range info.order {
			if _, err := fmt.Fprintf(w, " %d", cell[local]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_TYPES %d\n", len(m.Cells)); err != nil {
		return err
	}
	for range m.Cells {
		if _, err := fmt.Fprintf(w, "%d\n", info.cellType); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_DATA %d\nSCALARS material int 1\nLOOKUP_TABLE default\n", len(m.Cells)); err != nil {
		return err
	}
	for _, id := range m.MaterialIDs {
		if _, err := fmt.Fprintf(w, "%d\n", id); err != nil {
			return err
		}
	}
	return nil
}
