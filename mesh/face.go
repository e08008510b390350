package mesh

import (
	"fmt"
	"sort"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
)

// Face identifies one face of one cell: the face on the Side (0 = minimum,
// 1 = maximum) of the given Axis. Verts lists its global vertex indices in
// lexicographic order of the remaining axes.
type Face struct {
	Cell  int
	Axis  int
	Side  int
	Verts []int
}

// FaceOf returns face (axis, side) of cell c.
func (m *Mesh) FaceOf(c, axis, side int) Face {
	cell := m.Cells[c]
	verts := make([]int, 0, 1<<(m.Dim-1))
	for local := 0; local < len(cell); local++ {
		if (local>>axis)&1 == side {
			verts = append(verts, cell[local])
		}
	}
	return Face{Cell: c, Axis: axis, Side: side, Verts: verts}
}

// Center returns the arithmetic mean of the face's vertex positions.
func (m *Mesh) Center(f Face) geom.Point {
	c := geom.Zero(m.Dim)
	for _, v := range f.Verts {
		c = c.Add(m.Vertices[v])
	}
	return c.Scale(1 / float64(len(f.Verts)))
}

// BoundaryFaces returns every face that is shared by exactly one cell, in
// (cell, axis, side) order. Faces built from deliberately duplicated vertices
// (the slit domains) have distinct signatures on either side of the cut and
// therefore count as boundary.
func (m *Mesh) BoundaryFaces() []Face {
	count := make(map[string]int)
	var faces []Face
	for c := range m.Cells {
		for axis := 0; axis < m.Dim; axis++ {
			for side := 0; side < 2; side++ {
				f := m.FaceOf(c, axis, side)
				count[faceKey(f.Verts)]++
				faces = append(faces, f)
			}
		}
	}
	var boundary []Face
	for _, f := range faces {
		if count[faceKey(f.Verts)] == 1 {
			boundary = append(boundary, f)
		}
	}
	return boundary
}

// SetBoundaryID assigns a boundary id to a face. The id is keyed on the
// face's vertex set, so the same face reached from another cell reports the
// same id.
func (m *Mesh) SetBoundaryID(f Face, id int) error {
	if id < 0 {
		return fmt.Errorf("%w: boundary id %d must be non-negative", griderr.ErrInvalidArgument, id)
	}
	m.boundaryIDs[faceKey(f.Verts)] = id
	return nil
}

// BoundaryID returns the id assigned to a face, zero if none was set.
func (m *Mesh) BoundaryID(f Face) int {
	return m.boundaryIDs[faceKey(f.Verts)]
}

// faceKey builds the canonical signature of a face from its sorted vertex
// indices.
func faceKey(verts []int) string {
	s := make([]int, len(verts))
	copy(s, verts)
	sort.Ints(s)
	key := ""
	for i, v := range s {
		if i > 0 {
			key += "-"
		}
		key += fmt.Sprint(v)
	}
	return key
}
