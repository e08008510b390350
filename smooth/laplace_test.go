package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
	"github.com/gridcraft/gridgen/grids"
	"github.com/gridcraft/gridgen/mesh"
)

// unitGrid builds [0,1]^dim subdivided reps times per axis.
func unitGrid(t *testing.T, dim, reps int) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(dim)
	require.NoError(t, err)
	require.NoError(t, grids.SubdividedHyperCube(m, reps, 0, 1))
	return m
}

// boundaryVertices returns the indices of all vertices on the boundary of the
// unit cube.
func boundaryVertices(m *mesh.Mesh) []int {
	var out []int
	for i, v := range m.Vertices {
		for k := 0; k < m.Dim; k++ {
			if v.At(k) == 0 || v.At(k) == 1 {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

func TestLaplaceTransformErrors(t *testing.T) {
	m1, err := mesh.New(1)
	require.NoError(t, err)
	require.NoError(t, grids.HyperCube(m1, 0, 1))
	require.ErrorIs(t, LaplaceTransform(m1, map[int]geom.Point{0: geom.P1(0)}),
		griderr.ErrUnsupportedDimension)

	m := unitGrid(t, 2, 2)
	require.ErrorIs(t, LaplaceTransform(m, map[int]geom.Point{99: geom.P2(0, 0)}),
		griderr.ErrInvalidArgument)
	require.ErrorIs(t, LaplaceTransform(m, map[int]geom.Point{0: geom.P3(0, 0, 0)}),
		griderr.ErrInvalidArgument)
}

func TestLaplaceTransformNoConstraintsIsNoOp(t *testing.T) {
	m := unitGrid(t, 2, 2)
	before := append([]geom.Point{}, m.Vertices...)
	require.NoError(t, LaplaceTransform(m, nil))
	assert.Equal(t, before, m.Vertices)
}

func TestLaplaceTransformStretch(t *testing.T) {
	m := unitGrid(t, 2, 2)

	// Pin every boundary vertex to twice its position; the single interior
	// vertex (0.5, 0.5) must move to the new center (1, 1).
	constraints := make(map[int]geom.Point)
	for _, i := range boundaryVertices(m) {
		constraints[i] = m.Vertex(i).Scale(2)
	}
	require.Len(t, constraints, 8)
	require.NoError(t, LaplaceTransform(m, constraints))

	// Constrained vertices carry their targets verbatim.
	for i, target := range constraints {
		assert.Equal(t, target, m.Vertex(i))
	}

	// Interior vertex 4 (lexicographic center of the 3x3 grid).
	center := m.Vertex(4)
	assert.InDelta(t, 1.0, center.At(0), 1e-9)
	assert.InDelta(t, 1.0, center.At(1), 1e-9)
}

func TestLaplaceTransformHarmonicProperty(t *testing.T) {
	m := unitGrid(t, 2, 4)

	// Morph the unit square onto a sheared parallelogram.
	constraints := make(map[int]geom.Point)
	for _, i := range boundaryVertices(m) {
		v := m.Vertex(i)
		constraints[i] = geom.P2(v.At(0)+0.5*v.At(1), v.At(1))
	}
	require.NoError(t, LaplaceTransform(m, constraints))

	// Every free vertex of the 5x5 grid must equal the mean of its four edge
	// neighbors (discrete mean value property).
	isConstrained := func(i int) bool { _, ok := constraints[i]; return ok }
	for iy := 1; iy < 4; iy++ {
		for ix := 1; ix < 4; ix++ {
			i := ix + 5*iy
			require.False(t, isConstrained(i))
			mean := geom.Zero(2)
			for _, nb := range []int{i - 1, i + 1, i - 5, i + 5} {
				mean = mean.Add(m.Vertex(nb))
			}
			mean = mean.Scale(0.25)
			assert.InDelta(t, 0, mean.Dist(m.Vertex(i)), 1e-9,
				"vertex %d is not harmonic", i)
		}
	}
}

func TestLaplaceTransformIdentity(t *testing.T) {
	for _, dim := range []int{2, 3} {
		m := unitGrid(t, dim, 3)
		before := append([]geom.Point{}, m.Vertices...)

		constraints := make(map[int]geom.Point)
		for _, i := range boundaryVertices(m) {
			constraints[i] = m.Vertex(i)
		}
		require.NoError(t, LaplaceTransform(m, constraints))

		// The grid coordinates are discretely harmonic, so pinning the
		// boundary to itself must reproduce the interior exactly (up to
		// solver tolerance).
		for i := range m.Vertices {
			assert.InDelta(t, 0, before[i].Dist(m.Vertex(i)), 1e-9, "vertex %d moved", i)
		}
	}
}

func TestLaplaceTransformTranslationInvariance(t *testing.T) {
	offset := geom.P2(0.5, -0.25)

	m := unitGrid(t, 2, 3)
	constraints := make(map[int]geom.Point)
	for _, i := range boundaryVertices(m) {
		constraints[i] = m.Vertex(i).Add(offset)
	}
	before := append([]geom.Point{}, m.Vertices...)
	require.NoError(t, LaplaceTransform(m, constraints))

	for i := range m.Vertices {
		assert.InDelta(t, 0, before[i].Add(offset).Dist(m.Vertex(i)), 1e-9)
	}
}

func TestLaplaceTransformKeepsTopology(t *testing.T) {
	m := unitGrid(t, 2, 2)
	cells := make([][]int, len(m.Cells))
	for i, c := range m.Cells {
		cells[i] = append([]int{}, c...)
	}

	constraints := make(map[int]geom.Point)
	for _, i := range boundaryVertices(m) {
		constraints[i] = m.Vertex(i).Scale(3)
	}
	require.NoError(t, LaplaceTransform(m, constraints))

	assert.Equal(t, cells, m.Cells)
	assert.NoError(t, m.Check())
}
