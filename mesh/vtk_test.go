package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcraft/gridgen/geom"
)

func TestWriteVTKQuad(t *testing.T) {
	m := twoCellStrip(t)
	require.NoError(t, m.SetMaterialID(1, 3))

	var sb strings.Builder
	require.NoError(t, m.WriteVTK(&sb))
	out := sb.String()

	assert.Contains(t, out, "DATASET UNSTRUCTURED_GRID")
	assert.Contains(t, out, "POINTS 6 double")
	assert.Contains(t, out, "CELLS 2 10")
	// Lexicographic [0 1 3 4] becomes the VTK_QUAD loop [0 1 4 3].
	assert.Contains(t, out, "4 0 1 4 3\n")
	assert.Contains(t, out, "CELL_TYPES 2\n9\n9\n")
	assert.Contains(t, out, "SCALARS material int 1")
	assert.True(t, strings.HasSuffix(out, "0\n3\n"))
}

func TestWriteVTKHex(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				_, err := m.AddVertex(geom.P3(float64(x), float64(y), float64(z)))
				require.NoError(t, err)
			}
		}
	}
	_, err = m.AddCell(0, 1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.WriteVTK(&sb))
	out := sb.String()

	assert.Contains(t, out, "CELLS 1 9")
	assert.Contains(t, out, "8 0 1 3 2 4 5 7 6\n")
	assert.Contains(t, out, "CELL_TYPES 1\n12\n")
}
