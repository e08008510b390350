package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := P2(1, 2)
	q := P2(3, -1)

	assert.Equal(t, P2(4, 1), p.Add(q))
	assert.Equal(t, P2(-2, 3), p.Sub(q))
	assert.Equal(t, P2(2, 4), p.Scale(2))
	assert.Equal(t, 1.0, p.Dot(q))
	assert.InDelta(t, 5.0, P3(3, 4, 0).Norm(), 1e-15)
	assert.InDelta(t, 5.0, P2(0, 0).Dist(P2(3, 4)), 1e-15)
}

func TestPointAccessors(t *testing.T) {
	p := P3(1, 2, 3)
	require.Equal(t, 3, p.Dim())
	assert.Equal(t, 2.0, p.At(1))
	assert.Equal(t, []float64{1, 2, 3}, p.Coords())

	q := p.With(0, 9)
	assert.Equal(t, 9.0, q.At(0))
	assert.Equal(t, 1.0, p.At(0), "With must not mutate the receiver")

	assert.Equal(t, P2(5, 6), FromSlice([]float64{5, 6}))
	assert.Equal(t, 2, Zero(2).Dim())
}

func TestPointPanics(t *testing.T) {
	assert.Panics(t, func() { P2(1, 2).Add(P3(1, 2, 3)) })
	assert.Panics(t, func() { P2(1, 2).At(2) })
	assert.Panics(t, func() { Zero(4) })
	assert.Panics(t, func() { FromSlice(nil) })
}
