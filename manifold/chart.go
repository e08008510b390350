// Package manifold provides coordinate charts: invertible maps between a
// curved chart coordinate system and ambient Cartesian space, plus the
// weighted "new point" rule adaptive refinement uses to place vertices on
// curved boundaries.
package manifold

import (
	"fmt"
	"math"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
)

// Chart maps between chart coordinates and ambient Cartesian coordinates.
// Implementations carry no state beyond their construction parameters and
// are safe for concurrent use.
type Chart interface {
	// PushForward maps a chart point to ambient space.
	PushForward(chart geom.Point) (geom.Point, error)

	// PullBack maps an ambient point to chart coordinates. Inverse of
	// PushForward up to floating point tolerance.
	PullBack(ambient geom.Point) (geom.Point, error)

	// Periodicity returns, per chart coordinate, the period of that
	// coordinate (zero for non-periodic coordinates). Fixed at construction.
	Periodicity() geom.Point

	// NewPoint returns the weighted average of the given ambient points,
	// computed in a way that respects the chart's geometry. Weights must sum
	// to one.
	NewPoint(weights []float64, points []geom.Point) (geom.Point, error)
}

const weightTol = 1e-9

// ChartAverage is the generic new-point rule: pull every point back, average
// in chart space, push the average forward. Periodic coordinates are re-seated
// within half a period of the first point before averaging, and the averaged
// coordinate is renormalized into [0, period).
func ChartAverage(c Chart, weights []float64, points []geom.Point) (geom.Point, error) {
	if err := checkWeights(weights, points); err != nil {
		return geom.Point{}, err
	}
	period := c.Periodicity()

	first, err := c.PullBack(points[0])
	if err != nil {
		return geom.Point{}, err
	}
	dim := first.Dim()
	avg := geom.Zero(dim)
	for i, p := range points {
		cp, err := c.PullBack(p)
		if err != nil {
			return geom.Point{}, err
		}
		for k := 0; k < dim; k++ {
			v := cp.At(k)
			if per := period.At(k); per > 0 {
				for v-first.At(k) > per/2 {
					v -= per
				}
				for v-first.At(k) < -per/2 {
					v += per
				}
			}
			avg = avg.With(k, avg.At(k)+weights[i]*v)
		}
	}
	for k := 0; k < dim; k++ {
		if per := period.At(k); per > 0 {
			v := math.Mod(avg.At(k), per)
			if v < 0 {
				v += per
			}
			avg = avg.With(k, v)
		}
	}
	return c.PushForward(avg)
}

func checkWeights(weights []float64, points []geom.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no points to average", griderr.ErrInvalidArgument)
	}
	if len(weights) != len(points) {
		return fmt.Errorf("%w: %d weights for %d points",
			griderr.ErrInvalidArgument, len(weights), len(points))
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > weightTol {
		return fmt.Errorf("%w: weights sum to %g, want 1", griderr.ErrInvalidArgument, sum)
	}
	return nil
}
