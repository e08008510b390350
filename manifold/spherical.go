package manifold

import (
	"fmt"
	"math"

	"github.com/gridcraft/gridgen/geom"
	"github.com/gridcraft/gridgen/griderr"
)

// epsRadius is the radius below which a chart point collapses to the center:
// the angular coordinates of a near-zero radius point carry no information.
const epsRadius = 1e-10

// Spherical is a spherical (2d: polar) coordinate chart centered at a point.
// Chart coordinates are (rho, theta) in 2d and (rho, theta, phi) in 3d, with
// theta the polar and phi the azimuthal angle. The last chart coordinate is
// periodic with period 2*pi.
type Spherical struct {
	center geom.Point
}

// NewSpherical returns a spherical chart around the given center. Spherical
// coordinates are undefined in one dimension.
func NewSpherical(center geom.Point) (*Spherical, error) {
	switch center.Dim() {
	case 1:
		return nil, fmt.Errorf("%w: spherical chart undefined in 1d", griderr.ErrUnsupportedDimension)
	case 2, 3:
		return &Spherical{center: center}, nil
	default:
		return nil, fmt.Errorf("%w: spherical chart for dimension %d", griderr.ErrInternal, center.Dim())
	}
}

// Center returns the chart's center.
func (s *Spherical) Center() geom.Point { return s.center }

// Periodicity marks the last chart coordinate (theta in 2d, phi in 3d) as
// periodic with period 2*pi.
func (s *Spherical) Periodicity() geom.Point {
	return geom.Zero(s.center.Dim()).With(s.center.Dim()-1, 2*math.Pi)
}

// PushForward maps (rho, theta[, phi]) to Cartesian coordinates translated by
// the center. The radius must be non-negative; radii below epsRadius map to
// the center regardless of the angles.
func (s *Spherical) PushForward(chart geom.Point) (geom.Point, error) {
	dim := s.center.Dim()
	if chart.Dim() != dim {
		return geom.Point{}, fmt.Errorf("%w: chart point dimension %d in %dd chart",
			griderr.ErrInvalidArgument, chart.Dim(), dim)
	}
	rho := chart.At(0)
	if rho < 0 {
		return geom.Point{}, fmt.Errorf("%w: negative radius %g", griderr.ErrInvalidArgument, rho)
	}
	if rho <= epsRadius {
		return s.center, nil
	}
	theta := chart.At(1)
	switch dim {
	case 2:
		return s.center.Add(geom.P2(rho*math.Cos(theta), rho*math.Sin(theta))), nil
	case 3:
		phi := chart.At(2)
		return s.center.Add(geom.P3(
			rho*math.Sin(theta)*math.Cos(phi),
			rho*math.Sin(theta)*math.Sin(phi),
			rho*math.Cos(theta))), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: spherical chart for dimension %d", griderr.ErrInternal, dim)
	}
}

// PullBack maps an ambient point to (rho, theta[, phi]). The azimuthal angle
// (and the single angle in 2d) is normalized into [0, 2*pi) because that
// coordinate is periodic; the 3d polar angle lies in [0, pi] by construction.
func (s *Spherical) PullBack(ambient geom.Point) (geom.Point, error) {
	dim := s.center.Dim()
	if ambient.Dim() != dim {
		return geom.Point{}, fmt.Errorf("%w: ambient point dimension %d in %dd chart",
			griderr.ErrInvalidArgument, ambient.Dim(), dim)
	}
	r := ambient.Sub(s.center)
	rho := r.Norm()
	x, y := r.At(0), r.At(1)
	switch dim {
	case 2:
		theta := math.Atan2(y, x)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		return geom.P2(rho, theta), nil
	case 3:
		z := r.At(2)
		phi := math.Atan2(y, x)
		if phi < 0 {
			phi += 2 * math.Pi
		}
		theta := math.Atan2(math.Sqrt(x*x+y*y), z)
		return geom.P3(rho, theta, phi), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: spherical chart for dimension %d", griderr.ErrInternal, dim)
	}
}

// NewPoint averages ambient points on the sphere. In 2d the generic periodic
// chart-space average applies. In 3d averaging the angles directly is unsafe
// near the periodic seam and the polar axis; instead the weighted ambient
// average is rescaled to the weighted average radius, which keeps points of
// equal radius on their sphere.
func (s *Spherical) NewPoint(weights []float64, points []geom.Point) (geom.Point, error) {
	dim := s.center.Dim()
	if dim == 2 {
		return ChartAverage(s, weights, points)
	}
	if err := checkWeights(weights, points); err != nil {
		return geom.Point{}, err
	}
	var rhoAvg float64
	mid := geom.Zero(dim)
	for i, p := range points {
		if p.Dim() != dim {
			return geom.Point{}, fmt.Errorf("%w: point dimension %d in %dd chart",
				griderr.ErrInvalidArgument, p.Dim(), dim)
		}
		rhoAvg += weights[i] * p.Sub(s.center).Norm()
		mid = mid.Add(p.Scale(weights[i]))
	}
	r := mid.Sub(s.center)
	n := r.Norm()
	if n <= epsRadius {
		return geom.Point{}, fmt.Errorf("%w: averaged point coincides with the chart center",
			griderr.ErrInvalidArgument)
	}
	return s.center.Add(r.Scale(rhoAvg / n)), nil
}
