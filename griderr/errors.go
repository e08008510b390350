// Package griderr defines the error kinds shared by the mesh generation,
// manifold and smoothing packages. Callers branch on them with errors.Is;
// the wrapping message carries the diagnostic payload (offending count,
// radius pair, dimension).
package griderr

import "errors"

var (
	// ErrInvalidArgument marks a parameter that is out of its admissible
	// range: a negative radius, a repetition count below one, a repetitions
	// vector of the wrong length, or a constraint referencing an unknown
	// vertex.
	ErrInvalidArgument = errors.New("gridgen: invalid argument")

	// ErrUnsupportedDimension marks an operation requested for a dimension
	// in which the shape is geometrically undefined, e.g. a 1d hyper ball.
	ErrUnsupportedDimension = errors.New("gridgen: unsupported dimension")

	// ErrInvalidRadii marks a shell whose radii are non-positive or inverted.
	ErrInvalidRadii = errors.New("gridgen: invalid radii")

	// ErrMeshNotEmpty marks a generation call on a mesh that already holds
	// vertices or cells. Generators require a void mesh.
	ErrMeshNotEmpty = errors.New("gridgen: mesh not empty")

	// ErrNotImplemented marks a shape/dimension combination that is defined
	// but has no construction yet (3d hyper shell, 3d slit colorization).
	ErrNotImplemented = errors.New("gridgen: not implemented")

	// ErrInternal marks a state that correct usage cannot reach.
	ErrInternal = errors.New("gridgen: internal inconsistency")
)
