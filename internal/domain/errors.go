package domain

import "errors"

// Error kinds surfaced by grid validation and the processing plugins.
// Callers match them with errors.Is; the wrapped message names the
// offending value (operators tune radii empirically, so "zero cell
// extent" and "exceeds maximum" must stay distinguishable).
var (
	// ErrConfiguration reports a bad radius, a bad grid type or missing
	// coordinates.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDataValidity reports input data failing a hard precondition,
	// such as NaN values. NaN is never treated as missing data.
	ErrDataValidity = errors.New("invalid data")

	// ErrDimensionality reports a cube whose dimensions the operation
	// refuses to work across, such as an ensemble realization axis.
	ErrDimensionality = errors.New("invalid dimensionality")

	// ErrShape reports an impossible array shape, such as a kernel with
	// negative extent.
	ErrShape = errors.New("invalid shape")
)
