package bands

import "errors"

var (
	// ErrMissingParameter indicates that neither the override set nor the
	// database record defines a key required by a query.
	ErrMissingParameter = errors.New("bands: missing material parameter")
	// ErrSweepPoints indicates a composition sweep with fewer than two
	// grid points.
	ErrSweepPoints = errors.New("bands: sweep needs at least two points")
)
