package nextnano

import "errors"

var (
	// ErrEmptyTable indicates the input contains no numeric rows.
	ErrEmptyTable = errors.New("nextnano: table has no numeric rows")
	// ErrRaggedRow indicates a row whose column count differs from the
	// first numeric row.
	ErrRaggedRow = errors.New("nextnano: ragged row in table")
	// ErrBadValue indicates a field that does not parse as a float.
	ErrBadValue = errors.New("nextnano: malformed numeric value")
)
