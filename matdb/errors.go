package matdb

import "errors"

var (
	// ErrUnknownMaterial indicates a pure-semiconductor name absent from
	// the database.
	ErrUnknownMaterial = errors.New("matdb: unknown material")
	// ErrUnknownAlloy indicates an alloy name absent from the database.
	ErrUnknownAlloy = errors.New("matdb: unknown alloy")
	// ErrBadDatabase indicates malformed or inconsistent database input.
	ErrBadDatabase = errors.New("matdb: bad database")
)
