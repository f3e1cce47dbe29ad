package panacus

import "errors"

var (
	// ErrNilGraph is returned when the facade is built without a loaded
	// item universe or group table.
	ErrNilGraph = errors.New("graph store and group index must be non-nil")

	// ErrNoCoverage is returned by results that need a counting pass
	// before one was run.
	ErrNoCoverage = errors.New("coverage has not been computed; run Count first")
)
