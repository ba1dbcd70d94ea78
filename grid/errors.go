package grid

import "errors"

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates a grid with zero floors, rows or columns.
	ErrEmptyGrid = errors.New("grid: dimensions must all be positive")

	// ErrNonRectangular indicates a flat cell slice whose length is not
	// N*M*P (returned by NewConfig).
	ErrNonRectangular = errors.New("grid: all rows and floors must share dimensions")

	// ErrOutOfBounds indicates a coordinate outside [0,N)x[0,M)x[0,P).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrUnknownAccessType indicates a request for an access type that was
	// never observed among the grid's access points.
	ErrUnknownAccessType = errors.New("grid: unknown access type")

	// ErrDuplicateType names a repeated access type. NewTypeDict does not
	// return it: repeated types collapse into a single sink index.
	ErrDuplicateType = errors.New("grid: duplicate access type")
)
