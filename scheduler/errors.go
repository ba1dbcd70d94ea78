package scheduler

import "errors"

var (
	// ErrUnknownVehicle names a departure-by-id for a vehicle absent from
	// the park's registry. Run does not return it: it logs the condition
	// as a warning and continues.
	ErrUnknownVehicle = errors.New("scheduler: unknown vehicle id")

	// ErrUnknownAccessType is produced for an arrival order requesting an
	// access type absent from the grid's dictionary. Run logs it and drops
	// that order; the run continues.
	ErrUnknownAccessType = errors.New("scheduler: unknown access type")
)
