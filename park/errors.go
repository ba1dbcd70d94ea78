package park

import "errors"

// Sentinel errors for the park model's mutators.
var (
	// ErrGraphNotBuilt indicates a restriction or occupancy mutator was
	// called before Compile. Fatal per spec.md §7.
	ErrGraphNotBuilt = errors.New("park: routing graph not built, call Compile first")

	// ErrUnknownVehicle indicates a departure-by-id for an id absent from
	// the registry. Reported, not fatal — no state is mutated.
	ErrUnknownVehicle = errors.New("park: unknown vehicle id")

	// ErrOutOfBounds indicates a mutator coordinate or floor index outside
	// the grid's dimensions.
	ErrOutOfBounds = errors.New("park: coordinate or floor out of bounds")

	// ErrNotOccupied indicates ClearSpotByCoord was called on a cell that
	// is not currently an occupied spot.
	ErrNotOccupied = errors.New("park: cell is not an occupied spot")
)
