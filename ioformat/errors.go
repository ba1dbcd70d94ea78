package ioformat

import "errors"

var (
	// ErrBadConfig reports a malformed park configuration: a header that
	// doesn't scan, a grid row of the wrong width, an unparseable E/A line,
	// a floor not terminated by a '+' line, or a header entrance/access
	// count that disagrees with what was actually found (spec.md §7).
	ErrBadConfig = errors.New("ioformat: malformed park configuration")

	// ErrBadOrder reports a V line that matches none of the three accepted
	// shapes (arrival, departure-by-id, departure-by-coord).
	ErrBadOrder = errors.New("ioformat: malformed arrival order line")

	// ErrBadRestriction reports an R line that matches neither the
	// cell-window nor the floor-window shape.
	ErrBadRestriction = errors.New("ioformat: malformed restriction order line")
)
