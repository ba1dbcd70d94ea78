// Package trace reconstructs the ordered event records a completed route
// produces — entry, drive turns, the park event, walk turns, arrival and a
// summary — by walking a Dijkstra predecessor array forward into a path and
// scanning it for direction changes, exactly as
// original_source/parkmap.c's writeOutput/writeOutputAfterIn do over their
// raw node-id path array. The node-id arithmetic those functions rely on
// (a difference of N*M*P marks the drive->walk bridge, a difference of N*M
// marks a ramp tick) is preserved here via grid.Dims.CellCount/RowStride,
// so the tick-counting logic is a direct, faithful port.
package trace
