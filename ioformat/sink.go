package ioformat

import (
	"fmt"
	"io"

	"github.com/gridpark/parkrouter/trace"
)

// summaryKind is the literal escreve_saida(fp, ID, TIME[0], TIME[1],
// TIME[2], cost, 'x') is always called with in parkmap.c: the summary line
// reuses the regular record's five-field shape, with t_in/t_park/t_arrive/
// cost standing in for time/x/y/z.
const summaryKind = 'x'

// LineSink formats trace records and summaries as text lines of
// `id t x y z kind`, per spec.md §6's emit/emit_summary shapes. It never
// buffers: every call is a single Fprintf against W.
type LineSink struct {
	W io.Writer
}

// Emit writes one `id t x y z kind` line.
func (s LineSink) Emit(rec trace.Record) {
	fmt.Fprintf(s.W, "%s %d %d %d %d %c\n", rec.VehicleID, rec.Time, rec.At.X, rec.At.Y, rec.At.Z, rec.Kind)
}

// EmitSummary writes the terminating `id t_in t_park t_arrive cost x` line.
func (s LineSink) EmitSummary(sum trace.Summary) {
	fmt.Fprintf(s.W, "%s %d %d %d %d %c\n", sum.VehicleID, sum.TimeIn, sum.TimePark, sum.TimeArrive, sum.Cost, summaryKind)
}
