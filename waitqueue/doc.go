// Package waitqueue implements a FIFO queue of deferred arrival records,
// supporting both push-back (normal arrival) and push-front (a retried
// record that failed again and must regain head position) — grounded on
// original_source/queue.c's Qpush/QpushFirst/Qpop.
//
// The source container held untyped void* Items; spec.md §9's redesign
// note calls for "monomorphic containers over the concrete record types"
// instead. Queue is generic over its element type so each instantiation
// (scheduler's deferred-arrival record, or a test's plain int) is a
// distinct concrete type at compile time — no runtime casts, no
// interface{} boxing of the record.
package waitqueue
