// Package scheduler merges arrival and restriction orders into a single
// non-decreasing time stream and drives the park model, the shortest-path
// engine and the trace reconstructor over it, exactly as
// original_source/gestor.c's main() event loop does over its own merged
// Order linked list. The look-ahead guard that decides when a run of
// same-time non-arrival orders may trigger a waiting-queue retry is ported
// from that loop's strchr("RrPpSs", testO->action) check.
package scheduler
