// Package ioformat parses the park configuration, arrival/restriction order
// files and formats emitted trace records, mirroring the grammar
// original_source/gestor.c's loadInstructionFile and loadRestrictionFile
// read by hand with fgetc/fscanf, and the line shape parkmap.c's
// escreve_saida writes. The core (packages grid, scheduler, trace) never
// touches text; this package is the only place that does.
package ioformat
