// Package rtconfig loads the YAML runtime configuration for
// cmd/parkroutersim: heap sizing hints, optional metrics exposure, log
// level and the scheduler's strict-unknown-vehicle switch. The loader
// shape is grounded on mpisat-qumo/cmd/qumo-relay/main.go's loadConfig.
package rtconfig
