// Package dsconfig loads a solver.Config from a YAML/JSON/TOML file or
// environment variables, the way perf-analysis's pkg/config loads its own
// Config: viper for the file/env layering, mapstructure tags for the field
// mapping, and a thin translation step from the wire representation (plain
// strings and durations) onto solver's typed enums.
package dsconfig
