// Package config centralizes the engine's configuration: default parameter
// values for each node in the time-frequency workflow, plus the graph size
// ceilings that guard the generic graph manager against a runaway number of
// nodes or edges.
//
// # Basic usage
//
//	cfg := config.Default()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
