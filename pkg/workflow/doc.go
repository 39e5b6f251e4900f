// Package workflow provides TimeFrequency, the facade that wires the five
// time-frequency nodes (DataLoader, Filter, Slicer, Spectrum, Waterfall)
// into a graph and exposes the parameter-set / output-get verbs a
// presentation layer drives. Every verb ends with a graph execute call, logs
// through pkg/logging, and emits pkg/observer events that pkg/telemetry can
// subscribe to.
package workflow
