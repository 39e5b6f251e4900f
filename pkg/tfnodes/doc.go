// Package tfnodes provides the five node types of the time-frequency
// workflow: DataLoader, Filter, Slicer, Spectrum, and Waterfall. Each embeds
// node.Base and supplies the validate-then-execute contract that base's
// GetOutput invokes lazily.
package tfnodes
