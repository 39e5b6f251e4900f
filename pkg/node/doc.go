// Package node provides the Base node contract shared by every node type in
// the graph: identity, parameter/input/output port maps, the dirty flag, and
// the dependency list the graph maintains on the node's behalf.
//
// Concrete node types embed Base and call Init with themselves so that
// Base.GetOutput can auto-execute the concrete type's Execute method before
// returning a stale or absent output — the idiomatic Go substitute for the
// abstract-base-class pattern, since Go has no inheritance to hang the
// abstract Execute method from.
package node
