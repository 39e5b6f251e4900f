// Package graph implements the Graph manager: typed edges between node
// ports, topological execution by Kahn's algorithm with an insertion-order
// tie-break, and cycle detection both at connect time and at execute time.
//
// The graph owns all dependency bookkeeping — a node never holds a
// back-reference to the graph or to the nodes it depends on beyond the
// dependency-name list the graph writes into it after every structural
// change.
package graph
