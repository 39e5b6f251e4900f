// Package types defines the port value model shared by every node and by the
// graph that wires nodes together, plus the sentinel errors the rest of the
// module reports by category.
package types
