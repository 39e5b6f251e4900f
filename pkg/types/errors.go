package types

import (
	"errors"
	"fmt"
)

// Sentinel errors, grouped by the category of problem they represent. Wrap
// context around them with fmt.Errorf("...: %w", ...) and recover the
// category with errors.Is.
var (
	// Node-level errors
	ErrMissingParameter = errors.New("missing parameter")
	ErrMissingInput     = errors.New("missing input")
	ErrValidation       = errors.New("validation error")
	ErrMissingOutput    = errors.New("missing output")

	// DataLoader errors
	ErrFileNotFound = errors.New("file not found")
	ErrParseError   = errors.New("parse error")

	// Graph structure errors
	ErrDuplicateName   = errors.New("duplicate node name")
	ErrUnknownNode     = errors.New("unknown node")
	ErrPortOccupied    = errors.New("port already occupied")
	ErrCycleIntroduced = errors.New("connection would introduce a cycle")
	ErrCycleDetected   = errors.New("graph contains a cycle")
)

// MissingParameterError reports that node did not have parameter set before
// execution needed it.
func MissingParameterError(node, parameter string) error {
	return fmt.Errorf("node %q: parameter %q: %w", node, parameter, ErrMissingParameter)
}

// MissingInputError reports that node did not have input connected/set
// before execution needed it.
func MissingInputError(node, input string) error {
	return fmt.Errorf("node %q: input %q: %w", node, input, ErrMissingInput)
}

// ValidationError reports that a node's parameters or inputs failed a
// domain-specific check (e.g. a negative duration, an empty band).
func ValidationError(node, reason string) error {
	return fmt.Errorf("node %q: %s: %w", node, reason, ErrValidation)
}

// MissingOutputError reports a GetOutput call against a port the node never
// populates under its current parameters.
func MissingOutputError(node, output string) error {
	return fmt.Errorf("node %q: output %q: %w", node, output, ErrMissingOutput)
}

// FileNotFoundError reports a DataLoader path that does not exist or is not
// readable.
func FileNotFoundError(path string, cause error) error {
	return fmt.Errorf("%s: %w: %v", path, ErrFileNotFound, cause)
}

// ParseErrorAt reports a DataLoader CSV row that failed to parse.
func ParseErrorAt(path string, line int, cause error) error {
	return fmt.Errorf("%s:%d: %w: %v", path, line, ErrParseError, cause)
}

// DuplicateNameError reports AddNode called with a name already in the
// graph.
func DuplicateNameError(name string) error {
	return fmt.Errorf("node %q: %w", name, ErrDuplicateName)
}

// UnknownNodeError reports an operation referencing a node name the graph
// does not hold.
func UnknownNodeError(name string) error {
	return fmt.Errorf("node %q: %w", name, ErrUnknownNode)
}

// PortOccupiedError reports Connect targeting an input port that already
// has a feeding edge.
func PortOccupiedError(node, port string) error {
	return fmt.Errorf("node %q: input %q: %w", node, port, ErrPortOccupied)
}

// CycleIntroducedError reports a Connect call that was rejected because it
// would close a cycle.
func CycleIntroducedError(src, dst string) error {
	return fmt.Errorf("connecting %q -> %q: %w", src, dst, ErrCycleIntroduced)
}

// CycleDetectedError reports a topological sort that found a cycle
// somewhere in the graph.
func CycleDetectedError() error {
	return fmt.Errorf("topological sort: %w", ErrCycleDetected)
}
