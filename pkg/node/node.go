package node

import (
	"sort"

	"github.com/spectrawave/tfgraph/pkg/types"
)

// Node is the capability set the graph manager operates against. Every
// concrete node type (DataLoader, Filter, Slicer, Spectrum, Waterfall)
// implements it by embedding Base and supplying Execute.
type Node interface {
	Name() string

	SetParameter(name string, v types.PortValue) error
	SetInput(name string, v types.PortValue) error
	GetParameter(name string) (types.PortValue, bool)

	// GetOutput returns port's value, executing the node first if it is
	// currently dirty.
	GetOutput(port string) (types.PortValue, error)
	// Output peeks at port's cached value without triggering execution.
	// Used internally by the graph when marshaling values along edges.
	Output(port string) (types.PortValue, bool)
	// ReceiveInput assigns an input port's value without marking the node
	// dirty. Only the graph calls this, while copying an upstream output
	// into this node's input map during a topological pass; dirtiness for
	// that pass was already decided when the upstream value was set.
	ReceiveInput(port string, v types.PortValue)

	Reset()
	IsDirty() bool
	Execute() error

	Dependencies() []string
	SetDependencies(deps []string)
}

// Executable is the self-reference a concrete node type hands to Base so
// that Base.GetOutput can invoke the concrete Execute polymorphically.
type Executable interface {
	Execute() error
}

// Base implements every Node method except Execute. Concrete node types
// embed Base, construct their parameter/output maps, and call Init with
// themselves.
type Base struct {
	name string
	self Executable

	parameters map[string]types.PortValue
	inputs     map[string]types.PortValue
	outputs    map[string]types.PortValue

	dirty        bool
	dependencies []string
}

// NewBase constructs a Base in its fresh (dirty) state.
func NewBase(name string) Base {
	return Base{
		name:       name,
		parameters: make(map[string]types.PortValue),
		inputs:     make(map[string]types.PortValue),
		outputs:    make(map[string]types.PortValue),
		dirty:      true,
	}
}

// Init records the concrete node type so GetOutput can auto-execute it.
// Every concrete constructor must call this before returning.
func (b *Base) Init(self Executable) {
	b.self = self
}

func (b *Base) Name() string { return b.name }

// SetParameter stores v under name, marks the node dirty, and clears its
// outputs — per the node lifecycle, a changed parameter invalidates
// whatever was previously computed.
func (b *Base) SetParameter(name string, v types.PortValue) error {
	b.parameters[name] = v
	b.markDirtyLocal()
	return nil
}

// SetInput is the public, dirty-marking input setter used by direct/manual
// node wiring. Graph-driven wiring goes through ReceiveInput instead, since
// the graph decides dirtiness for its own reasons (see package graph).
func (b *Base) SetInput(name string, v types.PortValue) error {
	b.inputs[name] = v
	b.markDirtyLocal()
	return nil
}

// ReceiveInput implements Node.ReceiveInput.
func (b *Base) ReceiveInput(name string, v types.PortValue) {
	b.inputs[name] = v
}

func (b *Base) GetParameter(name string) (types.PortValue, bool) {
	v, ok := b.parameters[name]
	return v, ok
}

// Parameter is a convenience alias used internally by concrete node types;
// identical to GetParameter.
func (b *Base) Parameter(name string) (types.PortValue, bool) {
	return b.GetParameter(name)
}

// Input returns a previously received/set input value.
func (b *Base) Input(name string) (types.PortValue, bool) {
	v, ok := b.inputs[name]
	return v, ok
}

// SetOutput is how a concrete node's Execute populates an output port.
func (b *Base) SetOutput(name string, v types.PortValue) {
	b.outputs[name] = v
}

func (b *Base) Output(name string) (types.PortValue, bool) {
	v, ok := b.outputs[name]
	return v, ok
}

// GetOutput executes the node (via the concrete Execute, through self) if
// it is dirty, then returns the requested output.
func (b *Base) GetOutput(name string) (types.PortValue, error) {
	if b.dirty {
		if err := b.self.Execute(); err != nil {
			return types.PortValue{}, err
		}
	}
	v, ok := b.outputs[name]
	if !ok {
		return types.PortValue{}, types.MissingOutputError(b.name, name)
	}
	return v, nil
}

// Reset puts the node back into its dirty, output-less state without
// touching its parameters or inputs. The graph calls this on every
// transitive descendant of a node whose parameter/input changed (that node
// itself is already dirty from SetParameter/SetInput), on the downstream
// side of a removed edge, and on every node when an edge is connected.
func (b *Base) Reset() {
	b.dirty = true
	b.outputs = make(map[string]types.PortValue)
}

func (b *Base) IsDirty() bool { return b.dirty }

// MarkClean is called by a concrete node's Execute once it has finished
// successfully and populated its outputs.
func (b *Base) MarkClean() { b.dirty = false }

func (b *Base) Dependencies() []string {
	deps := make([]string, len(b.dependencies))
	copy(deps, b.dependencies)
	return deps
}

// SetDependencies replaces the node's recorded upstream dependency set. Only
// the graph calls this, after a Connect/RemoveConnection changes the edge
// set. The slice is stored sorted so Dependencies() is deterministic.
func (b *Base) SetDependencies(deps []string) {
	sorted := make([]string, len(deps))
	copy(sorted, deps)
	sort.Strings(sorted)
	b.dependencies = sorted
}

func (b *Base) markDirtyLocal() {
	b.dirty = true
	b.outputs = make(map[string]types.PortValue)
}
