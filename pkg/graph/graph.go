package graph

import (
	"fmt"

	"github.com/spectrawave/tfgraph/pkg/node"
	"github.com/spectrawave/tfgraph/pkg/types"
)

// Edge connects one node's output port to another node's input port.
type Edge struct {
	SrcNode string
	SrcPort string
	DstNode string
	DstPort string
}

type feederKey struct {
	dstNode string
	dstPort string
}

// Graph holds a set of named nodes and the edges between their ports. It is
// not safe for concurrent use — the engine this package serves is
// single-threaded and pull-based (see the concurrency model in the module's
// design notes); callers must not invoke Graph methods re-entrantly from
// within a node's Execute.
type Graph struct {
	nodes map[string]node.Node
	order []string
	index map[string]int

	edgesByDst map[feederKey]Edge
	edgesFrom  map[string][]Edge
	edgesTo    map[string][]Edge
	pairCount  map[[2]string]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:      make(map[string]node.Node),
		index:      make(map[string]int),
		edgesByDst: make(map[feederKey]Edge),
		edgesFrom:  make(map[string][]Edge),
		edgesTo:    make(map[string][]Edge),
		pairCount:  make(map[[2]string]int),
	}
}

// AddNode registers n under its own Name(). The name must be unique within
// the graph.
func (g *Graph) AddNode(n node.Node) error {
	name := n.Name()
	if _, exists := g.nodes[name]; exists {
		return types.DuplicateNameError(name)
	}
	g.nodes[name] = n
	g.index[name] = len(g.order)
	g.order = append(g.order, name)
	return nil
}

// Node returns the named node, or ErrUnknownNode.
func (g *Graph) Node(name string) (node.Node, error) {
	return g.node(name)
}

func (g *Graph) node(name string) (node.Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, types.UnknownNodeError(name)
	}
	return n, nil
}

// Connect wires srcNode's srcPort output to dstNode's dstPort input. It
// rejects a destination port that already has a feeding edge
// (ErrPortOccupied) and a connection that would close a cycle
// (ErrCycleIntroduced). A successful Connect marks the whole graph dirty.
func (g *Graph) Connect(srcNode, srcPort, dstNode, dstPort string) error {
	if _, err := g.node(srcNode); err != nil {
		return err
	}
	if _, err := g.node(dstNode); err != nil {
		return err
	}

	key := feederKey{dstNode, dstPort}
	if _, occupied := g.edgesByDst[key]; occupied {
		return types.PortOccupiedError(dstNode, dstPort)
	}
	if srcNode == dstNode || g.reachable(dstNode, srcNode) {
		return types.CycleIntroducedError(srcNode, dstNode)
	}

	e := Edge{SrcNode: srcNode, SrcPort: srcPort, DstNode: dstNode, DstPort: dstPort}
	g.edgesByDst[key] = e
	g.edgesFrom[srcNode] = append(g.edgesFrom[srcNode], e)
	g.edgesTo[dstNode] = append(g.edgesTo[dstNode], e)
	g.pairCount[[2]string{srcNode, dstNode}]++

	g.recomputeDependencies(dstNode)
	g.markAllDirty()
	return nil
}

// RemoveConnection undoes a prior Connect with identical endpoints. If this
// was the last edge between the two nodes, the dependency between them is
// dropped; either way, dstNode and every node reachable from it are marked
// dirty.
func (g *Graph) RemoveConnection(srcNode, srcPort, dstNode, dstPort string) error {
	key := feederKey{dstNode, dstPort}
	e, ok := g.edgesByDst[key]
	if !ok || e.SrcNode != srcNode || e.SrcPort != srcPort {
		return types.ValidationError(dstNode,
			fmt.Sprintf("no edge %s.%s -> %s.%s to remove", srcNode, srcPort, dstNode, dstPort))
	}

	delete(g.edgesByDst, key)
	g.edgesFrom[srcNode] = removeEdge(g.edgesFrom[srcNode], e)
	g.edgesTo[dstNode] = removeEdge(g.edgesTo[dstNode], e)

	pair := [2]string{srcNode, dstNode}
	g.pairCount[pair]--
	if g.pairCount[pair] <= 0 {
		delete(g.pairCount, pair)
	}
	g.recomputeDependencies(dstNode)

	if dst, err := g.node(dstNode); err == nil {
		dst.Reset()
		g.cascadeDirty(dstNode)
	}
	return nil
}

// SetNodeParameter sets a parameter on the named node and cascades
// dirtiness to every transitive descendant, immediately.
func (g *Graph) SetNodeParameter(nodeName, parameter string, v types.PortValue) error {
	n, err := g.node(nodeName)
	if err != nil {
		return err
	}
	if err := n.SetParameter(parameter, v); err != nil {
		return err
	}
	g.cascadeDirty(nodeName)
	return nil
}

// SetNodeInput sets an input on the named node directly (bypassing any
// connected edge) and cascades dirtiness to every transitive descendant.
func (g *Graph) SetNodeInput(nodeName, port string, v types.PortValue) error {
	n, err := g.node(nodeName)
	if err != nil {
		return err
	}
	if err := n.SetInput(port, v); err != nil {
		return err
	}
	g.cascadeDirty(nodeName)
	return nil
}

// MarkAllDirty resets every node in the graph to its dirty, output-less
// state, without altering edges or parameters.
func (g *Graph) MarkAllDirty() {
	g.markAllDirty()
}

// Execute runs every dirty node in topological order, marshaling each
// upstream output into its downstream input along the way. Marshaling a
// value into an input does not itself mark the destination dirty — only a
// SetNodeParameter/SetNodeInput call or a structural Connect/
// RemoveConnection does that (see the module's design notes for why this
// departs from a naive "copy always dirties" reading).
func (g *Graph) Execute() error {
	order, err := g.topologicalOrder()
	if err != nil {
		return err
	}
	for _, name := range order {
		n := g.nodes[name]
		for _, e := range g.edgesTo[name] {
			src := g.nodes[e.SrcNode]
			val, ok := src.Output(e.SrcPort)
			if !ok {
				return types.MissingOutputError(e.SrcNode, e.SrcPort)
			}
			n.ReceiveInput(e.DstPort, val)
		}
		if n.IsDirty() {
			if err := n.Execute(); err != nil {
				return fmt.Errorf("node %q: %w", name, err)
			}
		}
	}
	return nil
}

// GetNodeOutput runs the graph, then returns the named node's named output.
func (g *Graph) GetNodeOutput(nodeName, port string) (types.PortValue, error) {
	if err := g.Execute(); err != nil {
		return types.PortValue{}, err
	}
	n, err := g.node(nodeName)
	if err != nil {
		return types.PortValue{}, err
	}
	return n.GetOutput(port)
}

func (g *Graph) markAllDirty() {
	for _, n := range g.nodes {
		n.Reset()
	}
}

// cascadeDirty marks every node reachable from start (not including start
// itself — callers already reset start) dirty.
func (g *Graph) cascadeDirty(start string) {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.edgesFrom[cur] {
			if visited[e.DstNode] {
				continue
			}
			visited[e.DstNode] = true
			if n, ok := g.nodes[e.DstNode]; ok {
				n.Reset()
			}
			queue = append(queue, e.DstNode)
		}
	}
}

// reachable reports whether to is reachable from from by following edges
// forward. Used to reject a Connect that would close a cycle: adding
// src->dst is only safe if dst cannot already reach src.
func (g *Graph) reachable(from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.edgesFrom[cur] {
			if e.DstNode == to {
				return true
			}
			if !visited[e.DstNode] {
				visited[e.DstNode] = true
				queue = append(queue, e.DstNode)
			}
		}
	}
	return false
}

func (g *Graph) recomputeDependencies(dstName string) {
	seen := make(map[string]bool)
	deps := make([]string, 0, len(g.edgesTo[dstName]))
	for _, e := range g.edgesTo[dstName] {
		if !seen[e.SrcNode] {
			seen[e.SrcNode] = true
			deps = append(deps, e.SrcNode)
		}
	}
	if n, ok := g.nodes[dstName]; ok {
		n.SetDependencies(deps)
	}
}

// topologicalOrder implements Kahn's algorithm with a strict insertion-order
// tie-break: at every step where more than one node has zero remaining
// indegree, the one added earliest via AddNode is emitted next — not just
// among the nodes that started at zero indegree, but at every subsequent
// step too.
func (g *Graph) topologicalOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	feeds := make(map[string]map[string]bool, len(g.nodes))
	for pair, count := range g.pairCount {
		if count <= 0 {
			continue
		}
		src, dst := pair[0], pair[1]
		indegree[dst]++
		if feeds[src] == nil {
			feeds[src] = make(map[string]bool)
		}
		feeds[src][dst] = true
	}

	ready := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		bestPos, bestIdx := 0, g.index[ready[0]]
		for pos, name := range ready {
			if idx := g.index[name]; idx < bestIdx {
				bestPos, bestIdx = pos, idx
			}
		}
		name := ready[bestPos]
		ready = append(ready[:bestPos], ready[bestPos+1:]...)
		order = append(order, name)

		for dst := range feeds[name] {
			indegree[dst]--
			if indegree[dst] == 0 {
				ready = append(ready, dst)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, types.CycleDetectedError()
	}
	return order, nil
}

func removeEdge(edges []Edge, target Edge) []Edge {
	out := edges[:0]
	for _, e := range edges {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}
