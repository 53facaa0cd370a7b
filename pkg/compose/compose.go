package compose

import (
	"fmt"
	"slices"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/dag"
)

// DefaultEdgeColor is the Graphviz color used for every edge.
const DefaultEdgeColor = "darkgreen"

// Canvas is the rendering backend Compose draws onto.
type Canvas interface {
	AddNode(n dag.Node) error
	AddEdge(e dag.Edge) error
}

// Options configures composition.
type Options struct {
	// EdgeColor overrides DefaultEdgeColor when non-empty.
	EdgeColor string
}

// route is one canonical edge. The first present type in from is the
// source and the first present type in to is the target; with anyTarget the
// target falls back to any other non-entry node.
type route struct {
	from      []NodeType
	to        []NodeType
	anyTarget bool
	style     dag.EdgeStyle
}

var routes = []route{
	{from: []NodeType{NodeDNS}, to: []NodeType{NodeCDN, NodeLoadBalancer}, anyTarget: true},
	{from: []NodeType{NodeCDN}, to: []NodeType{NodeStorage, NodeAPIGateway}, anyTarget: true},
	{from: []NodeType{NodeLoadBalancer}, to: []NodeType{NodeCompute}},
	{from: []NodeType{NodeCompute}, to: []NodeType{NodeDatabase}},
	{from: []NodeType{NodeAPIGateway}, to: []NodeType{NodeFunction}},
	{from: []NodeType{NodeFunction}, to: []NodeType{NodeDocumentStore}},
	{from: []NodeType{NodeCompute, NodeFunction}, to: []NodeType{NodeCache}},
	{from: []NodeType{NodeCompute, NodeFunction}, to: []NodeType{NodeQueue}, style: dag.EdgeDotted},
}

// entryNodes never receive a fallback route so routing cannot loop back
// to the front of the diagram.
var entryNodes = []NodeType{NodeDNS, NodeCDN}

// Compose draws d onto c. It fails only when the canvas rejects a node or
// an edge.
func Compose(d arch.Descriptor, c Canvas, opts Options) error {
	color := opts.EdgeColor
	if color == "" {
		color = DefaultEdgeColor
	}

	present := make(map[NodeType]bool)
	var order []NodeType
	for _, k := range d.Components {
		t, ok := TypeOf(k)
		if !ok || present[t] {
			continue
		}
		present[t] = true
		order = append(order, t)
		if err := c.AddNode(dag.Node{ID: string(t), Label: Label(t), Service: string(k)}); err != nil {
			return fmt.Errorf("add node %s: %w", t, err)
		}
	}

	for _, r := range routes {
		src, ok := firstPresent(present, r.from)
		if !ok {
			continue
		}
		dst, ok := firstPresent(present, r.to)
		if !ok && r.anyTarget {
			dst, ok = anyOther(order, src)
		}
		if !ok {
			continue
		}
		e := dag.Edge{From: string(src), To: string(dst), Color: color, Style: r.style}
		if err := c.AddEdge(e); err != nil {
			return fmt.Errorf("add edge %s -> %s: %w", src, dst, err)
		}
	}
	return nil
}

// Build composes d onto a new graph titled with the descriptor name.
// The result is checked to be acyclic.
func Build(d arch.Descriptor, opts Options) (*dag.DAG, error) {
	g := dag.New(d.Name)
	if err := Compose(d, g, opts); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("compose %s: %w", d.Name, err)
	}
	return g, nil
}

func firstPresent(present map[NodeType]bool, candidates []NodeType) (NodeType, bool) {
	for _, t := range candidates {
		if present[t] {
			return t, true
		}
	}
	return "", false
}

func anyOther(order []NodeType, src NodeType) (NodeType, bool) {
	for _, t := range order {
		if t != src && !slices.Contains(entryNodes, t) {
			return t, true
		}
	}
	return "", false
}
