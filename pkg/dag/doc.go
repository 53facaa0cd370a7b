// Package dag provides the directed graph that architecture diagrams are
// composed on before they are handed to Graphviz.
//
// # Overview
//
// A diagram is a small set of service nodes connected by directed edges that
// describe request or data flow (DNS routes to a CDN, a function writes to a
// cache, and so on). The graph keeps nodes in insertion order so that DOT
// output, JSON export, and any "first available node" selection made on top of
// it are reproducible across runs.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [DAG.AddNode] and edges with
// [DAG.AddEdge]. Node IDs must be unique and edges may only reference nodes
// that already exist:
//
//	g := dag.New("Basic web architecture")
//	g.AddNode(dag.Node{ID: "compute", Label: "web server", Service: "EC2"})
//	g.AddNode(dag.Node{ID: "database", Label: "database", Service: "RDS"})
//	g.AddEdge(dag.Edge{From: "compute", To: "database"})
//
// [DAG.Validate] checks that every edge references known nodes and that the
// graph is acyclic.
//
// # Edge Styles
//
// Edges carry an optional color and an [EdgeStyle]. [EdgeDotted] marks
// asynchronous hand-offs such as a queue; the zero value renders solid.
//
// # Concurrency
//
// A DAG is not safe for concurrent use. Diagrams are composed and rendered
// sequentially, one graph per architecture.
package dag
