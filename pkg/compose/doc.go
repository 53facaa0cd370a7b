// Package compose turns an architecture descriptor into a diagram graph.
//
// # Overview
//
// [Compose] instantiates one node per distinct [NodeType] found in a
// descriptor and wires a fixed set of canonical edges between them. Service
// variants collapse onto one node: EC2 and EC2 Auto Scaling both become the
// "web server" node, RDS and RDS Multi-AZ the "database" node, Lambda and
// Lambda@Edge the "function" node. Kinds without a node type are skipped.
//
// Edges depend only on which node types are present, never on component
// order:
//
//	dns            → cdn | load balancer | any other node
//	cdn            → storage | api gateway | any other node
//	load balancer  → compute
//	compute        → database
//	api gateway    → function
//	function       → document store
//	compute | function → cache
//	compute | function → queue   (dotted)
//
// "Any other node" is the first instantiated node that is neither the source
// nor an entry node (dns, cdn). Callers should rely only on the route having
// exactly one target, not on which node is chosen.
//
// # Canvas
//
// Compose only needs two primitives from its rendering backend, expressed
// by [Canvas]: add a labeled node and add a styled edge. [*dag.DAG]
// satisfies it; [Build] is the convenience wrapper that composes onto a new
// graph.
package compose
