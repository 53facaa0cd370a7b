// Package io serializes composed diagrams and run manifests as JSON.
//
// # Graph Export
//
// [WriteJSON] writes a composed diagram graph in a small node/edge format
// so that other tools can consume the topology without parsing DOT:
//
//	{
//	  "name": "Basic web architecture",
//	  "nodes": [
//	    {"id": "compute", "label": "web server", "service": "EC2"},
//	    {"id": "database", "label": "database", "service": "RDS"}
//	  ],
//	  "edges": [
//	    {"from": "compute", "to": "database", "color": "darkgreen"}
//	  ]
//	}
//
// Node order and edge order follow insertion order in the graph, so the
// output is stable across runs.
//
// # Manifest
//
// A [Manifest] records one invocation: the run ID, the requirement that was
// analyzed and every architecture with the artifacts written for it. Use
// [WriteManifest] or [ExportManifest] to serialize it.
package io
