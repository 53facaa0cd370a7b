// Package nodelink renders architecture graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// each cloud service appears as a rounded box inside a cluster and data flow
// is drawn as arrows between them.
//
// # Usage
//
// Convert a graph to DOT format, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	png, err := nodelink.Render(ctx, dot, nodelink.FormatPNG)
//
// PNG and SVG are produced in-process by [github.com/goccy/go-graphviz].
// PDF goes through SVG and requires librsvg (rsvg-convert). The DOT source
// itself is available as [FormatDOT] for use with external Graphviz tools.
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: include the originating service (e.g. "RDS Multi-AZ") in labels
//   - RankDir: Graphviz rankdir, TB by default
//   - ClusterLabel: caption of the enclosing cluster, "AWS Cloud" by default
//   - DPI: raster resolution for PNG output
package nodelink
