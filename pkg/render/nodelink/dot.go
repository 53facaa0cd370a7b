package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cloudarch/pkg/dag"
	"github.com/matzehuels/cloudarch/pkg/render"
)

// Format is an output format understood by [Render].
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
)

// Formats lists every format [Render] accepts.
var Formats = []Format{FormatPNG, FormatSVG, FormatPDF, FormatDOT}

const (
	DefaultRankDir      = "TB"
	DefaultClusterLabel = "AWS Cloud"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends the originating service to each node label.
	Detailed bool
	// RankDir is the Graphviz layout direction (TB, LR, BT, RL).
	RankDir string
	// ClusterLabel captions the cluster enclosing all nodes.
	ClusterLabel string
	// DPI sets the raster resolution; zero keeps the Graphviz default.
	DPI int
}

func (o Options) withDefaults() Options {
	if o.RankDir == "" {
		o.RankDir = DefaultRankDir
	}
	if o.ClusterLabel == "" {
		o.ClusterLabel = DefaultClusterLabel
	}
	return o
}

// ToDOT converts an architecture graph to Graphviz DOT format.
// The graph name becomes the diagram title. Nodes are emitted in insertion
// order inside a single cluster, followed by the edges.
func ToDOT(g *dag.DAG, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	buf.WriteString("  bgcolor=\"white\";\n")
	if g.Name() != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", g.Name())
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=20;\n")
	}
	if opts.DPI > 0 {
		fmt.Fprintf(&buf, "  dpi=%d;\n", opts.DPI)
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	buf.WriteString("  subgraph cluster_cloud {\n")
	fmt.Fprintf(&buf, "    label=%q;\n", opts.ClusterLabel)
	buf.WriteString("    style=\"rounded,dashed\";\n")
	buf.WriteString("    color=gray50;\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "    %q [%s];\n", n.ID, strings.Join(fmtAttrs(*n, opts.Detailed), ", "))
	}
	buf.WriteString("  }\n")

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if attrs := edgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, detailed bool) string {
	label := n.DisplayLabel()
	if detailed && n.Service != "" {
		return label + "\n" + n.Service
	}
	return label
}

func fmtAttrs(n dag.Node, detailed bool) []string {
	return []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
}

func edgeAttrs(e dag.Edge) []string {
	var attrs []string
	if e.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", e.Color))
	}
	if e.Style != dag.EdgeSolid {
		attrs = append(attrs, fmt.Sprintf("style=%q", string(e.Style)))
	}
	return attrs
}

// Render renders DOT source in the requested format.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	case FormatPDF:
		return RenderPDF(ctx, dot)
	case FormatDOT:
		return []byte(dot), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderGraphviz(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
// Resolution follows the graph's dpi attribute (see [Options.DPI]).
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
