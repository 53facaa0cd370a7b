// Package render provides format conversion shared by diagram renderers.
//
// Graphviz produces PNG and SVG in-process (see the [nodelink] subpackage).
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool from
// librsvg, and [Available] reports whether that tool is installed.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [nodelink]: github.com/matzehuels/cloudarch/pkg/render/nodelink
package render
