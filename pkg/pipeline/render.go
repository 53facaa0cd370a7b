package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/cloudarch/pkg/dag"
	"github.com/matzehuels/cloudarch/pkg/io"
	"github.com/matzehuels/cloudarch/pkg/render/nodelink"
)

// Render produces one artifact for g. dot must be the DOT source of g.
func Render(ctx context.Context, g *dag.DAG, dot, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatPNG, FormatSVG, FormatPDF, FormatDOT:
		return nodelink.Render(ctx, dot, nodelink.Format(format))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// cacheable reports whether format is worth caching. DOT and JSON are
// produced without Graphviz.
func cacheable(format string) bool {
	switch format {
	case FormatPNG, FormatSVG, FormatPDF:
		return true
	}
	return false
}
