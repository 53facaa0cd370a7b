// Package pkg provides the libraries behind cloudarch, a tool that turns a
// short list of project requirements into AWS reference architectures and
// draws a diagram for each one.
//
// # Architecture
//
// The data flow through cloudarch:
//
//	Requirement (project type, scale, tags, budget)
//	         ↓
//	    [arch] package (ordered rule table → descriptors)
//	         ↓
//	    [compose] package (descriptor → nodes + edges on a [dag])
//	         ↓
//	    [render/nodelink] package (DOT → Graphviz)
//	         ↓
//	    PNG/SVG/PDF/DOT/JSON output
//
// # Quick Start
//
// Analyze a requirement and render every recommendation:
//
//	req := arch.Requirement{
//	    ProjectType: arch.ProjectWeb,
//	    Scale:       arch.ScaleLarge,
//	    Budget:      12000,
//	    Performance: []string{arch.PerfHighAvailability},
//	}
//	for i, d := range arch.Analyze(req) {
//	    g, _ := compose.Build(d, compose.Options{})
//	    dot := nodelink.ToDOT(g, nodelink.Options{})
//	    png, _ := nodelink.Render(ctx, dot, nodelink.FormatPNG)
//	    os.WriteFile(fmt.Sprintf("architecture_%d.png", i+1), png, 0644)
//	}
//
// [pipeline] wraps these steps with output files, render caching and a run
// manifest, and is what the command-line tool uses.
//
// # Main Packages
//
// [arch] - Requirement model, service kinds and the recommendation rules.
//
// [compose] - Maps service kinds to diagram node types and wires the
// canonical edges between them.
//
// [dag] - Ordered directed graph that diagrams are composed on.
//
// [render/nodelink] - DOT generation and Graphviz rendering.
//
// [render] - SVG to PDF conversion through rsvg-convert.
//
// [pipeline] - The analyze → compose → render run used by the CLI.
//
// [cache] - File-based cache for rendered artifacts.
//
// [config] - TOML configuration file.
//
// [io] - JSON export of composed graphs and run manifests.
//
// [errors] - Structured error codes and input validation.
//
// [observability] - Optional hooks for pipeline and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./...                 # All tests
//	go test ./pkg/arch/...        # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [arch]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/arch
// [compose]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/compose
// [dag]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/dag
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cloudarch/pkg/observability
package pkg
