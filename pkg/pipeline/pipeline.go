// Package pipeline runs the analyze → compose → render flow behind the
// cloudarch command.
//
// # Architecture
//
// A run consists of three stages per recommended architecture:
//
//  1. Analyze: map the requirement to descriptors with [arch.Analyze]
//  2. Compose: draw each descriptor onto a [dag.DAG] with [compose.Build]
//  3. Render: convert the graph to DOT and write every requested format
//
// Descriptors are processed one after the other. The first failure aborts
// the run; files already written stay on disk.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, req, pipeline.Options{
//	    OutputDir: "diagrams",
//	    Formats:   []string{"png", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range result.Architectures {
//	    fmt.Println(a.Descriptor.Name, a.Artifacts[0].Path)
//	}
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/compose"
	"github.com/matzehuels/cloudarch/pkg/dag"
	"github.com/matzehuels/cloudarch/pkg/errors"
	"github.com/matzehuels/cloudarch/pkg/render/nodelink"
)

// FilePrefix prefixes every artifact file name; the 1-based descriptor
// index follows it.
const FilePrefix = "architecture_"

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats: everything the
// node-link renderer produces plus the JSON graph export.
var ValidFormats = validFormats()

func validFormats() map[string]bool {
	m := map[string]bool{FormatJSON: true}
	for _, f := range nodelink.Formats {
		m[string(f)] = true
	}
	return m
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// OutputDir receives the artifacts. It is created when missing.
	OutputDir string
	// Formats lists the formats rendered for every architecture, in order.
	// The first format names the file reported for each architecture.
	Formats []string
	// Manifest writes architectures.json next to the artifacts.
	Manifest bool

	Compose compose.Options
	DOT     nodelink.Options
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
}

// Validate checks the output directory and formats.
func (o *Options) Validate() error {
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in the manifest and in logs.
	RunID uuid.UUID

	// Requirement is the analyzed input.
	Requirement arch.Requirement

	// Architectures holds one entry per descriptor, in analyzer order.
	Architectures []Architecture

	// ManifestPath is set when a manifest was written.
	ManifestPath string

	// Stats contains timing and cache information.
	Stats Stats
}

// Architecture is one rendered descriptor.
type Architecture struct {
	Index      int // 1-based
	Descriptor arch.Descriptor
	Graph      *dag.DAG
	Artifacts  []Artifact
}

// Artifact is one file written for an architecture.
type Artifact struct {
	Format string
	Path   string
	Cached bool // bytes came from the render cache
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Duration  time.Duration
	Artifacts int
	CacheHits int
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, pdf, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid and not repeated.
func ValidateFormats(formats []string) error {
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if seen[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "format listed twice: %q", f)
		}
		seen[f] = true
	}
	return nil
}

// ParseFormats splits a comma-separated format list. Entries are trimmed
// and lowercased; empty entries are dropped.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FileName returns the artifact file name for the architecture at index
// (1-based) in format.
func FileName(index int, format string) string {
	return fmt.Sprintf("%s%d.%s", FilePrefix, index, format)
}
