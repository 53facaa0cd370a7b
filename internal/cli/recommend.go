package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/config"
	"github.com/matzehuels/cloudarch/pkg/errors"
	"github.com/matzehuels/cloudarch/pkg/pipeline"
	"github.com/matzehuels/cloudarch/pkg/render"
)

// Flag names shared by the command definition and config merging.
const (
	flagProjectType  = "project-type"
	flagScale        = "scale"
	flagTechnologies = "technologies"
	flagBudget       = "budget"
	flagPerformance  = "performance-requirements"
	flagOutputDir    = "output-dir"
	flagFormat       = "format"
	flagConfig       = "config"
	flagNoCache      = "no-cache"
	flagManifest     = "manifest"
	flagDetailed     = "detailed"
)

// recommendOpts holds the command-line flags for the root command.
type recommendOpts struct {
	projectType  string      // free-form; "web" and "mobile" select rules
	scale        string      // small, medium or large
	technologies string      // comma-separated technology tags
	budget       budgetValue // monthly USD, validated while flags are parsed
	performance  string      // comma-separated performance tags
	outputDir    string      // directory receiving the artifacts
	formats      string      // comma-separated output formats
	configPath   string      // TOML config file
	noCache      bool        // bypass the render cache
	manifest     bool        // write architectures.json
	detailed     bool        // add the service name under each node label
}

// budgetValue is a pflag.Value that rejects malformed budgets at parse time.
type budgetValue float64

func (b *budgetValue) String() string { return fmt.Sprintf("%g", float64(*b)) }
func (b *budgetValue) Type() string   { return "decimal" }

func (b *budgetValue) Set(s string) error {
	v, err := errors.ParseBudget(s)
	if err != nil {
		return err
	}
	*b = budgetValue(v)
	return nil
}

var _ pflag.Value = (*budgetValue)(nil)

// recommendCommand creates the command that analyzes requirements and
// renders one diagram per recommended architecture.
func (c *CLI) recommendCommand() *cobra.Command {
	var opts recommendOpts

	cmd := &cobra.Command{
		Use:   appName,
		Short: "cloudarch recommends cloud architectures and draws them",
		Long: `cloudarch maps project requirements to one or more AWS reference
architectures and renders a diagram for each of them.

Every recommendation is written as architecture_<n>.<format> and reported on
stdout as "<name>: diagram generated: <file>".`,
		Example: `  cloudarch --project-type web --scale large --technologies "" \
    --budget 12000 --performance-requirements "high availability"`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRecommend(cmd.Context(), cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.projectType, flagProjectType, "", "project type: web, mobile, ...")
	f.StringVar(&opts.scale, flagScale, "", "expected scale: small, medium, large")
	f.StringVar(&opts.technologies, flagTechnologies, "", "technologies (comma-separated), e.g. \"microservices,serverless\"")
	f.Var(&opts.budget, flagBudget, "monthly budget in USD (>= 0)")
	f.StringVar(&opts.performance, flagPerformance, "", "performance requirements (comma-separated), e.g. \"high availability,high security\"")
	f.StringVarP(&opts.outputDir, flagOutputDir, "o", ".", "directory for generated diagrams")
	f.StringVarP(&opts.formats, flagFormat, "f", pipeline.DefaultFormat, "output format(s): png (default), svg, pdf, dot, json (comma-separated)")
	f.StringVar(&opts.configPath, flagConfig, "", "config file (default $XDG_CONFIG_HOME/cloudarch/config.toml)")
	f.BoolVar(&opts.noCache, flagNoCache, false, "disable the render cache")
	f.BoolVar(&opts.manifest, flagManifest, false, "write architectures.json describing the run")
	f.BoolVar(&opts.detailed, flagDetailed, false, "show the AWS service under each node label")

	for _, name := range []string{flagProjectType, flagScale, flagTechnologies, flagBudget, flagPerformance} {
		_ = cmd.MarkFlagRequired(name)
	}
	_ = cmd.RegisterFlagCompletionFunc(flagScale, cobra.FixedCompletions(
		[]string{string(arch.ScaleSmall), string(arch.ScaleMedium), string(arch.ScaleLarge)},
		cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc(flagProjectType, cobra.FixedCompletions(
		[]string{string(arch.ProjectWeb), string(arch.ProjectMobile)},
		cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runRecommend executes the pipeline and prints one result line per
// architecture to the command's stdout.
func (c *CLI) runRecommend(ctx context.Context, cmd *cobra.Command, opts *recommendOpts) error {
	logger := loggerFromContext(ctx)

	req, err := opts.requirement()
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	pipeOpts := pipelineOptions(cfg, opts, cmd.Flags())
	if slices.Contains(pipeOpts.Formats, pipeline.FormatPDF) && !render.Available() {
		printWarning(c.stderr, "PDF output needs rsvg-convert on PATH; rendering will fail without it")
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	logger.Debug("requirement",
		"project_type", req.ProjectType,
		"scale", req.Scale,
		"technologies", req.Technologies,
		"budget", req.Budget,
		"performance", req.Performance)

	prog := newProgress(logger)
	var spin *Spinner
	if isTerminal(c.stderr) && logger.GetLevel() > LogDebug {
		spin = newSpinnerWithContext(ctx, c.stderr, "Rendering diagrams...")
		spin.Start()
	}

	result, err := runner.Execute(ctx, req, pipeOpts)
	if spin != nil {
		if err != nil {
			spin.StopWithError("Rendering failed")
		} else {
			spin.Stop()
		}
	}
	if result != nil {
		printGenerated(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return err
	}

	printSummary(c.stderr, result)
	n := len(result.Architectures)
	prog.done("Generated %d architecture %s", n, plural(n, "diagram", "diagrams"))
	return nil
}

// printGenerated writes one line per completed architecture, naming its
// first artifact.
func printGenerated(w io.Writer, result *pipeline.Result) {
	for _, a := range result.Architectures {
		fmt.Fprintf(w, "%s: diagram generated: %s\n", a.Descriptor.Name, a.Artifacts[0].Path)
	}
}

// requirement validates the requirement flags and assembles the analyzer
// input. Unknown project types, scales and tags are accepted.
func (o *recommendOpts) requirement() (arch.Requirement, error) {
	req := arch.Requirement{
		ProjectType:  arch.ProjectType(strings.TrimSpace(o.projectType)),
		Scale:        arch.Scale(strings.TrimSpace(o.scale)),
		Technologies: arch.ParseTags(o.technologies),
		Budget:       float64(o.budget),
		Performance:  arch.ParseTags(o.performance),
	}
	for _, tags := range [][]string{req.Technologies, req.Performance} {
		for _, tag := range tags {
			if err := errors.ValidateTag(tag); err != nil {
				return req, err
			}
		}
	}
	for _, s := range []string{string(req.ProjectType), string(req.Scale)} {
		if err := errors.ValidateTag(s); err != nil {
			return req, err
		}
	}
	return req, nil
}

// pipelineOptions layers explicitly set flags over the config file.
func pipelineOptions(cfg config.Config, opts *recommendOpts, flags *pflag.FlagSet) pipeline.Options {
	p := pipeline.Options{
		OutputDir: cfg.OutputDir,
		Formats:   cfg.Formats,
		Manifest:  cfg.Manifest,
	}
	p.Compose.EdgeColor = cfg.Render.EdgeColor
	p.DOT.RankDir = cfg.Render.RankDir
	p.DOT.ClusterLabel = cfg.Render.ClusterLabel
	p.DOT.DPI = cfg.Render.PNGDPI
	p.DOT.Detailed = opts.detailed

	if flags.Changed(flagOutputDir) {
		p.OutputDir = opts.outputDir
	}
	if flags.Changed(flagFormat) {
		p.Formats = pipeline.ParseFormats(opts.formats)
	}
	if flags.Changed(flagManifest) {
		p.Manifest = opts.manifest
	}
	return p
}

// printSummary lists every written artifact on the status stream.
func printSummary(w io.Writer, res *pipeline.Result) {
	for _, a := range res.Architectures {
		printInfo(w, "%d. %s", a.Index, StyleTitle.Render(a.Descriptor.Name))
		for _, art := range a.Artifacts {
			printFile(w, art.Path, art.Cached)
		}
	}
	if res.ManifestPath != "" {
		printDetail(w, "Manifest: %s", res.ManifestPath)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
