package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/composite/pkg/io"
	"github.com/matzehuels/composite/pkg/pipeline"
	"github.com/matzehuels/composite/pkg/session"
	"github.com/matzehuels/composite/pkg/shape"
)

// renderFlags holds the command-line flags shared by every command that
// renders a figure. Only flags the user set override the config.
type renderFlags struct {
	output  string
	formats string
	width   int
	height  int
	noGrid  bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", `output base path, or "-" for stdout (default "centroid")`)
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames, ", ")+" (comma-separated)")
	cmd.Flags().IntVar(&f.width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&f.height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	cmd.Flags().BoolVar(&f.noGrid, "no-grid", false, "hide the background grid")
}

// apply overrides s with every flag set on cmd.
func (f *renderFlags) apply(cmd *cobra.Command, s *renderSettings) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		s.output = f.output
	}
	if flags.Changed("format") {
		s.formats = pipeline.ParseFormats(f.formats)
	}
	if flags.Changed("width") {
		s.width = f.width
	}
	if flags.Changed("height") {
		s.height = f.height
	}
	if flags.Changed("no-grid") {
		s.grid = !f.noGrid
	}
}

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	render renderFlags
	fills  []string // filled shape specs, e.g. "rect:4x2@0,0"
	holes  []string // hole specs
}

// computeCommand creates the compute command, the non-interactive form of
// the pipeline.
func (c *CLI) computeCommand() *cobra.Command {
	var opts computeOpts

	cmd := &cobra.Command{
		Use:   "compute [figure-file]",
		Short: "Compute the centroid of a figure and render it",
		Long: `Compute the centroid of a figure read from a .toml or .json file and/or
given as --fill and --hole shape specs, then render it.

Shape specs use the notation <kind>[:<d1>[x<d2>]][@<cx>,<cy>]:

  rect:4x2@0,0     rectangle, length 4 (x) by width 2 (y), centred at the origin
  tri:3x1.5@1,1    right triangle, base 3 by height 1.5, centroid at (1, 1)
  circle:1@5,0     circle of radius 1 centred at (5, 0)

Shapes from the file come first, then flag shapes in flag order.`,
		Example: `  composite compute --fill rect:4x2@0,0 --fill circle:1@5,0 --hole rect:2x2@0,0
  composite compute bracket.toml -f svg,png -o out/bracket`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.settings()
			opts.render.apply(cmd, &s)

			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return c.runCompute(cmd.Context(), file, &opts, s)
		},
	}

	opts.render.register(cmd)
	cmd.Flags().StringArrayVar(&opts.fills, "fill", nil, "filled shape spec (repeatable)")
	cmd.Flags().StringArrayVar(&opts.holes, "hole", nil, "hole shape spec (repeatable)")

	return cmd
}

// runCompute loads every shape into a fresh session, runs the pipeline and
// writes the rendered files.
func (c *CLI) runCompute(ctx context.Context, file string, opts *computeOpts, s renderSettings) error {
	sess := session.New()
	defer sess.Close()

	logger := loggerFromContext(ctx).With("session", sess.ShortID())
	quiet := s.output == stdoutPath

	popts := s.options()
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	if file != "" {
		if err := loadFigure(ctx, sess, file); err != nil {
			return err
		}
	}
	if err := addSpecs(ctx, sess, shape.Filled, "--fill", opts.fills); err != nil {
		return err
	}
	if err := addSpecs(ctx, sess, shape.Hole, "--hole", opts.holes); err != nil {
		return err
	}
	logger.Debug("shapes entered", "filled", len(sess.Registry.Filled()), "holes", len(sess.Registry.Holes()))

	if !quiet {
		fmt.Println(shapeListing(sess.Registry.Snapshot()))
		printNewline()
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Rendering "+strings.Join(popts.Formats, ", "))
	spinner.Start()
	result, err := c.newRunner(sess).Execute(ctx, sess.Registry, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	if !quiet {
		printSuccess("%s", resultMessage(result.Composite))
		printStats(result.Stats.Filled, result.Stats.Holes, result.CacheHit)
	}

	paths, err := writeArtifacts(result.Artifacts, s.output, popts.Formats)
	for _, p := range paths {
		printFile(p)
	}
	if err != nil {
		return err
	}
	if !quiet {
		prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))
	}
	return nil
}

// loadFigure appends the shapes of a figure file to the session.
func loadFigure(ctx context.Context, sess *session.Session, path string) error {
	items, err := io.ReadFile(path)
	if err != nil {
		return err
	}
	for _, it := range items {
		if _, err := sess.AddSpec(ctx, it.Role, it.Spec); err != nil {
			return fmt.Errorf("%s: %s: %w", path, it.Source, err)
		}
	}
	loggerFromContext(ctx).Info("Loaded figure", "file", path, "shapes", len(items))
	return nil
}

// addSpecs parses and appends shape specs given on the command line.
func addSpecs(ctx context.Context, sess *session.Session, role shape.Role, flag string, specs []string) error {
	for _, raw := range specs {
		spec, err := shape.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s %s: %w", flag, raw, err)
		}
		if _, err := sess.AddSpec(ctx, role, spec); err != nil {
			return fmt.Errorf("%s %s: %w", flag, raw, err)
		}
	}
	return nil
}
