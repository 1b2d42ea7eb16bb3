package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/shape"
)

// areaCommand creates the area command, which describes individual shapes
// without computing a composite.
func (c *CLI) areaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "area SPEC...",
		Short: "Print the area and outline of individual shapes",
		Example: `  composite area rect:4x2 tri:3x3@1,1 circle:1.5
  composite area circle`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd.Context(), args)
		},
	}
}

// runArea describes each spec in turn. Invalid specs are reported and
// skipped; the command fails if any was invalid.
func runArea(ctx context.Context, specs []string) error {
	logger := loggerFromContext(ctx)

	var failed int
	for i, raw := range specs {
		if i > 0 {
			printNewline()
		}
		rec, err := parseRecord(raw)
		if err != nil {
			logger.Debug("invalid shape spec", "spec", raw, "err", err)
			printError("%s: %s", raw, cerrors.UserMessage(err))
			failed++
			continue
		}
		describeRecord(rec)
	}

	if failed > 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "%d of %d shape(s) invalid", failed, len(specs))
	}
	return nil
}

func parseRecord(raw string) (shape.Record, error) {
	spec, err := shape.Parse(raw)
	if err != nil {
		return shape.Record{}, err
	}
	return spec.Record(shape.Filled)
}

func describeRecord(rec shape.Record) {
	printSuccess("%s", StyleHighlight.Render(shape.Format(rec)))
	printKeyValue("kind", rec.Kind().String())
	printKeyValue("dimensions", dimensionText(rec.Dimensions()))
	printKeyValue("centroid", fmt.Sprintf("(%g, %g)", rec.Centroid().X(), rec.Centroid().Y()))
	printKeyValue("area", fmt.Sprintf("%.4f", rec.Area()))

	o := rec.Outline()
	if o.Kind == shape.Circle {
		printDetail("circle centre (%g, %g), radius %g", o.Center.X(), o.Center.Y(), o.Radius)
		return
	}
	vs := make([]string, len(o.Vertices))
	for i, v := range o.Vertices {
		vs[i] = fmt.Sprintf("(%g, %g)", v.X(), v.Y())
	}
	printDetail("vertices %s", strings.Join(vs, " "))
}
