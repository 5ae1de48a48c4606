package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layerlint/layerlint/pkg/errors"
	"github.com/layerlint/layerlint/pkg/graph"
	"github.com/layerlint/layerlint/pkg/validate"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path (stdout if empty)
	format string // "dot" or "svg"
}

// newGraphCmd creates the graph command, which exports the validated crate
// dependency graph. Violating edges are drawn red so an offending arrow
// stands out in a large workspace.
func newGraphCmd(root *string) *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the crate dependency graph as DOT or SVG",
		Long:  `Graph runs the same validation as check, then exports the layered crate dependency graph. The default output is Graphviz DOT on stdout; --format svg renders the graph with Graphviz. Edges that violate the strict rule are drawn in red.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p := newProgress(logger)

			report, err := validate.Run(ctx, validate.Options{Root: *root, Logger: logger})
			if err != nil {
				return err
			}

			g := graph.FromReport(report)
			dot := graph.ToDOT(g)

			var out []byte
			switch opts.format {
			case "dot":
				out = []byte(dot)
			case "svg":
				out, err = graph.RenderSVG(ctx, dot)
				if err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidPath, "unknown format %q (use dot or svg)", opts.format)
			}
			p.done(fmt.Sprintf("Exported %d crates, %d edges", len(g.Nodes()), len(g.Edges())))

			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(opts.output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			logger.Info("Wrote graph", "path", opts.output, "format", opts.format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot or svg")

	return cmd
}
