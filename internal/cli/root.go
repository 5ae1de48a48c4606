package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/layerlint/layerlint/pkg/buildinfo"
)

// defaultRoot is the crates directory relative to the repository root,
// so a bare invocation from the repo root needs no flags.
const defaultRoot = "crates"

// Execute runs the layerlint CLI and returns an error if any command fails.
//
// The root command with no subcommand runs the layer check, so the common
// CI invocation is just `layerlint`. Subcommands:
//   - check: validate layer dependencies (explicit form of the default)
//   - graph: export the crate dependency graph as DOT or SVG
//   - completion: generate shell completion scripts
//
// Logging goes to stderr at info level, or debug with --verbose (-v).
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		root    string
	)

	cmd := &cobra.Command{
		Use:           "layerlint",
		Short:         "layerlint validates layered crate dependencies",
		Long:          `layerlint statically checks that crates in a numbered-layer workspace only depend downward or sideways: a crate in 01-transport may never depend on a crate in 03-driver. It reads Cargo.toml path dependencies, derives each endpoint's layer from its directory name, and reports every edge that points at a higher-numbered layer.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root)
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&root, "root", defaultRoot, "workspace crates directory")

	cmd.AddCommand(newCheckCmd(&root))
	cmd.AddCommand(newGraphCmd(&root))
	cmd.AddCommand(newCompletionCmd())

	return cmd.ExecuteContext(ctx)
}
