package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/layerlint/layerlint/pkg/validate"
)

// ErrViolations is returned by the check command when the workspace breaks
// the strict rule. The report is already printed at that point; main only
// needs to translate this into a non-zero exit code without printing the
// error again.
var ErrViolations = errors.New("layer dependency violations found")

// newCheckCmd creates the check command, the explicit form of the default
// root invocation.
func newCheckCmd(root *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate layer dependencies across the workspace",
		Long:  `Check walks the crates directory, extracts every Cargo.toml path dependency, and verifies that no crate depends on a higher-numbered layer. All violations are collected in a single pass and reported together.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, *root)
		},
	}
}

// runCheck executes a validation run and renders the report to stdout.
// Shared by the root command and the check subcommand.
func runCheck(cmd *cobra.Command, root string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	report, err := validate.Run(ctx, validate.Options{Root: root, Logger: logger})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Checked %d crates, %d edges", report.Result.Modules, report.Result.Edges))

	fmt.Fprint(cmd.OutOrStdout(), renderReport(report))

	if !report.OK() {
		return ErrViolations
	}
	return nil
}
