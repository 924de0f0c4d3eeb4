// Package claim provides the claim command and its subcommands.
package claim

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/teammap"
	"github.com/agentstation/teammap/internal/appcontext"
	"github.com/agentstation/teammap/internal/cmd/output"
	"github.com/agentstation/teammap/pkg/errors"
	"github.com/agentstation/teammap/pkg/logging"
)

// NewCommand creates the claim command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "claim",
		GroupID: "core",
		Short:   "Work with placeholder profile claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewVerifyCommand(app))
	return cmd
}

// NewVerifyCommand creates the claim verify command.
func NewVerifyCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <contributor-id> <token>",
		Short: "Check a claim token against a placeholder profile",
		Long: `Verify checks a claim token against the placeholder profile stored in
the snapshot. Nothing is modified. A rejected token exits with status 4.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := teammap.VerifyClaim(logging.WithLogger(cmd.Context(), app.Logger()), app.SnapshotPath(), args[0], args[1])
			if err != nil {
				return err
			}

			if err := output.Print(cmd.OutOrStdout(), app.OutputFormat(), result, output.ClaimReport{ClaimResult: result}); err != nil {
				return err
			}
			if !result.Valid {
				return &errors.ClaimError{ID: result.ID, Reason: result.Reason}
			}
			return nil
		},
	}
}
