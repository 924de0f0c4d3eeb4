// Package update provides the update command.
package update

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/teammap"
	"github.com/agentstation/teammap/internal/appcontext"
	"github.com/agentstation/teammap/internal/cmd/output"
	"github.com/agentstation/teammap/pkg/constants"
)

// NewCommand creates the update command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		dryRun  bool
		reslug  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:     "update <user-id>",
		GroupID: "core",
		Short:   "Refresh a single contributor's profile",
		Args:    cobra.ExactArgs(1),
		Long: `Update fetches one registered user and rewrites only that user's pages.

Every other contributor is taken from the snapshot unchanged. The snapshot is
rewritten with the refreshed record. A user missing from the registry exits
with status 3 and changes nothing.`,
		Example: `  teammap update u123             # Refresh u123's profile
  teammap update u123 --reslug    # Also move u123 to a slug from its new name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			b, err := app.Builder()
			if err != nil {
				return err
			}

			opts := []teammap.RunOption{
				teammap.WithDryRun(dryRun),
				teammap.WithTimeout(timeout),
			}
			if reslug {
				opts = append(opts, teammap.WithReslug(id))
			}

			result, err := b.Update(cmd.Context(), id, opts...)
			if err != nil {
				return err
			}

			app.Logger().Info().Str("contributor_id", id).Msg(result.Summary())
			return output.Print(cmd.OutOrStdout(), app.OutputFormat(), result, output.BuildReport{Result: result})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run every stage but write nothing")
	cmd.Flags().BoolVar(&reslug, "reslug", false, "re-derive the slug from the user's current name")
	cmd.Flags().DurationVar(&timeout, "timeout", constants.CommandTimeout, "timeout for the whole run")

	return cmd
}
