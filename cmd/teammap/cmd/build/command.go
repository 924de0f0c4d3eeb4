// Package build provides the build command.
package build

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/teammap"
	"github.com/agentstation/teammap/internal/appcontext"
	"github.com/agentstation/teammap/internal/cmd/output"
	"github.com/agentstation/teammap/pkg/constants"
)

// Flags holds the build command flags.
type Flags struct {
	DryRun  bool
	Reslug  []string
	Timeout time.Duration
}

// NewCommand creates the build command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "core",
		Short:   "Rebuild every contributor profile",
		Args:    cobra.NoArgs,
		Long: `Build reads both registries and rebuilds the whole directory.

The command will:
• Load the slug snapshot from the previous run
• Fetch users and publications concurrently
• Create placeholder profiles for authors without an account
• Keep every known contributor's slug, and assign new ones collision-free
• Write profile pages, redirect stubs for moved slugs, then the snapshot

If the publication registry is unavailable the build continues without
publications. If the user registry is unavailable nothing is written.`,
		Example: `  teammap build                   # Rebuild the directory
  teammap build --dry-run         # Show what would change
  teammap build --reslug u123     # Give u123 a slug from its current name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Builder()
			if err != nil {
				return err
			}

			result, err := b.Build(cmd.Context(),
				teammap.WithDryRun(flags.DryRun),
				teammap.WithReslug(flags.Reslug...),
				teammap.WithTimeout(flags.Timeout),
			)
			if err != nil {
				return err
			}

			app.Logger().Info().Msg(result.Summary())
			return output.Print(cmd.OutOrStdout(), app.OutputFormat(), result, output.BuildReport{Result: result})
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "run every stage but write nothing")
	cmd.Flags().StringSliceVar(&flags.Reslug, "reslug", nil, "contributor ids whose slug is re-derived from the current name")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", constants.CommandTimeout, "timeout for the whole run")

	return cmd
}
