package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/teammap/cmd/teammap/cmd/build"
	"github.com/agentstation/teammap/cmd/teammap/cmd/claim"
	"github.com/agentstation/teammap/cmd/teammap/cmd/update"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(build.NewCommand(a))
	rootCmd.AddCommand(update.NewCommand(a))
	rootCmd.AddCommand(claim.NewCommand(a))
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("teammap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
