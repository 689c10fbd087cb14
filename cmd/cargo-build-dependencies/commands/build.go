package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildDependenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   subcommandName,
		Short: "Build the declared dependencies (the name cargo passes when run as `cargo build-dependencies`)",
		Args:  noArgs,
		RunE:  c.runBuild,
	}
}
