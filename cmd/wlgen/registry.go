package main

import "github.com/spf13/cobra"

// RegisterCommands wires every wlgen subcommand onto root.
func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(generateCmd)
	root.AddCommand(pullCmd)
	root.AddCommand(watchCmd)
	root.AddCommand(sourcesCmd)

	sourcesCmd.AddCommand(sourcesListCmd, sourcesAddCmd, sourcesRemoveCmd)
}
