package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wl-go/wl/pkg/genconfig"
)

// completeSourceNames offers the configured source names for
// --source/`sources remove`.
func completeSourceNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := genconfig.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, s := range cfg.Sources {
		if strings.HasPrefix(s.Name, toComplete) {
			out = append(out, s.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeFilterMode(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := []string{"none", "contains", "prefix", "regex"}
	var out []string
	for _, m := range modes {
		if strings.HasPrefix(m, toComplete) {
			out = append(out, m)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// RegisterCompletions wires flag-value completion onto the commands
// that take a source name or filter mode.
func RegisterCompletions(root *cobra.Command) {
	if generateCmd.RegisterFlagCompletionFunc("filter-mode", completeFilterMode) != nil {
		return
	}
	if removeCmd, _, err := root.Find([]string{"sources", "remove"}); err == nil && removeCmd != nil {
		removeCmd.ValidArgsFunction = completeSourceNames
	}
	root.PersistentFlags().SetAnnotation("source", cobra.BashCompCustom, []string{"__wlgen_source"})
}
