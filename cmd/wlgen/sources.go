package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wl-go/wl/pkg/genconfig"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage named protocol XML sources",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := genconfig.Load()
		if err != nil {
			return err
		}
		if len(cfg.Sources) == 0 {
			fmt.Println("no sources configured; wlgen generate falls back to its embedded protocols")
			return nil
		}
		for _, s := range cfg.Sources {
			marker := "  "
			if s.Name == cfg.ActiveSource {
				marker = "* "
			}
			fmt.Printf("%s%-20s %s\n", marker, s.Name, s.Path)
		}
		return nil
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Register a protocol XML source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := genconfig.Load()
		if err != nil {
			return err
		}
		if err := cfg.AddSource(genconfig.Source{Name: args[0], Path: args[1]}); err != nil {
			return err
		}
		if cfg.ActiveSource == "" {
			cfg.ActiveSource = args[0]
		}
		return genconfig.Save(cfg)
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a configured source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := genconfig.Load()
		if err != nil {
			return err
		}
		if err := cfg.RemoveSource(args[0]); err != nil {
			return err
		}
		return genconfig.Save(cfg)
	},
}
