package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wl-go/wl/pkg/wlerr"
	"github.com/wl-go/wl/pkg/wlog"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

const unknownValue = "unknown"

var defaultTimeout = 2 * time.Minute

var (
	logLevel    string
	sourceFlag  string
	cliLog      = wlog.New().Component("wlgen")
)

var rootCmd = &cobra.Command{
	Use:   "wlgen",
	Short: "Generate typed Wayland protocol bindings",
	Long: `wlgen turns Wayland protocol XML (core wayland.xml plus any
stable/unstable extension) into typed Go wrappers over this module's
wire/proxy layer. It can also vendor a wayland-protocols checkout and
watch a directory for XML changes during development.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("WLGEN_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		wlog.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver, bt, gc := Version, BuildTime, GitCommit
		if ver == "" {
			ver = "dev"
		}
		if bt == "" {
			bt = unknownValue
		}
		if gc == "" {
			gc = unknownValue
		}
		fmt.Printf("wlgen version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := wlerr.HandleReturn(err)
		os.Exit(int(code))
	}
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Named protocol source from config (default: active_source)")

	RegisterCompletions(rootCmd)
}
