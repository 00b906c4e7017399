package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wl-go/wl/pkg/progress"
	"github.com/wl-go/wl/pkg/vcs"
	"github.com/wl-go/wl/pkg/wlerr"
)

var (
	pullRemote string
	pullDir    string
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Clone or update a wayland-protocols checkout",
	Long: `pull maintains a local git checkout of wayland-protocols (or any
other remote carrying protocol XML) for wlgen generate to read from,
cloning it on first use and fast-forwarding it on every call after.`,
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringVar(&pullRemote, "remote", vcs.DefaultRemote, "git remote to clone/pull")
	pullCmd.Flags().StringVar(&pullDir, "dir", "", "local checkout directory (default: OS cache dir)")
}

func runPull(cmd *cobra.Command, args []string) error {
	dir := pullDir
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to resolve cache directory", err)
		}
		dir = filepath.Join(cacheDir, "wlgen", "wayland-protocols")
	}

	if vcs.IsRepository(dir) && vcs.IsDirty(dir) {
		return wlerr.ValidationError(fmt.Sprintf("checkout at %s has local changes; refusing to pull over them", dir))
	}

	label := "cloning " + pullRemote
	if vcs.IsRepository(dir) {
		label = "updating " + dir
	}

	err := progress.WithSpinner(label, func() error {
		return vcs.EnsureCheckout(pullRemote, dir)
	})
	if err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeSource, "failed to sync wayland-protocols checkout", err)
	}

	commit, err := vcs.HeadCommit(dir)
	if err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeSource, "checkout succeeded but HEAD could not be read", err)
	}

	cliLog.Info("checkout synced", map[string]any{"dir": dir, "commit": commit})
	fmt.Fprintf(os.Stdout, "%s %s @ %s\n", color.GreenString("✓"), dir, commit)
	return nil
}
