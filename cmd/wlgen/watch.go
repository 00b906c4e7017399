package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wl-go/wl/pkg/wlerr"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Regenerate bindings whenever protocol XML under dir changes",
	Long: `watch polls dir every --interval seconds for *.xml files whose
mtime has advanced since the last pass and re-runs generate against
whichever ones changed, the same ticker-driven loop wlgen's other
long-running commands use.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 2, "poll interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return wlerr.ValidationError(fmt.Sprintf("%s is not a directory", dir))
	}

	interval := time.Duration(watchInterval) * time.Second
	if interval <= 0 {
		interval = 2 * time.Second
	}

	known := make(map[string]time.Time)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cliLog.Info("watching for protocol changes", map[string]any{"dir": dir, "interval": interval.String()})

	tick := func() error {
		changed, err := scanChanged(dir, known)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			return nil
		}
		cliLog.Info("detected protocol change", map[string]any{"files": changed})
		return generateAll(changed, nil, nil, len(changed))
	}

	if err := tick(); err != nil {
		cliLog.Error(err, "initial generation failed", nil)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := tick(); err != nil {
				cliLog.Error(err, "regeneration failed", nil)
			}
		}
	}
}

func scanChanged(dir string, known map[string]time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wlerr.SourceError("failed to read watch directory", err)
	}

	var changed []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".xml" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if prev, ok := known[path]; !ok || info.ModTime().After(prev) {
			known[path] = info.ModTime()
			changed = append(changed, path)
		}
	}
	return changed, nil
}
