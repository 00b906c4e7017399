package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/pkg/cache"
	"github.com/wl-go/wl/pkg/codegen"
	"github.com/wl-go/wl/pkg/filter"
	"github.com/wl-go/wl/pkg/genconfig"
	"github.com/wl-go/wl/pkg/progress"
	"github.com/wl-go/wl/pkg/wlerr"
	"github.com/wl-go/wl/protocols"
)

var (
	genOutDir     string
	genPackage    string
	genFilterStr  string
	genFilterMode string
	genNoCache    bool
	genCacheFile  string
	genJobs       int
)

var generateCmd = &cobra.Command{
	Use:   "generate [protocol.xml ...]",
	Short: "Generate typed wrappers from protocol XML",
	Long: `generate reads one or more Wayland protocol XML documents and
writes a typed <name>_generated.go plus <name>_descriptors_generated.go pair per
document into --out. With no file arguments, it falls back to the
config's active source, or to wlgen's embedded core/xdg-shell/wlr
protocols.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", "wlproto", "output directory for generated files")
	generateCmd.Flags().StringVar(&genPackage, "package", "wlproto", "Go package name for generated files")
	generateCmd.Flags().StringVar(&genFilterStr, "filter", "", "only generate interfaces matching this pattern")
	generateCmd.Flags().StringVar(&genFilterMode, "filter-mode", "contains", "filter mode: none, contains, prefix, regex")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "skip the SQLite parse cache")
	generateCmd.Flags().StringVar(&genCacheFile, "cache-file", "", "path to the parse cache database (default: OS cache dir)")
	generateCmd.Flags().IntVar(&genJobs, "jobs", 0, "max protocol files processed concurrently (default: config parallel_sources)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := genconfig.Load(sourceFlag)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("package") && cfg.Generate.OutPackage != "" {
		genPackage = cfg.Generate.OutPackage
	}

	files, cleanup, err := resolveSources(cfg, args)
	defer cleanup()
	if err != nil {
		return err
	}

	mode, err := parseFilterMode(genFilterMode)
	if err != nil {
		return wlerr.ValidationError(err.Error())
	}
	var ifaceFilter *filter.InterfaceFilter
	if genFilterStr != "" {
		ifaceFilter, err = filter.New(genFilterStr, mode)
		if err != nil {
			return wlerr.ValidationError(err.Error())
		}
	}

	var cacheMgr *cache.Manager
	if !genNoCache {
		cacheMgr, err = openCache()
		if err != nil {
			cliLog.Warn("parse cache unavailable, continuing without it", map[string]any{"error": err.Error()})
		} else {
			defer cacheMgr.Close()
		}
	}

	jobs := genJobs
	if jobs <= 0 {
		jobs = cfg.Generate.ParallelSources
	}
	if jobs <= 0 {
		jobs = genconfig.DefaultParallelSources
	}

	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to create output directory", err)
	}

	return progress.WithSpinner(fmt.Sprintf("generating %d protocol file(s)", len(files)), func() error {
		return generateAll(files, ifaceFilter, cacheMgr, jobs)
	})
}

// resolveSources turns CLI args, config, or embedded defaults into a
// list of filesystem paths, materializing any embedded XML into a
// temp directory so the rest of the pipeline only deals in real
// paths. The returned cleanup func removes that temp dir when one was
// created and does nothing otherwise.
func resolveSources(cfg *genconfig.Config, args []string) (files []string, cleanup func(), err error) {
	cleanup = func() {}
	if len(args) > 0 {
		return args, cleanup, nil
	}
	if cfg.ActiveSource != "" {
		src, err := cfg.GetSource(cfg.ActiveSource)
		if err == nil {
			return []string{src.Path}, cleanup, nil
		}
	}

	dir, err := os.MkdirTemp("", "wlgen-embedded-*")
	if err != nil {
		return nil, cleanup, wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to create temp dir for embedded protocols", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	for _, name := range protocols.Default {
		data, err := protocols.FS.ReadFile(name)
		if err != nil {
			return nil, cleanup, wlerr.SourceError(fmt.Sprintf("embedded protocol %q missing", name), err)
		}
		dst := filepath.Join(dir, name)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return nil, cleanup, wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to stage embedded protocol", err)
		}
		files = append(files, dst)
	}
	return files, cleanup, nil
}

func parseFilterMode(s string) (filter.Mode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return filter.ModeNone, nil
	case "contains":
		return filter.ModeContains, nil
	case "prefix":
		return filter.ModePrefix, nil
	case "regex":
		return filter.ModeRegex, nil
	default:
		return filter.ModeNone, fmt.Errorf("unknown filter mode %q", s)
	}
}

func openCache() (*cache.Manager, error) {
	path := genCacheFile
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "wlgen", "parsecache.db")
	}
	return cache.NewManager(path)
}

func generateAll(files []string, ifaceFilter *filter.InterfaceFilter, cacheMgr *cache.Manager, jobs int) error {
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, f := range files {
		f := f
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := generateOne(f, ifaceFilter, cacheMgr); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func generateOne(path string, ifaceFilter *filter.InterfaceFilter, cacheMgr *cache.Manager) error {
	info, err := os.Stat(path)
	if err != nil {
		return wlerr.SourceError(fmt.Sprintf("cannot stat %s", path), err)
	}

	if cacheMgr != nil {
		if entry, hit, err := cacheMgr.Lookup(path, info.ModTime()); err == nil && hit {
			cliLog.Debug("cache hit", map[string]any{"path": path})
			return writeGenerated(path, entry.Source, entry.Descriptors)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return wlerr.SourceError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	proto, err := protocol.Load(f)
	if err != nil {
		return wlerr.SourceError(fmt.Sprintf("failed to parse %s", path), err)
	}

	if ifaceFilter != nil {
		applyFilter(proto, ifaceFilter)
	}

	source, descriptors, err := codegen.Generate(proto, genPackage)
	if err != nil {
		return wlerr.GenerateError(fmt.Sprintf("failed to generate code for %s", path), err)
	}

	if cacheMgr != nil {
		if err := cacheMgr.Store(path, info.ModTime(), source, descriptors); err != nil {
			cliLog.Warn("failed to update parse cache", map[string]any{"path": path, "error": err.Error()})
		}
	}

	return writeGenerated(path, source, descriptors)
}

func applyFilter(proto *protocol.Protocol, f *filter.InterfaceFilter) {
	names := make([]string, 0, len(proto.Interfaces))
	for name := range proto.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	keep := make(map[string]struct{}, len(names))
	for _, n := range f.Apply(names) {
		keep[n] = struct{}{}
	}
	for name := range proto.Interfaces {
		if _, ok := keep[name]; !ok {
			delete(proto.Interfaces, name)
		}
	}
}

func writeGenerated(sourcePath string, source, descriptors []byte) error {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	base = strings.ReplaceAll(base, "-", "_")

	ifacePath := filepath.Join(genOutDir, base+"_generated.go")
	descPath := filepath.Join(genOutDir, base+"_descriptors_generated.go")

	if err := os.WriteFile(ifacePath, source, 0o644); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to write "+ifacePath, err)
	}
	if err := os.WriteFile(descPath, descriptors, 0o644); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to write "+descPath, err)
	}

	cliLog.Info("generated", map[string]any{"source": sourcePath, "out": ifacePath})
	fmt.Fprintf(os.Stdout, "%s %s -> %s\n", color.GreenString("✓"), sourcePath, ifacePath)
	return nil
}
