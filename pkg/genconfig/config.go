// Package genconfig loads and saves cmd/wlgen's persistent settings:
// where to find protocol XML, which package to generate into, and a
// default wayland-protocols checkout used by `wlgen pull`, organized
// as a set of named protocol "sources".
package genconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wl-go/wl/pkg/wlerr"
)

// DefaultParallelSources bounds how many protocol files wlgen generate
// processes concurrently when no --jobs flag is given.
const DefaultParallelSources = 8

// Source is a named protocol XML location, e.g. "core" pointing at
// the upstream wayland.xml, or "xdg-shell" pointing at a vendored
// copy under protocols/.
type Source struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Default bool   `yaml:"default,omitempty"`
}

// Config is the on-disk shape of ~/.config/wlgen/config.yaml.
type Config struct {
	Generate      GenerateConfig `yaml:"generate"`
	Sources       []Source       `yaml:"sources,omitempty"`
	ActiveSource  string         `yaml:"active_source,omitempty"`
}

// GenerateConfig controls defaults for `wlgen generate`.
type GenerateConfig struct {
	OutPackage        string `yaml:"out_package"`
	ProtocolsCheckout string `yaml:"protocols_checkout"`
	ParallelSources   int    `yaml:"parallel_sources"`
}

// Load reads the config file, applies environment overrides, and
// activates sourceName (or the file's active_source if sourceName is
// empty).
func Load(sourceName ...string) (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, wlerr.NewWithError(wlerr.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(path, sourceName...)
}

// GetConfigPath returns the path to wlgen's config file.
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wlgen", "config.yaml"), nil
}

// Save writes cfg to the config path, creating its directory if
// necessary.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to create config directory", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeConfig, "failed to marshal config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to write config file", err)
	}
	return nil
}

// GetSource returns the named source.
func (c *Config) GetSource(name string) (*Source, error) {
	for i := range c.Sources {
		if c.Sources[i].Name == name {
			return &c.Sources[i], nil
		}
	}
	return nil, wlerr.ValidationError("source '" + name + "' not found")
}

// AddSource registers a new source, rejecting a duplicate name.
func (c *Config) AddSource(s Source) error {
	if _, err := c.GetSource(s.Name); err == nil {
		return wlerr.ValidationError("source '" + s.Name + "' already exists")
	}
	c.Sources = append(c.Sources, s)
	return nil
}

// RemoveSource removes the named source, refusing to remove the
// active one.
func (c *Config) RemoveSource(name string) error {
	if c.ActiveSource == name {
		return wlerr.ValidationError("cannot remove the active source '" + name + "'")
	}
	for i, s := range c.Sources {
		if s.Name == name {
			c.Sources = append(c.Sources[:i], c.Sources[i+1:]...)
			return nil
		}
	}
	return wlerr.ValidationError("source '" + name + "' not found")
}

func loadFromPath(path string, sourceName ...string) (*Config, error) {
	cfg := &Config{}
	if err := loadConfigFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnvironmentOverrides(cfg)

	target := cfg.ActiveSource
	if len(sourceName) > 0 && sourceName[0] != "" {
		target = sourceName[0]
	}
	if target != "" {
		if _, err := cfg.GetSource(target); err == nil {
			cfg.ActiveSource = target
		}
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeFileOperation, "failed to read config file", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return wlerr.NewWithError(wlerr.ExitCodeConfig, "failed to parse config file", err)
	}
	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if cfg.Generate.OutPackage == "" {
		cfg.Generate.OutPackage = getEnv("WLGEN_OUT_PACKAGE", "wlproto")
	}
	if cfg.Generate.ProtocolsCheckout == "" {
		cfg.Generate.ProtocolsCheckout = getEnv("WLGEN_PROTOCOLS_CHECKOUT", "")
	}
	if cfg.Generate.ParallelSources == 0 {
		cfg.Generate.ParallelSources = getEnvInt("WLGEN_PARALLEL_SOURCES", DefaultParallelSources)
	}
	if active := os.Getenv("WLGEN_SOURCE"); active != "" {
		cfg.ActiveSource = active
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
