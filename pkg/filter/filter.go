// Package filter matches Wayland interface names against a pattern
// for `wlgen generate --filter` and for shell-completion candidate
// lists.
package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how Pattern is interpreted.
type Mode int

const (
	ModeNone Mode = iota
	ModeContains
	ModeRegex
	ModePrefix
)

// InterfaceFilter matches a Wayland interface name (e.g. "wl_surface",
// "xdg_toplevel") against Pattern under Mode.
type InterfaceFilter struct {
	Pattern string
	Mode    Mode
	regex   *regexp.Regexp
}

// New compiles pattern for mode, failing fast on an invalid regex so
// wlgen can report a usage error instead of matching nothing.
func New(pattern string, mode Mode) (*InterfaceFilter, error) {
	f := &InterfaceFilter{Pattern: pattern, Mode: mode}
	if mode == ModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter regex %q: %w", pattern, err)
		}
		f.regex = re
	}
	return f, nil
}

// Match reports whether name satisfies the filter.
func (f *InterfaceFilter) Match(name string) bool {
	switch f.Mode {
	case ModeNone:
		return true
	case ModeContains:
		return strings.Contains(name, f.Pattern)
	case ModePrefix:
		return strings.HasPrefix(name, f.Pattern)
	case ModeRegex:
		return f.regex != nil && f.regex.MatchString(name)
	default:
		return true
	}
}

// Apply returns the subset of names matching f, preserving order.
func (f *InterfaceFilter) Apply(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}
