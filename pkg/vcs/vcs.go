// Package vcs shells out to the system git binary to maintain a local
// checkout of the upstream wayland-protocols repository for `wlgen
// pull`.
package vcs

import (
	"fmt"
	"os/exec"
	"strings"
)

const DefaultRemote = "https://gitlab.freedesktop.org/wayland/wayland-protocols.git"

// IsRepository reports whether dir is the root of a git checkout.
func IsRepository(dir string) bool {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// Clone clones remote into dir.
func Clone(remote, dir string) error {
	if remote == "" {
		remote = DefaultRemote
	}
	cmd := exec.Command("git", "clone", "--depth", "1", remote, dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", remote, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Pull fast-forwards an existing checkout at dir against its
// upstream.
func Pull(dir string) error {
	cmd := exec.Command("git", "-C", dir, "pull", "--ff-only")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git pull in %s: %w: %s", dir, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// EnsureCheckout clones remote into dir if dir isn't already a git
// repository, otherwise pulls the latest changes.
func EnsureCheckout(remote, dir string) error {
	if IsRepository(dir) {
		return Pull(dir)
	}
	return Clone(remote, dir)
}

// HeadCommit returns the abbreviated hash of dir's current HEAD.
func HeadCommit(dir string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--short", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse in %s: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// IsDirty reports whether dir has uncommitted changes.
func IsDirty(dir string) bool {
	cmd := exec.Command("git", "-C", dir, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}
