package vcs

import (
	"os/exec"
	"path/filepath"
	"testing"
)

func TestIsRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	if IsRepository(dir) {
		t.Fatalf("fresh temp dir should not be a git repository")
	}

	if out, err := exec.Command("git", "-C", dir, "init").CombinedOutput(); err != nil {
		t.Fatalf("git init: %v: %s", err, out)
	}
	if !IsRepository(dir) {
		t.Fatalf("initialized dir should be a git repository")
	}
}

func TestIsDirty_NonRepository(t *testing.T) {
	if IsDirty(filepath.Join(t.TempDir(), "missing")) {
		t.Fatalf("IsDirty on a non-repository should report false, not panic")
	}
}
