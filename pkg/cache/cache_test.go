package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func TestManager_StoreAndLookup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wlgen-cache.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	mtime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if _, ok, err := m.Lookup("wayland.xml", mtime); err != nil || ok {
		t.Fatalf("Lookup on empty cache: ok=%v err=%v", ok, err)
	}

	if err := m.Store("wayland.xml", mtime, []byte("package wlproto"), []byte("package wlproto")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	entry, ok, err := m.Lookup("wayland.xml", mtime)
	if err != nil || !ok {
		t.Fatalf("Lookup after Store: ok=%v err=%v", ok, err)
	}
	if string(entry.Source) != "package wlproto" {
		t.Errorf("Source = %q", entry.Source)
	}

	if _, ok, err := m.Lookup("wayland.xml", mtime.Add(time.Second)); err != nil || ok {
		t.Fatalf("Lookup with stale mtime should miss: ok=%v err=%v", ok, err)
	}
}

func TestManager_InvalidateAndClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wlgen-cache.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	mtime := time.Now().UTC().Truncate(time.Second)
	if err := m.Store("a.xml", mtime, []byte("a"), []byte("a")); err != nil {
		t.Fatalf("Store a: %v", err)
	}
	if err := m.Store("b.xml", mtime, []byte("b"), []byte("b")); err != nil {
		t.Fatalf("Store b: %v", err)
	}

	if err := m.Invalidate("a.xml"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok, _ := m.Lookup("a.xml", mtime); ok {
		t.Errorf("a.xml should be gone after Invalidate")
	}
	if _, ok, _ := m.Lookup("b.xml", mtime); !ok {
		t.Errorf("b.xml should survive Invalidate(\"a.xml\")")
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := m.Lookup("b.xml", mtime); ok {
		t.Errorf("b.xml should be gone after Clear")
	}
}
