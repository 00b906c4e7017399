// Package shm provides the thin shared-memory helper spec.md scopes
// in: a file descriptor paired with its mapping, nothing more (no
// compositor-side buffer management, no pixel formats — those live in
// wlproto's wl_shm bindings).
package shm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MemFile is an anonymous shared-memory object plus its mapping. It
// owns both; Close releases the mapping first, then the descriptor.
// Use as a scoped resource: acquire on New, release on Close.
type MemFile struct {
	fd   int
	data []byte
}

// New creates an anonymous memfd of the given size and maps it
// read/write, shared so a compositor given the fd sees writes made
// through Bytes().
func New(size int) (*MemFile, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: invalid size %d", size)
	}
	fd, err := unix.MemfdCreate("wl-go-shm", 0)
	if err != nil {
		return nil, fmt.Errorf("shm: memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("shm: ftruncate: %w", err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("shm: mmap: %w", err)
	}
	return &MemFile{fd: fd, data: data}, nil
}

// Fd returns the descriptor to hand to a compositor (e.g. as the fd
// argument of wl_shm.create_pool). The caller must not close it
// directly; use Close on the MemFile instead.
func (m *MemFile) Fd() int { return m.fd }

// Bytes returns the mapped region for reading or writing.
func (m *MemFile) Bytes() []byte { return m.data }

// Close unmaps and closes the descriptor. Safe to call once; a second
// call skips the unmap and returns the error from closing the
// already-closed descriptor.
func (m *MemFile) Close() error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return fmt.Errorf("shm: munmap: %w", err)
		}
		m.data = nil
	}
	return unix.Close(m.fd)
}
