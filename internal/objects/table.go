// Package objects implements the connection's object table: 32-bit ID
// allocation and recycling, and the ID-to-proxy map.
package objects

import (
	"fmt"
	"sync"

	"github.com/wl-go/wl/internal/wire"
)

// Proxy is the minimal surface the object table needs from a proxy
// record; internal/proxy.Proxy satisfies it. Kept narrow to avoid an
// import cycle between objects and proxy.
type Proxy interface {
	Detach(reason error)
}

// Table owns the ID allocator and the live ID->proxy map for one
// connection. The peer remains the authority on when an ID may be
// reused: delete only happens once the peer's delete_id event for that
// ID has been observed.
type Table struct {
	mu   sync.Mutex
	objs map[wire.ObjectID]Proxy
	free []wire.ObjectID
	last wire.ObjectID
}

// New returns an empty table. ID 1 is reserved for the display object
// by convention of the caller (the client layer registers it first).
func New() *Table {
	return &Table{objs: make(map[wire.ObjectID]Proxy)}
}

// Allocate returns a fresh ID: the smallest previously-freed ID if the
// free stack is non-empty, otherwise last+1.
func (t *Table) Allocate() wire.ObjectID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := len(t.free); n > 0 {
		min := 0
		for i := 1; i < n; i++ {
			if t.free[i] < t.free[min] {
				min = i
			}
		}
		id := t.free[min]
		t.free[min] = t.free[n-1]
		t.free = t.free[:n-1]
		return id
	}
	t.last++
	return t.last
}

// Register inserts p under id, failing if id is already occupied.
func (t *Table) Register(id wire.ObjectID, p Proxy) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.objs[id]; exists {
		return fmt.Errorf("object id %d already registered", id)
	}
	t.objs[id] = p
	if id > t.last {
		t.last = id
	}
	return nil
}

// Lookup returns the proxy registered under id, if any.
func (t *Table) Lookup(id wire.ObjectID) (Proxy, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.objs[id]
	return p, ok
}

// Delete removes id's mapping, detaches its proxy if present, and
// pushes id onto the free stack for future reuse. Called exactly when
// the peer's delete_id event arrives for id.
func (t *Table) Delete(id wire.ObjectID, reason error) {
	t.mu.Lock()
	p, ok := t.objs[id]
	delete(t.objs, id)
	if ok {
		t.free = append(t.free, id)
	}
	t.mu.Unlock()
	if ok && p != nil {
		p.Detach(reason)
	}
}

// Forget removes id's mapping without pushing it onto the free stack:
// used when the client knows an id can no longer be dispatched to
// (e.g. wl_registry's global_remove for an already-bound global) but
// the peer has not sent delete_id for it, so the id is not yet safe to
// reuse. Detaching the proxy remains the caller's responsibility.
func (t *Table) Forget(id wire.ObjectID) {
	t.mu.Lock()
	delete(t.objs, id)
	t.mu.Unlock()
}

// DetachAll detaches every currently-registered proxy and empties the
// table, used when the connection terminates.
func (t *Table) DetachAll(reason error) {
	t.mu.Lock()
	objs := t.objs
	t.objs = make(map[wire.ObjectID]Proxy)
	t.mu.Unlock()
	for _, p := range objs {
		p.Detach(reason)
	}
}

// Len reports the number of currently live objects, for diagnostics.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.objs)
}
