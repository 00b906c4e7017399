package objects

import (
	"errors"
	"testing"

	"github.com/wl-go/wl/internal/wire"
)

type fakeProxy struct {
	detached bool
	reason   error
}

func (f *fakeProxy) Detach(reason error) {
	f.detached = true
	f.reason = reason
}

func TestAllocateMonotonic(t *testing.T) {
	tb := New()
	for i := wire.ObjectID(1); i <= 3; i++ {
		if got := tb.Allocate(); got != i {
			t.Fatalf("Allocate() = %d, want %d", got, i)
		}
	}
}

func TestAllocateRecyclesSmallestFreed(t *testing.T) {
	tb := New()
	id1 := tb.Allocate()
	id2 := tb.Allocate()
	id3 := tb.Allocate()
	if err := tb.Register(id1, &fakeProxy{}); err != nil {
		t.Fatal(err)
	}
	if err := tb.Register(id2, &fakeProxy{}); err != nil {
		t.Fatal(err)
	}
	if err := tb.Register(id3, &fakeProxy{}); err != nil {
		t.Fatal(err)
	}
	tb.Delete(id2, nil)
	tb.Delete(id1, nil)

	// Both id1 and id2 are free; the smallest must come back first.
	if got := tb.Allocate(); got != id1 {
		t.Fatalf("Allocate() = %d, want smallest freed id %d", got, id1)
	}
	if got := tb.Allocate(); got != id2 {
		t.Fatalf("Allocate() = %d, want %d", got, id2)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	tb := New()
	id := tb.Allocate()
	if err := tb.Register(id, &fakeProxy{}); err != nil {
		t.Fatal(err)
	}
	if err := tb.Register(id, &fakeProxy{}); err == nil {
		t.Fatal("expected error registering an occupied id")
	}
}

func TestDeleteDetachesAndRecycles(t *testing.T) {
	tb := New()
	id := tb.Allocate()
	p := &fakeProxy{}
	if err := tb.Register(id, p); err != nil {
		t.Fatal(err)
	}
	reason := errors.New("delete_id")
	tb.Delete(id, reason)
	if !p.detached || p.reason != reason {
		t.Fatalf("proxy not detached with reason: %+v", p)
	}
	if _, ok := tb.Lookup(id); ok {
		t.Fatal("expected id to be removed from the table")
	}
}

func TestDetachAllClearsTable(t *testing.T) {
	tb := New()
	var proxies []*fakeProxy
	for i := 0; i < 3; i++ {
		id := tb.Allocate()
		p := &fakeProxy{}
		proxies = append(proxies, p)
		if err := tb.Register(id, p); err != nil {
			t.Fatal(err)
		}
	}
	tb.DetachAll(errors.New("terminated"))
	if tb.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tb.Len())
	}
	for _, p := range proxies {
		if !p.detached {
			t.Fatal("expected every proxy to be detached")
		}
	}
}
