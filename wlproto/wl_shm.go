package wlproto

import (
	"sync"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Shm is the typed wl_shm proxy. It accumulates every format
// advertised so far, since formats arrive as a burst of events right
// after binding and most callers just want the final set.
type Shm struct {
	*proxy.Proxy
	mu      sync.Mutex
	formats []ShmFormat
}

// WrapShm adapts an attached wl_shm proxy and installs the
// format-accumulating handler.
func WrapShm(p *proxy.Proxy) *Shm {
	s := &Shm{Proxy: p}
	p.On("format", func(args []any) bool {
		s.mu.Lock()
		s.formats = append(s.formats, args[0].(ShmFormat))
		s.mu.Unlock()
		return true
	})
	return s
}

// Formats returns every format advertised so far.
func (s *Shm) Formats() []ShmFormat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShmFormat, len(s.formats))
	copy(out, s.formats)
	return out
}

// HasFormat reports whether f has been advertised.
func (s *Shm) HasFormat(f ShmFormat) bool {
	for _, got := range s.Formats() {
		if got == f {
			return true
		}
	}
	return false
}

// CreatePool wraps fd (e.g. from pkg/shm.MemFile.Fd()) as a shm pool
// of size bytes.
func (s *Shm) CreatePool(newID func() *proxy.Proxy, fd int, size int32) (*ShmPool, error) {
	child := newID()
	err := s.Call("create_pool", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		b.PutFD(fd)
		b.PutInt32(size)
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &ShmPool{Proxy: child}, nil
}

// ShmPool is the typed wl_shm_pool proxy.
type ShmPool struct{ *proxy.Proxy }

func WrapShmPool(p *proxy.Proxy) *ShmPool { return &ShmPool{p} }

func (p *ShmPool) CreateBuffer(newID func() *proxy.Proxy, offset, width, height, stride int32, format ShmFormat) (*Buffer, error) {
	child := newID()
	err := p.Call("create_buffer", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		b.PutInt32(offset)
		b.PutInt32(width)
		b.PutInt32(height)
		b.PutInt32(stride)
		b.PutUint32(uint32(format))
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &Buffer{Proxy: child}, nil
}

func (p *ShmPool) Resize(size int32) error {
	return p.Call("resize", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(size)
		return nil
	})
}

func (p *ShmPool) Destroy() error {
	return p.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// Buffer is the typed wl_buffer proxy.
type Buffer struct{ *proxy.Proxy }

func WrapBuffer(p *proxy.Proxy) *Buffer { return &Buffer{p} }

func (b *Buffer) Destroy() error {
	return b.Call("destroy", func(mb *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// OnRelease installs handler for the buffer's release event, the
// compositor's signal that the client may reuse the backing memory.
func (b *Buffer) OnRelease(handler func()) error {
	_, err := b.On("release", func(args []any) bool {
		handler()
		return true
	})
	return err
}
