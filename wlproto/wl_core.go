package wlproto

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Compositor is the typed wl_compositor proxy.
type Compositor struct{ *proxy.Proxy }

// WrapCompositor adapts an attached wl_compositor proxy to its typed
// surface.
func WrapCompositor(p *proxy.Proxy) *Compositor { return &Compositor{p} }

// CreateSurface requests a new wl_surface.
func (c *Compositor) CreateSurface(newID func() *proxy.Proxy) (*Surface, error) {
	child := newID()
	err := c.Call("create_surface", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &Surface{child}, nil
}

// CreateRegion requests a new wl_region.
func (c *Compositor) CreateRegion(newID func() *proxy.Proxy) (*Region, error) {
	child := newID()
	if err := c.Call("create_region", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	}); err != nil {
		return nil, err
	}
	child.Attach()
	return &Region{child}, nil
}

// Surface is the typed wl_surface proxy.
type Surface struct{ *proxy.Proxy }

func WrapSurface(p *proxy.Proxy) *Surface { return &Surface{p} }

func (s *Surface) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// Attach binds buffer (nil for none) at offset (x, y).
func (s *Surface) Attach(buffer *Buffer, x, y int32) error {
	return s.Call("attach", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		if buffer != nil {
			b.PutObject(buffer.ID())
		} else {
			b.PutObject(0)
		}
		b.PutInt32(x)
		b.PutInt32(y)
		return nil
	})
}

func (s *Surface) Damage(x, y, width, height int32) error {
	return s.Call("damage", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(x)
		b.PutInt32(y)
		b.PutInt32(width)
		b.PutInt32(height)
		return nil
	})
}

func (s *Surface) Commit() error {
	return s.Call("commit", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// Frame requests the next frame callback and returns the typed
// wl_callback proxy as soon as the request is sent; its done event
// arrives later.
func (s *Surface) Frame(newID func() *proxy.Proxy) (*Callback, error) {
	child := newID()
	if err := s.Call("frame", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	}); err != nil {
		return nil, err
	}
	child.Attach()
	return &Callback{child}, nil
}

// Region is the typed wl_region proxy.
type Region struct{ *proxy.Proxy }

func WrapRegion(p *proxy.Proxy) *Region { return &Region{p} }

func (r *Region) Add(x, y, width, height int32) error {
	return r.Call("add", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(x)
		b.PutInt32(y)
		b.PutInt32(width)
		b.PutInt32(height)
		return nil
	})
}

func (r *Region) Destroy() error {
	return r.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// Callback is the typed wl_callback proxy used for frame scheduling
// (the sync barrier uses the untyped proxy directly, see
// internal/conn.Sync).
type Callback struct{ *proxy.Proxy }

func WrapCallback(p *proxy.Proxy) *Callback { return &Callback{p} }

// OnDone installs handler for the callback's done event.
func (c *Callback) OnDone(handler func(data uint32)) error {
	_, err := c.On("done", func(args []any) bool {
		handler(args[0].(uint32))
		return false
	})
	return err
}
