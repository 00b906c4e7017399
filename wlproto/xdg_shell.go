package wlproto

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// XdgWmBase is the typed xdg_wm_base proxy. WrapXdgWmBase installs an
// auto-pong handler for the window-manager base global: the client
// never needs to hand-wire the ping/pong keepalive itself.
type XdgWmBase struct{ *proxy.Proxy }

func WrapXdgWmBase(p *proxy.Proxy) *XdgWmBase {
	w := &XdgWmBase{p}
	p.On("ping", func(args []any) bool {
		serial := args[0].(uint32)
		w.Call("pong", func(b *wire.MessageBuilder, args []protocol.Arg) error {
			b.PutUint32(serial)
			return nil
		})
		return true
	})
	return w
}

func (w *XdgWmBase) GetXdgSurface(newID func() *proxy.Proxy, surface *Surface) (*XdgSurface, error) {
	child := newID()
	err := w.Call("get_xdg_surface", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		b.PutObject(surface.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &XdgSurface{child}, nil
}

func (w *XdgWmBase) Destroy() error {
	return w.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// XdgSurface is the typed xdg_surface proxy.
type XdgSurface struct{ *proxy.Proxy }

func WrapXdgSurface(p *proxy.Proxy) *XdgSurface { return &XdgSurface{p} }

func (s *XdgSurface) GetToplevel(newID func() *proxy.Proxy) (*XdgToplevel, error) {
	child := newID()
	err := s.Call("get_toplevel", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &XdgToplevel{child}, nil
}

func (s *XdgSurface) AckConfigure(serial uint32) error {
	return s.Call("ack_configure", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutUint32(serial)
		return nil
	})
}

// OnConfigure installs a handler for the surface's configure event.
func (s *XdgSurface) OnConfigure(handler func(serial uint32)) error {
	_, err := s.On("configure", func(args []any) bool {
		handler(args[0].(uint32))
		return true
	})
	return err
}

func (s *XdgSurface) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// XdgToplevel is the typed xdg_toplevel proxy.
type XdgToplevel struct{ *proxy.Proxy }

func WrapXdgToplevel(p *proxy.Proxy) *XdgToplevel { return &XdgToplevel{p} }

func (t *XdgToplevel) SetTitle(title string) error {
	return t.Call("set_title", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(title)
		return nil
	})
}

func (t *XdgToplevel) SetAppID(appID string) error {
	return t.Call("set_app_id", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(appID)
		return nil
	})
}

// OnConfigure installs a handler for the toplevel's configure event.
func (t *XdgToplevel) OnConfigure(handler func(width, height int32, states []byte)) error {
	_, err := t.On("configure", func(args []any) bool {
		handler(args[0].(int32), args[1].(int32), args[2].([]byte))
		return true
	})
	return err
}

// OnClose installs a handler for the toplevel's close event.
func (t *XdgToplevel) OnClose(handler func()) error {
	_, err := t.On("close", func(args []any) bool {
		handler()
		return true
	})
	return err
}

func (t *XdgToplevel) Destroy() error {
	return t.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// XdgPositioner is the typed xdg_positioner proxy, used to place popups.
type XdgPositioner struct{ *proxy.Proxy }

func WrapXdgPositioner(p *proxy.Proxy) *XdgPositioner { return &XdgPositioner{p} }

func (p *XdgPositioner) SetSize(width, height int32) error {
	return p.Call("set_size", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(width)
		b.PutInt32(height)
		return nil
	})
}

func (p *XdgPositioner) SetAnchorRect(x, y, width, height int32) error {
	return p.Call("set_anchor_rect", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(x)
		b.PutInt32(y)
		b.PutInt32(width)
		b.PutInt32(height)
		return nil
	})
}

func (p *XdgPositioner) Destroy() error {
	return p.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// XdgPopup is the typed xdg_popup proxy.
type XdgPopup struct{ *proxy.Proxy }

func WrapXdgPopup(p *proxy.Proxy) *XdgPopup { return &XdgPopup{p} }

func (p *XdgPopup) Grab(seat *Seat, serial uint32) error {
	return p.Call("grab", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutObject(seat.ID())
		b.PutUint32(serial)
		return nil
	})
}

// OnConfigure installs a handler for the popup's configure event.
func (p *XdgPopup) OnConfigure(handler func(x, y, width, height int32)) error {
	_, err := p.On("configure", func(args []any) bool {
		handler(args[0].(int32), args[1].(int32), args[2].(int32), args[3].(int32))
		return true
	})
	return err
}

// OnPopupDone installs a handler for the popup's popup_done event.
func (p *XdgPopup) OnPopupDone(handler func()) error {
	_, err := p.On("popup_done", func(args []any) bool {
		handler()
		return false
	})
	return err
}

func (p *XdgPopup) Destroy() error {
	return p.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}
