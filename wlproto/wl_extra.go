package wlproto

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Touch is the typed wl_touch proxy.
type Touch struct{ *proxy.Proxy }

func WrapTouch(p *proxy.Proxy) *Touch { return &Touch{p} }

// OnDown installs a handler for the touch's down event.
func (t *Touch) OnDown(handler func(serial, time uint32, id int32, x, y wire.Fixed)) error {
	_, err := t.On("down", func(args []any) bool {
		handler(args[0].(uint32), args[1].(uint32), args[3].(int32), args[4].(wire.Fixed), args[5].(wire.Fixed))
		return true
	})
	return err
}

// Subcompositor is the typed wl_subcompositor proxy.
type Subcompositor struct{ *proxy.Proxy }

func WrapSubcompositor(p *proxy.Proxy) *Subcompositor { return &Subcompositor{p} }

func (s *Subcompositor) GetSubsurface(newID func() *proxy.Proxy, surface, parent *Surface) (*Subsurface, error) {
	child := newID()
	err := s.Call("get_subsurface", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		b.PutObject(surface.ID())
		b.PutObject(parent.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &Subsurface{child}, nil
}

func (s *Subcompositor) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// Subsurface is the typed wl_subsurface proxy.
type Subsurface struct{ *proxy.Proxy }

func WrapSubsurface(p *proxy.Proxy) *Subsurface { return &Subsurface{p} }

func (s *Subsurface) SetPosition(x, y int32) error {
	return s.Call("set_position", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutInt32(x)
		b.PutInt32(y)
		return nil
	})
}

func (s *Subsurface) SetSync() error {
	return s.Call("set_sync", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

func (s *Subsurface) SetDesync() error {
	return s.Call("set_desync", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

func (s *Subsurface) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataDeviceManager is the typed wl_data_device_manager proxy, the
// core (non-wlr-extension) clipboard/drag-and-drop entry point.
type DataDeviceManager struct{ *proxy.Proxy }

func WrapDataDeviceManager(p *proxy.Proxy) *DataDeviceManager { return &DataDeviceManager{p} }

func (m *DataDeviceManager) CreateDataSource(newID func() *proxy.Proxy) (*DataSource, error) {
	child := newID()
	err := m.Call("create_data_source", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &DataSource{child}, nil
}

func (m *DataDeviceManager) GetDataDevice(newID func() *proxy.Proxy, seat *Seat) (*DataDevice, error) {
	child := newID()
	err := m.Call("get_data_device", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		b.PutObject(seat.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &DataDevice{child}, nil
}

// DataSource is the typed wl_data_source proxy.
type DataSource struct{ *proxy.Proxy }

func WrapDataSource(p *proxy.Proxy) *DataSource { return &DataSource{p} }

func (s *DataSource) Offer(mimeType string) error {
	return s.Call("offer", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(mimeType)
		return nil
	})
}

func (s *DataSource) OnSend(handler func(mimeType string, fd int)) error {
	_, err := s.On("send", func(args []any) bool {
		handler(args[0].(string), args[1].(int))
		return true
	})
	return err
}

func (s *DataSource) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataOffer is the typed wl_data_offer proxy.
type DataOffer struct{ *proxy.Proxy }

func WrapDataOffer(p *proxy.Proxy) *DataOffer { return &DataOffer{p} }

func (o *DataOffer) Accept(serial uint32, mimeType string) error {
	return o.Call("accept", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutUint32(serial)
		b.PutString(mimeType)
		return nil
	})
}

func (o *DataOffer) Receive(mimeType string, fd int) error {
	return o.Call("receive", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(mimeType)
		b.PutFD(fd)
		return nil
	})
}

func (o *DataOffer) OnOffer(handler func(mimeType string)) error {
	_, err := o.On("offer", func(args []any) bool {
		handler(args[0].(string))
		return true
	})
	return err
}

func (o *DataOffer) Destroy() error {
	return o.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataDevice is the typed wl_data_device proxy.
type DataDevice struct{ *proxy.Proxy }

func WrapDataDevice(p *proxy.Proxy) *DataDevice { return &DataDevice{p} }

func (d *DataDevice) SetSelection(source *DataSource, serial uint32) error {
	return d.Call("set_selection", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		if source != nil {
			b.PutObject(source.ID())
		} else {
			b.PutObject(0)
		}
		b.PutUint32(serial)
		return nil
	})
}

func (d *DataDevice) OnDataOffer(handler func(offer *proxy.Proxy)) error {
	_, err := d.On("data_offer", func(args []any) bool {
		handler(args[0].(*proxy.Proxy))
		return true
	})
	return err
}

func (d *DataDevice) OnSelection(handler func(offer *proxy.Proxy)) error {
	_, err := d.On("selection", func(args []any) bool {
		handler(args[0].(*proxy.Proxy))
		return true
	})
	return err
}
