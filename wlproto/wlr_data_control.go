package wlproto

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// DataControlManager is the typed zwlr_data_control_manager_v1 proxy.
type DataControlManager struct{ *proxy.Proxy }

func WrapDataControlManager(p *proxy.Proxy) *DataControlManager { return &DataControlManager{p} }

func (m *DataControlManager) CreateDataSource(newID func() *proxy.Proxy) (*DataControlSource, error) {
	child := newID()
	err := m.Call("create_data_source", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	return &DataControlSource{child}, nil
}

func (m *DataControlManager) GetDataDevice(newID func() *proxy.Proxy, seat *Seat) (*DataControlDevice, error) {
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
	return &DataControlDevice{child}, nil
}

func (m *DataControlManager) Destroy() error {
	return m.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataControlSource is the typed zwlr_data_control_source_v1 proxy, a
// clipboard offer the client owns.
type DataControlSource struct{ *proxy.Proxy }

func WrapDataControlSource(p *proxy.Proxy) *DataControlSource { return &DataControlSource{p} }

func (s *DataControlSource) Offer(mimeType string) error {
	return s.Call("offer", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(mimeType)
		return nil
	})
}

// OnSend installs a handler invoked when the compositor asks the client
// to write the offered data into fd.
func (s *DataControlSource) OnSend(handler func(mimeType string, fd int)) error {
	_, err := s.On("send", func(args []any) bool {
		handler(args[0].(string), args[1].(int))
		return true
	})
	return err
}

// OnCancelled installs a handler invoked when the source is no longer
// the active selection.
func (s *DataControlSource) OnCancelled(handler func()) error {
	_, err := s.On("cancelled", func(args []any) bool {
		handler()
		return false
	})
	return err
}

func (s *DataControlSource) Destroy() error {
	return s.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataControlOffer is the typed zwlr_data_control_offer_v1 proxy, a
// clipboard offer owned by the peer.
type DataControlOffer struct{ *proxy.Proxy }

func WrapDataControlOffer(p *proxy.Proxy) *DataControlOffer { return &DataControlOffer{p} }

func (o *DataControlOffer) Receive(mimeType string, fd int) error {
	return o.Call("receive", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutString(mimeType)
		b.PutFD(fd)
		return nil
	})
}

// OnOffer installs a handler invoked once per mime type the offer
// advertises.
func (o *DataControlOffer) OnOffer(handler func(mimeType string)) error {
	_, err := o.On("offer", func(args []any) bool {
		handler(args[0].(string))
		return true
	})
	return err
}

func (o *DataControlOffer) Destroy() error {
	return o.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}

// DataControlDevice is the typed zwlr_data_control_device_v1 proxy.
type DataControlDevice struct{ *proxy.Proxy }

func WrapDataControlDevice(p *proxy.Proxy) *DataControlDevice { return &DataControlDevice{p} }

// SetSelection sets the clipboard selection to source, or clears it
// when source is nil.
func (d *DataControlDevice) SetSelection(source *DataControlSource) error {
	return d.Call("set_selection", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		if source != nil {
			b.PutObject(source.ID())
		} else {
			b.PutObject(0)
		}
		return nil
	})
}

// SetPrimarySelection sets the primary selection to source, or clears
// it when source is nil.
func (d *DataControlDevice) SetPrimarySelection(source *DataControlSource) error {
	return d.Call("set_primary_selection", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		if source != nil {
			b.PutObject(source.ID())
		} else {
			b.PutObject(0)
		}
		return nil
	})
}

// OnDataOffer installs a handler invoked whenever the compositor
// introduces a new offer object, before it is attached to a selection
// via OnSelection.
func (d *DataControlDevice) OnDataOffer(handler func(offer *proxy.Proxy)) error {
	_, err := d.On("data_offer", func(args []any) bool {
		handler(args[0].(*proxy.Proxy))
		return true
	})
	return err
}

// OnSelection installs a handler invoked when the clipboard selection
// changes to the previously-announced offer object (nil clears it).
func (d *DataControlDevice) OnSelection(handler func(offer *proxy.Proxy)) error {
	_, err := d.On("selection", func(args []any) bool {
		handler(args[0].(*proxy.Proxy))
		return true
	})
	return err
}

// OnPrimarySelection installs a handler invoked when the primary
// selection changes.
func (d *DataControlDevice) OnPrimarySelection(handler func(offer *proxy.Proxy)) error {
	_, err := d.On("primary_selection", func(args []any) bool {
		handler(args[0].(*proxy.Proxy))
		return true
	})
	return err
}

func (d *DataControlDevice) Destroy() error {
	return d.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
}
