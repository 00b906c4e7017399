package wlproto

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Seat is the typed wl_seat proxy.
type Seat struct{ *proxy.Proxy }

func WrapSeat(p *proxy.Proxy) *Seat { return &Seat{p} }

func (s *Seat) GetPointer(newID func() *proxy.Proxy) (*Pointer, error) {
	child := newID()
	if err := s.Call("get_pointer", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	}); err != nil {
		return nil, err
	}
	child.Attach()
	return &Pointer{child}, nil
}

func (s *Seat) GetKeyboard(newID func() *proxy.Proxy) (*Keyboard, error) {
	child := newID()
	if err := s.Call("get_keyboard", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(child.ID())
		return nil
	}); err != nil {
		return nil, err
	}
	child.Attach()
	return &Keyboard{child}, nil
}

// OnName installs a handler for the seat's name event.
func (s *Seat) OnName(handler func(name string)) error {
	_, err := s.On("name", func(args []any) bool {
		handler(args[0].(string))
		return true
	})
	return err
}

// Pointer is the typed wl_pointer proxy.
type Pointer struct{ *proxy.Proxy }

func WrapPointer(p *proxy.Proxy) *Pointer { return &Pointer{p} }

// OnButton installs a handler for the pointer's button event.
func (p *Pointer) OnButton(handler func(serial, time, button, state uint32)) error {
	_, err := p.On("button", func(args []any) bool {
		handler(args[0].(uint32), args[1].(uint32), args[2].(uint32), args[3].(uint32))
		return true
	})
	return err
}

// Keyboard is the typed wl_keyboard proxy.
type Keyboard struct{ *proxy.Proxy }

func WrapKeyboard(p *proxy.Proxy) *Keyboard { return &Keyboard{p} }

// OnKey installs a handler for the keyboard's key event.
func (k *Keyboard) OnKey(handler func(serial, time, key, state uint32)) error {
	_, err := k.On("key", func(args []any) bool {
		handler(args[0].(uint32), args[1].(uint32), args[2].(uint32), args[3].(uint32))
		return true
	})
	return err
}

// Output is the typed wl_output proxy.
type Output struct{ *proxy.Proxy }

func WrapOutput(p *proxy.Proxy) *Output { return &Output{p} }

// OnGeometry installs a handler for the output's geometry event.
func (o *Output) OnGeometry(handler func(make, model string)) error {
	_, err := o.On("geometry", func(args []any) bool {
		handler(args[5].(string), args[6].(string))
		return true
	})
	return err
}
