// Package proxy implements the per-object proxy: the local handle for
// a remote protocol object, its attachment lifecycle, its event
// handler table, and pending event futures.
package proxy

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/wire"
	"github.com/wl-go/wl/pkg/wlog"
)

var log = wlog.New().Component("proxy")

// State is the proxy's attachment state machine: Created -> Attached
// -> Detached. Destroyed is tracked orthogonally via the destroyed flag.
type State int

const (
	Created State = iota
	Attached
	Detached
)

// Handler is an event callback. Returning false removes it after this
// call; returning true keeps it registered for future occurrences.
type Handler func(args []any) bool

// Sender is the narrow surface proxy needs from the connection engine
// to submit an outbound message. internal/conn.Connection satisfies it.
type Sender interface {
	Send(msg wire.Message) error
}

// Proxy is the local handle for one remote protocol object.
type Proxy struct {
	mu        sync.Mutex
	id        wire.ObjectID
	iface     *protocol.Interface
	conn      Sender
	state     State
	destroyed bool

	handlers []Handler  // one slot per event opcode
	futures  [][]*Future // pending on_async futures per event opcode
}

// New constructs a Created proxy for iface, bound to conn for sending.
// It is not yet attached; callers transition it via Attach.
func New(id wire.ObjectID, iface *protocol.Interface, conn Sender) *Proxy {
	return &Proxy{
		id:       id,
		iface:    iface,
		conn:     conn,
		handlers: make([]Handler, len(iface.Events)),
		futures:  make([][]*Future, len(iface.Events)),
	}
}

// ID returns the proxy's object id.
func (p *Proxy) ID() wire.ObjectID { return p.id }

// Interface returns the interface this proxy is bound to.
func (p *Proxy) Interface() *protocol.Interface { return p.iface }

// String renders a debug representation "iface@id".
func (p *Proxy) String() string {
	return p.iface.Name + "@" + strconv.Itoa(int(p.id))
}

// Attach transitions Created -> Attached. Called either when this
// proxy was encoded into an outbound NewId argument, or when it was
// just materialized from an inbound NewId.
func (p *Proxy) Attach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Created {
		p.state = Attached
	}
}

// Attached reports whether the proxy is in the Attached state.
func (p *Proxy) Attached() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == Attached
}

// Destroyed reports whether the declared destructor request has been
// sent for this proxy.
func (p *Proxy) Destroyed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroyed
}

// Call encodes args for the named request using the request's argument
// descriptors and submits the resulting message. Fails with a usage
// error if the proxy isn't attached, is detached/destroyed, or the
// request name is unknown.
func (p *Proxy) Call(requestName string, argBuilder func(b *wire.MessageBuilder, args []protocol.Arg) error) error {
	p.mu.Lock()
	if p.state != Attached {
		state := p.state
		p.mu.Unlock()
		return usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "call:"+requestName, stateMsg(state))
	}
	if p.destroyed {
		p.mu.Unlock()
		return usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "call:"+requestName, "object already destroyed")
	}
	p.mu.Unlock()

	opcode, ok := p.iface.RequestOpcode(requestName)
	if !ok {
		return usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "call:"+requestName, "unknown request")
	}
	req := p.iface.Requests[opcode]

	b := wire.NewMessageBuilder()
	if err := argBuilder(b, req.Args); err != nil {
		return err
	}
	msg := b.Build(p.id, wire.OpCode(opcode))
	if _, err := wire.EncodeMessage(msg.ObjectID, msg.Opcode, msg.Args); err != nil {
		return err
	}

	if req.Destructor {
		p.mu.Lock()
		p.destroyed = true
		p.mu.Unlock()
	}
	return p.conn.Send(msg)
}

// On installs handler for eventName's opcode slot and returns whatever
// was previously installed there, if anything.
func (p *Proxy) On(eventName string, handler Handler) (previous Handler, err error) {
	opcode, ok := p.iface.EventOpcode(eventName)
	if !ok {
		return nil, usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "on:"+eventName, "unknown event")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Detached {
		return nil, usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "on:"+eventName, "proxy is detached")
	}
	previous = p.handlers[opcode]
	p.handlers[opcode] = handler
	return previous, nil
}

// OnAsync returns a future that resolves with the argument tuple of
// the next occurrence of eventName.
func (p *Proxy) OnAsync(eventName string) (*Future, error) {
	opcode, ok := p.iface.EventOpcode(eventName)
	if !ok {
		return nil, usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "on_async:"+eventName, "unknown event")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Detached {
		return nil, usageErr(p.iface.Name, strconv.Itoa(int(p.id)), "on_async:"+eventName, "proxy is detached")
	}
	f := newFuture()
	p.futures[opcode] = append(p.futures[opcode], f)
	return f, nil
}

// Dispatch resolves any futures waiting on an inbound event's opcode
// with its decoded argument tuple and then delivers the tuple to the
// opcode's installed handler (if any), in that order: a future
// resolves strictly before any handler registered afterward. Futures
// registered via OnAsync before this call are drained first so a
// handler installed in response to one does not race it.
func (p *Proxy) Dispatch(opcode wire.OpCode, args []any) {
	p.mu.Lock()
	if int(opcode) >= len(p.handlers) {
		p.mu.Unlock()
		return
	}
	futures := p.futures[opcode]
	p.futures[opcode] = nil
	handler := p.handlers[opcode]
	p.mu.Unlock()

	for _, f := range futures {
		f.resolve(args)
	}
	if handler == nil {
		return
	}
	keep := p.runHandler(opcode, handler, args)
	if !keep {
		p.mu.Lock()
		if p.handlers[opcode] != nil {
			p.handlers[opcode] = nil
		}
		p.mu.Unlock()
	}
}

// runHandler invokes handler, recovering a panic so one misbehaving
// event handler can't take down the reader goroutine: the panic is
// logged and the handler is treated as if it returned false, removing
// it from its opcode slot.
func (p *Proxy) runHandler(opcode wire.OpCode, handler Handler, args []any) (keep bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(fmt.Errorf("%v", r), "event handler panicked", map[string]any{
				"interface": p.iface.Name,
				"id":        p.id,
				"opcode":    opcode,
			})
			keep = false
		}
	}()
	return handler(args)
}

// Detach is idempotent: it cancels every pending future with reason,
// then marks the proxy Detached. Subsequent Call attempts fail.
func (p *Proxy) Detach(reason error) {
	p.mu.Lock()
	if p.state == Detached {
		p.mu.Unlock()
		return
	}
	if reason == nil {
		reason = ErrProxyDetached
	}
	p.state = Detached
	futures := p.futures
	p.futures = make([][]*Future, len(p.iface.Events))
	p.mu.Unlock()

	for _, slot := range futures {
		for _, f := range slot {
			f.cancel(reason)
		}
	}
}

func stateMsg(s State) string {
	switch s {
	case Created:
		return "proxy not attached"
	case Detached:
		return "proxy is detached"
	default:
		return "proxy unusable"
	}
}
