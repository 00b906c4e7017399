// Package conn implements the connection engine: non-blocking socket
// I/O, send/receive queues with backpressure, dispatch to proxy
// handlers, the sync synchronization barrier, and termination
// semantics.
//
// A cooperative single-threaded executor is mapped onto two dedicated
// goroutines here — a reader and a writer pump — rather than callbacks
// registered with a shared loop; this is the idiomatic Go analogue. All
// object-table and handler-table mutation happens on the reader
// goroutine, preserving a single-writer invariant for proxy state.
package conn

import (
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/wl-go/wl/internal/objects"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
	"github.com/wl-go/wl/pkg/wlog"
)

// TraceFunc receives one line per outbound call or inbound dispatch
// when WAYLAND_DEBUG tracing is enabled.
type TraceFunc func(direction string, objectID wire.ObjectID, opcode wire.OpCode, ifaceName, member string)

// Connection owns one UNIX-domain socket to a compositor (or, in
// tests, a fake peer) along with the object table and write queue
// that belong to it.
type Connection struct {
	ID uuid.UUID

	file *os.File
	fd   int

	Table    *objects.Table
	Resolver InterfaceResolver

	writeQueue chan wire.Message
	writeErr   chan error
	drained    chan struct{} // pinged by the writer pump whenever it empties writeQueue

	terminated     chan struct{}
	terminateOnce  sync.Once
	terminateErr   error
	terminateErrMu sync.Mutex

	log   wlog.Logger
	trace TraceFunc
}

// newConnection wraps an already-connected, non-blocking fd.
func newConnection(f *os.File, fd int, resolver InterfaceResolver, log wlog.Logger) *Connection {
	c := &Connection{
		ID:         uuid.New(),
		file:       f,
		fd:         fd,
		Table:      objects.New(),
		Resolver:   resolver,
		writeQueue: make(chan wire.Message, 64),
		writeErr:   make(chan error, 1),
		drained:    make(chan struct{}, 1),
		terminated: make(chan struct{}),
		log:        log,
	}
	go c.writerPump()
	go c.readerPump()
	return c
}

// Connect dials the UNIX-domain socket at path and starts the reader
// and writer pumps.
func Connect(path string, resolver InterfaceResolver, log wlog.Logger) (*Connection, error) {
	f, fd, err := dialUnix(path)
	if err != nil {
		return nil, &TransportError{Op: "connect", Err: err}
	}
	return newConnection(f, fd, resolver, log), nil
}

// SetTrace installs (or clears, with nil) the WAYLAND_DEBUG trace sink.
func (c *Connection) SetTrace(fn TraceFunc) { c.trace = fn }

// Send enqueues msg for the writer pump, in submission order. Blocks
// the caller if the write queue is full, which is this engine's
// backpressure mechanism; messages always reach the socket in
// submission order.
func (c *Connection) Send(msg wire.Message) error {
	select {
	case <-c.terminated:
		return &TransportError{Op: "send", Err: os.ErrClosed}
	default:
	}
	select {
	case c.writeQueue <- msg:
		return nil
	case <-c.terminated:
		return &TransportError{Op: "send", Err: os.ErrClosed}
	}
}

// Flush blocks until the outbound queue is observed empty at least
// once. Because the queue is a buffered channel, "empty" is a
// snapshot, sufficient for the library's own use (issuing a sync
// barrier immediately after) but not a strict linearizability guarantee
// against concurrent senders. Parks on the writer pump's drained
// signal between checks instead of spinning.
func (c *Connection) Flush() {
	for len(c.writeQueue) > 0 {
		select {
		case <-c.drained:
		case <-c.terminated:
			return
		}
	}
}

// Terminate is idempotent: it stops the pumps, closes the socket,
// detaches every live proxy with reason, and signals OnTerminated.
func (c *Connection) Terminate(reason error) {
	c.terminateOnce.Do(func() {
		c.terminateErrMu.Lock()
		c.terminateErr = reason
		c.terminateErrMu.Unlock()
		close(c.terminated)
		c.file.Close()
		c.Table.DetachAll(reason)
	})
}

// OnTerminated returns a channel closed once Terminate has run.
func (c *Connection) OnTerminated() <-chan struct{} { return c.terminated }

// TerminationReason returns the reason passed to Terminate, or nil
// before termination.
func (c *Connection) TerminationReason() error {
	c.terminateErrMu.Lock()
	defer c.terminateErrMu.Unlock()
	return c.terminateErr
}

// ProxyByID is a small helper used by the client layer to fetch a
// concrete *proxy.Proxy for a known id (e.g. the display object),
// bypassing the narrow objects.Proxy interface.
func (c *Connection) ProxyByID(id wire.ObjectID) (*proxy.Proxy, bool) {
	p, ok := c.Table.Lookup(id)
	if !ok {
		return nil, false
	}
	pp, ok := p.(*proxy.Proxy)
	return pp, ok
}
