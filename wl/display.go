package wl

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wl-go/wl/internal/conn"
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
	"github.com/wl-go/wl/pkg/wlog"
	"github.com/wl-go/wl/wlproto"
)

const displayObjectID = wire.ObjectID(1)

// Context is the bootstrapped client connection: the well-known
// display proxy at id 1, the registry of advertised globals, and the
// underlying connection engine.
type Context struct {
	conn     *conn.Connection
	display  *proxy.Proxy
	registry *proxy.Proxy
	log      wlog.Logger

	mu      sync.Mutex
	globals map[uint32]*globalEntry
}

// globalEntry tracks one registry advertisement: the global's name,
// advertised interface and version, and the proxy bound to it (nil
// until a GetGlobal call binds it).
type globalEntry struct {
	name      uint32
	ifaceName string
	version   uint32
	bound     *proxy.Proxy
}

// Connect resolves the compositor socket per cfg (or the environment
// when cfg.Display is empty), dials it, bootstraps the display object,
// and blocks on an initial sync so every currently-advertised global
// is present in the registry before returning.
func Connect(cfg Config) (*Context, error) {
	path, err := socketPath(cfg.Display)
	if err != nil {
		return nil, err
	}

	log := wlog.New().Component("wl")
	c, err := conn.Connect(path, wlproto.Resolver(), log)
	if err != nil {
		return nil, err
	}

	if cfg.Trace || os.Getenv("WAYLAND_DEBUG") == "1" {
		c.SetTrace(func(direction string, objectID wire.ObjectID, opcode wire.OpCode, ifaceName, member string) {
			log.Debug("wire", map[string]any{
				"conn": c.ID.String(), "dir": direction, "id": uint32(objectID), "opcode": uint16(opcode),
				"interface": ifaceName, "member": member,
			})
		})
	}

	display := proxy.New(displayObjectID, wlproto.DisplayInterface, c)
	display.Attach()
	if err := c.Table.Register(displayObjectID, display); err != nil {
		c.Terminate(err)
		return nil, err
	}

	ctx := &Context{conn: c, display: display, log: log, globals: map[uint32]*globalEntry{}}

	display.On("error", func(args []any) bool {
		objID := args[0].(*proxy.Proxy)
		code := args[1].(uint32)
		msg := args[2].(string)
		var objDesc string
		if objID != nil {
			objDesc = objID.String()
		} else {
			objDesc = "<nil>"
		}
		reason := fmt.Errorf("wl: fatal protocol error on %s (code %d): %s", objDesc, code, msg)
		log.Error(reason, "protocol error", map[string]any{"object": objDesc, "code": code})
		c.Terminate(reason)
		return true
	})
	display.On("delete_id", func(args []any) bool {
		id := wire.ObjectID(args[0].(uint32))
		c.Table.Delete(id, nil)
		return true
	})

	registryID := c.Table.Allocate()
	registryProxy := proxy.New(registryID, wlproto.RegistryInterface, c)
	registryProxy.Attach()
	if err := c.Table.Register(registryID, registryProxy); err != nil {
		c.Terminate(err)
		return nil, err
	}
	ctx.registry = registryProxy
	ctx.installRegistryHandlers(registryProxy)

	if err := display.Call("get_registry", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(registryID)
		return nil
	}); err != nil {
		c.Terminate(err)
		return nil, err
	}

	if err := conn.Sync(c, display); err != nil {
		c.Terminate(err)
		return nil, err
	}
	return ctx, nil
}

// Close terminates the connection, detaching every live proxy.
func (ctx *Context) Close() error {
	ctx.log.Debug("closing connection", nil)
	ctx.conn.Terminate(nil)
	return nil
}

// NewID allocates a fresh object id and returns an unattached proxy
// for iface. wlproto's typed wrapper methods take a zero-argument
// closure over this as their newID argument, e.g.:
//
//	surface, err := compositor.CreateSurface(wl.BindNew(ctx, wlproto.SurfaceInterface))
func (ctx *Context) NewID(iface *protocol.Interface) *proxy.Proxy {
	id := ctx.conn.Table.Allocate()
	return proxy.New(id, iface, ctx.conn)
}

// RoundTrip blocks until every request submitted so far has been
// processed by the compositor, via the sync barrier.
func (ctx *Context) RoundTrip() error {
	return conn.Sync(ctx.conn, ctx.display)
}

// OnTerminated returns a channel closed once the connection has
// terminated, for callers that want to select on it alongside other
// event sources.
func (ctx *Context) OnTerminated() <-chan struct{} { return ctx.conn.OnTerminated() }

// TerminationReason returns why the connection ended, or nil if it
// hasn't (yet).
func (ctx *Context) TerminationReason() error { return ctx.conn.TerminationReason() }

// socketPath resolves display (or $WAYLAND_DISPLAY, default
// "wayland-0") against $XDG_RUNTIME_DIR if it isn't already absolute.
func socketPath(display string) (string, error) {
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	if display == "" {
		display = "wayland-0"
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", fmt.Errorf("wl: XDG_RUNTIME_DIR is not set, cannot resolve display %q", display)
	}
	return filepath.Join(runtimeDir, display), nil
}
