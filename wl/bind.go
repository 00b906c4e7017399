package wl

import (
	"fmt"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/wlproto"
)

// BindNew adapts Context.NewID into the zero-argument closure
// wlproto's request methods expect for their newID argument, e.g.
// compositor.CreateSurface(wl.BindNew(ctx, wlproto.SurfaceInterface)).
func BindNew(ctx *Context, iface *protocol.Interface) func() *proxy.Proxy {
	return func() *proxy.Proxy { return ctx.NewID(iface) }
}

// GetGlobal binds the single registry entry whose interface matches
// T, capped to min(T's interface version, the advertised version),
// and returns the typed wrapper. Fails if zero or more than one
// matching entry is currently known.
func GetGlobal[T wlproto.Descriptor](ctx *Context) (T, error) {
	var zero T
	ifaceName := zero.WlInterfaceName()

	entries := ctx.matchingGlobals(ifaceName)
	switch len(entries) {
	case 0:
		return zero, fmt.Errorf("wl: no global advertised for interface %q", ifaceName)
	case 1:
		return bindEntry[T](ctx, entries[0])
	default:
		return zero, fmt.Errorf("wl: %d globals advertised for interface %q, want exactly one (use GetGlobals)", len(entries), ifaceName)
	}
}

// GetGlobals binds every registry entry whose interface matches T.
func GetGlobals[T wlproto.Descriptor](ctx *Context) ([]T, error) {
	var zero T
	ifaceName := zero.WlInterfaceName()

	entries := ctx.matchingGlobals(ifaceName)
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		bound, err := bindEntry[T](ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, bound)
	}
	return out, nil
}

func bindEntry[T wlproto.Descriptor](ctx *Context, e *globalEntry) (T, error) {
	var zero T
	ctx.mu.Lock()
	if e.bound != nil {
		p := e.bound
		ctx.mu.Unlock()
		wrapped := zero.WlWrap(p)
		typed, ok := wrapped.(T)
		if !ok {
			return zero, fmt.Errorf("wl: global %d already bound to a different type", e.name)
		}
		return typed, nil
	}
	ctx.mu.Unlock()

	desc, ok := wlproto.Lookup(e.ifaceName)
	if !ok {
		return zero, fmt.Errorf("wl: no interface descriptor registered for %q", e.ifaceName)
	}
	p, err := ctx.bind(e.name, desc, e.version)
	if err != nil {
		return zero, err
	}

	ctx.mu.Lock()
	e.bound = p
	ctx.mu.Unlock()

	wrapped := zero.WlWrap(p)
	typed, ok := wrapped.(T)
	if !ok {
		return zero, fmt.Errorf("wl: wrap for %q did not produce the requested type", desc.Name)
	}
	return typed, nil
}

// matchingGlobals returns a stable-ordered snapshot of every tracked
// global whose advertised interface equals ifaceName.
func (ctx *Context) matchingGlobals(ifaceName string) []*globalEntry {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	var out []*globalEntry
	for _, e := range ctx.globals {
		if e.ifaceName == ifaceName {
			out = append(out, e)
		}
	}
	return out
}
