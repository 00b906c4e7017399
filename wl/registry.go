package wl

import (
	"fmt"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// installRegistryHandlers wires the registry proxy's global and
// global_remove events into ctx.globals.
func (ctx *Context) installRegistryHandlers(registry *proxy.Proxy) {
	registry.On("global", func(args []any) bool {
		name := args[0].(uint32)
		ifaceName := args[1].(string)
		version := args[2].(uint32)

		ctx.mu.Lock()
		ctx.globals[name] = &globalEntry{name: name, ifaceName: ifaceName, version: version}
		ctx.mu.Unlock()
		return true
	})
	registry.On("global_remove", func(args []any) bool {
		name := args[0].(uint32)

		ctx.mu.Lock()
		entry, ok := ctx.globals[name]
		if ok {
			delete(ctx.globals, name)
		}
		ctx.mu.Unlock()

		if ok && entry.bound != nil {
			ctx.conn.Table.Forget(entry.bound.ID())
			entry.bound.Detach(fmt.Errorf("wl: global %d removed by compositor", name))
		}
		return true
	})
}

// Global is a read-only snapshot of one registry advertisement.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Globals returns every currently-advertised registry entry.
func (ctx *Context) Globals() []Global {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	out := make([]Global, 0, len(ctx.globals))
	for _, e := range ctx.globals {
		out = append(out, Global{Name: e.name, Interface: e.ifaceName, Version: e.version})
	}
	return out
}

// bind issues wl_registry.bind for name against descriptor desc,
// capped to min(desc.Version, advertised version), returning the
// freshly attached proxy.
func (ctx *Context) bind(name uint32, desc *protocol.Interface, advertisedVersion uint32) (*proxy.Proxy, error) {
	version := desc.Version
	if advertisedVersion < version {
		version = advertisedVersion
	}
	child := ctx.NewID(desc)
	err := ctx.registry.Call("bind", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutUint32(name)
		b.PutString(desc.Name)
		b.PutUint32(version)
		b.PutNewID(child.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	child.Attach()
	if err := ctx.conn.Table.Register(child.ID(), child); err != nil {
		return nil, err
	}
	return child, nil
}
