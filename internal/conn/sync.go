package conn

import (
	"fmt"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Sync performs the sync barrier: it allocates a callback proxy,
// issues display's `sync` request binding it, and blocks until the
// callback's `done` event arrives. Every request submitted before
// this call is guaranteed to have been processed, and its resulting
// events delivered, by the time it returns.
func Sync(c *Connection, display *proxy.Proxy) error {
	callbackIface, ok := c.Resolver.Lookup("wl_callback")
	if !ok {
		return fmt.Errorf("conn: sync: wl_callback interface not registered")
	}

	id := c.Table.Allocate()
	callback := proxy.New(id, callbackIface, c)
	callback.Attach()
	if err := c.Table.Register(id, callback); err != nil {
		return err
	}

	future, err := callback.OnAsync("done")
	if err != nil {
		return err
	}

	err = display.Call("sync", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(id)
		return nil
	})
	if err != nil {
		return err
	}

	_, waitErr := future.Wait()
	return waitErr
}
