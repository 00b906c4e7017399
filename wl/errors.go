package wl

import (
	"github.com/wl-go/wl/internal/conn"
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// Re-exported so callers never need to import internal/* directly.
type (
	WireError      = wire.WireError
	ProtocolError  = protocol.Error
	UsageError     = proxy.Error
	PeerError      = conn.PeerError
	TransportError = conn.TransportError
)

// ErrProxyDetached is returned by a pending on_async future whose proxy
// was detached before the event it awaited arrived.
var ErrProxyDetached = proxy.ErrProxyDetached
