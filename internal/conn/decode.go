package conn

import (
	"fmt"

	"github.com/wl-go/wl/internal/objects"
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// InterfaceResolver maps an interface name to its descriptor. wlproto
// populates a package-level instance satisfying this at import time,
// a central registry, so the connection engine can materialize
// proxies from inbound NewIds without interfaces.
type InterfaceResolver interface {
	Lookup(name string) (*protocol.Interface, bool)
}

// decodeArgs unpacks one event's argument tuple, materializing any
// NewId arguments into freshly attached proxies registered in table,
// and converting enum-tagged uints through the interface's UnpackEnum
// hook when present.
func decodeArgs(resolver InterfaceResolver, table *objects.Table, sender proxy.Sender, iface *protocol.Interface, args []protocol.Arg, d *wire.Decoder) ([]any, error) {
	out := make([]any, 0, len(args))
	var lastString string

	for _, a := range args {
		switch a.Kind {
		case protocol.ArgInt:
			v, err := d.Int32()
			if err != nil {
				return nil, err
			}
			out = append(out, v)

		case protocol.ArgUint:
			v, err := d.Uint32()
			if err != nil {
				return nil, err
			}
			if a.Enum != "" && iface.UnpackEnum != nil {
				if ev, ok := iface.UnpackEnum(a.Enum, v); ok {
					out = append(out, ev)
					continue
				}
			}
			out = append(out, v)

		case protocol.ArgFixed:
			v, err := d.Fixed()
			if err != nil {
				return nil, err
			}
			out = append(out, v)

		case protocol.ArgString:
			s, err := d.String()
			if err != nil {
				return nil, err
			}
			lastString = s
			out = append(out, s)

		case protocol.ArgArray:
			v, err := d.Array()
			if err != nil {
				return nil, err
			}
			out = append(out, v)

		case protocol.ArgFd:
			fd, err := d.FD()
			if err != nil {
				return nil, err
			}
			out = append(out, fd)

		case protocol.ArgObject:
			id, err := d.Object()
			if err != nil {
				return nil, err
			}
			if id == 0 {
				out = append(out, (*proxy.Proxy)(nil))
				continue
			}
			target, _ := table.Lookup(id)
			out = append(out, target)

		case protocol.ArgNewID:
			id, err := d.NewID()
			if err != nil {
				return nil, err
			}
			ifaceName := a.Interface
			if ifaceName == "" {
				ifaceName = lastString
			}
			desc, ok := resolver.Lookup(ifaceName)
			if !ok {
				return nil, fmt.Errorf("conn: no interface descriptor for %q", ifaceName)
			}
			p := proxy.New(id, desc, sender)
			p.Attach()
			if err := table.Register(id, p); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}
