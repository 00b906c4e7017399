package wlproto

import "github.com/wl-go/wl/internal/proxy"

// Descriptor is implemented by the pointer type of every typed proxy
// wrapper that can be bound directly off the registry (a "global", in
// Wayland terms — a wl_compositor, wl_shm, wl_seat, and so on, as
// opposed to wl_surface or wl_buffer which only ever arrive as the
// result of a request). wl.GetGlobal[T] is generic over T Descriptor;
// both methods are called on a nil *T (T's zero value is a nil
// pointer), so neither may touch its receiver — they exist purely to
// let the generic code recover the interface name and construct a
// wrapper without a runtime type switch.
type Descriptor interface {
	WlInterfaceName() string
	WlWrap(p *proxy.Proxy) Descriptor
}

func (*Compositor) WlInterfaceName() string          { return CompositorInterface.Name }
func (*Compositor) WlWrap(p *proxy.Proxy) Descriptor { return WrapCompositor(p) }

func (*Shm) WlInterfaceName() string          { return ShmInterface.Name }
func (*Shm) WlWrap(p *proxy.Proxy) Descriptor { return WrapShm(p) }

func (*Seat) WlInterfaceName() string          { return SeatInterface.Name }
func (*Seat) WlWrap(p *proxy.Proxy) Descriptor { return WrapSeat(p) }

func (*Output) WlInterfaceName() string          { return OutputInterface.Name }
func (*Output) WlWrap(p *proxy.Proxy) Descriptor { return WrapOutput(p) }

func (*Subcompositor) WlInterfaceName() string          { return SubcompositorInterface.Name }
func (*Subcompositor) WlWrap(p *proxy.Proxy) Descriptor { return WrapSubcompositor(p) }

func (*DataDeviceManager) WlInterfaceName() string          { return DataDeviceManagerInterface.Name }
func (*DataDeviceManager) WlWrap(p *proxy.Proxy) Descriptor { return WrapDataDeviceManager(p) }

func (*XdgWmBase) WlInterfaceName() string          { return XdgWmBaseInterface.Name }
func (*XdgWmBase) WlWrap(p *proxy.Proxy) Descriptor { return WrapXdgWmBase(p) }

func (*DataControlManager) WlInterfaceName() string          { return DataControlManagerInterface.Name }
func (*DataControlManager) WlWrap(p *proxy.Proxy) Descriptor { return WrapDataControlManager(p) }
