package wlproto

import "github.com/wl-go/wl/internal/protocol"

// boundArg builds an object-typed argument descriptor; it is shared by
// the descriptors in this package.
func boundArg(name, iface string, allowNull bool) protocol.Arg {
	return protocol.Arg{Name: name, Kind: protocol.ArgObject, Interface: iface, AllowNull: allowNull}
}

// DisplayInterface is wl_display, the well-known object at id 1. It
// is registered here as a descriptor but bootstrapped specially by the
// wl package rather than through a generated wrapper, since the
// connection engine must own it before any registry exists.
var DisplayInterface = register(&protocol.Interface{
	Name:    "wl_display",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "sync", Args: []protocol.Arg{{Name: "callback", Kind: protocol.ArgNewID, Interface: "wl_callback"}}},
		{Name: "get_registry", Args: []protocol.Arg{{Name: "registry", Kind: protocol.ArgNewID, Interface: "wl_registry"}}},
	},
	Events: []protocol.Event{
		{Name: "error", Args: []protocol.Arg{
			boundArg("object_id", "", false),
			{Name: "code", Kind: protocol.ArgUint},
			{Name: "message", Kind: protocol.ArgString},
		}},
		{Name: "delete_id", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgUint}}},
	},
})

// RegistryInterface is wl_registry.
var RegistryInterface = register(&protocol.Interface{
	Name:    "wl_registry",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "bind", Args: []protocol.Arg{
			{Name: "name", Kind: protocol.ArgUint},
			// interface-less new_id, pre-expanded the way the XML loader
			// expands one: (interface string, version uint, id).
			{Name: "id_interface", Kind: protocol.ArgString},
			{Name: "id_version", Kind: protocol.ArgUint},
			{Name: "id", Kind: protocol.ArgNewID},
		}},
	},
	Events: []protocol.Event{
		{Name: "global", Args: []protocol.Arg{
			{Name: "name", Kind: protocol.ArgUint},
			{Name: "interface", Kind: protocol.ArgString},
			{Name: "version", Kind: protocol.ArgUint},
		}},
		{Name: "global_remove", Args: []protocol.Arg{{Name: "name", Kind: protocol.ArgUint}}},
	},
})

// CallbackInterface is wl_callback, used both for the sync barrier and
// for frame-callback scheduling.
var CallbackInterface = register(&protocol.Interface{
	Name:    "wl_callback",
	Version: 1,
	Events:  []protocol.Event{{Name: "done", Args: []protocol.Arg{{Name: "callback_data", Kind: protocol.ArgUint}}}},
})

var CompositorInterface = register(&protocol.Interface{
	Name:    "wl_compositor",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "create_surface", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_surface"}}},
		{Name: "create_region", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_region"}}},
	},
})

var SurfaceInterface = register(&protocol.Interface{
	Name:    "wl_surface",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "attach", Args: []protocol.Arg{
			boundArg("buffer", "wl_buffer", true),
			{Name: "x", Kind: protocol.ArgInt},
			{Name: "y", Kind: protocol.ArgInt},
		}},
		{Name: "damage", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
		{Name: "frame", Args: []protocol.Arg{{Name: "callback", Kind: protocol.ArgNewID, Interface: "wl_callback"}}},
		{Name: "set_opaque_region", Args: []protocol.Arg{boundArg("region", "wl_region", true)}},
		{Name: "set_input_region", Args: []protocol.Arg{boundArg("region", "wl_region", true)}},
		{Name: "commit"},
		{Name: "set_buffer_scale", Args: []protocol.Arg{{Name: "scale", Kind: protocol.ArgInt}}},
		{Name: "damage_buffer", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
	},
	Events: []protocol.Event{
		{Name: "enter", Args: []protocol.Arg{boundArg("output", "wl_output", false)}},
		{Name: "leave", Args: []protocol.Arg{boundArg("output", "wl_output", false)}},
	},
})

var RegionInterface = register(&protocol.Interface{
	Name:    "wl_region",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "add", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
		{Name: "subtract", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
	},
})

// ShmFormat is the typed surface for wl_shm's `format` enum.
type ShmFormat uint32

const (
	ShmFormatARGB8888 ShmFormat = 0
	ShmFormatXRGB8888 ShmFormat = 1
)

func (f ShmFormat) String() string {
	switch f {
	case ShmFormatARGB8888:
		return "ARGB8888"
	case ShmFormatXRGB8888:
		return "XRGB8888"
	default:
		return "unknown"
	}
}

var ShmInterface = register(&protocol.Interface{
	Name:    "wl_shm",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "create_pool", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_shm_pool"},
			{Name: "fd", Kind: protocol.ArgFd},
			{Name: "size", Kind: protocol.ArgInt},
		}},
	},
	Events: []protocol.Event{
		{Name: "format", Args: []protocol.Arg{{Name: "format", Kind: protocol.ArgUint, Enum: "format"}}},
	},
	UnpackEnum: func(enumName string, value uint32) (any, bool) {
		if enumName == "format" {
			return ShmFormat(value), true
		}
		return nil, false
	},
})

var ShmPoolInterface = register(&protocol.Interface{
	Name:    "wl_shm_pool",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "create_buffer", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_buffer"},
			{Name: "offset", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt},
			{Name: "height", Kind: protocol.ArgInt},
			{Name: "stride", Kind: protocol.ArgInt},
			{Name: "format", Kind: protocol.ArgUint, Enum: "format"},
		}},
		{Name: "destroy", Destructor: true},
		{Name: "resize", Args: []protocol.Arg{{Name: "size", Kind: protocol.ArgInt}}},
	},
})

var BufferInterface = register(&protocol.Interface{
	Name:    "wl_buffer",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
	},
	Events: []protocol.Event{{Name: "release"}},
})

var SeatInterface = register(&protocol.Interface{
	Name:    "wl_seat",
	Version: 9,
	Requests: []protocol.Request{
		{Name: "get_pointer", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_pointer"}}},
		{Name: "get_keyboard", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_keyboard"}}},
		{Name: "get_touch", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_touch"}}},
		{Name: "release", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "capabilities", Args: []protocol.Arg{{Name: "capabilities", Kind: protocol.ArgUint}}},
		{Name: "name", Args: []protocol.Arg{{Name: "name", Kind: protocol.ArgString}}},
	},
})

var PointerInterface = register(&protocol.Interface{
	Name:    "wl_pointer",
	Version: 9,
	Requests: []protocol.Request{
		{Name: "set_cursor", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint},
			boundArg("surface", "wl_surface", true),
			{Name: "hotspot_x", Kind: protocol.ArgInt},
			{Name: "hotspot_y", Kind: protocol.ArgInt},
		}},
		{Name: "release", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "enter", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, boundArg("surface", "wl_surface", false),
			{Name: "surface_x", Kind: protocol.ArgFixed}, {Name: "surface_y", Kind: protocol.ArgFixed},
		}},
		{Name: "leave", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}, boundArg("surface", "wl_surface", false)}},
		{Name: "motion", Args: []protocol.Arg{
			{Name: "time", Kind: protocol.ArgUint},
			{Name: "surface_x", Kind: protocol.ArgFixed}, {Name: "surface_y", Kind: protocol.ArgFixed},
		}},
		{Name: "button", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, {Name: "time", Kind: protocol.ArgUint},
			{Name: "button", Kind: protocol.ArgUint}, {Name: "state", Kind: protocol.ArgUint},
		}},
		{Name: "axis", Args: []protocol.Arg{
			{Name: "time", Kind: protocol.ArgUint}, {Name: "axis", Kind: protocol.ArgUint},
			{Name: "value", Kind: protocol.ArgFixed},
		}},
		{Name: "frame"},
	},
})

var KeyboardInterface = register(&protocol.Interface{
	Name:    "wl_keyboard",
	Version: 9,
	Requests: []protocol.Request{
		{Name: "release", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "keymap", Args: []protocol.Arg{
			{Name: "format", Kind: protocol.ArgUint}, {Name: "fd", Kind: protocol.ArgFd}, {Name: "size", Kind: protocol.ArgUint},
		}},
		{Name: "enter", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, boundArg("surface", "wl_surface", false),
			{Name: "keys", Kind: protocol.ArgArray},
		}},
		{Name: "leave", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}, boundArg("surface", "wl_surface", false)}},
		{Name: "key", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, {Name: "time", Kind: protocol.ArgUint},
			{Name: "key", Kind: protocol.ArgUint}, {Name: "state", Kind: protocol.ArgUint},
		}},
		{Name: "modifiers", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint},
			{Name: "mods_depressed", Kind: protocol.ArgUint}, {Name: "mods_latched", Kind: protocol.ArgUint},
			{Name: "mods_locked", Kind: protocol.ArgUint}, {Name: "group", Kind: protocol.ArgUint},
		}},
	},
})

var TouchInterface = register(&protocol.Interface{
	Name:    "wl_touch",
	Version: 9,
	Requests: []protocol.Request{
		{Name: "release", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "down", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, {Name: "time", Kind: protocol.ArgUint},
			boundArg("surface", "wl_surface", false), {Name: "id", Kind: protocol.ArgInt},
			{Name: "x", Kind: protocol.ArgFixed}, {Name: "y", Kind: protocol.ArgFixed},
		}},
		{Name: "up", Args: []protocol.Arg{
			{Name: "serial", Kind: protocol.ArgUint}, {Name: "time", Kind: protocol.ArgUint}, {Name: "id", Kind: protocol.ArgInt},
		}},
		{Name: "motion", Args: []protocol.Arg{
			{Name: "time", Kind: protocol.ArgUint}, {Name: "id", Kind: protocol.ArgInt},
			{Name: "x", Kind: protocol.ArgFixed}, {Name: "y", Kind: protocol.ArgFixed},
		}},
		{Name: "frame"},
		{Name: "cancel"},
	},
})

var OutputInterface = register(&protocol.Interface{
	Name:    "wl_output",
	Version: 4,
	Requests: []protocol.Request{
		{Name: "release", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "geometry", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "physical_width", Kind: protocol.ArgInt}, {Name: "physical_height", Kind: protocol.ArgInt},
			{Name: "subpixel", Kind: protocol.ArgInt}, {Name: "make", Kind: protocol.ArgString},
			{Name: "model", Kind: protocol.ArgString}, {Name: "transform", Kind: protocol.ArgInt},
		}},
		{Name: "mode", Args: []protocol.Arg{
			{Name: "flags", Kind: protocol.ArgUint}, {Name: "width", Kind: protocol.ArgInt},
			{Name: "height", Kind: protocol.ArgInt}, {Name: "refresh", Kind: protocol.ArgInt},
		}},
		{Name: "done"},
		{Name: "scale", Args: []protocol.Arg{{Name: "factor", Kind: protocol.ArgInt}}},
		{Name: "name", Args: []protocol.Arg{{Name: "name", Kind: protocol.ArgString}}},
	},
})

var SubcompositorInterface = register(&protocol.Interface{
	Name:    "wl_subcompositor",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "get_subsurface", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_subsurface"},
			boundArg("surface", "wl_surface", false), boundArg("parent", "wl_surface", false),
		}},
	},
})

var SubsurfaceInterface = register(&protocol.Interface{
	Name:    "wl_subsurface",
	Version: 1,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "set_position", Args: []protocol.Arg{{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt}}},
		{Name: "place_above", Args: []protocol.Arg{boundArg("sibling", "wl_surface", false)}},
		{Name: "place_below", Args: []protocol.Arg{boundArg("sibling", "wl_surface", false)}},
		{Name: "set_sync"},
		{Name: "set_desync"},
	},
})

var DataDeviceManagerInterface = register(&protocol.Interface{
	Name:    "wl_data_device_manager",
	Version: 3,
	Requests: []protocol.Request{
		{Name: "create_data_source", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_data_source"}}},
		{Name: "get_data_device", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_data_device"}, boundArg("seat", "wl_seat", false),
		}},
	},
})

var DataSourceInterface = register(&protocol.Interface{
	Name:    "wl_data_source",
	Version: 3,
	Requests: []protocol.Request{
		{Name: "offer", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}}},
		{Name: "destroy", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "send", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}, {Name: "fd", Kind: protocol.ArgFd}}},
		{Name: "cancelled"},
	},
})

var DataOfferInterface = register(&protocol.Interface{
	Name:    "wl_data_offer",
	Version: 3,
	Requests: []protocol.Request{
		{Name: "accept", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}, {Name: "mime_type", Kind: protocol.ArgString, AllowNull: true}}},
		{Name: "receive", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}, {Name: "fd", Kind: protocol.ArgFd}}},
		{Name: "destroy", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "offer", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}}},
	},
})

var DataDeviceInterface = register(&protocol.Interface{
	Name:    "wl_data_device",
	Version: 3,
	Requests: []protocol.Request{
		{Name: "set_selection", Args: []protocol.Arg{boundArg("source", "wl_data_source", true), {Name: "serial", Kind: protocol.ArgUint}}},
	},
	Events: []protocol.Event{
		{Name: "data_offer", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "wl_data_offer"}}},
		{Name: "selection", Args: []protocol.Arg{boundArg("id", "wl_data_offer", true)}},
	},
})
