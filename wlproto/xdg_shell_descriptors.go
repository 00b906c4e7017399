package wlproto

import "github.com/wl-go/wl/internal/protocol"

var XdgWmBaseInterface = register(&protocol.Interface{
	Name:    "xdg_wm_base",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "create_positioner", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "xdg_positioner"}}},
		{Name: "get_xdg_surface", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "xdg_surface"}, boundArg("surface", "wl_surface", false),
		}},
		{Name: "pong", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}}},
	},
	Events: []protocol.Event{
		{Name: "ping", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}}},
	},
})

var XdgPositionerInterface = register(&protocol.Interface{
	Name:    "xdg_positioner",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "set_size", Args: []protocol.Arg{{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt}}},
		{Name: "set_anchor_rect", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
	},
})

var XdgSurfaceInterface = register(&protocol.Interface{
	Name:    "xdg_surface",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "get_toplevel", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "xdg_toplevel"}}},
		{Name: "get_popup", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "xdg_popup"},
			boundArg("parent", "xdg_surface", true), boundArg("positioner", "xdg_positioner", false),
		}},
		{Name: "set_window_geometry", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
		{Name: "ack_configure", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}}},
	},
	Events: []protocol.Event{
		{Name: "configure", Args: []protocol.Arg{{Name: "serial", Kind: protocol.ArgUint}}},
	},
})

var XdgToplevelInterface = register(&protocol.Interface{
	Name:    "xdg_toplevel",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "set_title", Args: []protocol.Arg{{Name: "title", Kind: protocol.ArgString}}},
		{Name: "set_app_id", Args: []protocol.Arg{{Name: "app_id", Kind: protocol.ArgString}}},
		{Name: "set_min_size", Args: []protocol.Arg{{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt}}},
		{Name: "set_max_size", Args: []protocol.Arg{{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt}}},
		{Name: "set_fullscreen", Args: []protocol.Arg{boundArg("output", "wl_output", true)}},
		{Name: "unset_fullscreen"},
		{Name: "set_minimized"},
	},
	Events: []protocol.Event{
		{Name: "configure", Args: []protocol.Arg{
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt}, {Name: "states", Kind: protocol.ArgArray},
		}},
		{Name: "close"},
	},
})

var XdgPopupInterface = register(&protocol.Interface{
	Name:    "xdg_popup",
	Version: 6,
	Requests: []protocol.Request{
		{Name: "destroy", Destructor: true},
		{Name: "grab", Args: []protocol.Arg{boundArg("seat", "wl_seat", false), {Name: "serial", Kind: protocol.ArgUint}}},
	},
	Events: []protocol.Event{
		{Name: "configure", Args: []protocol.Arg{
			{Name: "x", Kind: protocol.ArgInt}, {Name: "y", Kind: protocol.ArgInt},
			{Name: "width", Kind: protocol.ArgInt}, {Name: "height", Kind: protocol.ArgInt},
		}},
		{Name: "popup_done"},
	},
})
