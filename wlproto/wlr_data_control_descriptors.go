package wlproto

import "github.com/wl-go/wl/internal/protocol"

// The zwlr-data-control-unstable-v1 extension lets a client read and
// set the clipboard without being a regular input client.

var DataControlManagerInterface = register(&protocol.Interface{
	Name:    "zwlr_data_control_manager_v1",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "create_data_source", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "zwlr_data_control_source_v1"}}},
		{Name: "get_data_device", Args: []protocol.Arg{
			{Name: "id", Kind: protocol.ArgNewID, Interface: "zwlr_data_control_device_v1"}, boundArg("seat", "wl_seat", false),
		}},
		{Name: "destroy", Destructor: true},
	},
})

var DataControlSourceInterface = register(&protocol.Interface{
	Name:    "zwlr_data_control_source_v1",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "offer", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}}},
		{Name: "destroy", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "send", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}, {Name: "fd", Kind: protocol.ArgFd}}},
		{Name: "cancelled"},
	},
})

var DataControlOfferInterface = register(&protocol.Interface{
	Name:    "zwlr_data_control_offer_v1",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "receive", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}, {Name: "fd", Kind: protocol.ArgFd}}},
		{Name: "destroy", Destructor: true},
	},
	Events: []protocol.Event{
		{Name: "offer", Args: []protocol.Arg{{Name: "mime_type", Kind: protocol.ArgString}}},
	},
})

var DataControlDeviceInterface = register(&protocol.Interface{
	Name:    "zwlr_data_control_device_v1",
	Version: 2,
	Requests: []protocol.Request{
		{Name: "set_selection", Args: []protocol.Arg{boundArg("source", "zwlr_data_control_source_v1", true)}},
		{Name: "destroy", Destructor: true},
		{Name: "set_primary_selection", Args: []protocol.Arg{boundArg("source", "zwlr_data_control_source_v1", true)}},
	},
	Events: []protocol.Event{
		{Name: "data_offer", Args: []protocol.Arg{{Name: "id", Kind: protocol.ArgNewID, Interface: "zwlr_data_control_offer_v1"}}},
		{Name: "selection", Args: []protocol.Arg{boundArg("id", "zwlr_data_control_offer_v1", true)}},
		{Name: "primary_selection", Args: []protocol.Arg{boundArg("id", "zwlr_data_control_offer_v1", true)}},
	},
})
