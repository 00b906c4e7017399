// Package wlproto holds the typed proxy surface for the Wayland
// interfaces this module ships bindings for: the core wayland.xml
// protocol, xdg-shell, and the wlr-data-control clipboard extension.
//
// In a full deployment these files are produced by cmd/wlgen from the
// XML under protocols/; they are checked in here, hand-written in the
// style the generator emits (see pkg/codegen), so the module is usable
// without running the generator first.
package wlproto

import "github.com/wl-go/wl/internal/protocol"

var registry = map[string]*protocol.Interface{}

func register(iface *protocol.Interface) *protocol.Interface {
	registry[iface.Name] = iface
	return iface
}

// interfaceResolver satisfies internal/conn.InterfaceResolver without
// internal/conn needing to import this package: a central registry
// mapping interface name to its protocol.Interface descriptor,
// populated as a side effect of importing wlproto.
type interfaceResolver struct{}

func (interfaceResolver) Lookup(name string) (*protocol.Interface, bool) {
	iface, ok := registry[name]
	return iface, ok
}

// Resolver returns the package-wide interface registry, suitable for
// internal/conn.Connect's resolver argument.
func Resolver() interfaceResolver { return interfaceResolver{} }

// Lookup exposes the registry directly for callers (e.g. the global
// binding in wl/bind.go) that want a descriptor by name without going
// through the resolver indirection.
func Lookup(name string) (*protocol.Interface, bool) {
	iface, ok := registry[name]
	return iface, ok
}
