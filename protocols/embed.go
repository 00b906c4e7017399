// Package protocols embeds the Wayland XML protocol descriptions wlgen
// generates from by default, so a fresh checkout can regenerate
// wlproto without first running `wlgen pull` against a live
// wayland-protocols checkout.
package protocols

import "embed"

//go:embed *.xml
var FS embed.FS

// Default lists the embedded protocol files in the order wlgen feeds
// them to the generator: core Wayland first, then the stable and
// unstable extensions layered on top of it.
var Default = []string{
	"wayland.xml",
	"xdg-shell.xml",
	"wlr-data-control-unstable-v1.xml",
}
