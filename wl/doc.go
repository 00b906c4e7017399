// Package wl provides a pure-Go Wayland client library: the root
// package binds the well-known display object, discovers and tracks
// registry globals, and exposes typed global retrieval on top of the
// wire codec, proxy, and connection engine that live under internal/.
//
// # Quick Start
//
// The simplest wl program connects, finds the compositor, and creates
// a surface:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/wl-go/wl"
//	    "github.com/wl-go/wl/wlproto"
//	)
//
//	func main() {
//	    ctx, err := wl.Connect(wl.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer ctx.Close()
//
//	    compositor, err := wl.GetGlobal[*wlproto.Compositor](ctx)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    surface, err := compositor.CreateSurface(wl.BindNew(ctx, wlproto.SurfaceInterface))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    surface.Commit()
//	}
//
// # Architecture
//
// wl uses a layered architecture:
//
//   - Context: connection bootstrap, registry tracking, global binding
//   - wlproto: typed per-interface proxy stubs (compositor, surface, shm, ...)
//   - internal/conn, internal/proxy, internal/objects, internal/wire: engine (unexported)
package wl
