// Command wlgen generates typed wl.* interface wrappers from Wayland
// protocol XML. See SPEC_FULL.md component G for its command surface.
package main

func main() {
	Execute()
}
