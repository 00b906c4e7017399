package wl

// Config configures a connection.
type Config struct {
	// Display is the socket name or path. Empty means resolve from
	// $WAYLAND_DISPLAY (default "wayland-0") against $XDG_RUNTIME_DIR.
	Display string

	// Trace enables WAYLAND_DEBUG-style wire tracing regardless of the
	// environment variable.
	Trace bool
}

// DefaultConfig returns sensible default configuration: display
// resolved from the environment, tracing left to $WAYLAND_DEBUG.
func DefaultConfig() Config {
	return Config{}
}

// WithDisplay returns a copy with the display socket name set.
func (c Config) WithDisplay(name string) Config {
	c.Display = name
	return c
}

// WithTrace returns a copy with wire tracing forced on.
func (c Config) WithTrace(on bool) Config {
	c.Trace = on
	return c
}
