package wl

// Run blocks until the connection terminates (socket error, peer
// error, or Close), returning the termination reason (nil for a clean
// Close). Event handlers and futures resolve continuously from the
// background reader pump while Run blocks; there is no caller-driven
// "pump one iteration" step to expose, since internal/conn already runs
// its own dedicated goroutine for that (see internal/conn's package
// doc). Callers that want to wait for termination alongside other
// event sources should select on OnTerminated directly instead.
func (ctx *Context) Run() error {
	<-ctx.OnTerminated()
	return ctx.TerminationReason()
}

// Dispatch is an alias for RoundTrip kept for callers porting code from
// APIs with an explicit cooperative dispatch step: it blocks until the
// compositor has processed every request submitted so far, which is as
// close as this goroutine-driven engine comes to "dispatch pending
// events now".
func (ctx *Context) Dispatch() error {
	return ctx.RoundTrip()
}
