package proxy

// Error reports API misuse: an unknown request/event name, a call on
// a proxy that is not attached or already destroyed/detached, or a
// unique-ID collision. Always reported to the caller; the connection
// remains usable.
type Error struct {
	Proxy string
	Op    string
	Msg   string
}

func (e *Error) Error() string {
	return "proxy: " + e.Proxy + ": " + e.Op + ": " + e.Msg
}

func usageErr(iface, id, op, msg string) error {
	return &Error{Proxy: iface + "@" + id, Op: op, Msg: msg}
}
