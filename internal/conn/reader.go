package conn

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)

// readerPump is the single goroutine that owns the object table and
// every proxy's handler table: all dispatch happens here, giving the
// library the same "one thread touches protocol state" guarantee the
// specification describes for its single-threaded executor.
func (c *Connection) readerPump() {
	var inBuf []byte
	var fdQueue []int

	chunk := make([]byte, 4096)
	oob := make([]byte, unix.CmsgSpace(32*4)) // room for up to 32 fds per read

	for {
		select {
		case <-c.terminated:
			c.drainFDs(fdQueue)
			return
		default:
		}

		// Dispatch every complete message already buffered before
		// blocking for more bytes (framing invariant: never dispatch a
		// partial message).
		for {
			if len(inBuf) < 8 {
				break
			}
			_, _, size, err := wire.DecodeHeader(inBuf)
			if err != nil {
				c.Terminate(&TransportError{Op: "frame", Err: err})
				c.drainFDs(fdQueue)
				return
			}
			if len(inBuf) < size {
				break
			}
			msg := inBuf[:size]
			inBuf = inBuf[size:]

			consumed, err := c.dispatchMessage(msg, fdQueue)
			fdQueue = fdQueue[consumed:]
			if err != nil {
				c.Terminate(&TransportError{Op: "dispatch", Err: err})
				c.drainFDs(fdQueue)
				return
			}
			if c.terminatedCheck() {
				c.drainFDs(fdQueue)
				return
			}
		}

		n, oobn, _, _, err := unix.Recvmsg(c.fd, chunk, oob, 0)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
				if perr := c.pollReady(unix.POLLIN); perr != nil {
					c.drainFDs(fdQueue)
					return
				}
				continue
			}
			if errors.Is(err, unix.EINTR) {
				continue
			}
			c.Terminate(&TransportError{Op: "read", Err: err})
			c.drainFDs(fdQueue)
			return
		}
		if n == 0 {
			c.Terminate(&TransportError{Op: "read", Err: errConnectionClosed})
			c.drainFDs(fdQueue)
			return
		}

		inBuf = append(inBuf, chunk[:n]...)
		if oobn > 0 {
			fdQueue = append(fdQueue, parseAncillaryFDs(oob[:oobn])...)
		}
	}
}

var errConnectionClosed = errors.New("connection closed")

func (c *Connection) terminatedCheck() bool {
	select {
	case <-c.terminated:
		return true
	default:
		return false
	}
}

// dispatchMessage decodes and delivers one complete wire message,
// returning how many fds from fdQueue it consumed.
func (c *Connection) dispatchMessage(msg []byte, fdQueue []int) (consumed int, err error) {
	objectID, opcode, _, err := wire.DecodeHeader(msg)
	if err != nil {
		return 0, err
	}
	payload := msg[8:]

	target, ok := c.Table.Lookup(objectID)
	if !ok {
		// Event for an object we no longer track (e.g. raced with a
		// local destroy): drop it. Decode-level framing errors still
		// terminate the connection; an unknown target alone does not.
		return 0, nil
	}
	p, ok := target.(*proxy.Proxy)
	if !ok {
		return 0, nil
	}
	iface := p.Interface()
	if int(opcode) >= len(iface.Events) {
		return 0, nil
	}
	event := iface.Events[opcode]

	d := wire.NewDecoder(nil)
	d.Reset(payload, fdQueue)
	args, err := decodeArgs(c.Resolver, c.Table, c, iface, event.Args, d)
	if err != nil {
		return d.FDsConsumed(), err
	}
	consumed = d.FDsConsumed()

	if c.trace != nil {
		c.trace("<-", objectID, opcode, iface.Name, event.Name)
	}

	p.Dispatch(wire.OpCode(opcode), args)
	return consumed, nil
}

func (c *Connection) drainFDs(fdQueue []int) {
	for _, fd := range fdQueue {
		unix.Close(fd)
	}
}

func parseAncillaryFDs(oob []byte) []int {
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil
	}
	var fds []int
	for _, scm := range scms {
		rights, err := unix.ParseUnixRights(&scm)
		if err != nil {
			continue
		}
		fds = append(fds, rights...)
	}
	return fds
}
