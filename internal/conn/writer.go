package conn

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/wl-go/wl/internal/wire"
)

// writerPump packs queued messages into wire bytes plus ancillary fds
// and transmits them via sendmsg. A partial write keeps the residual
// bytes queued for the next iteration; EAGAIN suspends the pump until
// the socket is writable.
func (c *Connection) writerPump() {
	for {
		var msg wire.Message
		select {
		case msg = <-c.writeQueue:
		case <-c.terminated:
			return
		}

		buf, err := wire.EncodeMessage(msg.ObjectID, msg.Opcode, msg.Args)
		if err != nil {
			// Encoding failures are reported to the caller at Call time,
			// not here; a message that reached the queue is already valid.
			continue
		}

		if c.trace != nil {
			c.trace("->", msg.ObjectID, msg.Opcode, "", "")
		}

		if err := c.sendAll(buf, msg.FDs); err != nil {
			c.Terminate(&TransportError{Op: "write", Err: err})
			return
		}

		if len(c.writeQueue) == 0 {
			select {
			case c.drained <- struct{}{}:
			default:
			}
		}
	}
}

// sendAll transmits buf plus oob in full, retrying on EAGAIN via poll
// and on short writes by re-submitting the remainder (without fds,
// which only ride along with the first chunk).
func (c *Connection) sendAll(buf []byte, fds []int) error {
	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}

	for len(buf) > 0 {
		n, err := unix.SendmsgN(c.fd, buf, oob, nil, 0)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
				if perr := c.pollReady(unix.POLLOUT); perr != nil {
					return perr
				}
				continue
			}
			return err
		}
		buf = buf[n:]
		oob = nil // fds are only sent with the first successful chunk
	}
	return nil
}

// pollReady blocks until the connection's fd is ready for events, or
// returns an error if termination happened concurrently.
func (c *Connection) pollReady(events int16) error {
	fds := []unix.PollFd{{Fd: int32(c.fd), Events: events}}
	for {
		select {
		case <-c.terminated:
			return unix.EBADF
		default:
		}
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}
}
