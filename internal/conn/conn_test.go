package conn

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
	"github.com/wl-go/wl/pkg/wlog"
)

type mapResolver map[string]*protocol.Interface

func (m mapResolver) Lookup(name string) (*protocol.Interface, bool) {
	iface, ok := m[name]
	return iface, ok
}

func testInterfaces() mapResolver {
	display := &protocol.Interface{
		Name:    "wl_display",
		Version: 1,
		Requests: []protocol.Request{
			{Name: "sync", Args: []protocol.Arg{{Name: "callback", Kind: protocol.ArgNewID, Interface: "wl_callback"}}},
		},
	}
	callback := &protocol.Interface{
		Name:    "wl_callback",
		Version: 1,
		Events:  []protocol.Event{{Name: "done", Args: []protocol.Arg{{Name: "data", Kind: protocol.ArgUint}}}},
	}
	return mapResolver{"wl_display": display, "wl_callback": callback}
}

// newSocketpairConnection builds a Connection over one end of a UNIX
// socketpair, returning the raw peer fd for a test harness to drive
// the other side directly (mirrors original_source/wayland/tests.py's
// use of socket.socketpair for an in-process fake compositor).
func newSocketpairConnection(t *testing.T, resolver InterfaceResolver) (*Connection, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := unix.SetNonblock(fds[0], true); err != nil {
		t.Fatal(err)
	}
	f := os.NewFile(uintptr(fds[0]), "client")
	c := newConnection(f, fds[0], resolver, wlog.New())
	t.Cleanup(func() { c.Terminate(nil) })
	return c, fds[1]
}

func TestSendReachesPeer(t *testing.T) {
	c, peerFD := newSocketpairConnection(t, testInterfaces())
	defer unix.Close(peerFD)

	display := proxy.New(1, testInterfaces()["wl_display"], c)
	display.Attach()
	if err := c.Table.Register(1, display); err != nil {
		t.Fatal(err)
	}

	if err := display.Call("sync", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutNewID(2)
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 64)
	if err := waitReadable(peerFD, time.Second); err != nil {
		t.Fatal(err)
	}
	n, err := unix.Read(peerFD, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Fatalf("read %d bytes, want 12 (header + 1 arg)", n)
	}
	id, op, size, err := wire.DecodeHeader(buf[:n])
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 || op != 0 || size != 12 {
		t.Fatalf("decoded header = %d,%d,%d, want 1,0,12", id, op, size)
	}
}

func TestSyncBarrierResolvesOnDone(t *testing.T) {
	resolver := testInterfaces()
	c, peerFD := newSocketpairConnection(t, resolver)
	defer unix.Close(peerFD)

	display := proxy.New(1, resolver["wl_display"], c)
	display.Attach()
	if err := c.Table.Register(1, display); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- Sync(c, display) }()

	// Act as the compositor: read the sync request, reply with the
	// callback's done event addressed to the id the client chose.
	if err := waitReadable(peerFD, time.Second); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 64)
	n, err := unix.Read(peerFD, buf)
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, err = wire.DecodeHeader(buf[:n])
	if err != nil {
		t.Fatal(err)
	}
	callbackID := wire.ObjectID(unix32(buf[8:12]))

	replyArgs, _ := wire.EncodeMessage(callbackID, 0, []byte{0, 0, 0, 0})
	if _, err := unix.Write(peerFD, replyArgs); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Sync() returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Sync() did not resolve in time")
	}
}

func unix32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func waitReadable(fd int, timeout time.Duration) error {
	pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n, err := unix.Poll(pfd, 50)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return os.ErrDeadlineExceeded
}

func TestTerminateDetachesProxiesAndBlocksSend(t *testing.T) {
	c, peerFD := newSocketpairConnection(t, testInterfaces())
	defer unix.Close(peerFD)

	display := proxy.New(1, testInterfaces()["wl_display"], c)
	display.Attach()
	if err := c.Table.Register(1, display); err != nil {
		t.Fatal(err)
	}

	c.Terminate(nil)
	<-c.OnTerminated()

	if display.Attached() {
		t.Fatal("expected display proxy to be detached on terminate")
	}
	err := c.Send(wire.Message{ObjectID: 1, Opcode: 0})
	if err == nil {
		t.Fatal("expected Send to fail after Terminate")
	}
}
