package proxy

import (
	"errors"
	"testing"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/wire"
)

type recordingSender struct {
	sent []wire.Message
}

func (s *recordingSender) Send(msg wire.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func testInterface() *protocol.Interface {
	return &protocol.Interface{
		Name:    "wl_test",
		Version: 1,
		Requests: []protocol.Request{
			{Name: "destroy", Destructor: true},
			{Name: "set_value", Args: []protocol.Arg{{Name: "value", Kind: protocol.ArgUint}}},
		},
		Events: []protocol.Event{
			{Name: "done"},
			{Name: "value_changed", Args: []protocol.Arg{{Name: "value", Kind: protocol.ArgUint}}},
		},
	}
}

func TestCallFailsBeforeAttach(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	err := p.Call("set_value", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
	if err == nil {
		t.Fatal("expected usage error calling an unattached proxy")
	}
}

func TestCallAfterAttach(t *testing.T) {
	s := &recordingSender{}
	p := New(2, testInterface(), s)
	p.Attach()
	err := p.Call("set_value", func(b *wire.MessageBuilder, args []protocol.Arg) error {
		b.PutUint32(42)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.sent) != 1 || s.sent[0].Opcode != 1 {
		t.Fatalf("unexpected sent messages: %+v", s.sent)
	}
}

func TestDestructorMarksDestroyed(t *testing.T) {
	s := &recordingSender{}
	p := New(2, testInterface(), s)
	p.Attach()
	if err := p.Call("destroy", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if !p.Destroyed() {
		t.Fatal("expected proxy to be marked destroyed after destructor call")
	}
}

func TestOnInstallsAndReplaces(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	p.Attach()
	first := func(args []any) bool { return true }
	prev, err := p.On("done", first)
	if err != nil || prev != nil {
		t.Fatalf("first On() = %v, %v, want nil, nil", prev, err)
	}
	second := func(args []any) bool { return true }
	prev, err = p.On("done", second)
	if err != nil {
		t.Fatal(err)
	}
	if prev == nil {
		t.Fatal("expected previous handler to be returned")
	}
}

func TestDispatchInvokesHandlerAndRemovesOnFalse(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	p.Attach()
	calls := 0
	_, err := p.On("done", func(args []any) bool {
		calls++
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	p.Dispatch(0, nil)
	p.Dispatch(0, nil)
	if calls != 1 {
		t.Fatalf("handler invoked %d times, want 1 (should self-remove)", calls)
	}
}

func TestOnAsyncResolves(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	p.Attach()
	f, err := p.OnAsync("value_changed")
	if err != nil {
		t.Fatal(err)
	}
	p.Dispatch(1, []any{uint32(7)})
	args, err := f.Wait()
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 1 || args[0].(uint32) != 7 {
		t.Fatalf("future resolved with %+v, want [7]", args)
	}
}

func TestDetachCancelsFuturesAndBlocksCall(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	p.Attach()
	f, err := p.OnAsync("done")
	if err != nil {
		t.Fatal(err)
	}
	reason := errors.New("terminated")
	p.Detach(reason)

	_, err = f.Wait()
	if err != reason {
		t.Fatalf("Wait() err = %v, want %v", err, reason)
	}

	err = p.Call("set_value", func(b *wire.MessageBuilder, args []protocol.Arg) error { return nil })
	if err == nil {
		t.Fatal("expected Call to fail after detach")
	}
}

func TestDetachIdempotent(t *testing.T) {
	p := New(2, testInterface(), &recordingSender{})
	p.Attach()
	p.Detach(errors.New("first"))
	p.Detach(errors.New("second")) // must not panic or double-cancel
}
