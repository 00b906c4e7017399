package wire

import (
	"bytes"
	"math"
	"testing"
)

func TestEncodeInt(t *testing.T) {
	e := NewEncoder(4)
	e.PutInt32(127)
	want := []byte{0x7F, 0x00, 0x00, 0x00}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("PutInt32(127) = % x, want % x", e.Bytes(), want)
	}
	d := NewDecoder(e.Bytes())
	got, err := d.Int32()
	if err != nil || got != 127 {
		t.Fatalf("Int32() = %d, %v, want 127, nil", got, err)
	}
}

func TestEncodeFixed(t *testing.T) {
	e := NewEncoder(4)
	e.PutFixed(FixedFromFloat(127.31))
	want := []byte{0x4F, 0x7F, 0x00, 0x00}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("PutFixed(127.31) = % x, want % x", e.Bytes(), want)
	}
	d := NewDecoder(e.Bytes())
	got, err := d.Fixed()
	if err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(got.Float() - 127.31); diff > 0.004 {
		t.Fatalf("round trip error %v exceeds 1/256", diff)
	}
}

func TestEncodeString(t *testing.T) {
	e := NewEncoder(16)
	e.PutString("string")
	want := []byte{0x07, 0x00, 0x00, 0x00, 's', 't', 'r', 'i', 'n', 'g', 0x00, 0x00}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("PutString(\"string\") = % x, want % x", e.Bytes(), want)
	}
	d := NewDecoder(e.Bytes())
	got, err := d.String()
	if err != nil || got != "string" {
		t.Fatalf("String() = %q, %v, want \"string\", nil", got, err)
	}
}

func TestEncodeArray(t *testing.T) {
	e := NewEncoder(16)
	e.PutArray([]byte("string"))
	want := []byte{0x06, 0x00, 0x00, 0x00, 's', 't', 'r', 'i', 'n', 'g', 0x00, 0x00}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("PutArray(\"string\") = % x, want % x", e.Bytes(), want)
	}
	d := NewDecoder(e.Bytes())
	got, err := d.Array()
	if err != nil || !bytes.Equal(got, []byte("string")) {
		t.Fatalf("Array() = % x, %v, want \"string\", nil", got, err)
	}
}

func TestRoundTripPadding(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"one byte", "a"},
		{"three bytes", "abc"},
		{"four bytes", "abcd"},
		{"five bytes", "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEncoder(32)
			e.PutString(tt.s)
			if len(e.Bytes())%4 != 0 {
				t.Fatalf("encoded length %d not 4-byte aligned", len(e.Bytes()))
			}
			d := NewDecoder(e.Bytes())
			got, err := d.String()
			if err != nil || got != tt.s {
				t.Fatalf("String() = %q, %v, want %q, nil", got, err, tt.s)
			}
		})
	}
}

func TestDecodeHeader(t *testing.T) {
	args := []byte{1, 2, 3, 4}
	buf, err := EncodeMessage(ObjectID(1), OpCode(3), args)
	if err != nil {
		t.Fatal(err)
	}
	id, op, size, err := DecodeHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 || op != 3 || size != headerSize+len(args) {
		t.Fatalf("DecodeHeader() = %d, %d, %d, want 1, 3, %d", id, op, size, headerSize+len(args))
	}
}

func TestMessageTooLarge(t *testing.T) {
	if _, err := EncodeMessage(1, 0, make([]byte, maxMessageSize)); err == nil {
		t.Fatal("expected ErrMessageTooLarge")
	}
}

func TestFDOrdering(t *testing.T) {
	d := NewDecoder(nil)
	d.Reset(nil, []int{7, 8, 9})
	for _, want := range []int{7, 8, 9} {
		got, err := d.FD()
		if err != nil || got != want {
			t.Fatalf("FD() = %d, %v, want %d, nil", got, err, want)
		}
	}
	if _, err := d.FD(); err == nil {
		t.Fatal("expected ErrNoFileDescriptor once exhausted")
	}
}

func TestMessageBuilder(t *testing.T) {
	b := NewMessageBuilder()
	b.PutUint32(42).PutString("hi").PutFD(5)
	msg := b.Build(ObjectID(2), OpCode(1))
	if msg.ObjectID != 2 || msg.Opcode != 1 {
		t.Fatalf("unexpected header on built message: %+v", msg)
	}
	if len(msg.FDs) != 1 || msg.FDs[0] != 5 {
		t.Fatalf("FDs = %v, want [5]", msg.FDs)
	}
	d := NewDecoder(msg.Args)
	n, err := d.Uint32()
	if err != nil || n != 42 {
		t.Fatalf("Uint32() = %d, %v, want 42, nil", n, err)
	}
	s, err := d.String()
	if err != nil || s != "hi" {
		t.Fatalf("String() = %q, %v, want \"hi\", nil", s, err)
	}
}
