package wire

import "encoding/binary"

// Encoder packs argument values into a growable byte buffer in wire
// order. Callers are responsible for matching the argument order and
// types declared by the request/event descriptor in package protocol.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with capacity pre-reserved.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// Bytes returns the encoded bytes so far.
func (e *Encoder) Bytes() []byte { return e.buf }

// PutInt32 appends a signed int argument.
func (e *Encoder) PutInt32(v int32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutUint32 appends an unsigned int argument.
func (e *Encoder) PutUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// PutFixed appends a fixed-point argument.
func (e *Encoder) PutFixed(v Fixed) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutObject appends an object-id argument. id may be 0 for an
// allow-null object that is absent.
func (e *Encoder) PutObject(id ObjectID) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(id))
}

// PutNewID appends a new_id argument whose interface is statically
// known (the common case: the XML declared an `interface` attribute).
func (e *Encoder) PutNewID(id ObjectID) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(id))
}

// PutNewIDFull appends the three-argument expansion used for a new_id
// with no declared interface (wl_registry.bind and friends):
// (interface-name string, version uint, id).
func (e *Encoder) PutNewIDFull(iface string, version uint32, id ObjectID) {
	e.PutString(iface)
	e.PutUint32(version)
	e.PutUint32(uint32(id))
}

// PutString appends a length-prefixed, NUL-terminated, 4-byte-aligned
// string argument.
func (e *Encoder) PutString(s string) {
	length := uint32(len(s) + 1)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, length)
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
	for i := 0; i < paddingFor(int(length)); i++ {
		e.buf = append(e.buf, 0)
	}
}

// PutArray appends a length-prefixed, 4-byte-aligned opaque byte array
// argument. Unlike PutString it carries no trailing NUL.
func (e *Encoder) PutArray(data []byte) {
	length := uint32(len(data))
	e.buf = binary.LittleEndian.AppendUint32(e.buf, length)
	e.buf = append(e.buf, data...)
	for i := 0; i < paddingFor(int(length)); i++ {
		e.buf = append(e.buf, 0)
	}
}

// EncodeMessage packs a complete message (header + args) from raw
// pieces. FDs are never part of the returned bytes; they travel
// out-of-band via SCM_RIGHTS.
func EncodeMessage(objectID ObjectID, opcode OpCode, args []byte) ([]byte, error) {
	totalSize := headerSize + len(args)
	if totalSize > maxMessageSize {
		return nil, wireErr("encode", ErrMessageTooLarge)
	}
	buf := make([]byte, 0, totalSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(objectID))
	sizeAndOpcode := uint32(totalSize)<<16 | uint32(opcode)
	buf = binary.LittleEndian.AppendUint32(buf, sizeAndOpcode)
	buf = append(buf, args...)
	return buf, nil
}
