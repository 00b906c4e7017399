package wire

import "encoding/binary"

// Decoder unpacks argument values from a single message's payload, in
// the order the request/event descriptor declares them. FDs are drawn
// from a parallel slice handed to Reset, in arrival order.
type Decoder struct {
	buf    []byte
	offset int
	fds    []int
	fdIdx  int
}

// NewDecoder returns a Decoder over buf with no associated FDs.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Reset repositions d over a new payload and FD set.
func (d *Decoder) Reset(buf []byte, fds []int) {
	d.buf, d.offset, d.fds, d.fdIdx = buf, 0, fds, 0
}

// Remaining reports the number of unread payload bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.offset }

func (d *Decoder) Int32() (int32, error) {
	if d.offset+4 > len(d.buf) {
		return 0, wireErr("decode int", ErrUnexpectedEOF)
	}
	v := int32(binary.LittleEndian.Uint32(d.buf[d.offset:]))
	d.offset += 4
	return v, nil
}

func (d *Decoder) Uint32() (uint32, error) {
	if d.offset+4 > len(d.buf) {
		return 0, wireErr("decode uint", ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint32(d.buf[d.offset:])
	d.offset += 4
	return v, nil
}

func (d *Decoder) Fixed() (Fixed, error) {
	v, err := d.Uint32()
	return Fixed(v), err
}

func (d *Decoder) Object() (ObjectID, error) {
	v, err := d.Uint32()
	return ObjectID(v), err
}

// NewID reads the bare new_id case: just the allocated object id.
func (d *Decoder) NewID() (ObjectID, error) { return d.Object() }

func (d *Decoder) String() (string, error) {
	length, err := d.Uint32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	if length > maxMessageSize {
		return "", wireErr("decode string", ErrInvalidStringLen)
	}
	padded := int(length) + paddingFor(int(length))
	if d.offset+padded > len(d.buf) {
		return "", wireErr("decode string", ErrUnexpectedEOF)
	}
	if d.buf[d.offset+int(length)-1] != 0 {
		return "", wireErr("decode string", ErrStringNotTerminated)
	}
	s := string(d.buf[d.offset : d.offset+int(length)-1])
	d.offset += padded
	return s, nil
}

func (d *Decoder) Array() ([]byte, error) {
	length, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	if length > maxMessageSize {
		return nil, wireErr("decode array", ErrInvalidArrayLen)
	}
	padded := int(length) + paddingFor(int(length))
	if d.offset+padded > len(d.buf) {
		return nil, wireErr("decode array", ErrUnexpectedEOF)
	}
	data := make([]byte, length)
	copy(data, d.buf[d.offset:d.offset+int(length)])
	d.offset += padded
	return data, nil
}

// FDsConsumed reports how many FDs this decoder has consumed from the
// slice passed to Reset, so a caller juggling a longer-lived fd queue
// across multiple messages can advance its own cursor.
func (d *Decoder) FDsConsumed() int { return d.fdIdx }

// FD consumes the next available file descriptor in arrival order.
func (d *Decoder) FD() (int, error) {
	if d.fdIdx >= len(d.fds) {
		return -1, wireErr("decode fd", ErrNoFileDescriptor)
	}
	fd := d.fds[d.fdIdx]
	d.fdIdx++
	return fd, nil
}

// DecodeHeader reads the 8-byte header at the start of buf and returns the object id, opcode, and total message size
// (header included).
func DecodeHeader(buf []byte) (ObjectID, OpCode, int, error) {
	if len(buf) < headerSize {
		return 0, 0, 0, wireErr("decode header", ErrMessageTooSmall)
	}
	objectID := ObjectID(binary.LittleEndian.Uint32(buf[0:4]))
	sizeAndOpcode := binary.LittleEndian.Uint32(buf[4:8])
	size := int(sizeAndOpcode >> 16)
	opcode := OpCode(sizeAndOpcode & 0xFFFF)
	if size < headerSize {
		return 0, 0, 0, wireErr("decode header", ErrMessageTooSmall)
	}
	if size > maxMessageSize {
		return 0, 0, 0, wireErr("decode header", ErrMessageTooLarge)
	}
	return objectID, opcode, size, nil
}
