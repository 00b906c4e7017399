package wire

// MessageBuilder accumulates a request's arguments (and any file
// descriptors) and produces a Message once every argument has been
// written, in the order the request descriptor declares them.
type MessageBuilder struct {
	enc *Encoder
	fds []int
}

// NewMessageBuilder returns an empty builder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{enc: NewEncoder(256)}
}

func (b *MessageBuilder) PutInt32(v int32) *MessageBuilder  { b.enc.PutInt32(v); return b }
func (b *MessageBuilder) PutUint32(v uint32) *MessageBuilder { b.enc.PutUint32(v); return b }
func (b *MessageBuilder) PutFixed(v Fixed) *MessageBuilder  { b.enc.PutFixed(v); return b }
func (b *MessageBuilder) PutObject(id ObjectID) *MessageBuilder { b.enc.PutObject(id); return b }
func (b *MessageBuilder) PutNewID(id ObjectID) *MessageBuilder { b.enc.PutNewID(id); return b }

func (b *MessageBuilder) PutNewIDFull(iface string, version uint32, id ObjectID) *MessageBuilder {
	b.enc.PutNewIDFull(iface, version, id)
	return b
}

func (b *MessageBuilder) PutString(s string) *MessageBuilder { b.enc.PutString(s); return b }
func (b *MessageBuilder) PutArray(data []byte) *MessageBuilder { b.enc.PutArray(data); return b }

// PutFD queues a descriptor to be carried as ancillary data alongside
// the message this builder produces.
func (b *MessageBuilder) PutFD(fd int) *MessageBuilder {
	b.fds = append(b.fds, fd)
	return b
}

// Build finalizes the message for objectID/opcode.
func (b *MessageBuilder) Build(objectID ObjectID, opcode OpCode) Message {
	args := make([]byte, len(b.enc.Bytes()))
	copy(args, b.enc.Bytes())
	fds := make([]int, len(b.fds))
	copy(fds, b.fds)
	return Message{ObjectID: objectID, Opcode: opcode, Args: args, FDs: fds}
}
