package wire

// headerSize is the fixed 8-byte message header: object id (u32) then
// opcode|size packed into a second u32.
const headerSize = 8

// maxMessageSize bounds a single message, per the Wayland wire format.
const maxMessageSize = 64 * 1024

// paddingFor returns the number of zero bytes needed to round length up
// to the next multiple of 4.
func paddingFor(length int) int {
	return (4 - (length % 4)) % 4
}
