// Package wire implements the Wayland wire codec: message framing and
// per-argument pack/unpack, including file-descriptor passing.
//
// The format is little-endian throughout. Every message begins with an
// 8-byte header (object id, then opcode/size packed into a uint32);
// the payload that follows is always a whole number of 4-byte words.
package wire

// ObjectID identifies a protocol object within a single connection.
// ID 0 is null/invalid. ID 1 is always the display object.
type ObjectID uint32

// OpCode indexes into an interface's request list (outbound) or event
// list (inbound). Opcodes are positional, not stable across versions.
type OpCode uint16

// Fixed is a signed 24.8 fixed-point number: the high 24 bits hold the
// integer part, the low 8 bits the fractional part.
type Fixed int32

// FixedFromFloat converts f to Fixed, truncating the fractional part
// toward zero as required by the wire format.
func FixedFromFloat(f float64) Fixed {
	return Fixed(f * 256.0)
}

// Float returns f as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / 256.0
}

// FixedFromInt converts an integer to Fixed with a zero fractional part.
func FixedFromInt(i int32) Fixed {
	return Fixed(i << 8)
}

// Int returns the integer part of f.
func (f Fixed) Int() int32 {
	return int32(f) >> 8
}
