package bytesize

// shiftMask reduces shift counts modulo the 64-bit width.
const shiftMask = 63

// And returns the bitwise AND of b and c.
func (b ByteSize) And(c ByteSize) ByteSize {
	return b & c
}

// Or returns the bitwise OR of b and c.
func (b ByteSize) Or(c ByteSize) ByteSize {
	return b | c
}

// Xor returns the bitwise XOR of b and c.
func (b ByteSize) Xor(c ByteSize) ByteSize {
	return b ^ c
}

// Not returns the bitwise complement of b.
func (b ByteSize) Not() ByteSize {
	return ^b
}

// Shl returns b shifted left by n bits. The count is taken modulo 64, so a
// negative or oversized n never fails.
func (b ByteSize) Shl(n int) ByteSize {
	return b << (uint(n) & shiftMask)
}

// Shr returns b arithmetically shifted right by n bits, copying the sign bit
// into the vacated bits. The count is taken modulo 64.
func (b ByteSize) Shr(n int) ByteSize {
	return b >> (uint(n) & shiftMask)
}

// ShrUnsigned returns b logically shifted right by n bits, filling the
// vacated bits with zero. The count is taken modulo 64.
func (b ByteSize) ShrUnsigned(n int) ByteSize {
	return ByteSize(uint64(b) >> (uint(n) & shiftMask))
}
