package bytesize

// The methods in this file wrap on overflow with two's-complement semantics,
// the same as the built-in int64 operators. See checked.go for the variants
// that report overflow instead.

// Add returns b + c.
func (b ByteSize) Add(c ByteSize) ByteSize {
	return b + c
}

// Sub returns b - c.
func (b ByteSize) Sub(c ByteSize) ByteSize {
	return b - c
}

// Mul returns b * c.
func (b ByteSize) Mul(c ByteSize) ByteSize {
	return b * c
}

// Neg returns -b. Neg(MinValue) is MinValue.
func (b ByteSize) Neg() ByteSize {
	return -b
}

// Plus returns b unchanged.
func (b ByteSize) Plus() ByteSize {
	return b
}

// Inc returns b + 1.
func (b ByteSize) Inc() ByteSize {
	return b + 1
}

// Dec returns b - 1.
func (b ByteSize) Dec() ByteSize {
	return b - 1
}

// Div returns b / c truncated toward zero. It is the only division, used by
// checked and unchecked callers alike: a zero c returns ErrDivideByZero, and
// MinValue / -1 returns ErrOverflow rather than wrapping.
func (b ByteSize) Div(c ByteSize) (ByteSize, error) {
	switch {
	case c == 0:
		return 0, opError("div", ErrDivideByZero, b, c)
	case b == MinValue && c == -1:
		return 0, opError("div", ErrOverflow, b, c)
	}
	return b / c, nil
}

// Rem returns the remainder of b / c, which has the sign of b. It shares
// Div's failure cases: a zero c returns ErrDivideByZero, and MinValue % -1
// returns ErrOverflow.
func (b ByteSize) Rem(c ByteSize) (ByteSize, error) {
	switch {
	case c == 0:
		return 0, opError("rem", ErrDivideByZero, b, c)
	case b == MinValue && c == -1:
		return 0, opError("rem", ErrOverflow, b, c)
	}
	return b % c, nil
}
