package bytesize

// AddChecked returns b + c, or ErrOverflow if the sum is out of range.
func (b ByteSize) AddChecked(c ByteSize) (ByteSize, error) {
	z := b + c
	// overflow iff both operands have the sign opposite to the result
	if (z^b)&(z^c) < 0 {
		return 0, opError("add", ErrOverflow, b, c)
	}
	return z, nil
}

// SubChecked returns b - c, or ErrOverflow if the difference is out of range.
func (b ByteSize) SubChecked(c ByteSize) (ByteSize, error) {
	z := b - c
	// overflow iff the operands differ in sign and the result's sign
	// differs from b's
	if (b^c)&(b^z) < 0 {
		return 0, opError("sub", ErrOverflow, b, c)
	}
	return z, nil
}

// MulChecked returns b * c, or ErrOverflow if the product is out of range.
func (b ByteSize) MulChecked(c ByteSize) (ByteSize, error) {
	if b == 0 || c == 0 {
		return 0, nil
	}
	z := b * c
	// MinValue / -1 wraps back to MinValue, so the division check alone
	// misses it
	if (b == -1 && c == MinValue) || (c == -1 && b == MinValue) || z/c != b {
		return 0, opError("mul", ErrOverflow, b, c)
	}
	return z, nil
}

// NegChecked returns -b, or ErrOverflow for MinValue.
func (b ByteSize) NegChecked() (ByteSize, error) {
	if b == MinValue {
		return 0, opError("neg", ErrOverflow, b)
	}
	return -b, nil
}

// IncChecked returns b + 1, or ErrOverflow for MaxValue.
func (b ByteSize) IncChecked() (ByteSize, error) {
	if b == MaxValue {
		return 0, opError("inc", ErrOverflow, b)
	}
	return b + 1, nil
}

// DecChecked returns b - 1, or ErrOverflow for MinValue.
func (b ByteSize) DecChecked() (ByteSize, error) {
	if b == MinValue {
		return 0, opError("dec", ErrOverflow, b)
	}
	return b - 1, nil
}

// DivChecked is Div. Division already reports both of its failure cases.
func (b ByteSize) DivChecked(c ByteSize) (ByteSize, error) {
	return b.Div(c)
}

// RemChecked is Rem.
func (b ByteSize) RemChecked(c ByteSize) (ByteSize, error) {
	return b.Rem(c)
}
