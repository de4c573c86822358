package bytesize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOverflow is returned when the exact result of an operation is
	// outside the range of ByteSize.
	ErrOverflow = errors.New("integer overflow")

	// ErrDivideByZero is returned by division and remainder with a zero
	// divisor.
	ErrDivideByZero = errors.New("division by zero")
)

// OpError records a failed operation and its operands.
//
// The cause is one of ErrOverflow or ErrDivideByZero, and can be tested with
// errors.Is.
type OpError struct {
	Op       string
	Operands []ByteSize
	Err      error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("bytesize: ")
	b.WriteString(e.Op)
	for _, o := range e.Operands {
		fmt.Fprintf(&b, " %d", int64(o))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *OpError) Unwrap() error { return e.Err }

func opError(op string, err error, operands ...ByteSize) error {
	return &OpError{Op: op, Operands: operands, Err: err}
}

// Must returns b, or panics if err is non-nil. It is meant for wrapping
// checked operations whose failure is a program error.
//
//	total := bytesize.Must(a.AddChecked(b))
func Must(b ByteSize, err error) ByteSize {
	if err != nil {
		panic(err)
	}
	return b
}
