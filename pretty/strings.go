package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heistp/bytesize"
)

var dashes = strings.Repeat("-", 128)

var equals = strings.Repeat("=", 128)

// JoinSizes joins the byte counts of x with sep.
func JoinSizes(x []bytesize.ByteSize, sep string) string {
	strs := make([]string, len(x))
	for i, v := range x {
		strs[i] = strconv.FormatInt(v.Int64(), 10)
	}
	return strings.Join(strs, sep)
}

// Underline writes a line of text followed by a row of dashes.
func Underline(w io.Writer, format string, args ...interface{}) {
	uline(dashes, w, format, args...)
}

// UnderlineDouble writes a line of text followed by a row of equals signs.
func UnderlineDouble(w io.Writer, format string, args ...interface{}) {
	uline(equals, w, format, args...)
}

func uline(chars string, w io.Writer, format string, args ...interface{}) {
	s := strings.TrimSpace(fmt.Sprintf(format, args...))
	fmt.Fprintf(w, "%s\n", s)
	n := len(s)
	if n > len(chars) {
		n = len(chars)
	}
	fmt.Fprintln(w, chars[:n])
}

// Float64 formats f with at most prec decimals, trimming trailing zeros.
func Float64(f float64, prec int) (s string) {
	s = strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return
}

// Percent formats part as a percentage of whole, or "-" if whole is not
// positive.
func Percent(part, whole bytesize.ByteSize, prec int) string {
	if whole <= 0 {
		return "-"
	}
	return Float64(100*float64(part)/float64(whole), prec) + "%"
}
