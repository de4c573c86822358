package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/heistp/bytesize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checked bool

func init() {
	calcCmd.Flags().BoolVarP(&checked, "checked", "c", false,
		"Fail on overflow instead of wrapping")
}

var calcCmd = &cobra.Command{
	Use:   "calc A OP B | calc OP A",
	Short: "Evaluate one byte size operation",
	Long: "Evaluate one byte size operation on integer operands.\n\n" +
		"Binary operators: " + strings.Join(opNames(binaryOps), " ") + "\n" +
		"Unary operators: " + strings.Join(opNames(unaryOps), " "),
	Example: "  bsize calc 9223372036854775807 + 1\n" +
		"  bsize calc --checked 0x7fffffffffffffff + 1\n" +
		"  bsize calc neg -- -1024",
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		r, err := eval(args, checked)
		if err != nil {
			return err
		}
		logger.Debug("calc", zap.Strings("args", args), zap.Bool("checked", checked),
			zap.Int64("result", r.Int64()))
		fmt.Fprintln(cmd.OutOrStdout(), r.Int64())
		return nil
	},
}

type binaryFunc func(a, b bytesize.ByteSize) (bytesize.ByteSize, error)

type unaryFunc func(a bytesize.ByteSize) (bytesize.ByteSize, error)

// op holds the wrapping and overflow-checked forms of an operator.
type op[F any] struct {
	unchecked F
	checked   F
}

func (o op[F]) get(checked bool) F {
	if checked {
		return o.checked
	}
	return o.unchecked
}

// total adapts an operation that cannot fail.
func total(f func(a, b bytesize.ByteSize) bytesize.ByteSize) binaryFunc {
	return func(a, b bytesize.ByteSize) (bytesize.ByteSize, error) {
		return f(a, b), nil
	}
}

func totalUnary(f func(a bytesize.ByteSize) bytesize.ByteSize) unaryFunc {
	return func(a bytesize.ByteSize) (bytesize.ByteSize, error) {
		return f(a), nil
	}
}

// shift adapts a shift, taking the count from the right operand.
func shift(f func(a bytesize.ByteSize, n int) bytesize.ByteSize) binaryFunc {
	return func(a, b bytesize.ByteSize) (bytesize.ByteSize, error) {
		return f(a, int(b.Int64())), nil
	}
}

func same[F any](f F) op[F] {
	return op[F]{f, f}
}

var binaryOps = map[string]op[binaryFunc]{
	"+":   {total(bytesize.ByteSize.Add), bytesize.ByteSize.AddChecked},
	"-":   {total(bytesize.ByteSize.Sub), bytesize.ByteSize.SubChecked},
	"*":   {total(bytesize.ByteSize.Mul), bytesize.ByteSize.MulChecked},
	"/":   {bytesize.ByteSize.Div, bytesize.ByteSize.DivChecked},
	"%":   {bytesize.ByteSize.Rem, bytesize.ByteSize.RemChecked},
	"&":   same(total(bytesize.ByteSize.And)),
	"|":   same(total(bytesize.ByteSize.Or)),
	"^":   same(total(bytesize.ByteSize.Xor)),
	"<<":  same(shift(bytesize.ByteSize.Shl)),
	">>":  same(shift(bytesize.ByteSize.Shr)),
	">>>": same(shift(bytesize.ByteSize.ShrUnsigned)),
}

var unaryOps = map[string]op[unaryFunc]{
	"neg":  {totalUnary(bytesize.ByteSize.Neg), bytesize.ByteSize.NegChecked},
	"inc":  {totalUnary(bytesize.ByteSize.Inc), bytesize.ByteSize.IncChecked},
	"dec":  {totalUnary(bytesize.ByteSize.Dec), bytesize.ByteSize.DecChecked},
	"not":  same(totalUnary(bytesize.ByteSize.Not)),
	"plus": same(totalUnary(bytesize.ByteSize.Plus)),
}

func opNames[F any](ops map[string]op[F]) []string {
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// eval evaluates "A OP B" or "OP A".
func eval(args []string, checked bool) (r bytesize.ByteSize, err error) {
	switch len(args) {
	case 2:
		o, ok := unaryOps[args[0]]
		if !ok {
			err = fmt.Errorf("unknown unary operator '%s'", args[0])
			return
		}
		var a bytesize.ByteSize
		if a, err = parseOperand(args[1]); err != nil {
			return
		}
		return o.get(checked)(a)
	case 3:
		o, ok := binaryOps[args[1]]
		if !ok {
			err = fmt.Errorf("unknown binary operator '%s'", args[1])
			return
		}
		var a, b bytesize.ByteSize
		if a, err = parseOperand(args[0]); err != nil {
			return
		}
		if b, err = parseOperand(args[2]); err != nil {
			return
		}
		return o.get(checked)(a, b)
	default:
		err = fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
		return
	}
}

// parseOperand parses a plain integer byte count. Base prefixes (0x, 0o, 0b)
// and underscores are accepted.
func parseOperand(s string) (bytesize.ByteSize, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand '%s': %w", s, err)
	}
	return bytesize.FromInt64(v), nil
}
