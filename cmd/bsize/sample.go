package main

import (
	"fmt"

	"github.com/heistp/bytesize"
	"github.com/heistp/bytesize/pretty"
	"github.com/heistp/bytesize/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var DefaultLenP5 = 64 * bytesize.Kibibyte

var DefaultLenP95 = 2 * bytesize.Mebibyte

var DefaultSamples = 10000

var (
	lenP5   int64
	lenP95  int64
	samples int
	list    bool
)

func init() {
	f := sampleCmd.Flags()
	f.Int64Var(&lenP5, "p5", DefaultLenP5.Int64(),
		"5th percentile of the lognormal size distribution, in bytes")
	f.Int64Var(&lenP95, "p95", DefaultLenP95.Int64(),
		"95th percentile of the lognormal size distribution, in bytes")
	f.IntVarP(&samples, "count", "n", DefaultSamples, "Number of sizes to draw")
	f.BoolVarP(&list, "list", "l", false, "Print every drawn size")
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw lognormal sizes and summarize them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if samples <= 0 {
			return fmt.Errorf("count must be positive, got %d", samples)
		}
		d, err := stats.NewLogNormal(bytesize.FromInt64(lenP5),
			bytesize.FromInt64(lenP95))
		if err != nil {
			return err
		}
		xs := stats.Sample(d, samples)
		logger.Debug("sampled", zap.Int("count", len(xs)),
			zap.Int64("mean", d.Mean().Int64()))

		w := cmd.OutOrStdout()
		pretty.UnderlineDouble(w, "Distribution")
		tw := pretty.NewTableWriterIndent(w, "  ")
		tw.Printf("P5:\t%d", d.Quantile(0.05))
		tw.Printf("Median:\t%d", d.Quantile(0.5))
		tw.Printf("Mean:\t%d", d.Mean())
		tw.Printf("P95:\t%d", d.Quantile(0.95))
		if err = tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)

		s, err := stats.Analyze(xs)
		if err != nil {
			return err
		}
		pretty.Underline(w, "Sample of %d", len(xs))
		s.Emit(w)
		if list {
			fmt.Fprintln(w)
			pretty.Underline(w, "Sizes")
			fmt.Fprintln(w, pretty.JoinSizes(xs, " "))
		}
		return nil
	},
}
