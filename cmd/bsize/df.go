package main

import (
	"fmt"

	"github.com/heistp/bytesize"
	"github.com/heistp/bytesize/pretty"
	"github.com/heistp/bytesize/sysinfo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var blockSize int64

func init() {
	for _, c := range []*cobra.Command{dfCmd, memCmd} {
		c.Flags().Int64VarP(&blockSize, "block-size", "B", int64(bytesize.Kibibyte),
			"Report sizes in units of this many bytes")
	}
}

var dfCmd = &cobra.Command{
	Use:     "df [PATH...]",
	Short:   "Report filesystem capacity",
	Example: "  bsize df / /home -B 1048576",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if len(args) == 0 {
			args = []string{"/"}
		}
		us, ferr := sysinfo.Filesystems(args...)
		for _, err := range multierr.Errors(ferr) {
			logger.Warn("skipping filesystem", zap.Error(err))
		}
		bs := bytesize.FromInt64(blockSize)
		tw := pretty.NewTableWriter(cmd.OutOrStdout())
		tw.URow("Path", fmt.Sprintf("%d-blocks", blockSize), "Used", "Avail", "Use%")
		for _, u := range us {
			logger.Debug("statfs", zap.String("path", u.Path),
				zap.Int64("blockSize", u.BlockSize.Int64()),
				zap.Int64("total", u.Total.Int64()))
			used, err := u.Used()
			if err != nil {
				return err
			}
			cols, err := inBlocks(bs, u.Total, used, u.Avail)
			if err != nil {
				return err
			}
			tw.Row(u.Path, cols[0], cols[1], cols[2], pretty.Percent(used, u.Total, 0))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(us) == 0 {
			return ferr
		}
		return nil
	},
}

var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Report memory and swap capacity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := sysinfo.Memory()
		if err != nil {
			return err
		}
		used, err := m.Used()
		if err != nil {
			return err
		}
		swapUsed, err := m.SwapTotal.SubChecked(m.SwapFree)
		if err != nil {
			return err
		}
		bs := bytesize.FromInt64(blockSize)
		mem, err := inBlocks(bs, m.Total, used, m.Free, m.Shared, m.Buffer)
		if err != nil {
			return err
		}
		swap, err := inBlocks(bs, m.SwapTotal, swapUsed, m.SwapFree)
		if err != nil {
			return err
		}
		tw := pretty.NewTableWriter(cmd.OutOrStdout())
		tw.URow("", "Total", "Used", "Free", "Shared", "Buffer")
		tw.Row("Mem:", mem[0], mem[1], mem[2], mem[3], mem[4])
		tw.Row("Swap:", swap[0], swap[1], swap[2], "", "")
		return tw.Flush()
	},
}

// inBlocks divides each size by bs. A zero block size is an error.
func inBlocks(bs bytesize.ByteSize, sizes ...bytesize.ByteSize) ([]int64, error) {
	n := make([]int64, len(sizes))
	for i, s := range sizes {
		q, err := s.Div(bs)
		if err != nil {
			return nil, fmt.Errorf("block size %d: %w", bs, err)
		}
		n[i] = q.Int64()
	}
	return n, nil
}
