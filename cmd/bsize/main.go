package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool

	// logger is set once flags are parsed.
	logger *zap.Logger

	rootCmd = &cobra.Command{
		Use:           "bsize",
		Short:         "Byte size arithmetic and capacity reports",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err = newLogger(verbose)
			return
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level")
	rootCmd.AddCommand(calcCmd, dfCmd, memCmd, sampleCmd)
}

// newLogger returns a console logger, at debug level if verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	err := rootCmd.Execute()
	if logger == nil {
		var lerr error
		if logger, lerr = newLogger(verbose); lerr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", lerr)
			os.Exit(1)
		}
	}
	if err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
