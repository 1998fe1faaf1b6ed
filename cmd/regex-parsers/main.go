// Command regex-parsers checks schema files and runs their parsers over
// lines read from standard input.
//
//	regex-parsers check --schema parsers.yaml
//	regex-parsers parse --schema parsers.yaml --parser animal --format json < input.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "regex-parsers",
		Short: "Check and run regex parser schemas",
		Long: `regex-parsers compiles YAML schemas of regular expression parsers.

A schema names parsers made of patterns whose groups are bound to record
fields. "check" validates a schema; "parse" runs one of its parsers over the
lines of standard input and prints the records it produces.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log matching at debug level")
	root.AddCommand(a.checkCmd(), a.parseCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
