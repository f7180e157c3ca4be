// Command timsort sorts, generates and benchmarks sequences of values with
// the adaptive merge sort of github.com/exascience/timsort/sort.
//
//	timsort sort [--numeric] [--reverse] [--stats] < values.txt
//	timsort gen --kind sawtooth --n 1000 --seed 7
//	timsort bench --kind random --n 100000 --trials 16
package main

import (
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "timsort",
		Short:         "Sort, generate and benchmark sequences with an adaptive merge sort",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSortCommand(),
		newGenCommand(),
		newBenchCommand(),
	)
	return root
}

func newLogger(w io.Writer, at string) *logger.Logger {
	return logger.NewWriter("ns=timsort", w).At(at)
}
