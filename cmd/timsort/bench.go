package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/timsort"
	"github.com/exascience/timsort/gen"
	"github.com/exascience/timsort/parallel"
	"github.com/exascience/timsort/sort"
)

type benchOptions struct {
	kind   kindValue
	n      int
	trials int
	seed   uint64
	tuning timsort.Tuning
}

func newBenchCommand() *cobra.Command {
	opts := benchOptions{kind: kindValue(gen.Random), n: 100000, trials: 8, seed: 1}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sort generated sequences and report how much work the sort did",
		Long: "Bench sorts trials sequences of the given kind, each generated from its own\n" +
			"seed, and reports the mean and standard deviation of the number of comparisons,\n" +
			"merges and galloping rounds.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	fs := cmd.Flags()
	fs.Var(&opts.kind, "kind", "shape of the sequences (see gen)")
	fs.IntVar(&opts.n, "n", opts.n, "number of values per sequence")
	fs.IntVar(&opts.trials, "trials", opts.trials, "number of sequences")
	fs.Uint64Var(&opts.seed, "seed", opts.seed, "seed of the first sequence")
	addTuningFlags(fs, &opts.tuning)
	return cmd
}

func runBench(out, errOut io.Writer, opts benchOptions) error {
	log := newLogger(errOut, "bench").Start()

	if opts.n < 0 || opts.trials < 1 {
		return errors.WithStack(log.Errorf("invalid size: n=%d trials=%d", opts.n, opts.trials))
	}
	tuning, err := tuningOption(opts.tuning)
	if err != nil {
		return errors.WithStack(log.Error(err))
	}

	kind := gen.Kind(opts.kind)
	results := make([]sort.Stats, opts.trials)
	parallel.Range(0, opts.trials, 0, func(low, high int) {
		for i := low; i < high; i++ {
			x := gen.Ints(kind, opts.n, opts.seed+uint64(i))
			sort.Ints(x, tuning, sort.WithStats(&results[i]))
			if !sort.IntsAreSorted(x) {
				panic(fmt.Sprintf("trial %d: result not sorted", i))
			}
		}
	})

	comparisons := make([]float64, len(results))
	merges := make([]float64, len(results))
	gallops := make([]float64, len(results))
	for i, r := range results {
		comparisons[i] = float64(r.Comparisons)
		merges[i] = float64(r.Merges)
		gallops[i] = float64(r.GallopRounds)
	}

	fmt.Fprintf(out, "kind=%s n=%d trials=%d minrun=%d\n", kind, opts.n, opts.trials, results[0].MinRun)
	for _, m := range []struct {
		name   string
		values []float64
	}{
		{"comparisons", comparisons},
		{"merges", merges},
		{"gallops", gallops},
	} {
		mean, std := stat.MeanStdDev(m.values, nil)
		fmt.Fprintf(out, "%-12s mean=%.1f stddev=%.1f\n", m.name, mean, std)
	}

	log.Successf("kind=%s n=%d trials=%d", kind, opts.n, opts.trials)
	return nil
}
