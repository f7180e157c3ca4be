package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/exascience/timsort/gen"
)

type genOptions struct {
	kind kindValue
	n    int
	seed uint64
}

func newGenCommand() *cobra.Command {
	opts := genOptions{kind: kindValue(gen.Random), n: 100, seed: 1}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated sequence of integers, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	fs := cmd.Flags()
	fs.Var(&opts.kind, "kind", "shape of the sequence: random, normal, sorted, reversed, sawtooth, few-unique, organ-pipe, two-runs")
	fs.IntVar(&opts.n, "n", opts.n, "number of values")
	fs.Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	return cmd
}

func runGen(out, errOut io.Writer, opts genOptions) error {
	log := newLogger(errOut, "gen")

	if opts.n < 0 {
		return errors.WithStack(log.Errorf("invalid length: %d", opts.n))
	}

	w := bufio.NewWriter(out)
	for _, v := range gen.Ints(gen.Kind(opts.kind), opts.n, opts.seed) {
		fmt.Fprintln(w, v)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(log.Error(errors.Wrap(err, "write output")))
	}
	return nil
}
