package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/exascience/timsort"
	"github.com/exascience/timsort/sort"
)

// maxLineSize is the longest input line sort accepts.
const maxLineSize = 64 << 20

type sortOptions struct {
	numeric  bool
	reverse  bool
	stats    bool
	parallel bool
	tuning   timsort.Tuning
}

// A line is one input value. Numeric sorts order by number but print
// the original text.
type line struct {
	text  string
	value float64
}

func newSortCommand() *cobra.Command {
	var opts sortOptions
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort the lines of standard input",
		Long: "Sort reads one value per line from standard input, skipping blank lines,\n" +
			"and prints them in ascending order. Equal values keep their input order.\n" +
			"Lines may be up to 64 MiB long.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	fs := cmd.Flags()
	fs.BoolVarP(&opts.numeric, "numeric", "n", false, "compare values as numbers")
	fs.BoolVarP(&opts.reverse, "reverse", "r", false, "sort in descending order")
	fs.BoolVar(&opts.stats, "stats", false, "log what the sort did")
	fs.BoolVar(&opts.parallel, "parallel", false, "use the parallel stable sort")
	addTuningFlags(fs, &opts.tuning)
	return cmd
}

func runSort(in io.Reader, out, errOut io.Writer, opts sortOptions) error {
	log := newLogger(errOut, "sort").Start()

	tuning, err := tuningOption(opts.tuning)
	if err != nil {
		return errors.WithStack(log.Error(err))
	}

	lines, err := readLines(in, opts.numeric)
	if err != nil {
		return errors.WithStack(log.Error(err))
	}

	compare := func(a, b line) int {
		return strings.Compare(a.text, b.text)
	}
	if opts.numeric {
		compare = func(a, b line) int {
			return cmp.Compare(a.value, b.value)
		}
	}
	if opts.reverse {
		ascending := compare
		compare = func(a, b line) int {
			return ascending(b, a)
		}
	}

	var stats sort.Stats
	if opts.parallel {
		sort.ParallelStableFunc(lines, compare, tuning)
	} else {
		sort.StableFunc(lines, compare, tuning, sort.WithStats(&stats))
	}

	w := bufio.NewWriter(out)
	for _, l := range lines {
		fmt.Fprintln(w, l.text)
	}
	if err := w.Flush(); err != nil {
		return errors.WithStack(log.Error(errors.Wrap(err, "write output")))
	}

	if opts.stats && !opts.parallel {
		log.Successf("n=%d %s", len(lines), stats)
	} else {
		log.Successf("n=%d", len(lines))
	}
	return nil
}

func readLines(in io.Reader, numeric bool) ([]line, error) {
	var lines []line
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		l := line{text: text}
		if numeric {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", n)
			}
			l.value = v
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return lines, nil
}
