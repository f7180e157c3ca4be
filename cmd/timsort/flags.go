package main

import (
	"github.com/spf13/pflag"

	"github.com/exascience/timsort"
	"github.com/exascience/timsort/gen"
	"github.com/exascience/timsort/sort"
)

// kindValue lets a gen.Kind be set by name on the command line.
type kindValue gen.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string {
	return gen.Kind(*k).String()
}

func (k *kindValue) Set(s string) error {
	kind, err := gen.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(kind)
	return nil
}

func (k *kindValue) Type() string {
	return "kind"
}

func addTuningFlags(fs *pflag.FlagSet, t *timsort.Tuning) {
	*t = timsort.DefaultTuning()
	fs.IntVar(&t.MinMerge, "min-merge", t.MinMerge, "length below which no merging takes place (power of two)")
	fs.IntVar(&t.MinGallop, "min-gallop", t.MinGallop, "consecutive wins before a merge starts galloping")
}

// tuningOption validates t and turns it into a sort option.
func tuningOption(t timsort.Tuning) (sort.Option, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return sort.WithTuning(t), nil
}
