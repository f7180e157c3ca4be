package sort

import "fmt"

// Stats describes the work done by a single sort. See WithStats.
type Stats struct {
	// MinRun is the minimum run length used. For sequences shorter
	// than the MinMerge tuning constant, it is the sequence length.
	MinRun int

	// Runs is the number of runs pushed onto the run stack, after
	// extension to MinRun.
	Runs int

	// Reversals is the number of strictly descending runs that were
	// reversed in place.
	Reversals int

	// Comparisons is the number of times the comparison function was
	// invoked.
	Comparisons int

	// Merges is the number of merges of two adjacent runs.
	Merges int

	// GallopRounds is the number of times a merge switched to
	// galloping mode.
	GallopRounds int

	// MaxStackDepth is the largest number of runs pending on the run
	// stack at any time.
	MaxStackDepth int

	// MaxBuffer is the length of the largest temporary merge buffer.
	MaxBuffer int
}

// String formats s as logfmt key/value pairs.
func (s Stats) String() string {
	return fmt.Sprintf(
		"minrun=%d runs=%d reversals=%d comparisons=%d merges=%d gallops=%d depth=%d buffer=%d",
		s.MinRun, s.Runs, s.Reversals, s.Comparisons, s.Merges, s.GallopRounds, s.MaxStackDepth, s.MaxBuffer,
	)
}
