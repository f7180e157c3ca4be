package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/timsort"
	"github.com/exascience/timsort/gen"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSortStrings(t *testing.T) {
	out, errOut, err := execute(t, "pear\napple\n\nfig\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "apple\nfig\npear\n", out)
	assert.Contains(t, errOut, "ns=timsort at=sort state=success n=3")
}

func TestSortNumericIsStable(t *testing.T) {
	in := "10\n2\n2.0\n33\n-1e1\n"

	out, _, err := execute(t, in, "sort", "--numeric")
	require.NoError(t, err)
	assert.Equal(t, "-1e1\n2\n2.0\n10\n33\n", out)

	out, _, err = execute(t, in, "sort", "-n", "-r")
	require.NoError(t, err)
	assert.Equal(t, "33\n10\n2\n2.0\n-1e1\n", out)

	out, _, err = execute(t, in, "sort", "-n", "--parallel")
	require.NoError(t, err)
	assert.Equal(t, "-1e1\n2\n2.0\n10\n33\n", out)
}

func TestSortStats(t *testing.T) {
	var in strings.Builder
	for i := 50; i > 0; i-- {
		in.WriteString(strings.Repeat("x", i))
		in.WriteString("\n")
	}
	out, errOut, err := execute(t, in.String(), "sort", "--stats")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "x\nxx\n"))
	assert.Contains(t, errOut, "runs=1 reversals=1 comparisons=49 merges=0")
}

func TestSortLongLines(t *testing.T) {
	long := strings.Repeat("z", 70000)
	out, _, err := execute(t, long+"\nb\na\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n"+long+"\n", out)
}

func TestSortErrors(t *testing.T) {
	_, errOut, err := execute(t, "1\nten\n", "sort", "--numeric")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, errOut, "state=error")

	_, _, err = execute(t, "b\na\n", "sort", "--min-merge", "48")
	assert.ErrorIs(t, err, timsort.ErrInvalidTuning)

	_, _, err = execute(t, "b\na\n", "sort", "--min-gallop", "0")
	assert.ErrorIs(t, err, timsort.ErrInvalidTuning)

	_, _, err = execute(t, "", "sort", "extra")
	assert.Error(t, err)
}

func TestGen(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--kind", "reversed", "--n", "5")
	require.NoError(t, err)
	assert.Equal(t, "4\n3\n2\n1\n0\n", out)

	a, _, err := execute(t, "", "gen", "--kind", "sawtooth", "--n", "200", "--seed", "3")
	require.NoError(t, err)
	b, _, err := execute(t, "", "gen", "--kind", "sawtooth", "--n", "200", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 200)

	_, _, err = execute(t, "", "gen", "--kind", "bogo")
	assert.ErrorContains(t, err, gen.ErrUnknownKind.Error())

	_, _, err = execute(t, "", "gen", "--n=-1")
	assert.Error(t, err)
}

func TestGenThenSort(t *testing.T) {
	generated, _, err := execute(t, "", "gen", "--kind", "few-unique", "--n", "300")
	require.NoError(t, err)
	out, _, err := execute(t, generated, "sort", "-n", "--min-merge", "16", "--min-gallop", "2")
	require.NoError(t, err)

	values := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, values, 300)
	for i := 1; i < len(values); i++ {
		require.LessOrEqual(t, values[i-1], values[i])
	}
}

func TestBench(t *testing.T) {
	out, errOut, err := execute(t, "", "bench", "--kind", "two-runs", "--n", "1000", "--trials", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "kind=two-runs n=1000 trials=3 minrun=63")
	assert.Contains(t, out, "merges       mean=1.0 stddev=0.0")
	assert.Contains(t, errOut, "ns=timsort at=bench")
	assert.Contains(t, errOut, "state=success")

	_, _, err = execute(t, "", "bench", "--trials", "0")
	assert.Error(t, err)
}
