package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/zero100/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	// Flag variables are package state; start every command from the defaults.
	cfg = config.Default()
	tableName, aggName, verbose, compareRows = "", "sum", false, 100

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_RunSum(t *testing.T) {
	out, err := execute(t, "run", "--table", "zero100", "--agg", "sum")
	require.NoError(t, err)
	assert.Equal(t, "(4950)\n(1 rows)\n", out)
}

func TestCLI_ExplainSum(t *testing.T) {
	out, err := execute(t, "explain", "--table", "zero100", "--agg", "sum")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom Scan (Zero100Sum)")
	assert.Contains(t, out, "->: SIMD ON zero100")
}

func TestCLI_RegularTable(t *testing.T) {
	out, err := execute(t, "explain", "--table", "numbers", "--agg", "sum")
	require.NoError(t, err)
	assert.NotContains(t, out, "Custom Scan")

	out, err = execute(t, "run", "--table", "numbers", "--agg", "sum", "--numbers", "10")
	require.NoError(t, err)
	assert.Equal(t, "(45)\n(1 rows)\n", out)
}

func TestCLI_UnknownAggregate(t *testing.T) {
	_, err := execute(t, "run", "--agg", "avg")
	assert.ErrorContains(t, err, "unknown aggregate")
}

func TestCLI_ScanRegularTable(t *testing.T) {
	out, err := execute(t, "run", "--table", "numbers", "--agg", "none", "--numbers", "3")
	require.NoError(t, err)
	assert.Equal(t, "(0)\n(1)\n(2)\n(3 rows)\n", out)

	out, err = execute(t, "explain", "--table", "numbers", "--agg", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "SeqScan: TableOID(2)")
}

func TestCLI_ZeroTableDefaultsQueryTable(t *testing.T) {
	out, err := execute(t, "run", "--zero-table", "foo", "--capacity", "10")
	require.NoError(t, err)
	assert.Equal(t, "(45)\n(1 rows)\n", out)

	out, err = execute(t, "explain", "--zero-table", "foo")
	require.NoError(t, err)
	assert.Contains(t, out, "->: SIMD ON foo")
}
