package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleList(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sample", "-n", "5", "--list", "--p5", "1024", "--p95", "4096"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		list = false
		samples = DefaultSamples
		lenP5, lenP95 = DefaultLenP5.Int64(), DefaultLenP95.Int64()
	})
	require.NoError(t, rootCmd.Execute())

	s := out.String()
	assert.Contains(t, s, "  P5:")
	assert.Contains(t, s, "Count:   5\n")

	_, sizes, ok := strings.Cut(s, "Sizes\n-----\n")
	require.True(t, ok, s)
	fields := strings.Fields(sizes)
	require.Len(t, fields, 5)
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		require.NoError(t, err)
		assert.Positive(t, v)
	}
}
