package pretty

import (
	"bytes"
	"testing"

	"github.com/heistp/bytesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64(t *testing.T) {
	assert.Equal(t, "1.5", Float64(1.5, 3))
	assert.Equal(t, "2", Float64(2.0001, 2))
	assert.Equal(t, "100", Float64(100, 0))
	assert.Equal(t, "0", Float64(0, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25%", Percent(bytesize.Kibibyte, 4*bytesize.Kibibyte, 1))
	assert.Equal(t, "33.3%", Percent(1, 3, 1))
	assert.Equal(t, "-", Percent(1, 0, 1))
}

func TestJoinSizes(t *testing.T) {
	got := JoinSizes([]bytesize.ByteSize{1, bytesize.Kibibyte, -3}, ",")
	assert.Equal(t, "1,1024,-3", got)
}

func TestUnderline(t *testing.T) {
	var b bytes.Buffer
	Underline(&b, "  Sizes %d ", 3)
	assert.Equal(t, "Sizes 3\n-------\n", b.String())
}

func TestTableWriter(t *testing.T) {
	var b bytes.Buffer
	tw := NewTableWriterIndent(&b, "  ")
	tw.URow("Path", "Total")
	tw.Row("/", 1024)
	tw.Printf("Note:\t%s", "ok")
	require.NoError(t, tw.Flush())

	want := "" +
		"  Path  Total\n" +
		"  ----  -----\n" +
		"  /     1024\n" +
		"  Note: ok\n"
	assert.Equal(t, want, b.String())
}
