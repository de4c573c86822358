package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFilesystem(t *testing.T) {
	u, err := Filesystem("/")
	require.NoError(t, err)
	assert.Equal(t, "/", u.Path)
	assert.Positive(t, u.BlockSize)
	assert.Positive(t, u.Total)
	assert.LessOrEqual(t, u.Free, u.Total)
	assert.LessOrEqual(t, u.Avail, u.Free)

	used, err := u.Used()
	require.NoError(t, err)
	assert.Equal(t, u.Total-u.Free, used)
}

func TestFilesystems(t *testing.T) {
	us, err := Filesystems("/", "/does/not/exist", "/also/missing")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	require.Len(t, us, 1)
	assert.Equal(t, "/", us[0].Path)
}

func TestMemory(t *testing.T) {
	m, err := Memory()
	require.NoError(t, err)
	assert.Positive(t, m.Total)
	assert.LessOrEqual(t, m.Free, m.Total)
	assert.LessOrEqual(t, m.SwapFree, m.SwapTotal)
}
