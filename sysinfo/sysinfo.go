// Package sysinfo reports filesystem and memory capacities as byte sizes.
//
// Block and page counts from the kernel are unsigned, so every conversion and
// scaling step is checked; a count that does not fit a ByteSize is reported
// as an error wrapping bytesize.ErrOverflow.
package sysinfo

import (
	"errors"

	"github.com/heistp/bytesize"
	"go.uber.org/multierr"
)

// ErrUnsupported is returned on platforms without the needed system calls.
var ErrUnsupported = errors.New("sysinfo: unsupported platform")

// FSUsage is the capacity of one filesystem.
type FSUsage struct {
	// Path is the path that was queried.
	Path string

	// BlockSize is the fundamental block size.
	BlockSize bytesize.ByteSize

	// Total is the size of the filesystem.
	Total bytesize.ByteSize

	// Free is the free space, including space reserved for root.
	Free bytesize.ByteSize

	// Avail is the space available to unprivileged users.
	Avail bytesize.ByteSize
}

// Used returns Total - Free.
func (u FSUsage) Used() (bytesize.ByteSize, error) {
	return u.Total.SubChecked(u.Free)
}

// MemUsage is system memory and swap.
type MemUsage struct {
	Total     bytesize.ByteSize
	Free      bytesize.ByteSize
	Shared    bytesize.ByteSize
	Buffer    bytesize.ByteSize
	SwapTotal bytesize.ByteSize
	SwapFree  bytesize.ByteSize
}

// Used returns Total - Free.
func (m MemUsage) Used() (bytesize.ByteSize, error) {
	return m.Total.SubChecked(m.Free)
}

// Filesystems queries each path in turn. Paths that fail are left out of
// the result and their errors are combined.
func Filesystems(paths ...string) (us []FSUsage, err error) {
	for _, p := range paths {
		u, ferr := Filesystem(p)
		if ferr != nil {
			err = multierr.Append(err, ferr)
			continue
		}
		us = append(us, u)
	}
	return
}

// scale returns n units of size unit.
func scale(n, unit uint64) (bytesize.ByteSize, error) {
	b, err := bytesize.FromUint64(n)
	if err != nil {
		return 0, err
	}
	u, err := bytesize.FromUint64(unit)
	if err != nil {
		return 0, err
	}
	return b.MulChecked(u)
}
