//go:build linux

package sysinfo

import (
	"fmt"

	"github.com/heistp/bytesize"
	"golang.org/x/sys/unix"
)

// Memory returns the system memory and swap sizes.
func Memory() (m MemUsage, err error) {
	var si unix.Sysinfo_t
	if err = unix.Sysinfo(&si); err != nil {
		err = fmt.Errorf("sysinfo: %w", err)
		return
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	fields := []struct {
		dst *bytesize.ByteSize
		n   uint64
	}{
		{&m.Total, uint64(si.Totalram)},
		{&m.Free, uint64(si.Freeram)},
		{&m.Shared, uint64(si.Sharedram)},
		{&m.Buffer, uint64(si.Bufferram)},
		{&m.SwapTotal, uint64(si.Totalswap)},
		{&m.SwapFree, uint64(si.Freeswap)},
	}
	for _, f := range fields {
		if *f.dst, err = scale(f.n, unit); err != nil {
			return
		}
	}
	return
}
