//go:build linux || darwin || freebsd

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Filesystem returns the capacity of the filesystem containing path.
func Filesystem(path string) (u FSUsage, err error) {
	var st unix.Statfs_t
	if err = unix.Statfs(path, &st); err != nil {
		err = fmt.Errorf("statfs %s: %w", path, err)
		return
	}
	bsize := uint64(st.Bsize)
	u.Path = path
	if u.BlockSize, err = scale(bsize, 1); err != nil {
		return
	}
	if u.Total, err = scale(uint64(st.Blocks), bsize); err != nil {
		return
	}
	if u.Free, err = scale(uint64(st.Bfree), bsize); err != nil {
		return
	}
	if u.Avail, err = scale(uint64(st.Bavail), bsize); err != nil {
		return
	}
	return
}
