//go:build !linux && !darwin && !freebsd

package sysinfo

// Filesystem returns ErrUnsupported.
func Filesystem(path string) (FSUsage, error) {
	return FSUsage{}, ErrUnsupported
}
