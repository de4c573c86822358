//go:build !linux

package sysinfo

// Memory returns ErrUnsupported.
func Memory() (MemUsage, error) {
	return MemUsage{}, ErrUnsupported
}
