//go:build unix

package osaccess

import "golang.org/x/sys/unix"

const (
	modeExists  = unix.F_OK
	modeRead    = unix.R_OK
	modeWrite   = unix.W_OK
	modeExecute = unix.X_OK
)

// access asks the kernel whether the real user may access path in the given mode.
func access(path string, mode uint32) bool {
	return unix.Access(path, mode) == nil
}
