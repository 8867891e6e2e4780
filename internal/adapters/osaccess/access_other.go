//go:build !unix

package osaccess

import "os"

const (
	modeExists uint32 = iota
	modeRead
	modeWrite
	modeExecute
)

// access approximates access(2) from permission bits where the platform has no
// such call. Only the owner bits are consulted.
func access(path string, mode uint32) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	perm := info.Mode().Perm()
	switch mode {
	case modeRead:
		return perm&0o400 != 0
	case modeWrite:
		return perm&0o200 != 0
	case modeExecute:
		return perm&0o100 != 0 || info.IsDir()
	}
	return true
}
