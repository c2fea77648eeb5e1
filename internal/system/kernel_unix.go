//go:build unix

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Kernel returns the uname sysname and release
func (h *Host) Kernel() (name, release string, err error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return "", "", fmt.Errorf("uname failed: %w", err)
	}
	return unix.ByteSliceToString(utsname.Sysname[:]),
		unix.ByteSliceToString(utsname.Release[:]), nil
}
