//go:build !unix

package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

func (h *Host) Kernel() (name, release string, err error) {
	release, err = host.KernelVersion()
	if err != nil {
		return displayName(runtime.GOOS), "", fmt.Errorf("failed to get kernel version: %w", err)
	}
	return displayName(runtime.GOOS), release, nil
}
