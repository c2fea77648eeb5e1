//go:build linux

package system

import (
	"fmt"
	"os"
	"strings"
)

// controllingTerminal returns the device stdin is attached to
func controllingTerminal() (string, error) {
	target, err := os.Readlink("/proc/self/fd/0")
	if err != nil {
		return "", fmt.Errorf("failed to resolve stdin: %w", err)
	}
	if !strings.HasPrefix(target, "/dev/tty") && !strings.HasPrefix(target, "/dev/pts/") {
		return "", errNoSession
	}
	return target, nil
}
