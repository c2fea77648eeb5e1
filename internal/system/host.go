package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"gopkg.in/ini.v1"
)

var errNoSession = errors.New("no controlling terminal")

// HostOptions configures where Host looks for optional files
type HostOptions struct {
	OSReleasePaths []string
}

// Host queries the machine the process is running on
type Host struct {
	osReleasePaths []string
}

// NewHost returns a Platform backed by the running machine
func NewHost(opts HostOptions) *Host {
	paths := opts.OSReleasePaths
	if len(paths) == 0 {
		paths = []string{"/etc/os-release", "/usr/lib/os-release"}
	}
	return &Host{osReleasePaths: paths}
}

func (h *Host) GOOS() string { return runtime.GOOS }

func (h *Host) Now() time.Time { return time.Now() }

func (h *Host) Getenv(key string) string { return os.Getenv(key) }

// BootTime returns the kernel boot timestamp
func (h *Host) BootTime() (time.Time, error) {
	secs, err := host.BootTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get boot time: %w", err)
	}
	return time.Unix(int64(secs), 0), nil
}

// CPUCounts returns logical and physical core counts. When gopsutil cannot
// tell the physical count, cpuid is asked instead.
func (h *Host) CPUCounts() (logical, physical int, err error) {
	logical, err = cpu.Counts(true)
	if err != nil {
		err = fmt.Errorf("failed to get logical CPU count: %w", err)
	}

	physical, perr := cpu.Counts(false)
	if perr != nil || physical <= 0 {
		physical = cpuid.CPU.PhysicalCores
	}
	return logical, physical, err
}

// CPUModel returns the processor brand string
func (h *Host) CPUModel() (string, error) {
	cpuInfo, err := cpu.Info()
	if err == nil && len(cpuInfo) > 0 && cpuInfo[0].ModelName != "" {
		return strings.TrimSpace(cpuInfo[0].ModelName), nil
	}
	if name := strings.TrimSpace(cpuid.CPU.BrandName); name != "" {
		return name, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get CPU info: %w", err)
	}
	return "", errors.New("no CPU information available")
}

// MemoryTotal returns total physical memory in bytes
func (h *Host) MemoryTotal() (uint64, error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to get memory info: %w", err)
	}
	return memStat.Total, nil
}

// OSRelease parses the first readable os-release file into a key/value map
func (h *Host) OSRelease() (map[string]string, error) {
	var lastErr error
	for _, path := range h.osReleasePaths {
		if _, err := os.Stat(path); err != nil {
			lastErr = err
			continue
		}
		cfg, err := ini.LoadSources(ini.LoadOptions{
			KeyValueDelimiters:        "=",
			IgnoreInlineComment:       true,
			UnescapeValueDoubleQuotes: true,
		}, path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse os-release %s: %w", path, err)
		}
		return cfg.Section(ini.DefaultSection).KeysHash(), nil
	}
	return nil, fmt.Errorf("no os-release descriptor found: %w", lastErr)
}

// OSReleaseFile opens the first os-release file that exists
func (h *Host) OSReleaseFile() (io.ReadCloser, error) {
	var lastErr error
	for _, path := range h.osReleasePaths {
		f, err := os.Open(path)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to open os-release: %w", lastErr)
}

// PlatformVersion returns the OS version string, e.g. the Windows build
func (h *Host) PlatformVersion() (string, error) {
	_, _, version, err := host.PlatformInformation()
	if err != nil {
		return "", fmt.Errorf("failed to get platform info: %w", err)
	}
	return version, nil
}

// Hostname returns the network host name
func (h *Host) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}
	return name, nil
}

// SessionUser returns the user logged in on the controlling terminal of stdin
func (h *Host) SessionUser() (string, error) {
	tty, err := controllingTerminal()
	if err != nil {
		return "", err
	}
	users, err := host.Users()
	if err != nil {
		return "", fmt.Errorf("failed to read login records: %w", err)
	}
	return matchSessionUser(users, tty)
}

// matchSessionUser finds the login record whose terminal is tty
func matchSessionUser(users []host.UserStat, tty string) (string, error) {
	tty = strings.TrimPrefix(tty, "/dev/")
	for _, u := range users {
		if u.User != "" && u.Terminal == tty {
			return u.User, nil
		}
	}
	return "", fmt.Errorf("no login record for terminal %s", tty)
}
