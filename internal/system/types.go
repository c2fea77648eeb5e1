package system

import (
	"io"
	"time"
)

// Fallback values substituted when a data source is unavailable
const (
	UnknownUser  = "Unknown User"
	UnknownHost  = "Unknown Host"
	UnknownCPU   = "Unknown CPU"
	UnknownLinux = "Unknown Linux"
	Unknown      = "Unknown"
)

// SystemReport is the result of one collection pass
type SystemReport struct {
	OSName         string
	KernelName     string
	KernelRelease  string
	Architecture   string
	Machine        string
	Hostname       string
	User           string
	RuntimeVersion string
	CPUModel       string
	LogicalCores   int
	PhysicalCores  int
	RAMGiB         float64
	Uptime         Uptime
}

// Uptime is the time elapsed since boot, truncated to whole minutes
type Uptime struct {
	Hours   int
	Minutes int
}

// Platform is the set of host queries the resolvers depend on.
// Host implements it against the running machine.
type Platform interface {
	GOOS() string
	Now() time.Time
	BootTime() (time.Time, error)
	// CPUCounts may return partial values alongside an error
	CPUCounts() (logical, physical int, err error)
	CPUModel() (string, error)
	MemoryTotal() (uint64, error)
	// OSRelease returns the parsed os-release descriptor
	OSRelease() (map[string]string, error)
	// OSReleaseFile opens the raw os-release file, the caller closes it
	OSReleaseFile() (io.ReadCloser, error)
	PlatformVersion() (string, error)
	Kernel() (name, release string, err error)
	Hostname() (string, error)
	SessionUser() (string, error)
	Getenv(key string) string
}
