package system

import (
	"errors"
	"io"
	"strings"
	"time"
)

var errFake = errors.New("fake: unavailable")

// fakePlatform is a scripted Platform. Zero values mean "unavailable"
// wherever the real host could fail.
type fakePlatform struct {
	goos string
	now  time.Time
	tick time.Duration

	boot    time.Time
	bootErr error

	logical, physical int
	cpuErr            error
	model             string
	modelErr          error
	memTotal          uint64
	memErr            error

	osRelease        map[string]string
	osReleaseErr     error
	osReleaseText    string
	osReleaseFileErr error
	fileOpened       bool
	fileClosed       bool

	platformVersion string
	platformErr     error

	kernelName, kernelRelease string
	kernelErr                 error

	hostname    string
	hostnameErr error

	sessionUser string
	sessionErr  error
	env         map[string]string

	calls []string
}

func (f *fakePlatform) record(name string) { f.calls = append(f.calls, name) }

func (f *fakePlatform) GOOS() string { return f.goos }

func (f *fakePlatform) Now() time.Time {
	f.record("Now")
	n := f.now
	f.now = f.now.Add(f.tick)
	return n
}

func (f *fakePlatform) BootTime() (time.Time, error) {
	f.record("BootTime")
	return f.boot, f.bootErr
}

func (f *fakePlatform) CPUCounts() (int, int, error) {
	f.record("CPUCounts")
	return f.logical, f.physical, f.cpuErr
}

func (f *fakePlatform) CPUModel() (string, error) {
	f.record("CPUModel")
	return f.model, f.modelErr
}

func (f *fakePlatform) MemoryTotal() (uint64, error) {
	f.record("MemoryTotal")
	return f.memTotal, f.memErr
}

func (f *fakePlatform) OSRelease() (map[string]string, error) {
	f.record("OSRelease")
	return f.osRelease, f.osReleaseErr
}

func (f *fakePlatform) OSReleaseFile() (io.ReadCloser, error) {
	f.record("OSReleaseFile")
	if f.osReleaseFileErr != nil {
		return nil, f.osReleaseFileErr
	}
	f.fileOpened = true
	return &trackedReader{Reader: strings.NewReader(f.osReleaseText), closed: &f.fileClosed}, nil
}

func (f *fakePlatform) PlatformVersion() (string, error) {
	f.record("PlatformVersion")
	return f.platformVersion, f.platformErr
}

func (f *fakePlatform) Kernel() (string, string, error) {
	f.record("Kernel")
	return f.kernelName, f.kernelRelease, f.kernelErr
}

func (f *fakePlatform) Hostname() (string, error) {
	f.record("Hostname")
	return f.hostname, f.hostnameErr
}

func (f *fakePlatform) SessionUser() (string, error) {
	f.record("SessionUser")
	return f.sessionUser, f.sessionErr
}

func (f *fakePlatform) Getenv(key string) string { return f.env[key] }

type trackedReader struct {
	io.Reader
	closed *bool
}

func (t *trackedReader) Close() error {
	*t.closed = true
	return nil
}

// healthyLinux returns a fake where every query succeeds
func healthyLinux() *fakePlatform {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakePlatform{
		goos:          "linux",
		now:           now,
		boot:          now.Add(-(2*time.Hour + 5*time.Minute + 30*time.Second)),
		logical:       8,
		physical:      4,
		model:         "Intel(R) Core(TM) i7-8565U CPU @ 1.80GHz",
		memTotal:      16 << 30,
		osRelease:     map[string]string{"NAME": "Ubuntu", "PRETTY_NAME": "Ubuntu 22.04 LTS"},
		kernelName:    "Linux",
		kernelRelease: "6.5.0-14-generic",
		hostname:      "buildbox",
		sessionUser:   "alice",
	}
}
