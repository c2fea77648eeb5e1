package system

import (
	"bufio"
	"io"
	"strings"
)

const prettyNameKey = "PRETTY_NAME"

// ResolveOSIdentity returns a human readable OS name: the distribution
// pretty name on Linux, "Windows <version>" on Windows and the kernel name
// elsewhere.
func ResolveOSIdentity(p Platform) string {
	switch p.GOOS() {
	case "linux", "android":
		return linuxPrettyName(p)
	case "windows":
		version, err := p.PlatformVersion()
		if err != nil || version == "" {
			fallback("os", err, "Windows")
			return "Windows"
		}
		return "Windows " + version
	default:
		name, _, err := p.Kernel()
		if err != nil || name == "" {
			name = displayName(p.GOOS())
			fallback("os", err, name)
		}
		return name
	}
}

func linuxPrettyName(p Platform) string {
	desc, err := p.OSRelease()
	if err == nil {
		if name, ok := desc[prettyNameKey]; ok {
			return name
		}
		fallback("os", nil, Unknown)
		return Unknown
	}
	logger.Debug("os-release descriptor unavailable, scanning file", "err", err)

	f, err := p.OSReleaseFile()
	if err != nil {
		fallback("os", err, UnknownLinux)
		return UnknownLinux
	}
	defer f.Close()

	if name, ok := ParsePrettyName(f); ok {
		return name
	}
	fallback("os", nil, UnknownLinux)
	return UnknownLinux
}

// ParsePrettyName scans os-release formatted text for a line whose key is
// exactly PRETTY_NAME and returns its unquoted value.
func ParsePrettyName(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !found || key != prettyNameKey {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"'`), true
	}
	return "", false
}

// displayName maps a GOOS value to the name the kernel usually reports
func displayName(goos string) string {
	switch goos {
	case "linux", "android":
		return "Linux"
	case "darwin", "ios":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "solaris", "illumos":
		return "SunOS"
	case "aix":
		return "AIX"
	case "plan9":
		return "Plan 9"
	case "":
		return Unknown
	}
	return goos
}
