package system

import "runtime"

// CollectOptions tunes a collection pass
type CollectOptions struct {
	UserEnv []string
}

// ResolveKernel returns the kernel name and release
func ResolveKernel(p Platform) (name, release string) {
	name, release, err := p.Kernel()
	if err != nil {
		fallback("kernel", err, nil)
	}
	if name == "" {
		name = displayName(p.GOOS())
	}
	if release == "" {
		release = Unknown
	}
	return name, release
}

// ResolveHostname returns the network host name or UnknownHost
func ResolveHostname(p Platform) string {
	name, err := p.Hostname()
	if err != nil || name == "" {
		fallback("hostname", err, UnknownHost)
		return UnknownHost
	}
	return name
}

// Collect runs every resolver once, in report order
func Collect(p Platform, opts CollectOptions) SystemReport {
	var r SystemReport

	r.OSName = ResolveOSIdentity(p)
	r.KernelName, r.KernelRelease = ResolveKernel(p)
	r.Architecture = Architecture()
	r.Machine = runtime.GOARCH
	r.Hostname = ResolveHostname(p)
	r.User = ResolveUser(p, opts.UserEnv)
	r.RuntimeVersion = runtime.Version()
	r.LogicalCores, r.PhysicalCores = ResolveCPUCounts(p)
	r.CPUModel = ResolveCPUModel(p)
	r.RAMGiB = ResolveRAMGiB(p)
	r.Uptime = ResolveUptime(p)

	return r
}
