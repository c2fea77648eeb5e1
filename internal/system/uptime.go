package system

import "math"

// ResolveUptime returns the time since boot. Clock skew is not corrected:
// a boot time in the future yields negative hours.
func ResolveUptime(p Platform) Uptime {
	boot, err := p.BootTime()
	if err != nil {
		fallback("uptime", err, 0)
		return Uptime{}
	}
	return UptimeFromSeconds(p.Now().Sub(boot).Seconds())
}

// UptimeFromSeconds splits elapsed seconds into hours and minutes using
// floor division.
func UptimeFromSeconds(elapsed float64) Uptime {
	hours := math.Floor(elapsed / 3600)
	rem := elapsed - hours*3600
	return Uptime{
		Hours:   int(hours),
		Minutes: int(math.Floor(rem / 60)),
	}
}
