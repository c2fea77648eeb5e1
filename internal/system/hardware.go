package system

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
)

// ResolveCPUCounts returns logical (at least 1) and physical (0 when
// unknown) core counts.
func ResolveCPUCounts(p Platform) (logical, physical int) {
	logical, physical, err := p.CPUCounts()
	if err != nil {
		fallback("cpu_counts", err, nil)
	}
	if logical < 1 {
		logical = runtime.NumCPU()
	}
	if logical < 1 {
		logical = 1
	}
	if physical < 0 {
		physical = 0
	}
	return logical, physical
}

// ResolveCPUModel returns the processor brand string or UnknownCPU
func ResolveCPUModel(p Platform) string {
	model, err := p.CPUModel()
	if err != nil || model == "" {
		fallback("cpu_model", err, UnknownCPU)
		return UnknownCPU
	}
	return model
}

// ResolveRAMGiB returns total physical memory in GiB, rounded to 2 decimals
func ResolveRAMGiB(p Platform) float64 {
	total, err := p.MemoryTotal()
	if err != nil {
		fallback("ram", err, 0)
		return 0
	}
	return GiB(total)
}

// GiB converts bytes to gibibytes rounded half away from zero to 2 decimals
func GiB(bytes uint64) float64 {
	return math.Round(float64(bytes)/(1<<30)*100) / 100
}

// Architecture returns the word size of the running binary, e.g. "64bit"
func Architecture() string {
	return fmt.Sprintf("%dbit", strconv.IntSize)
}

// Float2string converts float to string with specified precision
func Float2string(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
