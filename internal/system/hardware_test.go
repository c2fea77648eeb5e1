package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGiB(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  float64
	}{
		{0, 0},
		{8 << 30, 8.0},
		{1536 << 20, 1.5},
		{16_654_000_000, 15.51},
		{1 << 20, 0.0},
		{5 << 20, 0.0},
		{6 << 20, 0.01},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GiB(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestResolveRAMGiB(t *testing.T) {
	assert.Equal(t, 8.0, ResolveRAMGiB(&fakePlatform{memTotal: 8 << 30}))
	assert.Equal(t, 0.0, ResolveRAMGiB(&fakePlatform{memErr: errFake}))
}

func TestResolveCPUCounts(t *testing.T) {
	logical, physical := ResolveCPUCounts(&fakePlatform{logical: 16, physical: 8})
	assert.Equal(t, 16, logical)
	assert.Equal(t, 8, physical)

	logical, physical = ResolveCPUCounts(&fakePlatform{logical: 4, cpuErr: errFake})
	assert.Equal(t, 4, logical)
	assert.Equal(t, 0, physical)

	logical, physical = ResolveCPUCounts(&fakePlatform{physical: -1, cpuErr: errFake})
	assert.Equal(t, max(runtime.NumCPU(), 1), logical)
	assert.Equal(t, 0, physical)
}

func TestResolveCPUModel(t *testing.T) {
	assert.Equal(t, "AMD Ryzen 7 5800X", ResolveCPUModel(&fakePlatform{model: "AMD Ryzen 7 5800X"}))
	assert.Equal(t, UnknownCPU, ResolveCPUModel(&fakePlatform{modelErr: errFake}))
	assert.Equal(t, UnknownCPU, ResolveCPUModel(&fakePlatform{}))
}

func TestArchitecture(t *testing.T) {
	assert.Regexp(t, `^(32|64)bit$`, Architecture())
}

func TestFloat2string(t *testing.T) {
	assert.Equal(t, "8.00", Float2string(8, 2))
	assert.Equal(t, "15.51", Float2string(15.51, 2))
}
