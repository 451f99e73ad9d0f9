package schrod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotential_PowerLaw(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		gamma float64
		want  float64
	}{
		{"linear well", 3, 1, 3},
		{"linear well fractional position", 0.25, 1, 0.25},
		{"quadratic well", 3, 2, 9},
		{"cubic well", 2, 3, 8},
		{"square root well", 4, 0.5, 2},
		{"flat well", 7, 0, 1},
		{"origin linear", 0, 1, 0},
		{"origin quadratic", 0, 2, 0},
		{"origin flat", 0, 0, 1}, // 0^0 = 1, matching the reference
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Potential(tt.x, tt.gamma))
		})
	}
}

func TestPotential_InfiniteWall(t *testing.T) {
	// Any negative position must read as an enormous (but finite)
	// potential for every well shape, including the flat well where a
	// plain sentinel-position substitution would give 1e6^0 = 1.
	for _, gamma := range []float64{0, 1, 2, 3} {
		for _, x := range []float64{-1e-9, -0.5, -1, -42} {
			v := Potential(x, gamma)
			assert.GreaterOrEqual(t, v, 1e5, "gamma=%v x=%v", gamma, x)
			assert.False(t, v > 1e300, "wall must stay far from overflow, gamma=%v x=%v", gamma, x)
		}
	}
}

func TestPotential_WallMatchesSentinelForLinearWell(t *testing.T) {
	// For the linear well the wall value is exactly the position sentinel.
	assert.Equal(t, WallSentinel, Potential(-1, 1))
}
