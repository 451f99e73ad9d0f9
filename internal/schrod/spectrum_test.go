package schrod

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampledTrajectory(n int, dx float64, f func(x float64) float64) *Trajectory {
	t := &Trajectory{
		Positions: make([]float64, n),
		Psi:       make([]float64, n),
	}
	for i := 0; i < n; i++ {
		t.Positions[i] = float64(i) * dx
		t.Psi[i] = f(t.Positions[i])
	}
	return t
}

func TestMomentumDensity_ConstantSignal(t *testing.T) {
	// A constant ψ transforms into a pure zero-momentum spike:
	// φ(0) = dx·n·c, every other bin zero.
	const (
		n  = 8
		dx = 0.5
		c  = 0.5
	)
	tr := sampledTrajectory(n, dx, func(float64) float64 { return c })

	s, err := MomentumDensity(tr)
	require.NoError(t, err)
	require.Len(t, s.K, n)
	require.Len(t, s.Density, n)

	want := dx * n * c
	assert.InDelta(t, want*want, s.Density[0], 1e-9)
	for j := 1; j < n; j++ {
		assert.InDelta(t, 0, s.Density[j], 1e-9, "bin %d", j)
	}
}

func TestMomentumDensity_SingleModeCosine(t *testing.T) {
	// cos(2πx/(n·dx)) occupies exactly the ±1 frequency bins with
	// amplitude n/2 each.
	const (
		n  = 16
		dx = 1.0
	)
	tr := sampledTrajectory(n, dx, func(x float64) float64 {
		return math.Cos(2 * math.Pi * x / (n * dx))
	})

	s, err := MomentumDensity(tr)
	require.NoError(t, err)

	want := float64(n) / 2 * dx
	assert.InDelta(t, want*want, s.Density[1], 1e-9)
	assert.InDelta(t, want*want, s.Density[n-1], 1e-9)
	for j := 2; j < n-1; j++ {
		assert.InDelta(t, 0, s.Density[j], 1e-9, "bin %d", j)
	}
}

func TestMomentumDensity_WavenumberGrid(t *testing.T) {
	const (
		n  = 8
		dx = 0.5
	)
	tr := sampledTrajectory(n, dx, func(x float64) float64 { return x })

	s, err := MomentumDensity(tr)
	require.NoError(t, err)

	// FFTFreq wraparound order: [0, 1, 2, 3, -4, -3, -2, -1]·2π/(n·dx).
	scale := 2 * math.Pi / (n * dx)
	wantFreqs := []float64{0, 1, 2, 3, -4, -3, -2, -1}
	for j, f := range wantFreqs {
		assert.InDelta(t, f*scale, s.K[j], 1e-12, "bin %d", j)
	}
}

func TestMomentumDensity_RealInputSymmetry(t *testing.T) {
	// ψ is real, so the density must be symmetric between +k and −k bins.
	tr := sampledTrajectory(32, 0.25, func(x float64) float64 {
		return math.Exp(-x) * math.Sin(3*x)
	})

	s, err := MomentumDensity(tr)
	require.NoError(t, err)
	n := len(s.Density)
	for j := 1; j < n; j++ {
		assert.InDelta(t, s.Density[j], s.Density[n-j], 1e-9, "bin %d", j)
	}
}

func TestMomentumDensity_TooFewSamples(t *testing.T) {
	tr := &Trajectory{Positions: []float64{0}, Psi: []float64{0}}
	_, err := MomentumDensity(tr)
	assert.ErrorIs(t, err, ErrTooFewSamples)
}
