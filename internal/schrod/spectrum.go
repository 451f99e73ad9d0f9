package schrod

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is the discretized momentum-space view of a wavefunction:
// |φ(k)|² sampled on the FFT frequency grid. K follows the FFTFreq
// wraparound convention, [0, +k..., -k...], matching the raw transform
// order so K[j] pairs with Density[j] by index.
type Spectrum struct {
	K       []float64 // wavenumber in Å⁻¹
	Density []float64 // |φ(k)|²
}

// MomentumDensity computes the momentum density of a trajectory via a
// discrete Fourier transform, approximating the continuum transform
// φ(k) = ∫ψ(x)·exp(-ikx) dx by the Riemann sum dx·Σψ(xₘ)·exp(-i·k·xₘ).
// A diverged trajectory transforms like any other; the result is simply
// dominated by the tail (or non-finite), which is itself informative.
func MomentumDensity(t *Trajectory) (*Spectrum, error) {
	n := len(t.Psi)
	if n < 2 || len(t.Positions) != n {
		return nil, ErrTooFewSamples
	}
	dx := t.Positions[1] - t.Positions[0]

	phi := fft.FFTReal(t.Psi)

	s := &Spectrum{
		K:       fftWavenumbers(n, dx),
		Density: make([]float64, n),
	}
	for j, c := range phi {
		re := real(c) * dx
		im := imag(c) * dx
		s.Density[j] = re*re + im*im
	}
	return s, nil
}

// fftWavenumbers builds the k grid for an n-point transform with spacing d,
// k = 2π·freq with freq in FFTFreq order:
// [0, 1, ..., n/2-1, -n/2, ..., -1] / (d·n).
func fftWavenumbers(n int, d float64) []float64 {
	k := make([]float64, n)
	scale := 2 * math.Pi / (float64(n) * d)
	for i := 0; i < n; i++ {
		freq := float64(i)
		if i >= (n+1)/2 {
			freq = float64(i - n)
		}
		k[i] = freq * scale
	}
	return k
}
