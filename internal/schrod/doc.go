// Package schrod integrates the one-dimensional time-independent Schrödinger
// equation for a particle in a half-infinite power-law potential well:
//
//	V(x) = ∞        for x < 0
//	V(x) = α·x^γ    for x ≥ 0
//
// The wavefunction is advanced from x = 0 with a second-order Taylor
// expansion, using the Schrödinger relation for the local curvature:
//
//	ψ''(x)    = K·(V(x) − E)·ψ(x)
//	ψ(x+Δx)   = ψ(x) + ψ'(x)·Δx + ψ''(x)·Δx²/2
//	ψ'(x+Δx)  = ψ'(x) + ψ''(x)·Δx
//
// with boundary conditions ψ(0) = 0 and ψ'(0) = 1.
//
// For almost every trial energy E the integrated wavefunction diverges at
// large x; only eigenenergies produce a tail that decays toward zero. The
// divergence is the diagnostic signal this package exists to expose, so a
// wavefunction that overflows to ±Inf is an ordinary result, not an error.
// Only degenerate configuration (non-positive span or step, negative
// exponent) is rejected, and always before any computation starts.
package schrod
