package schrod

import "errors"

// Configuration errors. All of them are reported synchronously, before any
// integration work begins. Numeric divergence of the wavefunction is never
// an error; see the package documentation.
var (
	// ErrFinalPosition indicates a non-positive integration span.
	ErrFinalPosition = errors.New("schrod: final position must be positive")

	// ErrStepSize indicates a non-positive position step.
	ErrStepSize = errors.New("schrod: step size must be positive")

	// ErrExponent indicates a negative potential exponent, for which the
	// potential at x = 0 is undefined.
	ErrExponent = errors.New("schrod: potential exponent must be non-negative")

	// ErrNoEnergies indicates a scan was requested without trial energies.
	ErrNoEnergies = errors.New("schrod: at least one trial energy is required")

	// ErrTooFewSamples indicates a trajectory too short to transform.
	ErrTooFewSamples = errors.New("schrod: at least two samples are required for a momentum density")
)
