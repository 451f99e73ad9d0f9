package schrod

import "math"

// Physical constants of the model. These are fixed values, not tunables:
// the mass coefficient bakes 2m/ħ² for an electron into Å⁻²·eV⁻¹ units, and
// the potential strength α is pinned to 1 eV·Å⁻ᵞ so that trial energies map
// directly onto the documented eigenenergies.
const (
	// MassCoeff is 2m/ħ² in inverse-angstrom-squared, inverse-eV units.
	MassCoeff = 0.26426

	// Strength is α, the power-law coefficient of the well in eV·Å⁻ᵞ.
	Strength = 1.0

	// WallSentinel approximates the infinite wall at x < 0 with a large
	// finite value so that V − E arithmetic stays finite and no NaN can
	// leak into the recurrence.
	WallSentinel = 1e6
)

// DefaultEnergies are the four trial energies explored in the reference
// run for the linear well (γ = 1), in eV. Each sits close enough to an
// eigenenergy that the integrated wavefunction returns toward zero at the
// far edge of the default grid instead of blowing up.
var DefaultEnergies = []float64{3.6435, 6.3703, 8.6027, 10.5757}

// Params configures a single integration run.
type Params struct {
	FinalX float64 // integration span end in Å, exclusive
	StepX  float64 // grid spacing in Å
	Energy float64 // trial energy in eV
	Gamma  float64 // power-law exponent γ of the well
}

// DefaultParams returns the reference grid: 15 Å span, 1e-5 Å step,
// linear well. The trial energy is left at zero for the caller to set.
func DefaultParams() Params {
	return Params{FinalX: 15, StepX: 1e-5, Gamma: 1}
}

// Samples returns the grid size ceil(FinalX/StepX). Both output sequences
// of an integration run have exactly this length.
func (p Params) Samples() int {
	return int(math.Ceil(p.FinalX / p.StepX))
}

// Validate rejects degenerate configuration before any integration work.
// A negative exponent is refused because 0^γ is undefined at the origin.
func (p Params) Validate() error {
	if !(p.FinalX > 0) {
		return ErrFinalPosition
	}
	if !(p.StepX > 0) {
		return ErrStepSize
	}
	if p.Gamma < 0 || math.IsNaN(p.Gamma) {
		return ErrExponent
	}
	return nil
}
