package schrod

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Trajectory is the result of one integration run: a position grid in Å and
// the wavefunction value at each grid point, paired by index. Both slices
// are freshly allocated per run and never shared or mutated afterwards.
type Trajectory struct {
	Positions []float64
	Psi       []float64
}

// Integrate computes the wavefunction across the grid described by p.
// Configuration is validated before any allocation; a divergent result is
// returned like any other (see the package documentation).
//
// The grid holds ceil(FinalX/StepX) samples at positions i·StepX. Positions
// are generated by index multiplication rather than accumulation so the grid
// length always matches the wavefunction length exactly.
func Integrate(p Params) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Samples()
	t := &Trajectory{
		Positions: make([]float64, n),
		Psi:       make([]float64, n),
	}

	// Boundary conditions: ψ(0) = 0 is the zero value already in Psi[0];
	// the derivative seed ψ'(0) = 1 is an arbitrary non-zero scale.
	dpsi := make([]float64, n)
	dpsi[0] = 1

	for i := 0; i < n-1; i++ {
		t.Psi[i+1], dpsi[i+1] = Step(t.Psi[i], dpsi[i], float64(i)*p.StepX, p.StepX, p.Energy, p.Gamma)
	}
	for i := range t.Positions {
		t.Positions[i] = float64(i) * p.StepX
	}
	return t, nil
}

// Tail returns the wavefunction value at the last grid point. A tail close
// to zero marks the trial energy as an eigenenergy candidate.
func (t *Trajectory) Tail() float64 {
	return t.Psi[len(t.Psi)-1]
}

// MaxAbs returns max |ψ| over the whole run.
func (t *Trajectory) MaxAbs() float64 {
	return floats.Norm(t.Psi, math.Inf(1))
}

// Finite reports whether every wavefunction sample is a finite number.
// False means the trial energy drove the recurrence into overflow.
func (t *Trajectory) Finite() bool {
	for _, v := range t.Psi {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
