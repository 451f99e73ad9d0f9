package schrod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep_ZeroCurvatureAtNode(t *testing.T) {
	// At a node ψ = 0 the curvature K·ψ·(V−E) vanishes regardless of the
	// potential or energy, so the step reduces to psiNext = h·ψ' and an
	// unchanged derivative. This is a closed-form check of the recurrence.
	for _, h := range []float64{1, 0.01, 1e-5} {
		for _, energy := range []float64{0, 3.6435, -7} {
			psiNext, dpsiNext := Step(0, 1, 0, h, energy, 1)
			assert.Equal(t, h, psiNext, "h=%v E=%v", h, energy)
			assert.Equal(t, 1.0, dpsiNext, "h=%v E=%v", h, energy)
		}
	}
}

func TestStep_HandComputed(t *testing.T) {
	// ψ=1, ψ'=1 at x=1 with dx=1, E=0, γ=1:
	//   d2psi    = 0.26426·1·(1−0)       = 0.26426
	//   psiNext  = 1 + 1 + 0.5·0.26426   = 2.13213
	//   dpsiNext = 1 + 0.26426           = 1.26426
	psiNext, dpsiNext := Step(1, 1, 1, 1, 0, 1)
	assert.InDelta(t, 2.13213, psiNext, 1e-12)
	assert.InDelta(t, 1.26426, dpsiNext, 1e-12)
}

func TestStep_Deterministic(t *testing.T) {
	p1, d1 := Step(0.3, -0.7, 2.5, 1e-4, 6.3703, 2)
	p2, d2 := Step(0.3, -0.7, 2.5, 1e-4, 6.3703, 2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, d1, d2)
}
