package schrod

// Step advances the wavefunction and its derivative across one grid cell.
// The local curvature comes from the Schrödinger relation
// ψ'' = K·(V − E)·ψ, then ψ is advanced with a second-order Taylor
// expansion and ψ' with the matching first-order one:
//
//	psiNext  = psi + dx·dpsi + ½·dx²·d2psi
//	dpsiNext = dpsi + dx·d2psi
//
// Pure function of its inputs. Overflow of psi for a non-eigenvalue trial
// energy is expected behavior and propagates as ±Inf.
func Step(psi, dpsi, x, dx, energy, gamma float64) (psiNext, dpsiNext float64) {
	d2psi := MassCoeff * psi * (Potential(x, gamma) - energy)
	psiNext = psi + dx*dpsi + 0.5*dx*dx*d2psi
	dpsiNext = dpsi + dx*d2psi
	return psiNext, dpsiNext
}
