package schrod

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// Verdict classifies how a trial energy behaved over the integration span.
type Verdict string

const (
	// VerdictCandidate marks a tail small enough to suggest an eigenenergy.
	VerdictCandidate Verdict = "candidate"
	// VerdictDiverging marks a tail that grew without returning to zero.
	VerdictDiverging Verdict = "diverging"
	// VerdictInconclusive marks everything in between; try a finer step or
	// a nearby energy.
	VerdictInconclusive Verdict = "inconclusive"
)

// Tail thresholds for classification. Calibrated against the reference
// grid (15 Å, 1e-5 Å, γ = 1): the documented eigenenergies land below 10
// (the ground state keeps the largest residual from its four-digit energy
// truncation) while energies 0.5 eV off blow past 10⁴.
const (
	candidateTail = 10.0
	divergingTail = 1e3
)

// ScanResult summarizes one trajectory of an energy scan.
type ScanResult struct {
	Energy float64 // trial energy in eV
	Tail   float64 // ψ at the last grid point
	MaxAbs float64 // max |ψ| over the run
	Finite bool    // false if the run overflowed
}

// Verdict classifies the result by its tail magnitude.
func (r ScanResult) Verdict() Verdict {
	tail := math.Abs(r.Tail)
	switch {
	case !r.Finite || tail >= divergingTail:
		return VerdictDiverging
	case tail < candidateTail:
		return VerdictCandidate
	default:
		return VerdictInconclusive
	}
}

// Scan integrates one trajectory per trial energy, reusing base for
// everything but the energy. Runs have no data dependency on each other, so
// they are distributed over a shared-nothing worker pool; workers <= 0 uses
// one worker per CPU. Results come back in the order of energies.
//
// The context stops the dispatch of further energies; trajectories already
// in flight run to completion (a single run is bounded and fast).
func Scan(ctx context.Context, base Params, energies []float64, workers int) ([]ScanResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if len(energies) == 0 {
		return nil, ErrNoEnergies
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(energies) {
		workers = len(energies)
	}

	results := make([]ScanResult, len(energies))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := base
				p.Energy = energies[i]
				// Validate already passed for base; the energy cannot
				// invalidate it.
				t, _ := Integrate(p)
				results[i] = ScanResult{
					Energy: p.Energy,
					Tail:   t.Tail(),
					MaxAbs: t.MaxAbs(),
					Finite: t.Finite(),
				}
			}
		}()
	}

	var cancelled error
dispatch:
	for i := range energies {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break dispatch
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	return results, nil
}
