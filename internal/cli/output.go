package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/JosephHickey1/halfwell/internal/schrod"
)

// writeSummary prints the one-run report: grid size, tail value, overall
// magnitude and the tail verdict.
func writeSummary(w io.Writer, p schrod.Params, t *schrod.Trajectory) {
	r := scanResult(p, t)
	fmt.Fprintf(w, "samples: %d\n", len(t.Psi))
	fmt.Fprintf(w, "psi(xf): %.6e\n", r.Tail)
	fmt.Fprintf(w, "max |psi|: %.6e\n", r.MaxAbs)
	fmt.Fprintf(w, "verdict: %s\n", r.Verdict())
}

// writeScanTable prints one row per trial energy, in scan order.
func writeScanTable(w io.Writer, results []schrod.ScanResult) {
	fmt.Fprintf(w, "%-12s %-14s %-14s %s\n", "ENERGY (eV)", "PSI(XF)", "MAX |PSI|", "VERDICT")
	for _, r := range results {
		fmt.Fprintf(w, "%-12g %-14s %-14s %s\n",
			r.Energy,
			fmt.Sprintf("%.6e", r.Tail),
			fmt.Sprintf("%.6e", r.MaxAbs),
			r.Verdict(),
		)
	}
}

// writeTrajectoryCSV writes the (position, ψ) trace as CSV. The header
// comment carries the run parameters so a plot can be titled from the file
// alone; columns are position in Å and ψ(x).
func writeTrajectoryCSV(w io.Writer, p schrod.Params, t *schrod.Trajectory) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# trial energy: %.6f eV; gamma: %g\n", p.Energy, p.Gamma)
	fmt.Fprintln(bw, "position_angstrom,psi")
	for i := range t.Positions {
		fmt.Fprintf(bw, "%.6f,%.6e\n", t.Positions[i], t.Psi[i])
	}
	return bw.Flush()
}

// writeSpectrumCSV writes the momentum density as CSV in FFT bin order.
func writeSpectrumCSV(w io.Writer, p schrod.Params, s *schrod.Spectrum) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# trial energy: %.6f eV; gamma: %g\n", p.Energy, p.Gamma)
	fmt.Fprintln(bw, "wavenumber_inverse_angstrom,momentum_density")
	for i := range s.K {
		fmt.Fprintf(bw, "%.6e,%.6e\n", s.K[i], s.Density[i])
	}
	return bw.Flush()
}

func scanResult(p schrod.Params, t *schrod.Trajectory) schrod.ScanResult {
	return schrod.ScanResult{
		Energy: p.Energy,
		Tail:   t.Tail(),
		MaxAbs: t.MaxAbs(),
		Finite: t.Finite(),
	}
}
