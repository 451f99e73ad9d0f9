package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JosephHickey1/halfwell/internal/schrod"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Params   schrod.Params
	Energies []float64
	Workers  int
}

// NewScanCommand creates the scan command: one trajectory per trial
// energy, integrated on a shared-nothing worker pool.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts, Params: schrod.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "scan [--energy <eV> ...]",
		Short: "Integrate several trial energies and tabulate their tails",
		Long: `Integrate one wavefunction per trial energy and print a table of tail
values. Energies whose wavefunction returns toward zero at the far edge of
the grid are eigenenergy candidates; the rest diverge.

Defaults to the four documented energies of the linear well
(3.6435, 6.3703, 8.6027, 10.5757 eV).

Example:
  halfwell scan
  halfwell scan --energy 3.6 --energy 3.65 --energy 3.7 --dx 0.0001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, cmd)
		},
	}

	addGridFlags(cmd, &opts.Params)
	cmd.Flags().Float64SliceVar(&opts.Energies, "energy", schrod.DefaultEnergies, "trial energy in eV (repeatable)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent integrations (0 = one per CPU)")

	return cmd
}

func runScan(opts *ScanOptions, cmd *cobra.Command) error {
	slog.Debug("scanning",
		"energies", len(opts.Energies),
		"gamma", opts.Params.Gamma,
		"workers", opts.Workers,
	)

	results, err := schrod.Scan(cmd.Context(), opts.Params, opts.Energies, opts.Workers)
	if err != nil {
		return err
	}
	writeScanTable(cmd.OutOrStdout(), results)
	return nil
}
