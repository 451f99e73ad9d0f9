package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JosephHickey1/halfwell/internal/schrod"
)

// SpectrumOptions holds flags for the spectrum command.
type SpectrumOptions struct {
	*RootOptions
	Params schrod.Params
	Out    string
}

// NewSpectrumCommand creates the spectrum command: the momentum-space
// density of a single integration run.
func NewSpectrumCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpectrumOptions{RootOptions: rootOpts, Params: schrod.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "spectrum --energy <eV>",
		Short: "Compute the momentum density |φ(k)|² of one trial energy",
		Long: `Integrate the wavefunction for one trial energy, Fourier transform it and
write the momentum density |φ(k)|² as CSV. Useful as a second diagnostic
view of an eigenenergy candidate.

Example:
  halfwell spectrum --energy 3.6435 --out k.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpectrum(opts, cmd)
		},
	}

	addGridFlags(cmd, &opts.Params)
	cmd.Flags().Float64Var(&opts.Params.Energy, "energy", 0, "trial energy in eV (required)")
	_ = cmd.MarkFlagRequired("energy")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the spectrum as CSV to this file (default stdout)")

	return cmd
}

func runSpectrum(opts *SpectrumOptions, cmd *cobra.Command) error {
	t, err := schrod.Integrate(opts.Params)
	if err != nil {
		return err
	}
	s, err := schrod.MomentumDensity(t)
	if err != nil {
		return err
	}
	slog.Debug("spectrum computed", "bins", len(s.K))

	if opts.Out == "" {
		return writeSpectrumCSV(cmd.OutOrStdout(), opts.Params, s)
	}
	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create spectrum file: %w", err)
	}
	defer f.Close()
	if err := writeSpectrumCSV(f, opts.Params, s); err != nil {
		return fmt.Errorf("write spectrum file: %w", err)
	}
	return nil
}
