package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JosephHickey1/halfwell/internal/schrod"
)

// ShootOptions holds flags for the shoot command.
type ShootOptions struct {
	*RootOptions
	Params schrod.Params
	Out    string
}

// NewShootCommand creates the shoot command: a single integration run.
func NewShootCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShootOptions{RootOptions: rootOpts, Params: schrod.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "shoot --energy <eV>",
		Short: "Integrate the wavefunction for one trial energy",
		Long: `Integrate the wavefunction across the grid for a single trial energy and
report the tail behavior. With --out the full (position, ψ) trace is
written as CSV for an external plotting tool.

Example:
  halfwell shoot --energy 3.6435
  halfwell shoot --energy 6.3703 --gamma 1 --out psi.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShoot(opts, cmd)
		},
	}

	addGridFlags(cmd, &opts.Params)
	cmd.Flags().Float64Var(&opts.Params.Energy, "energy", 0, "trial energy in eV (required)")
	_ = cmd.MarkFlagRequired("energy")
	cmd.Flags().StringVar(&opts.Out, "out", "", "write the (position, psi) trace as CSV to this file")

	return cmd
}

// addGridFlags registers the grid and well-shape flags shared by the
// shoot, scan and spectrum commands.
func addGridFlags(cmd *cobra.Command, p *schrod.Params) {
	cmd.Flags().Float64Var(&p.FinalX, "xf", p.FinalX, "final position in Å")
	cmd.Flags().Float64Var(&p.StepX, "dx", p.StepX, "position step in Å")
	cmd.Flags().Float64Var(&p.Gamma, "gamma", p.Gamma, "potential exponent γ")
}

func runShoot(opts *ShootOptions, cmd *cobra.Command) error {
	slog.Debug("integrating",
		"energy", opts.Params.Energy,
		"gamma", opts.Params.Gamma,
		"xf", opts.Params.FinalX,
		"dx", opts.Params.StepX,
	)

	t, err := schrod.Integrate(opts.Params)
	if err != nil {
		return err
	}

	writeSummary(cmd.OutOrStdout(), opts.Params, t)

	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		defer f.Close()
		if err := writeTrajectoryCSV(f, opts.Params, t); err != nil {
			return fmt.Errorf("write trace file: %w", err)
		}
		slog.Debug("trace written", "path", opts.Out, "samples", len(t.Psi))
	}
	return nil
}
