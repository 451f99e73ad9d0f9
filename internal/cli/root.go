// Package cli wires the halfwell commands: one-shot integration, energy
// scans and momentum spectra over the half-infinite power-law well.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the halfwell CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "halfwell",
		Short: "Shooting-method integrator for half-infinite power-law wells",
		Long: `halfwell integrates the 1D time-independent Schrödinger equation for a
particle in a half-infinite power-law well V(x) = x^γ (x ≥ 0), starting
from ψ(0) = 0, ψ'(0) = 1. Trial energies close to an eigenenergy produce a
wavefunction that returns toward zero at the far edge of the grid; every
other energy diverges. Scanning energies and watching the tail is how
eigenenergies are found.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewShootCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewSpectrumCommand(opts))

	return cmd
}
