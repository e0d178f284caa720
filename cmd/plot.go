package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ajjackson/molden-to-abins/molden"
	"github.com/ajjackson/molden-to-abins/spectrum"
)

var (
	plotOut  string
	plotFWHM float64
)

var plotCmd = &cobra.Command{
	Use:   "plot <input.molden>",
	Short: "Plot a Gaussian-broadened vibrational spectrum as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "output", "spectrum.png", "path for the output PNG file")
	plotCmd.Flags().Float64Var(&plotFWHM, "fwhm", spectrum.DefaultFWHM, "Gaussian broadening FWHM in 1/cm")
}

func runPlot(cmd *cobra.Command, args []string) error {
	vib, err := molden.Open(args[0])
	if err != nil {
		return fmt.Errorf("read molden: %w", err)
	}
	logger.Infow("parsed molden file", "file", args[0], "atoms", vib.Len(), "modes", vib.NModes())
	if err := spectrum.Plot(vib.Freqs, plotFWHM, filepath.Base(args[0]), plotOut); err != nil {
		return fmt.Errorf("plot spectrum: %w", err)
	}
	logger.Infow("wrote spectrum plot", "file", plotOut)
	return nil
}
