package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajjackson/molden-to-abins/abins"
	"github.com/ajjackson/molden-to-abins/molden"
)

func runConvert(cmd *cobra.Command, args []string) error {
	vib, err := molden.Open(args[0])
	if err != nil {
		return fmt.Errorf("read molden: %w", err)
	}
	logger.Infow("parsed molden file", "file", args[0], "atoms", vib.Len(), "modes", vib.NModes())

	data, err := abins.FromVibrations(vib)
	if err != nil {
		return fmt.Errorf("build abins data: %w", err)
	}
	if outPath == "" {
		return data.Encode(cmd.OutOrStdout())
	}
	if err := data.WriteFile(outPath); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Infow("wrote abins json", "file", outPath)
	return nil
}
