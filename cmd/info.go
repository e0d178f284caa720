package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ajjackson/molden-to-abins/molden"
)

var infoCmd = &cobra.Command{
	Use:   "info <input.molden>",
	Short: "Summarize the atoms and vibrational modes in a Molden file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	vib, err := molden.Open(args[0])
	if err != nil {
		return fmt.Errorf("read molden: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s  |  Atoms: %d  |  Modes: %d\n\n", args[0], vib.Len(), vib.NModes())

	atomTable := newTable(out)
	atomTable.Header("#", "SYMBOL", "Z", "MASS", "X (ANG)", "Y (ANG)", "Z (ANG)")
	for i, at := range vib.Atoms {
		atomTable.Append(
			strconv.Itoa(i),
			at.Symbol,
			strconv.Itoa(at.Number),
			fmt.Sprintf("%.3f", at.Mass),
			fmt.Sprintf("%.6f", vib.Coords.At(i, 0)),
			fmt.Sprintf("%.6f", vib.Coords.At(i, 1)),
			fmt.Sprintf("%.6f", vib.Coords.At(i, 2)),
		)
	}
	atomTable.Render()
	fmt.Fprintln(out)

	modeTable := newTable(out)
	modeTable.Header("MODE", "WAVENUMBER (1/CM)", "MAX |D|")
	for m, freq := range vib.Freqs {
		modeTable.Append(
			strconv.Itoa(m+1),
			fmt.Sprintf("%.2f", freq),
			fmt.Sprintf("%.4f", maxDisplacement(vib, m)),
		)
	}
	modeTable.Render()
	return nil
}

func newTable(out io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(out, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// maxDisplacement returns the largest per-atom displacement norm of
// mode m.
func maxDisplacement(vib *molden.Vibrations, m int) float64 {
	mode := vib.Modes[m]
	best := 0.0
	for i := 0; i < vib.Len(); i++ {
		x, y, z := mode.At(i, 0), mode.At(i, 1), mode.At(i, 2)
		if d := math.Sqrt(x*x + y*y + z*z); d > best {
			best = d
		}
	}
	return best
}
