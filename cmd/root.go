package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outPath string
	verbose bool
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "molden2abins <input.molden>",
	Short: "Convert Molden vibrational data to Abins JSON",
	Long: "Read atomic coordinates, frequencies and normal-mode eigenvectors from a\n" +
		"Molden file and write the JSON document consumed by the Abins/Abins2D\n" +
		"algorithms in Mantid 6.10 or later. Gzip-compressed input (.gz) is accepted.",
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log progress to stderr")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "path for the output JSON file (default: stdout)")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(plotCmd)
}

func initLogger() {
	if !verbose {
		logger = zap.NewNop().Sugar()
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}
