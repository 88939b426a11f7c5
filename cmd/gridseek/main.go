// Command gridseek encodes and decodes cipher text, answers locate queries
// over encoded grid fixtures and runs the comparative search benchmark.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridseek/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Command flags
	shift        int
	fixtureShift int
	fixturePath  string
	linear       bool
	fixtureSize  int
	fixtureSeed  int64
	outDir       string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridseek",
	Short: "gridseek - divide-and-conquer search over encoded monotone grids",
	Long: `gridseek locates values in grids whose rows and columns never decrease.

Labels and values are carried as shift-cipher binary text. A query decodes
the grid, searches it by quadrant elimination and returns the encoded label
of the matching cell together with the scan counter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = cfg.Logging.Build(verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text as shifted binary tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [code]",
	Short: "Decode space-separated binary tokens",
	Long: `Decodes a code produced by encode. Quote the code so that its tokens
arrive as a single argument:

  gridseek decode --shift 2 "1101010 1100111 1101110 1101110 1110001"`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var locateCmd = &cobra.Command{
	Use:   "locate [value]",
	Short: "Locate a value in a fixture and print its encoded label",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocate,
}

var fixtureCmd = &cobra.Command{
	Use:   "fixture [file]",
	Short: "Write a generated square fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixture,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare divide-and-conquer search with the linear scan",
	Long: `Sweeps square grids over the configured sizes, locating every cell value
with both algorithms, and writes report.json, scans.png and scans.html.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")

	encodeCmd.Flags().IntVarP(&shift, "shift", "s", 0, "Cipher shift (0-26)")
	decodeCmd.Flags().IntVarP(&shift, "shift", "s", 0, "Cipher shift (0-26)")

	locateCmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Fixture file (required)")
	locateCmd.Flags().BoolVar(&linear, "linear", false, "Use the linear baseline")
	cobra.CheckErr(locateCmd.MarkFlagRequired("fixture"))

	fixtureCmd.Flags().IntVarP(&fixtureSize, "size", "n", 8, "Grid side")
	fixtureCmd.Flags().Int64Var(&fixtureSeed, "seed", 9001, "Generator seed")
	fixtureCmd.Flags().IntVarP(&fixtureShift, "shift", "s", 2, "Cipher shift (0-26)")

	benchCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: config bench.output_dir)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(fixtureCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
