package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/powerscan/powerscan/internal/logging"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagCSV     bool
	flagTable   bool
	flagThreads int
	flagFailOn  string
	flagNoColor bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the PowerScan CLI.
var rootCmd = &cobra.Command{
	Use:           "powerscan",
	Short:         "Flag risky and non-Baseline web features in your sources",
	Long:          "PowerScan checks HTML, CSS and JS sources against a catalog of pattern rules and reports deprecated, risky or baseline-relevant features.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Init(flagVerbose)
	},
}

// Execute runs the PowerScan CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagCSV, "csv", false, "emit CSV")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "render findings as a bordered table")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "fail on info|low|medium|high|critical (default medium)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}
