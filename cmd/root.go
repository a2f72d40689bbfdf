// =============================================================================
// PDF Bill Extraction - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'inspect') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (extractor)
//   ├── processCmd (extractor process)
//   ├── inspectCmd (extractor inspect)
//   └── versionCmd (extractor version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// The file is optional; when absent, built-in defaults apply.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "extractor",

	Short: "PDF Bill Extraction - Extract structured billing data from utility bill PDFs",

	Long: `PDF Bill Extraction is a CLI tool that extracts structured billing data
from 中国南方电网 electricity bill notices (PDF) and exports normalized,
pivoted tables.

For every PDF under the target directory, each page is checked against the
bill marker phrase; matching pages are parsed with layout-specific patterns
(basic information, consumption detail, bill totals) and merged into one
record per bill. The collected records are written next to the PDFs as:
  - 账单.csv        one row per bill, indexed by customer/meter/period
  - 账单透视表.csv  billing periods as rows, customer+meter as columns,
                    active total consumption as values

Example Usage:
  extractor process              # Process PDFs in the executable's directory
  extractor process ./bills      # Process a specific directory tree
  extractor inspect bill.pdf     # Dump per-page text for pattern debugging`,

	// Print the help message when called without a subcommand.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// loadConfig loads the configuration honoring how the --config flag was set:
// the implicit default path may be absent (defaults apply), but a path the
// user passed explicitly must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.LoadRequired(cfgFile)
	}
	return config.Load(cfgFile)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Path to the optional configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional; defaults apply when absent)",
	)

	// --verbose flag: Enables verbose output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output (per-file page counts)",
	)
}
