// =============================================================================
// PDF Bill Extraction - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command of the tool. It
// orchestrates the extraction pipeline.
//
// COMMAND USAGE:
//   extractor process [directory]
//
// PROCESSING PIPELINE:
//   1. Load the (optional) configuration
//   2. Discover PDF files under the target directory
//   3. For each file, for each page:
//      a. Classify the page (bill marker phrase); skip non-bills silently
//      b. Extract basic information, consumption detail and bill totals
//      c. Collect the merged record, or report the page failure and go on
//   4. Sort and reshape the records into the flat and pivot tables
//   5. Write the output CSVs (and optionally the XLSX workbook) into the
//      target directory, plus an error log if any page failed
//
// Processing is deliberately sequential: output files must be byte-identical
// across runs, and a malformed PDF must abort the whole run. Only per-page
// extraction failures are caught; they are reported with the source file
// name and never abort the batch.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/aggregator"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/config"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/csvwriter"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/extractor"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/pdfreader"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/xlsxwriter"
	"github.com/ginjaninja78/PDF-bill-extraction/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// writeXLSX additionally exports the XLSX workbook, regardless of the
// configuration file.
var writeXLSX bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process [directory]",
	Short: "Extract bill data from every PDF under a directory",
	Long: `The process command walks the target directory (default: the directory the
executable lives in), extracts billing data from every page that is a bill
notice, and writes the flat and pivot tables into that same directory.

Pages that are not bill notices are skipped silently. Pages that look like a
bill but fail a field pattern are reported with their source file name and
skipped; the run continues and writes whatever valid records were collected.
A file that is not a readable PDF aborts the run.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		directory := ""
		if len(args) == 1 {
			directory = args[0]
		}
		return runProcess(cfg, directory)
	},
}

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	// --xlsx flag: Also export the XLSX workbook.
	processCmd.Flags().BoolVar(
		&writeXLSX,
		"xlsx",
		false,
		"Also export an XLSX workbook with both tables",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates the extraction pipeline.
func runProcess(cfg *config.Config, directory string) error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: RESOLVE THE INPUT DIRECTORY
	// =========================================================================

	if directory == "" {
		var err error
		directory, err = utils.DefaultDirectory()
		if err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	files, err := utils.DiscoverPDFFiles(directory)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Found %d PDF file(s) under %s\n", len(files), directory)
	}

	// =========================================================================
	// STEP 3: EXTRACT RECORDS, PAGE BY PAGE
	// =========================================================================
	// PDF read errors are fatal and abort the run. Extraction errors are
	// per-page: reported with the file name, collected for the error log,
	// and the page is skipped.

	records := aggregator.New()
	var failures []utils.ErrorLogEntry
	pagesMatched := 0

	for _, file := range files {
		pages, err := pdfreader.ExtractPages(file)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("  %s: %d page(s)\n", filepath.Base(file), len(pages))
		}

		for number, text := range pages {
			if !extractor.IsBill(text) {
				continue
			}
			pagesMatched++

			record, err := extractor.Extract(text)
			if err != nil {
				fmt.Printf("%s %v\n", filepath.Base(file), err)
				failures = append(failures, utils.ErrorLogEntry{
					FilePath: file,
					Page:     number + 1,
					Message:  err.Error(),
				})
				continue
			}
			records.Add(record)
		}
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUT TABLES
	// =========================================================================
	// Zero records means no output files at all - only the console notice.

	if records.Count() == 0 {
		fmt.Println("没有可匹配的电费单！")
		return writeErrorLog(cfg, directory, failures)
	}

	for _, key := range records.Duplicates() {
		fmt.Printf("warning: duplicate bill identity %s\n", key)
	}

	flat := records.FlatTable()
	pivot := records.PivotTable(cfg.PivotValueField)

	billsPath := filepath.Join(directory, cfg.BillsFileName)
	if err := csvwriter.Write(billsPath, flat); err != nil {
		return err
	}
	pivotPath := filepath.Join(directory, cfg.ResolvedPivotFileName())
	if err := csvwriter.Write(pivotPath, pivot); err != nil {
		return err
	}
	if cfg.WriteWorkbook || writeXLSX {
		workbookPath := filepath.Join(directory, cfg.WorkbookFileName)
		if err := xlsxwriter.WriteWorkbook(workbookPath, flat, pivot); err != nil {
			return err
		}
		fmt.Printf("Workbook:  %s\n", workbookPath)
	}

	if err := writeErrorLog(cfg, directory, failures); err != nil {
		return err
	}

	// =========================================================================
	// STEP 5: PRINT SUMMARY
	// =========================================================================

	fmt.Println("\n=== Extraction Complete ===")
	fmt.Printf("PDF files:       %d\n", len(files))
	fmt.Printf("Bill pages:      %d\n", pagesMatched)
	fmt.Printf("Records:         %d\n", records.Count())
	fmt.Printf("Failed pages:    %d\n", len(failures))
	fmt.Printf("Bills table:     %s\n", billsPath)
	fmt.Printf("Pivot table:     %s\n", pivotPath)
	fmt.Printf("Time elapsed:    %s\n", time.Since(startTime))

	return nil
}

// writeErrorLog writes the failure log when enabled and there is anything to
// log, and prints its location.
func writeErrorLog(cfg *config.Config, directory string, failures []utils.ErrorLogEntry) error {
	if !cfg.ErrorLog || len(failures) == 0 {
		return nil
	}
	path, err := utils.WriteErrorLog(failures, directory)
	if err != nil {
		return err
	}
	fmt.Printf("Error log: %s\n", path)
	return nil
}
