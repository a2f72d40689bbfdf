// =============================================================================
// PDF Bill Extraction - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, a debugging aid for pattern
// drift. The extraction patterns are written against the exact text a
// specific PDF text engine produces for a specific bill layout; when either
// changes, the quickest way to see why a page stopped matching is to look at
// the text the extractor actually sees.
//
// COMMAND USAGE:
//   extractor inspect <pdf>          # normalized text, as the patterns see it
//   extractor inspect --raw <pdf>    # raw extracted text, before normalization
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/extractor"
	"github.com/ginjaninja78/PDF-bill-extraction/internal/pdfreader"
)

// showRaw skips whitespace normalization in the dump.
var showRaw bool

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Dump per-page text and classifier verdicts for one PDF",
	Long: `The inspect command prints, for every page of the given PDF, whether the
page matches the bill marker phrase and the page text after whitespace
normalization (or the raw extracted text with --raw). Use it to diagnose
pages that fail extraction: the field patterns match against exactly the
text shown here.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

// init registers the inspect command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(inspectCmd)

	// --raw flag: Dump the text before whitespace normalization.
	inspectCmd.Flags().BoolVar(
		&showRaw,
		"raw",
		false,
		"Dump the raw extracted text instead of the normalized text",
	)
}

// runInspect dumps every page of the PDF.
func runInspect(path string) error {
	pages, err := pdfreader.ExtractPages(path)
	if err != nil {
		return err
	}

	for number, text := range pages {
		verdict := "not a bill"
		if extractor.IsBill(text) {
			verdict = "bill"
		}
		fmt.Printf("=== page %d/%d (%s) ===\n", number+1, len(pages), verdict)

		if showRaw {
			fmt.Println(text)
			continue
		}
		fmt.Println(extractor.Normalize(text))
	}
	return nil
}
