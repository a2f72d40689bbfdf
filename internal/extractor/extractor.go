// =============================================================================
// PDF Bill Extraction - Page Extraction Pipeline
// =============================================================================
//
// Extract is the per-page entry point: it normalizes the whitespace once,
// runs the three independent field extractors, and merges their results into
// a single record. The extractors produce disjoint field sets (fields are
// namespaced by their source section), so the merge is a plain key union.
//
// The caller is responsible for classifying the page first (IsBill); Extract
// assumes it is looking at a bill and fails with a typed extraction error
// when any section is missing.
//
// =============================================================================

package extractor

import (
	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// Extract parses one bill page's raw text into a record.
// On any extraction failure no partial record is returned.
func Extract(text string) (bill.Record, error) {
	text = Normalize(text)

	information, err := ExtractInformation(text)
	if err != nil {
		return nil, err
	}
	consumption, err := ExtractConsumption(text)
	if err != nil {
		return nil, err
	}
	totals, err := ExtractBillTotals(text)
	if err != nil {
		return nil, err
	}

	record := make(bill.Record, len(information)+len(consumption)+len(totals))
	record.Merge(information)
	record.Merge(consumption)
	record.Merge(totals)
	return record, nil
}
