// =============================================================================
// PDF Bill Extraction - Extraction Errors
// =============================================================================
//
// Every extraction failure on a page that passed the classifier is one of
// two kinds:
//
//   - NoMatchError: a required labeled section was not found in the page
//     text (basic information, one of the consumption layouts, or the bill
//     totals).
//   - ErrUnknownLayout: neither consumption layout's section labels matched.
//
// Both are non-fatal: the caller reports them with the source file name and
// skips the page. Fatal errors (unreadable PDF) never originate here.
//
// =============================================================================

package extractor

import "errors"

// Section names used in NoMatchError, matching the bill's section headings.
const (
	SectionInformation     = "基本信息"
	SectionFlatRateDetail  = "非分时电量信息"
	SectionTimeOfUseDetail = "分时电量信息"
	SectionBillTotals      = "电费信息"
)

// NoMatchError reports that a required labeled section was absent from (or
// out of order in) the page text.
type NoMatchError struct {
	// Section is the bill section whose pattern failed to match.
	Section string
}

// Error implements the error interface.
// The message is in the bill's language because it is shown, together with
// the source file name, to the person who has to locate the offending PDF.
func (e *NoMatchError) Error() string {
	return e.Section + "无匹配"
}

// ErrUnknownLayout reports that neither consumption layout's reading-type
// labels were present, so no table pattern could be chosen.
var ErrUnknownLayout = errors.New("电量信息示数类型无匹配")
