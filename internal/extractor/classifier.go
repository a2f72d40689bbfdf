// =============================================================================
// PDF Bill Extraction - Page Classifier
// =============================================================================
//
// A page is a bill if and only if it carries the issuing organization's
// marker phrase: the grid company name, an arbitrary branch-company token,
// and the document-type suffix. Pages without the marker (cover sheets,
// attachments, unrelated PDFs) are skipped silently by the caller.
//
// =============================================================================

package extractor

import "regexp"

// markerPattern matches the fixed organizational marker identifying a 中国
// 南方电网 electricity bill notice. The branch company name between the two
// fixed phrases varies by region, so it is matched as a single word token.
var markerPattern = regexp.MustCompile(
	`(?s)中国南方电网公司 ?` + wordClass + `电网公司 ?电费通知单`)

// IsBill reports whether the raw page text is a bill notice.
// It is a pure predicate over the unnormalized text; whitespace
// normalization is not needed because the marker tolerates the single
// optional spaces the PDF text engine inserts.
func IsBill(text string) bool {
	return markerPattern.MatchString(text)
}
