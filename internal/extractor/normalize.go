// =============================================================================
// PDF Bill Extraction - Whitespace Normalizer
// =============================================================================
//
// The text that comes out of PDF extraction is whitespace-irregular: cell
// padding becomes runs of spaces, and the layout engine wraps long table
// header cells across two lines, e.g.
//
//   抄见电量
//    (千瓦时)         ->  抄见电量(千瓦时)
//
//   变/线损
//   电量              ->  变/线损电量
//
// Every downstream pattern assumes these artifacts have been repaired, so
// normalization runs exactly once, before the three field extractors. The
// rules are specific to this document layout, including the literal 电量
// suffix; they must not alter word content, only rejoin it.
//
// =============================================================================

package extractor

import "regexp"

// substitution is one normalization rule: occurrences of pattern are
// replaced by replacement (Go template syntax, ${n} for group n).
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// substitutions are applied in order. Order matters: collapsing space runs
// first means the header-rejoin rule only has to deal with single spaces.
var substitutions = []substitution{
	// Collapse runs of two or more spaces into one.
	{regexp.MustCompile(` {2,}`), " "},

	// Rejoin a table header cell that wrapped onto the next line:
	// an optional numeric tag like (1), the header word, an optional unit
	// tag like (千瓦时), then on the next line either the unit tag or the
	// literal 电量 continuation.
	{regexp.MustCompile(
		` ?(\(\d+\))?([\p{L}\p{N}_/]+)(\([\p{L}\p{N}_/]+\))?\n ?(\([\p{L}\p{N}_/]+\)|电量)`),
		" ${1}${2}${3}${4}"},
}

// Normalize repairs the whitespace artifacts of PDF text extraction.
func Normalize(text string) string {
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllString(text, s.replacement)
	}
	return text
}
