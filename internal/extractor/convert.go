// =============================================================================
// PDF Bill Extraction - Match Capture and Type Conversion
// =============================================================================
//
// A structural match yields a map of capture-group name -> raw string. Each
// extractor then applies an explicit dispatch table of (field, parser) pairs
// to produce the typed record fields. Keeping the conversion separate from
// the match keeps the patterns purely structural and lets each parser be
// tested on its own.
//
// =============================================================================

package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// =============================================================================
// MATCH CAPTURE
// =============================================================================

// searchToMap runs pattern against text and returns the named capture groups
// as a map. Optional groups that did not participate in the match are
// omitted (every group in this system captures at least one character, so an
// empty capture means absent).
//
// A failed match returns a NoMatchError carrying the section name.
func searchToMap(pattern *regexp.Regexp, text, section string) (map[string]string, error) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return nil, &NoMatchError{Section: section}
	}

	groups := make(map[string]string)
	for i, name := range pattern.SubexpNames() {
		if i == 0 || name == "" || match[i] == "" {
			continue
		}
		groups[name] = match[i]
	}
	return groups, nil
}

// =============================================================================
// FIELD PARSERS
// =============================================================================

// fieldParser converts one raw captured string into its typed value.
type fieldParser func(raw string) (any, error)

// parseString passes the raw value through unchanged.
func parseString(raw string) (any, error) {
	return raw, nil
}

// parseFloat parses a decimal number.
func parseFloat(raw string) (any, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return value, nil
}

// parseInt parses an integer (the meter multiplier is printed without a
// decimal point).
func parseInt(raw string) (any, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("not an integer: %q", raw)
	}
	return value, nil
}

// parseDate parses a billing-period date, printed either as eight digits
// (20240101) or ISO-dashed (2024-01-01).
func parseDate(raw string) (any, error) {
	for _, layout := range []string{"20060102", bill.DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("not a date: %q", raw)
}

// parseIdentifier prepends an apostrophe to a numeric identifier so that
// spreadsheet tools keep it as text instead of mangling it into a number.
// Idempotent: an already-prefixed value is returned unchanged.
func parseIdentifier(raw string) (any, error) {
	if strings.HasPrefix(raw, "'") {
		return raw, nil
	}
	return "'" + raw, nil
}

// parseMeterAssetID strips the line break a wrapped meter asset id may carry
// in the extracted text.
func parseMeterAssetID(raw string) (any, error) {
	return strings.ReplaceAll(raw, "\n", ""), nil
}

// =============================================================================
// RECORD ASSEMBLY
// =============================================================================

// fieldSpec binds a capture-group name to an output field and its parser.
type fieldSpec struct {
	group  string
	field  string
	parser fieldParser
}

// buildRecord applies a dispatch table to the captured groups. Groups absent
// from the match (optional columns) are skipped; a parser failure fails the
// whole page, because a value that does not parse means the pattern matched
// something that is not the table it was written for.
func buildRecord(groups map[string]string, specs []fieldSpec) (bill.Record, error) {
	record := make(bill.Record, len(specs))
	for _, spec := range specs {
		raw, ok := groups[spec.group]
		if !ok {
			continue
		}
		value, err := spec.parser(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.field, err)
		}
		record[spec.field] = value
	}
	return record, nil
}
