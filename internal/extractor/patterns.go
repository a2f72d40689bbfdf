// =============================================================================
// PDF Bill Extraction - Pattern Composition
// =============================================================================
//
// The consumption-table patterns are composed from named per-column
// fragments rather than written out as two giant literals: the header is the
// concatenation of each column's header fragment, and each data row is the
// concatenation of each column's capture group, driven by the same
// bill.ConsumptionColumns table. A column change is therefore made in one
// place and both layouts pick it up.
//
// Capture-group names are ASCII ("<band key>_<column key>") because Go's
// regexp only accepts word characters in group names; the extractors map
// group names back to the Chinese output field names.
//
// =============================================================================

package extractor

import (
	"strings"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// =============================================================================
// SHARED FRAGMENTS
// =============================================================================

const (
	// numberPattern matches one numeric table cell (sign, digits, point).
	numberPattern = `[\d.-]+`

	// kwhUnit is the parenthesized unit tag a header cell carries after
	// normalization has rejoined it onto the header line.
	kwhUnit = `\(千瓦时\)`

	// wordClass is the Unicode equivalent of Python's \w: Go's \w is
	// ASCII-only, but the bill text is Chinese.
	wordClass = `[\p{L}\p{N}_]+`

	// dateClass matches a period date: eight digits or ISO-dashed.
	dateClass = `[\p{N}-]+`
)

// headerFragments maps a column key to the regex fragment matching that
// column's header cell. The line-loss cell is printed 变/线损电量 (the output
// field name drops the slash) and its unit tag is sometimes absent; the
// peak-adjustment header exists only in the time-differentiated layout.
var headerFragments = map[string]string{
	"prev":       `上次表示数`,
	"curr":       `本次表示数`,
	"multiplier": `倍率`,
	"metered":    `抄见电量` + kwhUnit,
	"replaced":   `换表电量` + kwhUnit,
	"adjusted":   `退补电量` + kwhUnit,
	"lineloss":   `变/线损电量(?:` + kwhUnit + `)?`,
	"shared":     `公摊电量` + kwhUnit,
	"free":       `免费电量` + kwhUnit,
	"submeter":   `分表电量` + kwhUnit,
	"peakadj":    `尖峰调整电量(?:` + kwhUnit + `)?`,
	"total":      `合计电量` + kwhUnit,
}

// =============================================================================
// TABLE PATTERN COMPOSITION
// =============================================================================

// headerPattern composes the table-header line.
// withPeakAdjust selects the time-differentiated header, which may carry the
// optional peak-adjustment column before the total.
func headerPattern(withPeakAdjust bool) string {
	var sb strings.Builder
	sb.WriteString(`表计资产编号 ?示数类型`)
	for _, column := range bill.ConsumptionColumns {
		if column.Key == "peakadj" {
			if withPeakAdjust {
				sb.WriteString(`(?: ?` + headerFragments[column.Key] + `)?`)
			}
			continue
		}
		sb.WriteString(` ?` + headerFragments[column.Key])
	}
	sb.WriteString("\n")
	return sb.String()
}

// meterGroupName returns the capture-group name of a band's meter asset id.
func meterGroupName(band bill.Band) string {
	return band.Key + "_meter"
}

// columnGroupName returns the capture-group name of one numeric cell.
func columnGroupName(band bill.Band, column bill.Column) string {
	return band.Key + "_" + column.Key
}

// bandRowPattern composes the data row of one time-of-use band: the meter
// asset id (which may wrap across a single line break in the extracted
// text), the band label, and the band's numeric cells separated by single
// spaces. The free column is skipped on reactive rows; the peak-adjustment
// cell is wrapped as optional on the rows that may carry it.
func bandRowPattern(band bill.Band) string {
	var sb strings.Builder
	sb.WriteString(`(?P<` + meterGroupName(band) + `>(?:` +
		wordClass + "\n" + wordClass + `|` + wordClass + `)) ?` + band.Label + ` `)

	first := true
	for _, column := range bill.ConsumptionColumns {
		group := `(?P<` + columnGroupName(band, column) + `>` + numberPattern + `)`
		switch {
		case column.Key == "free" && !band.HasFree:
			continue
		case column.Key == "peakadj":
			if band.HasPeakAdjust {
				sb.WriteString(`(?: ` + group + `)?`)
			}
			continue
		}
		if first {
			sb.WriteString(group)
			first = false
		} else {
			sb.WriteString(` ` + group)
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// layoutPattern composes a full consumption-table pattern: the header line
// followed immediately by one data row per band, in table order.
func layoutPattern(bands []bill.Band, withPeakAdjust bool) string {
	var sb strings.Builder
	sb.WriteString(headerPattern(withPeakAdjust))
	for _, band := range bands {
		sb.WriteString(bandRowPattern(band))
	}
	return sb.String()
}

// layoutCheckPattern composes the cheap ordered-presence check that selects
// a layout before the full table pattern is applied: the band labels joined
// by arbitrary text.
func layoutCheckPattern(bands []bill.Band) string {
	labels := make([]string, len(bands))
	for i, band := range bands {
		labels[i] = band.Label
	}
	return `(?s)` + strings.Join(labels, `.*`)
}
