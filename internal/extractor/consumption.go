// =============================================================================
// PDF Bill Extraction - Consumption Detail Extractor (电量信息)
// =============================================================================
//
// A bill's consumption table is one of two layouts, selected by checking for
// the ordered presence of its reading-type labels:
//
//   non-time-differentiated: 有功总 ... 无功总
//   time-differentiated:     尖 ... 峰 ... 平 ... 谷 ... 无功总
//
// Exactly one full table pattern is then applied. If neither check matches,
// the bill's consumption category is unknown and the page fails.
//
// Post-processing:
//   - the record's overall meter asset id is the 有功总 row's (flat-rate
//     layout) or the 平 row's (time-of-use layout)
//   - time-of-use bills do not print an active total, so 有功总合计电量 is
//     synthesized as the sum of the 尖/峰/平/谷 totals (the reactive row is
//     excluded)
//
// =============================================================================

package extractor

import (
	"regexp"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// Compiled layout patterns. These are process-wide immutable configuration:
// composed and compiled once at startup, never mutated.
var (
	flatRateCheckPattern  = regexp.MustCompile(layoutCheckPattern(bill.FlatRateBands))
	timeOfUseCheckPattern = regexp.MustCompile(layoutCheckPattern(bill.TimeOfUseBands))

	flatRatePattern  = regexp.MustCompile(layoutPattern(bill.FlatRateBands, false))
	timeOfUsePattern = regexp.MustCompile(layoutPattern(bill.TimeOfUseBands, true))

	flatRateFields  = consumptionFields(bill.FlatRateBands)
	timeOfUseFields = consumptionFields(bill.TimeOfUseBands)
)

// consumptionFields builds the conversion dispatch table for a layout: per
// band, the meter asset id plus the band's numeric columns. The multiplier
// parses as an integer, everything else as float64.
func consumptionFields(bands []bill.Band) []fieldSpec {
	var specs []fieldSpec
	for _, band := range bands {
		specs = append(specs, fieldSpec{
			group:  meterGroupName(band),
			field:  band.Label + bill.FieldMeterAssetID,
			parser: parseMeterAssetID,
		})
		for _, column := range bill.ConsumptionColumns {
			parser := parseFloat
			if column.Integer {
				parser = parseInt
			}
			specs = append(specs, fieldSpec{
				group:  columnGroupName(band, column),
				field:  band.Label + column.Name,
				parser: parser,
			})
		}
	}
	return specs
}

// ExtractConsumption extracts the consumption table from normalized page
// text. It fails with ErrUnknownLayout when neither layout's labels are
// present, or with a NoMatchError when the selected layout's table pattern
// does not match.
func ExtractConsumption(text string) (bill.Record, error) {
	switch {
	case flatRateCheckPattern.MatchString(text):
		return extractFlatRate(text)
	case timeOfUseCheckPattern.MatchString(text):
		return extractTimeOfUse(text)
	default:
		return nil, ErrUnknownLayout
	}
}

// extractFlatRate handles the non-time-differentiated layout. The active
// total is printed on the bill, so no synthesis happens here.
func extractFlatRate(text string) (bill.Record, error) {
	groups, err := searchToMap(flatRatePattern, text, SectionFlatRateDetail)
	if err != nil {
		return nil, err
	}
	record, err := buildRecord(groups, flatRateFields)
	if err != nil {
		return nil, err
	}

	record[bill.FieldMeterAssetID] = record[bill.BandActiveTotal.Label+bill.FieldMeterAssetID]
	return record, nil
}

// extractTimeOfUse handles the time-differentiated layout and synthesizes
// the overall active total from the per-band totals.
func extractTimeOfUse(text string) (bill.Record, error) {
	groups, err := searchToMap(timeOfUsePattern, text, SectionTimeOfUseDetail)
	if err != nil {
		return nil, err
	}
	record, err := buildRecord(groups, timeOfUseFields)
	if err != nil {
		return nil, err
	}

	record[bill.FieldMeterAssetID] = record[bill.BandFlat.Label+bill.FieldMeterAssetID]

	// Sum the per-band totals, excluding the trailing reactive band. The
	// conversion table guarantees these fields are float64 when present.
	var total float64
	for _, band := range bill.TimeOfUseBands[:len(bill.TimeOfUseBands)-1] {
		if value, ok := record[band.Label+bill.TotalColumnName].(float64); ok {
			total += value
		}
	}
	record[bill.FieldActiveTotalConsumption] = total

	return record, nil
}
