// =============================================================================
// PDF Bill Extraction - Consumption Table Vocabulary
// =============================================================================
//
// The consumption table of a bill comes in exactly two layouts:
//
//   Non-time-differentiated (非分时): one row per reading type
//     有功总 (active total), 无功总 (reactive total)
//
//   Time-differentiated (分时): one row per time-of-use band
//     尖 (sharp), 峰 (peak), 平 (flat), 谷 (valley), 无功总 (reactive total)
//
// Every row carries the same column vocabulary, with two exceptions that are
// properties of the band, not of the layout:
//   - reactive rows omit the free-consumption column
//   - only sharp and peak rows may carry the peak-adjustment column, and
//     even there it is optional
//
// The extractor composes its regular expressions from these tables, and the
// aggregator derives the canonical output column order from them, so a
// column change is made in exactly one place.
//
// =============================================================================

package bill

// =============================================================================
// BANDS
// =============================================================================

// Band identifies one row of the consumption table.
type Band struct {
	// Key is the ASCII identifier used in regex capture-group names
	// (Go capture-group names cannot contain non-ASCII characters).
	Key string

	// Label is the row label as printed on the bill, and the prefix of
	// every output field extracted from this row.
	Label string

	// HasFree reports whether the row carries the free-consumption column.
	// Reactive rows do not.
	HasFree bool

	// HasPeakAdjust reports whether the row may carry the peak-adjustment
	// column. Only sharp and peak rows may, and the value is optional there.
	HasPeakAdjust bool
}

var (
	BandActiveTotal   = Band{Key: "active", Label: "有功总", HasFree: true}
	BandReactiveTotal = Band{Key: "reactive", Label: "无功总"}
	BandSharp         = Band{Key: "sharp", Label: "尖", HasFree: true, HasPeakAdjust: true}
	BandPeak          = Band{Key: "peak", Label: "峰", HasFree: true, HasPeakAdjust: true}
	BandFlat          = Band{Key: "flat", Label: "平", HasFree: true}
	BandValley        = Band{Key: "valley", Label: "谷", HasFree: true}
)

// FlatRateBands are the rows of a non-time-differentiated bill, in table order.
var FlatRateBands = []Band{BandActiveTotal, BandReactiveTotal}

// TimeOfUseBands are the rows of a time-differentiated bill, in table order.
// The last entry is always the reactive total; the bands before it are the
// ones whose totals sum to the synthesized active total.
var TimeOfUseBands = []Band{BandSharp, BandPeak, BandFlat, BandValley, BandReactiveTotal}

// =============================================================================
// COLUMNS
// =============================================================================

// Column describes one numeric column of the consumption table.
type Column struct {
	// Key is the ASCII identifier used in regex capture-group names.
	Key string

	// Name is the output field suffix; the full field name is the band
	// label followed by this suffix (e.g. "尖" + "合计电量").
	Name string

	// Integer marks columns parsed as integers; all others parse as float64.
	Integer bool
}

// ConsumptionColumns lists the numeric columns in table order.
// The meter asset id column is handled separately because it is textual and
// may wrap across a line break in the extracted text.
var ConsumptionColumns = []Column{
	{Key: "prev", Name: "上次表示数"},
	{Key: "curr", Name: "本次表示数"},
	{Key: "multiplier", Name: "倍率", Integer: true},
	{Key: "metered", Name: "抄见电量"},
	{Key: "replaced", Name: "换表电量"},
	{Key: "adjusted", Name: "退补电量"},
	{Key: "lineloss", Name: "变线损电量"},
	{Key: "shared", Name: "公摊电量"},
	{Key: "free", Name: "免费电量"},
	{Key: "submeter", Name: "分表电量"},
	{Key: "peakadj", Name: "尖峰调整电量"},
	{Key: "total", Name: "合计电量"},
}

// TotalColumnName is the suffix of the per-band total-consumption field.
const TotalColumnName = "合计电量"

// =============================================================================
// OUTPUT COLUMN ORDER
// =============================================================================

// IdentityColumns are the index columns of the flat output table, in order.
func IdentityColumns() []string {
	return []string{FieldCustomerID, FieldMeterPointID, FieldPeriodStart, FieldPeriodEnd}
}

// CanonicalColumns returns every field name that can appear in a record, in
// output order: the identity columns, the remaining basic-information
// fields, the overall meter asset id, the per-band consumption fields (bands
// in a fixed order covering both layouts), and the bill totals.
//
// The flat table's header is this list intersected with the fields actually
// present across the run, which keeps the output independent of the order in
// which input files were discovered.
func CanonicalColumns() []string {
	columns := IdentityColumns()
	columns = append(columns,
		FieldCustomerName,
		FieldSettlementAccount,
		FieldSettlementName,
		FieldMarketClass,
		FieldCategory,
		FieldMeterAssetID,
	)

	bands := []Band{BandActiveTotal, BandSharp, BandPeak, BandFlat, BandValley, BandReactiveTotal}
	for _, band := range bands {
		columns = append(columns, band.Label+FieldMeterAssetID)
		for _, column := range ConsumptionColumns {
			if column.Key == "free" && !band.HasFree {
				continue
			}
			if column.Key == "peakadj" && !band.HasPeakAdjust {
				continue
			}
			columns = append(columns, band.Label+column.Name)
		}
	}

	return append(columns, FieldAmountDueWords, FieldAmountDue, FieldAveragePrice)
}
