// =============================================================================
// PDF Bill Extraction - Record Aggregation and Table Building
// =============================================================================
//
// The aggregator collects every successfully extracted record across all
// files and pages, then reshapes them into the two output tables:
//
//   Flat table:  one row per record, sorted ascending by the identity
//                4-tuple (customer id, meter point id, period start, period
//                end); the identity columns come first, every other field
//                follows in canonical order. Cells for fields a record does
//                not carry are blank (the two consumption layouts produce
//                different field sets).
//
//   Pivot table: rows = billing period (start, end) ascending; columns =
//                (customer id, meter point id) ascending; cell = the pivot
//                value field (有功总合计电量 unless configured otherwise).
//                Combinations absent from the input stay blank.
//
// Tables are plain [][]string so the CSV and XLSX writers share them.
//
// =============================================================================

package aggregator

import (
	"sort"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// Aggregator accumulates extracted records. It is the only mutable state of
// a run; everything else in the pipeline is a pure function of its inputs.
type Aggregator struct {
	records []bill.Record
}

// New creates an empty aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Add appends one extracted record.
func (a *Aggregator) Add(record bill.Record) {
	a.records = append(a.records, record)
}

// Count returns the number of collected records.
func (a *Aggregator) Count() int {
	return len(a.records)
}

// sortedRecords returns the records ordered by identity key. The receiver's
// slice is not disturbed; sorting is stable so equal-key records keep their
// discovery order.
func (a *Aggregator) sortedRecords() []bill.Record {
	records := make([]bill.Record, len(a.records))
	copy(records, a.records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Key().Less(records[j].Key())
	})
	return records
}

// Duplicates returns the identity keys that appear on more than one record,
// one entry per duplicated key. The identity is expected to be unique per
// output row; duplicates are kept in the flat table but the caller should
// warn about them.
func (a *Aggregator) Duplicates() []bill.Key {
	records := a.sortedRecords()
	var duplicates []bill.Key
	for i := 1; i < len(records); i++ {
		key := records[i].Key()
		if key != records[i-1].Key() {
			continue
		}
		if len(duplicates) == 0 || duplicates[len(duplicates)-1] != key {
			duplicates = append(duplicates, key)
		}
	}
	return duplicates
}

// =============================================================================
// FLAT TABLE
// =============================================================================

// FlatTable builds the flat output table: a header row of column names
// followed by one row per record in identity order.
//
// The column set is the canonical column order intersected with the fields
// actually present across the run, which keeps the output byte-identical
// regardless of the order files were discovered in.
func (a *Aggregator) FlatTable() [][]string {
	records := a.sortedRecords()

	present := make(map[string]bool)
	for _, record := range records {
		for field := range record {
			present[field] = true
		}
	}

	var columns []string
	for _, column := range bill.CanonicalColumns() {
		if present[column] {
			columns = append(columns, column)
		}
	}

	table := make([][]string, 0, len(records)+1)
	table = append(table, columns)
	for _, record := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = bill.FormatValue(record[column])
		}
		table = append(table, row)
	}
	return table
}

// =============================================================================
// PIVOT TABLE
// =============================================================================

// periodKey identifies a pivot row; dates are pre-formatted so the key is
// directly comparable and printable.
type periodKey struct {
	start, end string
}

// seriesKey identifies a pivot column.
type seriesKey struct {
	customer, meter string
}

// PivotTable builds the wide output table for valueField.
//
// Layout: two header rows - the first carries the period column names and
// the customer ids, the second the meter point ids - followed by one data
// row per billing period. When the same (period, series) combination occurs
// on several records the last extracted one wins.
func (a *Aggregator) PivotTable(valueField string) [][]string {
	periodSet := make(map[periodKey]bool)
	seriesSet := make(map[seriesKey]bool)
	cells := make(map[seriesKey]map[periodKey]string)

	for _, record := range a.records {
		key := record.Key()
		period := periodKey{
			start: bill.FormatValue(key.PeriodStart),
			end:   bill.FormatValue(key.PeriodEnd),
		}
		series := seriesKey{customer: key.CustomerID, meter: key.MeterPointID}

		periodSet[period] = true
		seriesSet[series] = true
		if cells[series] == nil {
			cells[series] = make(map[periodKey]string)
		}
		cells[series][period] = bill.FormatValue(record[valueField])
	}

	periods := make([]periodKey, 0, len(periodSet))
	for period := range periodSet {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].start != periods[j].start {
			return periods[i].start < periods[j].start
		}
		return periods[i].end < periods[j].end
	})

	series := make([]seriesKey, 0, len(seriesSet))
	for s := range seriesSet {
		series = append(series, s)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].customer != series[j].customer {
			return series[i].customer < series[j].customer
		}
		return series[i].meter < series[j].meter
	})

	customerHeader := []string{bill.FieldPeriodStart, bill.FieldPeriodEnd}
	meterHeader := []string{"", ""}
	for _, s := range series {
		customerHeader = append(customerHeader, s.customer)
		meterHeader = append(meterHeader, s.meter)
	}

	table := [][]string{customerHeader, meterHeader}
	for _, period := range periods {
		row := []string{period.start, period.end}
		for _, s := range series {
			row = append(row, cells[s][period])
		}
		table = append(table, row)
	}
	return table
}
