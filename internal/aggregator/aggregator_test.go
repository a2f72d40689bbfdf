package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// record builds a minimal identified record with the pivot value field set.
func record(customer, meter string, start, end time.Time, total float64) bill.Record {
	r := bill.Record{
		bill.FieldCustomerID:   customer,
		bill.FieldMeterPointID: meter,
		bill.FieldPeriodStart:  start,
		bill.FieldPeriodEnd:    end,
	}
	r[bill.FieldActiveTotalConsumption] = total
	return r
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var (
	january  = [2]time.Time{date(2024, 1, 1), date(2024, 1, 31)}
	february = [2]time.Time{date(2024, 2, 1), date(2024, 2, 29)}
)

func TestFlatTableSortsByIdentity(t *testing.T) {
	agg := New()
	agg.Add(record("'2222222222", "'9876543210", february[0], february[1], 200))
	agg.Add(record("'2222222222", "'9876543210", january[0], january[1], 150))
	agg.Add(record("'1111111111", "'9876543210", february[0], february[1], 100))

	table := agg.FlatTable()
	require.Len(t, table, 4)

	header := table[0]
	assert.Equal(t, []string{
		bill.FieldCustomerID, bill.FieldMeterPointID,
		bill.FieldPeriodStart, bill.FieldPeriodEnd,
		bill.FieldActiveTotalConsumption,
	}, header)

	// Customer id first, then period start within the same customer.
	assert.Equal(t, []string{"'1111111111", "'9876543210", "2024-02-01", "2024-02-29", "100"}, table[1])
	assert.Equal(t, []string{"'2222222222", "'9876543210", "2024-01-01", "2024-01-31", "150"}, table[2])
	assert.Equal(t, []string{"'2222222222", "'9876543210", "2024-02-01", "2024-02-29", "200"}, table[3])
}

func TestFlatTableBlanksAbsentFields(t *testing.T) {
	flat := record("'1", "'1", january[0], january[1], 100)
	flat["有功总倍率"] = 40

	timeOfUse := record("'2", "'2", january[0], january[1], 65)
	timeOfUse["尖合计电量"] = 10.0

	agg := New()
	agg.Add(flat)
	agg.Add(timeOfUse)

	table := agg.FlatTable()
	require.Len(t, table, 3)

	header := table[0]
	multiplierCol := indexOf(t, header, "有功总倍率")
	sharpCol := indexOf(t, header, "尖合计电量")

	// Fields from the other layout stay blank, typed values are formatted.
	assert.Equal(t, "40", table[1][multiplierCol])
	assert.Empty(t, table[1][sharpCol])
	assert.Empty(t, table[2][multiplierCol])
	assert.Equal(t, "10", table[2][sharpCol])
}

func TestFlatTableColumnOrderIsDiscoveryIndependent(t *testing.T) {
	forward := New()
	forward.Add(record("'1", "'1", january[0], january[1], 100))
	forward.Add(record("'2", "'2", february[0], february[1], 200))

	reversed := New()
	reversed.Add(record("'2", "'2", february[0], february[1], 200))
	reversed.Add(record("'1", "'1", january[0], january[1], 100))

	assert.Equal(t, forward.FlatTable(), reversed.FlatTable())
}

func TestPivotTableSingleRecord(t *testing.T) {
	agg := New()
	agg.Add(record("'1234567890", "'9876543210", january[0], january[1], 100.5))

	table := agg.PivotTable(bill.FieldActiveTotalConsumption)
	require.Len(t, table, 3)

	assert.Equal(t, []string{bill.FieldPeriodStart, bill.FieldPeriodEnd, "'1234567890"}, table[0])
	assert.Equal(t, []string{"", "", "'9876543210"}, table[1])
	assert.Equal(t, []string{"2024-01-01", "2024-01-31", "100.5"}, table[2])
}

func TestPivotTableBlanksAbsentCombinations(t *testing.T) {
	agg := New()
	agg.Add(record("'1", "'10", january[0], january[1], 100))
	agg.Add(record("'2", "'20", february[0], february[1], 200))

	table := agg.PivotTable(bill.FieldActiveTotalConsumption)
	require.Len(t, table, 4)

	assert.Equal(t, []string{bill.FieldPeriodStart, bill.FieldPeriodEnd, "'1", "'2"}, table[0])
	assert.Equal(t, []string{"", "", "'10", "'20"}, table[1])
	assert.Equal(t, []string{"2024-01-01", "2024-01-31", "100", ""}, table[2])
	assert.Equal(t, []string{"2024-02-01", "2024-02-29", "", "200"}, table[3])
}

func TestPivotTableLastRecordWins(t *testing.T) {
	agg := New()
	agg.Add(record("'1", "'10", january[0], january[1], 100))
	agg.Add(record("'1", "'10", january[0], january[1], 300))

	table := agg.PivotTable(bill.FieldActiveTotalConsumption)
	require.Len(t, table, 3)
	assert.Equal(t, "300", table[2][2])
}

func TestDuplicates(t *testing.T) {
	agg := New()
	agg.Add(record("'1", "'10", january[0], january[1], 100))
	agg.Add(record("'2", "'20", january[0], january[1], 200))
	assert.Empty(t, agg.Duplicates())

	agg.Add(record("'1", "'10", january[0], january[1], 100))
	agg.Add(record("'1", "'10", january[0], january[1], 100))

	duplicates := agg.Duplicates()
	require.Len(t, duplicates, 1)
	assert.Equal(t, "'1", duplicates[0].CustomerID)
	assert.Equal(t, "'10", duplicates[0].MeterPointID)

	// Duplicates stay in the flat table, one row each.
	assert.Len(t, agg.FlatTable(), 5)
}

func TestEmptyAggregator(t *testing.T) {
	agg := New()
	assert.Zero(t, agg.Count())

	table := agg.FlatTable()
	require.Len(t, table, 1)
	assert.Empty(t, table[0])

	pivot := agg.PivotTable(bill.FieldActiveTotalConsumption)
	require.Len(t, pivot, 2)
}

// indexOf fails the test when the column is missing from the header.
func indexOf(t *testing.T, header []string, column string) int {
	t.Helper()
	for i, name := range header {
		if name == column {
			return i
		}
	}
	t.Fatalf("column %s not in header %v", column, header)
	return -1
}
