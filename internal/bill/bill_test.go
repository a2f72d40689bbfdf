package bill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "'1234567890", want: "'1234567890"},
		{name: "int", value: 40, want: "40"},
		{name: "whole float", value: 100.0, want: "100"},
		{name: "fractional float", value: 100.5, want: "100.5"},
		{name: "long fraction round-trips", value: 0.995, want: "0.995"},
		{name: "date", value: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), want: "2024-01-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatValue(tc.value))
		})
	}
}

func TestRecordKey(t *testing.T) {
	record := Record{
		FieldCustomerID:   "'1234567890",
		FieldMeterPointID: "'9876543210",
		FieldPeriodStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FieldPeriodEnd:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	key := record.Key()
	assert.Equal(t, "'1234567890", key.CustomerID)
	assert.Equal(t, "'9876543210", key.MeterPointID)
	assert.Equal(t, "('1234567890, '9876543210, 2024-01-01, 2024-01-31)", key.String())
}

func TestRecordKeyMissingFields(t *testing.T) {
	key := Record{FieldCustomerID: "'1"}.Key()
	assert.Equal(t, "'1", key.CustomerID)
	assert.Empty(t, key.MeterPointID)
	assert.True(t, key.PeriodStart.IsZero())
}

func TestKeyLess(t *testing.T) {
	base := Key{
		CustomerID:   "'1",
		MeterPointID: "'1",
		PeriodStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	byCustomer := base
	byCustomer.CustomerID = "'2"
	assert.True(t, base.Less(byCustomer))
	assert.False(t, byCustomer.Less(base))

	byMeterPoint := base
	byMeterPoint.MeterPointID = "'2"
	assert.True(t, base.Less(byMeterPoint))

	byPeriod := base
	byPeriod.PeriodStart = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, base.Less(byPeriod))

	assert.False(t, base.Less(base))
}

func TestRecordMerge(t *testing.T) {
	record := Record{FieldCustomerID: "'1"}
	record.Merge(Record{FieldAmountDue: 100.0})

	assert.Equal(t, "'1", record[FieldCustomerID])
	assert.Equal(t, 100.0, record[FieldAmountDue])
}

func TestCanonicalColumnsShape(t *testing.T) {
	columns := CanonicalColumns()

	// The identity columns lead, in fixed order.
	assert.Equal(t, IdentityColumns(), columns[:4])

	seen := make(map[string]bool, len(columns))
	for _, column := range columns {
		assert.False(t, seen[column], "duplicate column %s", column)
		seen[column] = true
	}

	// Band-specific column rules: no free column on the reactive band, the
	// peak-adjustment column only on sharp and peak.
	assert.Contains(t, columns, "有功总免费电量")
	assert.NotContains(t, columns, "无功总免费电量")
	assert.Contains(t, columns, "尖尖峰调整电量")
	assert.Contains(t, columns, "峰尖峰调整电量")
	assert.NotContains(t, columns, "平尖峰调整电量")
	assert.NotContains(t, columns, "有功总尖峰调整电量")
}
