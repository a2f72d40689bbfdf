// =============================================================================
// PDF Bill Extraction - Shared Bill Types
// =============================================================================
//
// This package contains the data model shared across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - extractor
//   - aggregator
//   - csvwriter / xlsxwriter
//
// A bill record is a field-name -> value mapping rather than a struct: the
// two consumption layouts produce different field sets, and the output
// tables are built from the union of whatever fields were extracted. Field
// names are the literal Chinese labels printed on the bill, because they
// become the column headers of the output CSVs.
//
// =============================================================================

package bill

import (
	"fmt"
	"strconv"
	"time"
)

// =============================================================================
// FIELD NAMES
// =============================================================================

// Basic information section (基本信息).
const (
	FieldCustomerName      = "用户"
	FieldCustomerID        = "用户编号"
	FieldSettlementAccount = "结算户号"
	FieldSettlementName    = "结算户名"
	FieldMeterPointID      = "计量点编号"
	FieldMarketClass       = "市场化属性分类"
	FieldCategory          = "用电类别"
	FieldPeriodStart       = "用电开始时间"
	FieldPeriodEnd         = "用电结束时间"
)

// Consumption detail section (电量信息).
//
// FieldMeterAssetID is both the overall meter asset id of the record and,
// prefixed with a band label, the per-band meter asset id column.
//
// FieldActiveTotalConsumption is the pivot value field. For
// non-time-differentiated bills it is read directly from the 有功总 row; for
// time-differentiated bills it is synthesized as the sum of the per-band
// totals.
const (
	FieldMeterAssetID           = "表计资产编号"
	FieldActiveTotalConsumption = "有功总合计电量"
)

// Bill totals section (电费信息).
const (
	FieldAmountDueWords = "应收电费合计大写"
	FieldAmountDue      = "应收电费合计"
	FieldAveragePrice   = "平均电价"
)

// =============================================================================
// RECORD TYPE
// =============================================================================

// Record holds every field extracted from one bill page.
// Values are string, int, float64 or time.Time depending on the field's
// conversion rule. A record is immutable once extraction has finished.
type Record map[string]any

// Merge copies every field of other into r.
// The three extractors produce disjoint field sets, so no collision handling
// is needed; a later value simply overwrites an earlier one.
func (r Record) Merge(other Record) {
	for name, value := range other {
		r[name] = value
	}
}

// =============================================================================
// IDENTITY KEY
// =============================================================================

// Key is the identity of a record: one output row per distinct key.
type Key struct {
	CustomerID   string
	MeterPointID string
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// Key assembles the identity 4-tuple of the record.
// Missing or mistyped fields yield zero values, which sort first.
func (r Record) Key() Key {
	key := Key{}
	if s, ok := r[FieldCustomerID].(string); ok {
		key.CustomerID = s
	}
	if s, ok := r[FieldMeterPointID].(string); ok {
		key.MeterPointID = s
	}
	if t, ok := r[FieldPeriodStart].(time.Time); ok {
		key.PeriodStart = t
	}
	if t, ok := r[FieldPeriodEnd].(time.Time); ok {
		key.PeriodEnd = t
	}
	return key
}

// Less orders keys ascending by (customer id, meter point id, period start,
// period end). This is the row order of the flat output table.
func (k Key) Less(other Key) bool {
	if k.CustomerID != other.CustomerID {
		return k.CustomerID < other.CustomerID
	}
	if k.MeterPointID != other.MeterPointID {
		return k.MeterPointID < other.MeterPointID
	}
	if !k.PeriodStart.Equal(other.PeriodStart) {
		return k.PeriodStart.Before(other.PeriodStart)
	}
	return k.PeriodEnd.Before(other.PeriodEnd)
}

// String renders the key for duplicate-identity warnings.
func (k Key) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)",
		k.CustomerID, k.MeterPointID,
		k.PeriodStart.Format(DateLayout), k.PeriodEnd.Format(DateLayout))
}

// =============================================================================
// VALUE FORMATTING
// =============================================================================

// DateLayout is the output format for date-valued fields.
const DateLayout = "2006-01-02"

// FormatValue renders a record value as an output table cell.
// Floats use the shortest decimal representation that round-trips, so the
// output is byte-identical across runs.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(DateLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}
