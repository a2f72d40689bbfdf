// =============================================================================
// PDF Bill Extraction - Basic Information Extractor (基本信息)
// =============================================================================
//
// The basic-information section is a fixed sequence of labeled fields: the
// customer block printed under the bill title, then the 基本信息 table. The
// labels appear in strict order with arbitrary text in between, so the
// pattern chains label-capture pairs with non-greedy gaps.
//
// The three identifier fields are apostrophe-prefixed so spreadsheets keep
// them as text; the two period fields become dates.
//
// =============================================================================

package extractor

import (
	"regexp"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// informationPattern matches the nine labeled fields of the basic
// information section. Each label may be followed by a space after its
// full-width colon; the gaps between fields are non-greedy so a label never
// swallows a later one.
var informationPattern = regexp.MustCompile(`(?s)` +
	`尊敬的： ?(?P<customer>` + wordClass + `).*?` +
	`用户编号： ?(?P<customer_no>` + wordClass + `).*?` +
	`结算户号： ?(?P<settlement_no>` + wordClass + `).*?` +
	`结算户名： ?(?P<settlement_name>` + wordClass + `).*?` +
	`计量点编号： ?(?P<meter_point_no>` + wordClass + `).*?` +
	`市场化属性分类： ?(?P<market_class>` + wordClass + `).*?` +
	`用电类别： ?(?P<category>` + wordClass + `).*?` +
	`用电开始时间： ?(?P<period_start>` + dateClass + `).*?` +
	`用电结束时间： ?(?P<period_end>` + dateClass + `)`)

// informationFields is the conversion dispatch table for the section.
var informationFields = []fieldSpec{
	{group: "customer", field: bill.FieldCustomerName, parser: parseString},
	{group: "customer_no", field: bill.FieldCustomerID, parser: parseIdentifier},
	{group: "settlement_no", field: bill.FieldSettlementAccount, parser: parseIdentifier},
	{group: "settlement_name", field: bill.FieldSettlementName, parser: parseString},
	{group: "meter_point_no", field: bill.FieldMeterPointID, parser: parseIdentifier},
	{group: "market_class", field: bill.FieldMarketClass, parser: parseString},
	{group: "category", field: bill.FieldCategory, parser: parseString},
	{group: "period_start", field: bill.FieldPeriodStart, parser: parseDate},
	{group: "period_end", field: bill.FieldPeriodEnd, parser: parseDate},
}

// ExtractInformation extracts the basic-information fields from normalized
// page text. It fails with a NoMatchError if the labeled sequence is absent
// or out of order.
func ExtractInformation(text string) (bill.Record, error) {
	groups, err := searchToMap(informationPattern, text, SectionInformation)
	if err != nil {
		return nil, err
	}
	return buildRecord(groups, informationFields)
}
