// =============================================================================
// PDF Bill Extraction - Bill Totals Extractor (电费信息)
// =============================================================================
//
// The bill-totals section prints the amount due twice - once in capital-form
// words, once in numerals - followed by the average unit price. The three
// labels appear in strict order with arbitrary text in between.
//
// =============================================================================

package extractor

import (
	"regexp"

	"github.com/ginjaninja78/PDF-bill-extraction/internal/bill"
)

// billPattern matches the three labeled totals. The 大写 line may or may not
// end with 元; the 小写 amount and the average price always carry their
// units, and the unit tag of the price uses half-width parentheses.
var billPattern = regexp.MustCompile(`(?s)` +
	`应收电费合计（大写）： ?(?P<amount_words>` + wordClass + `) ?元?.*?` +
	`应收电费合计（小写）： ?(?P<amount>[\d.]+) ?元.*?` +
	`平均电价： ?(?P<average_price>[\d.]+) ?\(元/千瓦时\)`)

// billFields is the conversion dispatch table for the section.
var billFields = []fieldSpec{
	{group: "amount_words", field: bill.FieldAmountDueWords, parser: parseString},
	{group: "amount", field: bill.FieldAmountDue, parser: parseFloat},
	{group: "average_price", field: bill.FieldAveragePrice, parser: parseFloat},
}

// ExtractBillTotals extracts the bill-totals fields from normalized page
// text. It fails with a NoMatchError if the labeled sequence is absent.
func ExtractBillTotals(text string) (bill.Record, error) {
	groups, err := searchToMap(billPattern, text, SectionBillTotals)
	if err != nil {
		return nil, err
	}
	return buildRecord(groups, billFields)
}
