package document

import (
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names produced by the extraction engine and accepted as reviewer
// corrections.
const (
	FieldInvoiceNumber      = "invoice_number"
	FieldCustomerName       = "customer_name"
	FieldDestinationCountry = "destination_country"
	FieldTotalValue         = "total_value"
	FieldCurrency           = "currency"
	FieldGrossWeight        = "gross_weight"
	FieldPackageCount       = "package_count"
	FieldFeriReference      = "feri_reference"
)

// LineItem is one row of an invoice or packing list as read by the engine.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	GrossWeight decimal.Decimal `json:"gross_weight"`
}

// Extraction is the payload staged for review.
type Extraction struct {
	Fields    map[string]string `json:"fields"`
	LineItems []LineItem        `json:"line_items"`
}

// NewExtraction normalises field names to lower snake case and drops blank values.
func NewExtraction(fields map[string]string, items []LineItem) Extraction {
	normalised := make(map[string]string, len(fields))
	for k, v := range fields {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		normalised[normaliseKey(k)] = v
	}
	return Extraction{Fields: normalised, LineItems: append([]LineItem(nil), items...)}
}

// Merge returns the extracted fields overlaid with corrections. A blank
// correction removes the extracted value.
func (e Extraction) Merge(corrections map[string]string) map[string]string {
	merged := maps.Clone(e.Fields)
	if merged == nil {
		merged = make(map[string]string, len(corrections))
	}
	for k, v := range corrections {
		k = normaliseKey(k)
		v = strings.TrimSpace(v)
		if v == "" {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}

// TotalGrossWeight sums line item weights.
func (e Extraction) TotalGrossWeight() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.LineItems {
		total = total.Add(item.GrossWeight)
	}
	return total
}

// TotalQuantity sums line item quantities.
func (e Extraction) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.LineItems {
		total = total.Add(item.Quantity)
	}
	return total
}

func normaliseKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(k)
}
