package models

import "github.com/shopspring/decimal"

// Sentinel item labels used when no usable description survives extraction
const (
	ItemUnknown        = "Unknown Item"
	ItemScannedReceipt = "Scanned Receipt"
)

// ExpenseRecord is the structured result of parsing an unstructured
// receipt or expense text blob. Extraction is best-effort: every field
// except Item may be absent. A record without an amount is unusable for
// downstream bookkeeping and must be rejected at the API boundary; the
// parser itself always returns its best partial record.
type ExpenseRecord struct {
	Item     string           `json:"item"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
	Date     string           `json:"date,omitempty"`
}

// HasAmount reports whether a monetary total was recovered from the text.
func (r *ExpenseRecord) HasAmount() bool {
	return r.Amount != nil
}

// HasDate reports whether a transaction date was recovered from the text.
func (r *ExpenseRecord) HasDate() bool {
	return r.Date != ""
}
