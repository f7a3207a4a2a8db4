package dto

import "github.com/shopspring/decimal"

// ExpenseInput is one dated, categorized, amount-bearing expense record
// as submitted for analysis. The date may arrive under either the
// "timestamp" or the "date" key; Timestamp wins when both are present.
// A record with neither is a hard input-contract violation.
type ExpenseInput struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category" validate:"omitempty,expense_category"`
	Date      string          `json:"date,omitempty" validate:"omitempty,record_date"`
	Timestamp string          `json:"timestamp,omitempty" validate:"omitempty,record_date"`
}

// DateField returns the record's date string, preferring the timestamp key.
func (e *ExpenseInput) DateField() string {
	if e.Timestamp != "" {
		return e.Timestamp
	}
	return e.Date
}

// AnalyzeRequest is the payload for the financial analysis endpoint.
// Income defaults to 0 when omitted, meaning "no budget set".
type AnalyzeRequest struct {
	Expenses []ExpenseInput  `json:"expenses" validate:"omitempty,dive"`
	Income   decimal.Decimal `json:"income"`
}
