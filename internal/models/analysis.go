package models

import "github.com/shopspring/decimal"

// Budget status tiers, mutually exclusive, evaluated in priority order
// overspending > approaching_limit > within_budget.
const (
	BudgetStatusWithin       = "within_budget"
	BudgetStatusApproaching  = "approaching_limit"
	BudgetStatusOverspending = "overspending"
)

// AnalysisReport is the output of the financial analysis engine. It is
// recomputed from scratch on every call; there is no cached or
// incremental state. All monetary figures are rounded to 2 decimal
// places before the report is returned.
type AnalysisReport struct {
	Forecast     decimal.Decimal            `json:"forecast"`
	CurrentSpend decimal.Decimal            `json:"current_spend"`
	HealthScore  int                        `json:"health_score"`
	Alerts       []string                   `json:"alerts"`
	Suggestions  []string                   `json:"suggestions"`
	BudgetStatus string                     `json:"budget_status"`
	Breakdown    map[string]decimal.Decimal `json:"breakdown"`
}

// IsValidBudgetStatus checks if a status string is one of the defined tiers.
func IsValidBudgetStatus(status string) bool {
	switch status {
	case BudgetStatusWithin, BudgetStatusApproaching, BudgetStatusOverspending:
		return true
	}
	return false
}
