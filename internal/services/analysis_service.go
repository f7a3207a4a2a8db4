package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingExpenseDate = errors.New("expense record is missing a date")
	ErrInvalidExpenseDate = errors.New("expense record has an unparseable date")
)

var (
	trendRatio         = decimal.NewFromFloat(1.3)
	trendFloor         = decimal.NewFromInt(500)
	concentrationShare = decimal.NewFromFloat(0.30)
	savingsTargetPct   = decimal.NewFromInt(20)
	hundred            = decimal.NewFromInt(100)
)

// expenseDateLayouts covers the timestamp shapes clients actually send:
// full RFC3339, space-separated datetimes, and bare or slashed dates in
// both year-first and day-first order.
var expenseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

type datedExpense struct {
	amount   decimal.Decimal
	category string
	date     time.Time
}

type analysisService struct {
	now     func() time.Time
	metrics MetricsRecorderInterface
}

// NewAnalysisService returns the monthly spending analyzer. The clock
// is injectable so month-boundary behavior is testable; pass nil to use
// the wall clock.
func NewAnalysisService(now func() time.Time, metrics MetricsRecorderInterface) AnalysisServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &analysisService{now: now, metrics: metrics}
}

// Analyze produces the full monthly report: forecast, category
// breakdown, budget feedback against income, and a health score. Income
// doubles as the monthly budget limit. An empty expense list is the
// onboarding case and yields a perfect-score report rather than an
// error.
func (s *analysisService) Analyze(expenses []dto.ExpenseInput, income decimal.Decimal) (*models.AnalysisReport, error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("analysis.request", time.Since(started))
	}()

	if len(expenses) == 0 {
		report := &models.AnalysisReport{
			Forecast:     decimal.Zero,
			CurrentSpend: decimal.Zero,
			HealthScore:  100,
			Alerts:       []string{},
			Suggestions:  []string{"Start adding expenses to get insights!"},
			BudgetStatus: models.BudgetStatusWithin,
			Breakdown:    map[string]decimal.Decimal{},
		}
		s.metrics.RecordGauge("analysis.health_score", 100, nil)
		return report, nil
	}

	entries, err := s.resolveEntries(expenses)
	if err != nil {
		return nil, err
	}

	now := s.now()
	currentMonth, lastMonth := s.partitionByMonth(entries, now)

	currentSpend := sumAmounts(currentMonth)
	breakdown := categoryTotals(currentMonth)
	lastBreakdown := categoryTotals(lastMonth)

	forecast := s.forecastSpend(currentSpend, now)

	alerts, suggestions := s.trendInsights(forecast, currentSpend, income, breakdown, lastBreakdown)
	slog.Debug("trend insights computed",
		"alerts", len(alerts),
		"suggestions", len(suggestions))

	status, alerts, suggestions := s.budgetFeedback(currentSpend, income, now)

	score := s.healthScore(currentSpend, income)

	report := &models.AnalysisReport{
		Forecast:     forecast.Round(2),
		CurrentSpend: currentSpend.Round(2),
		HealthScore:  score,
		Alerts:       alerts,
		Suggestions:  suggestions,
		BudgetStatus: status,
		Breakdown:    roundBreakdown(breakdown),
	}

	s.metrics.RecordGauge("analysis.health_score", float64(score), nil)

	slog.Info("analysis completed",
		"expense_count", len(expenses),
		"current_spend", report.CurrentSpend.String(),
		"forecast", report.Forecast.String(),
		"budget_status", status,
		"health_score", score)

	return report, nil
}

func (s *analysisService) resolveEntries(expenses []dto.ExpenseInput) ([]datedExpense, error) {
	entries := make([]datedExpense, 0, len(expenses))
	for i, expense := range expenses {
		raw := expense.DateField()
		if raw == "" {
			return nil, fmt.Errorf("expense %d: %w", i, ErrMissingExpenseDate)
		}
		parsed, err := parseExpenseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}
		category := expense.Category
		if category == "" {
			category = models.CategoryOther
		}
		entries = append(entries, datedExpense{
			amount:   expense.Amount,
			category: category,
			date:     parsed,
		})
	}
	return entries, nil
}

func parseExpenseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range expenseDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpenseDate, raw)
}

func (s *analysisService) partitionByMonth(entries []datedExpense, now time.Time) (current, last []datedExpense) {
	lastMonthRef := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for _, entry := range entries {
		switch {
		case entry.date.Year() == now.Year() && entry.date.Month() == now.Month():
			current = append(current, entry)
		case entry.date.Year() == lastMonthRef.Year() && entry.date.Month() == lastMonthRef.Month():
			last = append(last, entry)
		}
	}
	return current, last
}

// forecastSpend linearly scales month-to-date spending across the full
// month. Day zero cannot happen with a real clock but the injected one
// can produce it; fall back to the unscaled spend.
func (s *analysisService) forecastSpend(currentSpend decimal.Decimal, now time.Time) decimal.Decimal {
	daysPassed := now.Day()
	if daysPassed == 0 {
		return currentSpend
	}
	daysInMonth := daysIn(now)
	return currentSpend.
		Div(decimal.NewFromInt(int64(daysPassed))).
		Mul(decimal.NewFromInt(int64(daysInMonth)))
}

func (s *analysisService) trendInsights(
	forecast, currentSpend, income decimal.Decimal,
	breakdown, lastBreakdown map[string]decimal.Decimal,
) (alerts, suggestions []string) {
	alerts = []string{}
	suggestions = []string{}

	if income.IsPositive() && forecast.GreaterThan(income) {
		alerts = append(alerts, fmt.Sprintf("Risk: Projected to exceed income by %s.",
			formatMoney(forecast.Sub(income))))
	}

	for _, category := range sortedKeys(breakdown) {
		amount := breakdown[category]
		lastAmount, hadLast := lastBreakdown[category]
		if hadLast && lastAmount.IsPositive() &&
			amount.GreaterThan(lastAmount.Mul(trendRatio)) &&
			amount.GreaterThan(trendFloor) {
			growthPct := amount.Sub(lastAmount).Div(lastAmount).Mul(hundred).IntPart()
			alerts = append(alerts, fmt.Sprintf("%s: Spending up %d%% vs last month.",
				category, growthPct))
		}
		if income.IsPositive() && amount.Div(income).GreaterThan(concentrationShare) {
			sharePct := amount.Div(income).Mul(hundred).IntPart()
			alerts = append(alerts, fmt.Sprintf("High Spend: %s consumed %d%% of income.",
				category, sharePct))
		}
	}

	savings := income.Sub(forecast)
	if savings.IsPositive() {
		savingsPct := savings.Div(income).Mul(hundred)
		if savingsPct.LessThan(savingsTargetPct) {
			suggestions = append(suggestions, fmt.Sprintf(
				"Try to save at least 20%%. Current projection: %d%%.", savingsPct.IntPart()))
		} else {
			suggestions = append(suggestions, fmt.Sprintf(
				"Great job! On track to save %d%%.", savingsPct.IntPart()))
		}
	} else {
		suggestions = append(suggestions, "Look for non-essential categories to cut down.")
	}

	if top, topAmount, ok := topCategory(breakdown); ok && topAmount.IsPositive() {
		suggestions = append(suggestions, fmt.Sprintf(
			"Tip: %s is your highest expense. Can you reduce it?", top))
	}

	return alerts, suggestions
}

// budgetFeedback classifies the month against the budget limit and
// writes the user-facing coaching copy. Its output replaces the trend
// insight lists on the final report.
func (s *analysisService) budgetFeedback(currentSpend, budget decimal.Decimal, now time.Time) (string, []string, []string) {
	alerts := []string{}
	suggestions := []string{}

	if !budget.IsPositive() {
		suggestions = append(suggestions, "Set a budget to get personalized insights!")
		return models.BudgetStatusWithin, alerts, suggestions
	}

	daysInMonth := daysIn(now)
	daysRemaining := daysInMonth - now.Day()
	spentPct := currentSpend.Div(budget).Mul(hundred)

	switch {
	case currentSpend.GreaterThan(budget):
		overage := currentSpend.Sub(budget)
		alerts = append(alerts, fmt.Sprintf(
			"You have spent ₹%s out of your ₹%s budget limit.",
			formatMoney(currentSpend), formatMoney(budget)))
		alerts = append(alerts, fmt.Sprintf(
			"This means you have exceeded your budget by ₹%s.", formatMoney(overage)))
		if daysRemaining > 0 {
			alerts = append(alerts, fmt.Sprintf(
				"To stay aligned, try reducing your spending by at least ₹%s over the remaining days.",
				formatMoney(overage)))
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Based on your spending pattern, reducing non-essential expenses by approximately ₹%s can help you return within your budget limit.",
			formatMoney(overage)))
		return models.BudgetStatusOverspending, alerts, suggestions

	case spentPct.GreaterThanOrEqual(decimal.NewFromInt(70)):
		remaining := budget.Sub(currentSpend)
		alerts = append(alerts, fmt.Sprintf(
			"You have spent ₹%s out of your ₹%s monthly budget limit.",
			formatMoney(currentSpend), formatMoney(budget)))
		if daysRemaining > 0 && remaining.IsPositive() {
			alerts = append(alerts, fmt.Sprintf(
				"You have ₹%s remaining for the next %d days.",
				formatMoney(remaining), daysRemaining))
			dailyCap := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
			suggestions = append(suggestions, fmt.Sprintf(
				"To stay within your budget, try limiting your daily spending to around ₹%s for the rest of the month.",
				formatMoney(dailyCap)))
			suggestions = append(suggestions,
				"Reducing non-essential expenses like food delivery or shopping may help you maintain balance.")
		} else {
			alerts = append(alerts,
				"You are nearing your budget threshold. Consider reducing discretionary expenses.")
		}
		return models.BudgetStatusApproaching, alerts, suggestions

	default:
		remaining := budget.Sub(currentSpend)
		alerts = append(alerts, fmt.Sprintf(
			"You have spent ₹%s out of your ₹%s monthly limit.",
			formatMoney(currentSpend), formatMoney(budget)))
		if daysRemaining > 0 && remaining.IsPositive() {
			dailyCap := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
			suggestions = append(suggestions, fmt.Sprintf(
				"You have ₹%s remaining for the next %d days.",
				formatMoney(remaining), daysRemaining))
			suggestions = append(suggestions, fmt.Sprintf(
				"To stay within your budget, try limiting your daily spending to around ₹%s for the rest of the month.",
				formatMoney(dailyCap)))
		}
		suggestions = append(suggestions, "Great job! You are managing your finances well.")
		return models.BudgetStatusWithin, alerts, suggestions
	}
}

// healthScore starts at 100 and deducts a flat penalty per band of
// month-to-date spend against income. Zero or missing income is the
// unknown case and lands in the middle of the scale.
func (s *analysisService) healthScore(currentSpend, income decimal.Decimal) int {
	if !income.IsPositive() {
		return 50
	}
	ratio := currentSpend.Div(income).Mul(hundred)
	score := 100
	switch {
	case ratio.GreaterThan(hundred):
		score -= 50
	case ratio.GreaterThan(decimal.NewFromInt(90)):
		score -= 40
	case ratio.GreaterThan(decimal.NewFromInt(70)):
		score -= 20
	case ratio.GreaterThan(decimal.NewFromInt(50)):
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sumAmounts(entries []datedExpense) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.amount)
	}
	return total
}

func categoryTotals(entries []datedExpense) map[string]decimal.Decimal {
	totals := map[string]decimal.Decimal{}
	for _, entry := range entries {
		totals[entry.category] = totals[entry.category].Add(entry.amount)
	}
	return totals
}

func roundBreakdown(breakdown map[string]decimal.Decimal) map[string]decimal.Decimal {
	rounded := make(map[string]decimal.Decimal, len(breakdown))
	for category, amount := range breakdown {
		rounded[category] = amount.Round(2)
	}
	return rounded
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// topCategory resolves ties toward the lexicographically smallest name
// so reports stay deterministic.
func topCategory(breakdown map[string]decimal.Decimal) (string, decimal.Decimal, bool) {
	var (
		best       string
		bestAmount decimal.Decimal
		found      bool
	)
	for _, category := range sortedKeys(breakdown) {
		amount := breakdown[category]
		if !found || amount.GreaterThan(bestAmount) {
			best = category
			bestAmount = amount
			found = true
		}
	}
	return best, bestAmount, found
}

// formatMoney renders a rupee quantity with commas grouping the
// thousands, dropping the fractional part.
func formatMoney(amount decimal.Decimal) string {
	digits := amount.Abs().Round(0).BigInt().String()

	groups := []string{}
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ",")
	if amount.IsNegative() {
		return "-" + formatted
	}
	return formatted
}
