package services

import (
	"testing"
	"time"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalysisServiceTestSuite struct {
	suite.Suite
	service AnalysisServiceInterface
}

func TestAnalysisServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}

// The fixed clock sits on day 15 of a 31-day month, leaving 16 days.
func (s *AnalysisServiceTestSuite) SetupTest() {
	fixedNow := func() time.Time {
		return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
	s.service = NewAnalysisService(fixedNow, NewNoopMetricsRecorder())
}

func expense(amount, category, date string) dto.ExpenseInput {
	return dto.ExpenseInput{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func (s *AnalysisServiceTestSuite) TestAnalyze_EmptyExpenses() {
	report, err := s.service.Analyze([]dto.ExpenseInput{}, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.True(report.Forecast.IsZero())
	s.True(report.CurrentSpend.IsZero())
	s.Equal(100, report.HealthScore)
	s.Empty(report.Alerts)
	s.Equal([]string{"Start adding expenses to get insights!"}, report.Suggestions)
	s.Equal(models.BudgetStatusWithin, report.BudgetStatus)
	s.Empty(report.Breakdown)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_ForecastScalesMonthToDate() {
	expenses := []dto.ExpenseInput{
		expense("6000", models.CategoryHousingRent, "2025-03-01"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.True(report.CurrentSpend.Equal(decimal.NewFromInt(6000)))
	// 6000 / 15 days * 31 days
	s.True(report.Forecast.Equal(decimal.NewFromInt(12400)),
		"got forecast %s", report.Forecast)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_Overspending() {
	expenses := []dto.ExpenseInput{
		expense("4000", models.CategoryHousingRent, "2025-03-01"),
		expense("2000", models.CategoryFoodDining, "2025-03-10"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(5000))

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusOverspending, report.BudgetStatus)
	s.Require().Len(report.Alerts, 3)
	s.Equal("You have spent ₹6,000 out of your ₹5,000 budget limit.", report.Alerts[0])
	s.Equal("This means you have exceeded your budget by ₹1,000.", report.Alerts[1])
	s.Equal("To stay aligned, try reducing your spending by at least ₹1,000 over the remaining days.", report.Alerts[2])
	s.Require().Len(report.Suggestions, 1)
	s.Contains(report.Suggestions[0], "reducing non-essential expenses by approximately ₹1,000")
	s.Equal(50, report.HealthScore)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_ApproachingLimitAtExactThreshold() {
	expenses := []dto.ExpenseInput{
		expense("7000", models.CategoryShopping, "2025-03-05"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(10000))

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusApproaching, report.BudgetStatus)
	s.Require().Len(report.Alerts, 2)
	s.Equal("You have spent ₹7,000 out of your ₹10,000 monthly budget limit.", report.Alerts[0])
	s.Equal("You have ₹3,000 remaining for the next 16 days.", report.Alerts[1])
	s.Require().Len(report.Suggestions, 2)
	// 3000 remaining / 16 days, rounded for display
	s.Contains(report.Suggestions[0], "around ₹188")
}

func (s *AnalysisServiceTestSuite) TestAnalyze_WithinBudget() {
	expenses := []dto.ExpenseInput{
		expense("2000", models.CategoryGrocery, "2025-03-08"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(10000))

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusWithin, report.BudgetStatus)
	s.Require().Len(report.Alerts, 1)
	s.Equal("You have spent ₹2,000 out of your ₹10,000 monthly limit.", report.Alerts[0])
	s.Require().Len(report.Suggestions, 3)
	s.Equal("You have ₹8,000 remaining for the next 16 days.", report.Suggestions[0])
	// 8000 remaining / 16 days
	s.Equal("To stay within your budget, try limiting your daily spending to around ₹500 for the rest of the month.", report.Suggestions[1])
	s.Equal("Great job! You are managing your finances well.", report.Suggestions[2])
	s.Equal(100, report.HealthScore)
}

// The score follows month-to-date spend, not the projection: on day 15
// a 60% spend ratio scores 90 even though the linear forecast already
// exceeds income.
func (s *AnalysisServiceTestSuite) TestAnalyze_HealthScoreUsesMonthToDateSpend() {
	expenses := []dto.ExpenseInput{
		expense("6000", models.CategoryHousingRent, "2025-03-01"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(10000))

	s.Require().NoError(err)
	s.True(report.Forecast.GreaterThan(decimal.NewFromInt(10000)),
		"got forecast %s", report.Forecast)
	s.Equal(90, report.HealthScore)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_ApproachingLimitOnLastDay() {
	lastDay := func() time.Time {
		return time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
	}
	service := NewAnalysisService(lastDay, NewNoopMetricsRecorder())

	expenses := []dto.ExpenseInput{
		expense("8000", models.CategoryShopping, "2025-03-05"),
	}

	report, err := service.Analyze(expenses, decimal.NewFromInt(10000))

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusApproaching, report.BudgetStatus)
	s.Require().Len(report.Alerts, 2)
	s.Equal("You have spent ₹8,000 out of your ₹10,000 monthly budget limit.", report.Alerts[0])
	s.Equal("You are nearing your budget threshold. Consider reducing discretionary expenses.", report.Alerts[1])
	s.Empty(report.Suggestions)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_ZeroIncome() {
	expenses := []dto.ExpenseInput{
		expense("500", models.CategoryFoodDining, "2025-03-12"),
	}

	report, err := s.service.Analyze(expenses, decimal.Zero)

	s.Require().NoError(err)
	s.Equal(models.BudgetStatusWithin, report.BudgetStatus)
	s.Empty(report.Alerts)
	s.Equal([]string{"Set a budget to get personalized insights!"}, report.Suggestions)
	s.Equal(50, report.HealthScore)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_BreakdownGroupsCurrentMonthOnly() {
	expenses := []dto.ExpenseInput{
		expense("300", models.CategoryFoodDining, "2025-03-02"),
		expense("200", models.CategoryFoodDining, "2025-03-09"),
		expense("1000", models.CategoryTransport, "2025-03-11"),
		// Last month, excluded from spend and breakdown
		expense("9999", models.CategoryShopping, "2025-02-20"),
		// Older history, ignored entirely
		expense("5000", models.CategoryTravel, "2024-12-25"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.True(report.CurrentSpend.Equal(decimal.NewFromInt(1500)))
	s.Require().Len(report.Breakdown, 2)
	s.True(report.Breakdown[models.CategoryFoodDining].Equal(decimal.NewFromInt(500)))
	s.True(report.Breakdown[models.CategoryTransport].Equal(decimal.NewFromInt(1000)))
}

func (s *AnalysisServiceTestSuite) TestAnalyze_AmountsRoundedToTwoPlaces() {
	expenses := []dto.ExpenseInput{
		expense("100.555", models.CategoryFoodDining, "2025-03-03"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.Equal("100.56", report.CurrentSpend.String())
	s.Equal("100.56", report.Breakdown[models.CategoryFoodDining].String())
}

func (s *AnalysisServiceTestSuite) TestAnalyze_DateFormats() {
	testCases := []struct {
		date        string
		description string
	}{
		{"2025-03-10", "bare ISO date"},
		{"2025/03/10", "slashed year-first"},
		{"10-03-2025", "day-first dashes"},
		{"10/03/2025", "day-first slashes"},
		{"2025-03-10T08:30:00Z", "RFC3339"},
		{"2025-03-10 08:30:00", "space separated datetime"},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			expenses := []dto.ExpenseInput{
				expense("700", models.CategoryGrocery, tc.date),
			}
			report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))
			s.Require().NoError(err)
			s.True(report.CurrentSpend.Equal(decimal.NewFromInt(700)),
				"date %q should land in the current month", tc.date)
		})
	}
}

func (s *AnalysisServiceTestSuite) TestAnalyze_TimestampPreferredOverDate() {
	expenses := []dto.ExpenseInput{
		{
			Amount:    decimal.NewFromInt(400),
			Category:  models.CategoryGrocery,
			Date:      "2024-01-01",
			Timestamp: "2025-03-10T08:30:00Z",
		},
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.True(report.CurrentSpend.Equal(decimal.NewFromInt(400)))
}

func (s *AnalysisServiceTestSuite) TestAnalyze_MissingDate() {
	expenses := []dto.ExpenseInput{
		{Amount: decimal.NewFromInt(100), Category: models.CategoryGrocery},
	}

	_, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().Error(err)
	s.ErrorIs(err, ErrMissingExpenseDate)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_UnparseableDate() {
	expenses := []dto.ExpenseInput{
		expense("100", models.CategoryGrocery, "not-a-date"),
	}

	_, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidExpenseDate)
}

func (s *AnalysisServiceTestSuite) trendService() *analysisService {
	return s.service.(*analysisService)
}

func money(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func (s *AnalysisServiceTestSuite) TestTrendInsights_ProjectedToExceedIncome() {
	alerts, _ := s.trendService().trendInsights(
		money("12000"), money("6000"), money("10000"),
		map[string]decimal.Decimal{}, map[string]decimal.Decimal{})

	s.Contains(alerts, "Risk: Projected to exceed income by 2,000.")
}

func (s *AnalysisServiceTestSuite) TestTrendInsights_GrowthAlertBoundaries() {
	testCases := []struct {
		description string
		lastAmount  string
		amount      string
		alert       string
	}{
		{"exactly 1.3x last month stays quiet", "1000", "1300", ""},
		{"just above 1.3x fires", "1000", "1301", "Food & Dining: Spending up 30% vs last month."},
		{"above ratio but at the 500 floor stays quiet", "100", "500", ""},
		{"just above the 500 floor fires", "100", "501", "Food & Dining: Spending up 401% vs last month."},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			breakdown := map[string]decimal.Decimal{
				models.CategoryFoodDining: money(tc.amount),
			}
			last := map[string]decimal.Decimal{
				models.CategoryFoodDining: money(tc.lastAmount),
			}

			alerts, _ := s.trendService().trendInsights(
				decimal.Zero, decimal.Zero, money("50000"), breakdown, last)

			if tc.alert == "" {
				s.Empty(alerts)
			} else {
				s.Contains(alerts, tc.alert)
			}
		})
	}
}

func (s *AnalysisServiceTestSuite) TestTrendInsights_ConcentrationBoundary() {
	income := money("10000")

	alerts, _ := s.trendService().trendInsights(
		decimal.Zero, decimal.Zero, income,
		map[string]decimal.Decimal{models.CategoryShopping: money("3000")},
		map[string]decimal.Decimal{})
	s.Empty(alerts, "exactly 30% of income should stay quiet")

	alerts, _ = s.trendService().trendInsights(
		decimal.Zero, decimal.Zero, income,
		map[string]decimal.Decimal{models.CategoryShopping: money("3001")},
		map[string]decimal.Decimal{})
	s.Contains(alerts, "High Spend: Shopping consumed 30% of income.")
}

func (s *AnalysisServiceTestSuite) TestTrendInsights_SavingsSuggestions() {
	income := money("10000")

	// Forecast eats the whole income, nothing left to save.
	_, suggestions := s.trendService().trendInsights(
		income, decimal.Zero, income,
		map[string]decimal.Decimal{}, map[string]decimal.Decimal{})
	s.Contains(suggestions, "Look for non-essential categories to cut down.")

	// Positive savings below the 20% target.
	_, suggestions = s.trendService().trendInsights(
		money("9000"), decimal.Zero, income,
		map[string]decimal.Decimal{}, map[string]decimal.Decimal{})
	s.Contains(suggestions, "Try to save at least 20%. Current projection: 10%.")
	s.NotContains(suggestions, "Look for non-essential categories to cut down.")

	// On target.
	_, suggestions = s.trendService().trendInsights(
		money("7000"), decimal.Zero, income,
		map[string]decimal.Decimal{}, map[string]decimal.Decimal{})
	s.Contains(suggestions, "Great job! On track to save 30%.")
}

func (s *AnalysisServiceTestSuite) TestTrendInsights_TopCategoryTip() {
	_, suggestions := s.trendService().trendInsights(
		decimal.Zero, decimal.Zero, money("50000"),
		map[string]decimal.Decimal{
			models.CategoryGrocery:   money("800"),
			models.CategoryTransport: money("1200"),
		},
		map[string]decimal.Decimal{})

	s.Contains(suggestions, "Tip: Transport is your highest expense. Can you reduce it?")
}

func (s *AnalysisServiceTestSuite) TestAnalyze_UncategorizedDefaultsToOther() {
	expenses := []dto.ExpenseInput{
		expense("250", "", "2025-03-05"),
	}

	report, err := s.service.Analyze(expenses, decimal.NewFromInt(50000))

	s.Require().NoError(err)
	s.True(report.Breakdown[models.CategoryOther].Equal(decimal.NewFromInt(250)))
}
