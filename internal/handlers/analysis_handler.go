package handlers

import (
	stderrors "errors"
	"net/http"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/errors"
	"expense-insight-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler handles financial analysis HTTP requests
type AnalysisHandler struct {
	analysis services.AnalysisServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysis services.AnalysisServiceInterface) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// AnalyzeFinancials produces the monthly spending report for a set of expenses
// @Summary Analyze financials
// @Description Compute forecast, budget feedback, category breakdown and health score for the current month
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Expense history and monthly income"
// @Success 200 {object} models.AnalysisReport "Monthly analysis report"
// @Failure 400 {object} errors.ErrorResponse "ANALYSIS_001 - Missing expenses key or ANALYSIS_003 - Invalid income"
// @Failure 422 {object} errors.ErrorResponse "ANALYSIS_002 - Expense record missing a date"
// @Router /analyze-financials [post]
func (h *AnalysisHandler) AnalyzeFinancials(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("Request body must be valid JSON"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Expenses == nil {
		return SendError(c, errors.AnalysisMissingExpenses)
	}

	if req.Income.IsNegative() {
		return SendError(c, errors.AnalysisInvalidIncome)
	}

	report, err := h.analysis.Analyze(req.Expenses, req.Income)
	if err != nil {
		if stderrors.Is(err, services.ErrMissingExpenseDate) ||
			stderrors.Is(err, services.ErrInvalidExpenseDate) {
			return SendError(c, errors.AnalysisMissingDate,
				errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
