package handlers

import (
	"net/http"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.ReceiptGeneratorInterface
	parser    services.ReceiptParserInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	generator services.ReceiptGeneratorInterface,
	parser services.ReceiptParserInterface,
) *DevHandler {
	return &DevHandler{
		generator: generator,
		parser:    parser,
	}
}

// GenerateMockReceipt produces a fake receipt and the record the parser derives from it
//
// Method: POST /api/v1/dev/mock-receipt
// Environment: Development only
//
// Query parameters:
//   - style: "invoice" (default) for a full receipt, "phrase" for a one-line expense sentence
//
// Success Response: 200 OK
//   - text: The generated receipt text
//   - parsed: The structured record the interpreter extracted from it
func (h *DevHandler) GenerateMockReceipt(c echo.Context) error {
	var text string
	if c.QueryParam("style") == "phrase" {
		text = h.generator.GenerateExpensePhrase()
	} else {
		text = h.generator.GenerateReceiptText()
	}

	record := h.parser.Parse(text)

	return c.JSON(http.StatusOK, dto.MockReceiptResponse{
		Text:   text,
		Parsed: record,
	})
}
