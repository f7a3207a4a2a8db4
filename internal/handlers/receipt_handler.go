package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/errors"
	"expense-insight-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptHandler handles receipt interpretation HTTP requests
type ReceiptHandler struct {
	parser services.ReceiptParserInterface
	ocr    services.OCRClientInterface
	pdf    services.PDFTextExtractorInterface
}

// NewReceiptHandler creates a new receipt handler. The OCR and PDF
// clients are optional; when nil the corresponding upload endpoints
// report the capability as unavailable.
func NewReceiptHandler(
	parser services.ReceiptParserInterface,
	ocr services.OCRClientInterface,
	pdf services.PDFTextExtractorInterface,
) *ReceiptHandler {
	return &ReceiptHandler{
		parser: parser,
		ocr:    ocr,
		pdf:    pdf,
	}
}

// ProcessText interprets a raw expense text into a structured record
// @Summary Process expense text
// @Description Interpret a free-form expense sentence or receipt text into a structured expense record
// @Tags Receipts
// @Accept json
// @Produce json
// @Param request body dto.ProcessTextRequest true "Expense text to interpret"
// @Success 200 {object} models.ExpenseRecord "Structured expense record"
// @Failure 400 {object} errors.ErrorResponse "RECEIPT_001 - No amount found or RECEIPT_002 - Missing text"
// @Router /process [post]
func (h *ReceiptHandler) ProcessText(c echo.Context) error {
	var req dto.ProcessTextRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ReceiptMissingText)
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ReceiptMissingText)
	}

	record := h.parser.Parse(req.Text)
	if !record.HasAmount() {
		return SendError(c, errors.ReceiptAmountUndeterminable)
	}

	return c.JSON(http.StatusOK, record)
}

// ProcessImageReceipt extracts text from an uploaded receipt image and interprets it
// @Summary Process image receipt
// @Description Run OCR over an uploaded receipt image and interpret the extracted text
// @Tags Receipts
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file true "Receipt image"
// @Success 200 {object} models.ExpenseRecord "Structured expense record"
// @Failure 400 {object} errors.ErrorResponse "RECEIPT_001/003/004/005 - Unusable upload"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - OCR capability unavailable"
// @Router /process-image-receipt [post]
func (h *ReceiptHandler) ProcessImageReceipt(c echo.Context) error {
	if h.ocr == nil {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("Image recognition is not configured"))
	}

	content, errCode := readUpload(c, "receipt")
	if errCode != "" {
		return SendError(c, errCode)
	}

	text, err := h.ocr.ExtractText(c.Request().Context(), content)
	if err != nil {
		return SendSystemError(c, err)
	}
	if strings.TrimSpace(text) == "" {
		return SendError(c, errors.ReceiptNoTextDetected)
	}

	record := h.parser.Parse(text)
	if !record.HasAmount() {
		return SendError(c, errors.ReceiptAmountUndeterminable)
	}

	return c.JSON(http.StatusOK, record)
}

// ProcessPDFReceipt extracts text from an uploaded PDF invoice and interprets it
// @Summary Process PDF receipt
// @Description Extract the text layer of an uploaded PDF invoice and interpret it
// @Tags Receipts
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF invoice"
// @Success 200 {object} models.ExpenseRecord "Structured expense record"
// @Failure 400 {object} errors.ErrorResponse "RECEIPT_001/003/004/005 - Unusable upload"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - PDF extraction unavailable"
// @Router /process-pdf-receipt [post]
func (h *ReceiptHandler) ProcessPDFReceipt(c echo.Context) error {
	if h.pdf == nil {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("PDF extraction is not configured"))
	}

	content, errCode := readUpload(c, "pdf")
	if errCode != "" {
		return SendError(c, errCode)
	}

	text, err := h.pdf.ExtractText(c.Request().Context(), content)
	if err != nil {
		return SendSystemError(c, err)
	}
	if strings.TrimSpace(text) == "" {
		return SendError(c, errors.ReceiptNoTextDetected)
	}

	record := h.parser.Parse(text)
	if !record.HasAmount() {
		return SendError(c, errors.ReceiptAmountUndeterminable)
	}

	return c.JSON(http.StatusOK, record)
}

// readUpload fetches a multipart upload by field name and returns its
// bytes, or the error code describing why the upload is unusable.
func readUpload(c echo.Context, field string) ([]byte, errors.ErrorCode) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, errors.ReceiptMissingFile
	}
	if fileHeader.Filename == "" || fileHeader.Size == 0 {
		return nil, errors.ReceiptEmptyFile
	}

	content, err := readAll(fileHeader)
	if err != nil {
		return nil, errors.ReceiptEmptyFile
	}
	if len(content) == 0 {
		return nil, errors.ReceiptEmptyFile
	}
	return content, ""
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
