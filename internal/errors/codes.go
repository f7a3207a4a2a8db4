package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Receipt processing error codes (RECEIPT_*)
const (
	ReceiptAmountUndeterminable ErrorCode = "RECEIPT_001"
	ReceiptMissingText          ErrorCode = "RECEIPT_002"
	ReceiptNoTextDetected       ErrorCode = "RECEIPT_003"
	ReceiptMissingFile          ErrorCode = "RECEIPT_004"
	ReceiptEmptyFile            ErrorCode = "RECEIPT_005"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisMissingExpenses ErrorCode = "ANALYSIS_001"
	AnalysisMissingDate     ErrorCode = "ANALYSIS_002"
	AnalysisInvalidIncome   ErrorCode = "ANALYSIS_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Receipt processing errors
	ReceiptAmountUndeterminable: "Could not determine the amount from the text",
	ReceiptMissingText:          "Invalid input. Please provide a \"text\" field",
	ReceiptNoTextDetected:       "No text detected in the uploaded document",
	ReceiptMissingFile:          "No file found in request",
	ReceiptEmptyFile:            "No file selected",

	// Analysis errors
	AnalysisMissingExpenses: "Invalid input. Please provide an \"expenses\" list",
	AnalysisMissingDate:     "Expense record is missing a usable date field",
	AnalysisInvalidIncome:   "Income must be a non-negative number",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
