package dto

// ProcessTextRequest is the payload for the free-form text processing endpoint
type ProcessTextRequest struct {
	Text string `json:"text" validate:"required,receipt_text"`
}

// MockReceiptResponse is the payload returned by the development
// mock-receipt endpoint: the generated raw text and, for convenience,
// the record the parser recovers from it.
type MockReceiptResponse struct {
	Text   string      `json:"text"`
	Parsed interface{} `json:"parsed"`
}
