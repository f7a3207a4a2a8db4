package services

import (
	"context"
	"time"

	"expense-insight-api/internal/dto"
	"expense-insight-api/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryMatcherInterface maps free text to a spending category using the
// ordered keyword table. The boolean is false when nothing matched; callers
// apply a default label or defer to the fallback classifier.
type CategoryMatcherInterface interface {
	Categorize(text string) (category string, ok bool)
}

// AmountExtractorInterface recovers a single monetary total from noisy text.
// Strategies are applied in strict priority order; the boolean is false when
// every tier fails.
type AmountExtractorInterface interface {
	ExtractAmount(text string) (amount decimal.Decimal, ok bool)
}

// DateExtractorInterface recovers a transaction date from text. The returned
// string is the raw matched substring for pattern matches, or YYYY-MM-DD for
// the "today"/"yesterday" keywords.
type DateExtractorInterface interface {
	ExtractDate(text string) (date string, ok bool)
}

// ItemExtractorInterface derives a human-readable line-item label by
// stripping amounts, dates, numbers and transactional filler words.
// It never fails; a sentinel label is returned when nothing usable remains.
type ItemExtractorInterface interface {
	ExtractItem(text string, amount *decimal.Decimal) string
}

// ReceiptParserInterface combines the four extractors into one structured
// record. Parse always returns a record; callers decide whether an absent
// amount makes it unusable.
type ReceiptParserInterface interface {
	Parse(text string) *models.ExpenseRecord
}

// AnalysisServiceInterface computes forward-looking financial insight from
// an expense history and a stated monthly income.
type AnalysisServiceInterface interface {
	Analyze(expenses []dto.ExpenseInput, income decimal.Decimal) (*models.AnalysisReport, error)
}

// ReceiptGeneratorInterface produces realistic mock receipt and expense
// text for development and testing.
type ReceiptGeneratorInterface interface {
	GenerateReceiptText() string
	GenerateExpensePhrase() string
}

// CategoryClassifierInterface is the trained fallback text classifier,
// consumed as an opaque capability when the keyword matcher finds nothing.
// The model artifact lives outside this service.
type CategoryClassifierInterface interface {
	Predict(text string) (string, error)
}

// OCRClientInterface extracts text from a receipt image. Implemented by an
// external vision service client, never by this core.
type OCRClientInterface interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// PDFTextExtractorInterface extracts text from a PDF document. Implemented
// by an external extraction service client, never by this core.
type PDFTextExtractorInterface interface {
	ExtractText(ctx context.Context, document []byte) (string, error)
}

// MetricsRecorderInterface abstracts metric recording so services stay
// testable without a live registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
