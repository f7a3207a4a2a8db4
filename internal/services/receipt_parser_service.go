package services

import (
	"log/slog"
	"time"

	"expense-insight-api/internal/models"

	"github.com/shopspring/decimal"
)

type receiptParser struct {
	categories CategoryMatcherInterface
	amounts    AmountExtractorInterface
	dates      DateExtractorInterface
	items      ItemExtractorInterface
	classifier CategoryClassifierInterface
	metrics    MetricsRecorderInterface
}

// NewReceiptParser composes the four extractors into the parsing
// orchestrator. The classifier is the optional trained fallback consulted
// only when the keyword matcher finds nothing; pass nil when no model
// artifact is available.
func NewReceiptParser(
	categories CategoryMatcherInterface,
	amounts AmountExtractorInterface,
	dates DateExtractorInterface,
	items ItemExtractorInterface,
	classifier CategoryClassifierInterface,
	metrics MetricsRecorderInterface,
) ReceiptParserInterface {
	return &receiptParser{
		categories: categories,
		amounts:    amounts,
		dates:      dates,
		items:      items,
		classifier: classifier,
		metrics:    metrics,
	}
}

// Parse runs the extractors over the full raw text and assembles one
// record. Extraction steps are independent except that item extraction
// uses the already-extracted amount to suppress false positives. Always
// returns a record; an absent amount is the caller's rejection condition.
func (s *receiptParser) Parse(text string) *models.ExpenseRecord {
	started := time.Now()

	var amountPtr *decimal.Decimal
	if amount, ok := s.amounts.ExtractAmount(text); ok {
		amountPtr = &amount
	}

	date, _ := s.dates.ExtractDate(text)

	category, matched := s.categories.Categorize(text)
	if !matched {
		category = s.fallbackCategory(text)
	}

	item := s.items.ExtractItem(text, amountPtr)

	record := &models.ExpenseRecord{
		Item:     item,
		Amount:   amountPtr,
		Category: category,
		Date:     date,
	}

	outcome := "complete"
	if amountPtr == nil {
		outcome = "amount_missing"
	}
	s.metrics.IncrementCounter("receipt.parsed", map[string]string{"outcome": outcome})
	s.metrics.RecordProcessingTime("receipt.parse", time.Since(started))

	slog.Info("receipt parsed",
		"category", category,
		"has_amount", amountPtr != nil,
		"has_date", date != "",
		"text_length", len(text))

	return record
}

func (s *receiptParser) fallbackCategory(text string) string {
	if s.classifier == nil {
		return models.CategoryOther
	}

	predicted, err := s.classifier.Predict(text)
	if err != nil || predicted == "" {
		slog.Warn("fallback classifier unavailable, defaulting category",
			"error", err)
		return models.CategoryOther
	}

	slog.Info("category resolved by fallback classifier", "category", predicted)
	return predicted
}
