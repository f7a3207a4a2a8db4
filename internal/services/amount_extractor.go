package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Extraction strategy labels, recorded as metric tags per successful tier
const (
	strategyLabeledTotal   = "labeled_total"
	strategySeparatedTotal = "separated_total"
	strategyKeyword        = "keyword"
	strategyLargestNumber  = "largest_number"
	strategyNone           = "none"
)

// Plausibility window for the largest-number fallback, both bounds exclusive.
// Values that look like calendar years are excluded so a printed year is
// never mistaken for a total.
var (
	minPlausibleAmount = decimal.NewFromInt(1)
	maxPlausibleAmount = decimal.NewFromInt(500000)
)

const (
	yearFilterLow  = 2020
	yearFilterHigh = 2030
)

var (
	// Labeled totals: "Total: 500", "Grand Total 1200.50", "Order Total: Rs. 500".
	// Pattern order is a contract; the first match wins.
	labeledTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:grand|order|bill|invoice|total)\s*(?:total|amount|value)?\s*[:=.-]*\s*(?:rs\.?|inr)?\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
		regexp.MustCompile(`amount\s*payable\s*[:=.-]*\s*(?:rs\.?|inr)?\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
	}

	// Separated totals: tabular layouts where arbitrary padding sits between
	// the label column and the value column ("Total Amount          500.00").
	separatedTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`total\s+amount.*?(\d+(?:,\d+)*(?:\.\d{2})?)`),
		regexp.MustCompile(`grand\s+total.*?(\d+(?:,\d+)*(?:\.\d{2})?)`),
	}

	// Keyword proximity fallback, in priority order. For each keyword the
	// last number found after it wins: totals tend to sit near the end of
	// a receipt.
	amountKeywords        = []string{"paid", "cost", "rs", "inr", "amount"}
	amountKeywordPatterns = buildKeywordPatterns(amountKeywords)

	numberPattern = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)
)

func buildKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, keyword := range keywords {
		patterns = append(patterns, regexp.MustCompile(keyword+`[^0-9]*(\d+(?:,\d+)*(?:\.\d{2})?)`))
	}
	return patterns
}

type amountExtractor struct {
	metrics MetricsRecorderInterface
}

// NewAmountExtractor creates an extractor that records which strategy tier
// produced each result.
func NewAmountExtractor(metrics MetricsRecorderInterface) AmountExtractorInterface {
	return &amountExtractor{metrics: metrics}
}

// ExtractAmount recovers a single monetary total from noisy text.
// Strategies run in strict priority order and the first success wins;
// swapping the order changes results on ambiguous receipts, so the
// ordering here is part of the contract.
func (s *amountExtractor) ExtractAmount(text string) (decimal.Decimal, bool) {
	lower := strings.ToLower(text)

	for _, pattern := range labeledTotalPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if val, err := parseMonetary(match[1]); err == nil {
			s.recordStrategy(strategyLabeledTotal)
			return val, true
		}
	}

	for _, pattern := range separatedTotalPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if val, err := parseMonetary(match[1]); err == nil {
			s.recordStrategy(strategySeparatedTotal)
			return val, true
		}
	}

	for _, pattern := range amountKeywordPatterns {
		matches := pattern.FindAllStringSubmatch(lower, -1)
		if len(matches) == 0 {
			continue
		}
		if val, err := parseMonetary(matches[len(matches)-1][1]); err == nil {
			s.recordStrategy(strategyKeyword)
			return val, true
		}
	}

	var largest decimal.Decimal
	found := false
	for _, raw := range numberPattern.FindAllString(lower, -1) {
		val, err := parseMonetary(raw)
		if err != nil || !plausibleAmount(val) {
			continue
		}
		if !found || val.GreaterThan(largest) {
			largest = val
			found = true
		}
	}
	if found {
		s.recordStrategy(strategyLargestNumber)
		return largest, true
	}

	s.recordStrategy(strategyNone)
	return decimal.Decimal{}, false
}

func (s *amountExtractor) recordStrategy(strategy string) {
	s.metrics.IncrementCounter("amount.extraction", map[string]string{"strategy": strategy})
}

// parseMonetary parses a captured number token. Comma is always a
// thousands separator, never a decimal separator.
func parseMonetary(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
}

func plausibleAmount(val decimal.Decimal) bool {
	if !val.GreaterThan(minPlausibleAmount) || !val.LessThan(maxPlausibleAmount) {
		return false
	}
	if val.IsInteger() {
		year := val.IntPart()
		if year >= yearFilterLow && year <= yearFilterHigh {
			return false
		}
	}
	return true
}
