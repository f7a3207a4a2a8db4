package services

import (
	"regexp"
	"strings"
	"unicode"

	"expense-insight-api/internal/models"

	"github.com/shopspring/decimal"
)

var (
	itemDatePattern   = regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}`)
	itemNumberPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// itemStopWords are transactional filler words dropped from item labels.
var itemStopWords = buildStopWordSet([]string{
	"bought", "paid", "spent", "purchase", "cost", "bill", "amount", "price",
	"rate", "rupees", "rs", "inr",
	"for", "at", "on", "in", "to", "from", "a", "an", "the", "my", "was", "of",
	"got", "recharged", "new", "costing",
	"total", "money", "cash", "card", "upi", "payment", "today", "yesterday",
})

func buildStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

type itemExtractor struct{}

// NewItemExtractor creates the line-item label extractor.
func NewItemExtractor() ItemExtractorInterface {
	return &itemExtractor{}
}

// ExtractItem derives a human-readable label from the raw text. The
// already-extracted amount, when present, is removed verbatim first so it
// cannot leak into the label. Never fails: a sentinel is returned when
// nothing usable remains.
func (s *itemExtractor) ExtractItem(text string, amount *decimal.Decimal) string {
	lower := strings.ToLower(text)

	if amount != nil {
		lower = strings.ReplaceAll(lower, amountToken(*amount), "")
	}

	lower = itemDatePattern.ReplaceAllString(lower, "")
	lower = itemNumberPattern.ReplaceAllString(lower, "")

	var kept []string
	for _, word := range strings.Fields(lower) {
		if _, stop := itemStopWords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}

	item := titleCase(strings.Join(kept, " "))
	if item == "" {
		return models.ItemUnknown
	}
	return item
}

// amountToken renders the amount the way it would appear in the text:
// "649" when integral, "649.5" otherwise.
func amountToken(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return amount.BigInt().String()
	}
	return amount.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
