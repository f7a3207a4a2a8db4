package services

import (
	"strings"

	"expense-insight-api/internal/models"
)

// ticketContextWords are the entertainment-context words that flip an
// otherwise transport-leaning "ticket" mention to Entertainment.
var ticketContextWords = []string{
	"sports", "match", "cricket", "football", "concert", "movie", "show", "stadium",
}

type categoryMatcher struct {
	table []models.CategoryKeywords
}

// NewCategoryMatcher creates a matcher over the fixed category keyword
// table. The table is read-only for the life of the process, so the
// matcher is safe for concurrent use.
func NewCategoryMatcher() CategoryMatcherInterface {
	return &categoryMatcher{table: models.CategoryTable()}
}

// Categorize maps free text to a spending category.
//
// "ticket" is ambiguous between Transport and Entertainment, resolvable
// only by co-occurring context, so that rule runs before the general
// table. The table scan is first-match-wins in table order.
func (s *categoryMatcher) Categorize(text string) (string, bool) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "ticket") {
		for _, word := range ticketContextWords {
			if strings.Contains(lower, word) {
				return models.CategoryEntertainment, true
			}
		}
		return models.CategoryTransport, true
	}

	for _, entry := range s.table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Category, true
			}
		}
	}

	return "", false
}
