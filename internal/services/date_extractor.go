package services

import (
	"regexp"
	"strings"
	"time"
)

// Date patterns tried in order; the raw matched substring is returned
// without normalization. Callers may normalize downstream.
var datePatterns = []*regexp.Regexp{
	// DD/MM/YYYY, DD-MM-YY, DD.MM.YYYY
	regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}\b`),
	// YYYY-MM-DD and friends
	regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`),
	// 12th Jan 2023, 12 January 2023
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}\b`),
}

type dateExtractor struct {
	now func() time.Time
}

// NewDateExtractor creates a date extractor. The clock is injected so the
// "today"/"yesterday" keywords resolve deterministically under test; pass
// nil for wall-clock time.
func NewDateExtractor(now func() time.Time) DateExtractorInterface {
	if now == nil {
		now = time.Now
	}
	return &dateExtractor{now: now}
}

// ExtractDate recovers a transaction date from text. Pattern matches win
// over the relative keywords, and the first pattern that matches anywhere
// in the text wins.
func (s *dateExtractor) ExtractDate(text string) (string, bool) {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "yesterday") {
		return s.now().AddDate(0, 0, -1).Format("2006-01-02"), true
	}
	if strings.Contains(lower, "today") {
		return s.now().Format("2006-01-02"), true
	}

	return "", false
}
