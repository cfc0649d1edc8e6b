package regulation

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd formats numbers with en-US digit grouping for currency display.
var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as whole-dollar USD (e.g. "$1,500").
// Nil passes through as nil so templates can omit the field entirely.
func FormatCurrency(amount *float64) *string {
	if amount == nil {
		return nil
	}
	s := usd.Sprintf("$%.0f", *amount)
	return &s
}

// FormatTaxRate renders a tax rate with one decimal place (e.g. "12.5%").
// Nil passes through as nil.
func FormatTaxRate(rate *float64) *string {
	if rate == nil {
		return nil
	}
	s := fmt.Sprintf("%.1f%%", *rate)
	return &s
}

// FormatConfidence renders a 0..1 confidence score as a rounded whole
// percentage, or "N/A" when the score is unknown.
func FormatConfidence(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", int(math.Round(*score*100)))
}

// TruncateSummary shortens a summary to at most maxLen characters for the
// public tier, preferring whole sentences. When no whole sentence fits it
// cuts at a word boundary (if one exists past 70% of maxLen) and appends
// an ellipsis. Nil passes through as nil; maxLen <= 0 uses the default of
// 150.
func TruncateSummary(summary *string, maxLen int) *string {
	if summary == nil {
		return nil
	}
	if maxLen <= 0 {
		maxLen = 150
	}
	s := *summary
	if len(s) <= maxLen {
		return summary
	}

	// Accumulate whole sentences while they fit.
	var result string
	for _, sentence := range splitSentences(s) {
		if len(result)+len(sentence) <= maxLen {
			result += sentence
		} else {
			break
		}
	}
	if result != "" {
		out := strings.TrimSpace(result)
		return &out
	}

	// No whole sentence fits: cut at the last word boundary if it is late
	// enough to read naturally, otherwise cut hard.
	truncated := s[:maxLen]
	if lastSpace := strings.LastIndexByte(truncated, ' '); lastSpace > maxLen*7/10 {
		out := truncated[:lastSpace] + "..."
		return &out
	}
	out := truncated + "..."
	return &out
}

// splitSentences splits text into sentences, each a run of non-terminator
// characters followed by its run of terminators (".", "!", "?"). Trailing
// text with no terminator is dropped, matching how the summary truncation
// has always behaved.
func splitSentences(s string) []string {
	var sentences []string
	start := 0
	i := 0
	for i < len(s) {
		// advance to the first terminator
		for i < len(s) && !isTerminator(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		// consume the terminator run
		for i < len(s) && isTerminator(s[i]) {
			i++
		}
		sentences = append(sentences, s[start:i])
		start = i
	}
	return sentences
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
