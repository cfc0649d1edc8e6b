package regulation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	assert.Nil(t, FormatCurrency(nil))

	got := FormatCurrency(fp(1500))
	require.NotNil(t, got)
	assert.Equal(t, "$1,500", *got)

	got = FormatCurrency(fp(0))
	require.NotNil(t, got)
	assert.Equal(t, "$0", *got)

	got = FormatCurrency(fp(1250000))
	require.NotNil(t, got)
	assert.Equal(t, "$1,250,000", *got)
}

func TestFormatTaxRate(t *testing.T) {
	assert.Nil(t, FormatTaxRate(nil))

	got := FormatTaxRate(fp(12.5))
	require.NotNil(t, got)
	assert.Equal(t, "12.5%", *got)

	got = FormatTaxRate(fp(14))
	require.NotNil(t, got)
	assert.Equal(t, "14.0%", *got)
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "N/A", FormatConfidence(nil))
	assert.Equal(t, "88%", FormatConfidence(fp(0.875)))
	assert.Equal(t, "100%", FormatConfidence(fp(1)))
	assert.Equal(t, "0%", FormatConfidence(fp(0)))
}

func TestTruncateSummaryShortPassthrough(t *testing.T) {
	s := "Short summary."
	got := TruncateSummary(&s, 150)
	require.NotNil(t, got)
	assert.Equal(t, s, *got)
}

func TestTruncateSummaryNil(t *testing.T) {
	assert.Nil(t, TruncateSummary(nil, 150))
}

func TestTruncateSummaryWholeSentences(t *testing.T) {
	s := "First sentence here. Second sentence follows. " + strings.Repeat("x", 200)
	got := TruncateSummary(&s, 60)
	require.NotNil(t, got)
	assert.Equal(t, "First sentence here. Second sentence follows.", *got)
}

func TestTruncateSummaryWordBoundaryFallback(t *testing.T) {
	// no sentence fits: cut at the last space past 70% of maxLen
	s := "aaaa bbbb cccc dddd eeee ffff gggg hhhh iiii jjjj kkkk llll"
	got := TruncateSummary(&s, 30)
	require.NotNil(t, got)
	assert.True(t, strings.HasSuffix(*got, "..."))
	assert.LessOrEqual(t, len(*got), 33)
	// the cut lands on a word boundary, not inside a word
	trimmed := strings.TrimSuffix(*got, "...")
	assert.False(t, strings.HasSuffix(trimmed, " "))
	assert.Contains(t, s, trimmed)
}

func TestTruncateSummaryHardCut(t *testing.T) {
	// no spaces at all: hard cut with ellipsis
	s := strings.Repeat("a", 200)
	got := TruncateSummary(&s, 50)
	require.NotNil(t, got)
	assert.Equal(t, strings.Repeat("a", 50)+"...", *got)
}

func TestTruncateSummaryDefaultLength(t *testing.T) {
	s := strings.Repeat("word ", 100)
	got := TruncateSummary(&s, 0)
	require.NotNil(t, got)
	assert.LessOrEqual(t, len(*got), 153)
}
