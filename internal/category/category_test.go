package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSlugKnownLabels(t *testing.T) {
	assert.Equal(t, "getting-started", ToSlug("Getting Started"))
	assert.Equal(t, "pricing-profitability", ToSlug("Pricing & Profitability"))
	assert.Equal(t, "regulations-compliance", ToSlug("Regulations & Compliance"))
}

func TestToSlugEmpty(t *testing.T) {
	assert.Equal(t, "", ToSlug(""))
}

func TestToSlugUnknownFallback(t *testing.T) {
	// unknown labels lowercase, hyphenate whitespace and strip ampersands;
	// the stripped ampersand leaves a double hyphen, which existing URLs
	// depend on
	assert.Equal(t, "test--category", ToSlug("Test & Category"))
	assert.Equal(t, "some-new-thing", ToSlug("Some New Thing"))
	assert.Equal(t, "a-b", ToSlug("A   B"))
}

func TestFromSlugRoundTrip(t *testing.T) {
	for _, slug := range AllSlugs {
		label := FromSlug(slug)
		assert.Equal(t, slug, ToSlug(label), label)
	}
}

func TestFromSlugUnknownPassthrough(t *testing.T) {
	assert.Equal(t, "not-a-category", FromSlug("not-a-category"))
}

func TestIsValidSlug(t *testing.T) {
	for _, slug := range AllSlugs {
		assert.True(t, IsValidSlug(slug), slug)
	}
	assert.False(t, IsValidSlug("test--category"))
	assert.False(t, IsValidSlug("Getting Started"))
	assert.False(t, IsValidSlug(""))
}

func TestMetaCoversAllSlugs(t *testing.T) {
	for _, slug := range AllSlugs {
		info, ok := Meta[slug]
		assert.True(t, ok, slug)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Icon)
	}
}
