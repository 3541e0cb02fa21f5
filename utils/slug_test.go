package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlugKeepsCyrillic(t *testing.T) {
	slug := GenerateSlug("Асет & Мадина")

	parts := strings.Split(slug, "-")
	require.GreaterOrEqual(t, len(parts), 3)
	assert.Equal(t, "асет", parts[0])
	assert.Equal(t, "мадина", parts[1])
	assert.Len(t, parts[len(parts)-1], 8)
}

func TestGenerateSlugLatin(t *testing.T) {
	slug := GenerateSlug("Aset & Madina Wedding!")
	assert.True(t, strings.HasPrefix(slug, "aset-madina-wedding-"), slug)
}

func TestGenerateSlugEmptyTitleFallsBack(t *testing.T) {
	slug := GenerateSlug("!!! ???")
	assert.True(t, strings.HasPrefix(slug, "invite-"), slug)
}

func TestGenerateSlugUnique(t *testing.T) {
	assert.NotEqual(t, GenerateSlug("Той"), GenerateSlug("Той"))
}
