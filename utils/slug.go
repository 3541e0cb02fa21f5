package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9\x{0400}-\x{04ff}]+`)

// GenerateSlug builds the public URL part from an invite title.
// Cyrillic letters are kept; everything else non-alphanumeric collapses
// to hyphens. A short uuid suffix guarantees uniqueness.
func GenerateSlug(title string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = slugStrip.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "invite"
	}
	shortID := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return base + "-" + shortID
}
