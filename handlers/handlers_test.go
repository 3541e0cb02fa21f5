package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+77001234567", normalizePhone(" +7 (700) 123-45-67 "))
	assert.Equal(t, "87001234567", normalizePhone("8 700 123 45 67"))
	assert.Equal(t, "+77001234567", normalizePhone("+77001234567"))
	// plus only allowed in front
	assert.Equal(t, "+7700", normalizePhone("+7+700"))
}

func TestSanitizeCategory(t *testing.T) {
	assert.Equal(t, "wedding", sanitizeCategory("Wedding"))
	assert.Equal(t, "tusaukeser", sanitizeCategory("  tusaukeser "))
	assert.Equal(t, "misc", sanitizeCategory(""))
	assert.Equal(t, "etc", sanitizeCategory("../../etc"))
	assert.Equal(t, "my-toi", sanitizeCategory("my-toi"))
}
