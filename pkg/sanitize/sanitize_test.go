package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/validgen/validgen/pkg/sanitize"
)

func TestTrim(t *testing.T) {
	assert.Equal(t, "hello", sanitize.Trim("  hello\t\n"))
	assert.Equal(t, "", sanitize.Trim("   "))
}

func TestLowercase(t *testing.T) {
	assert.Equal(t, "user@example.com", sanitize.Lowercase("User@Example.COM"))
}

func TestUppercase(t *testing.T) {
	assert.Equal(t, "DE", sanitize.Uppercase("de"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Jane", sanitize.Capitalize("jane"))
	assert.Equal(t, "Jane", sanitize.Capitalize("Jane"))
	assert.Equal(t, "Ärger", sanitize.Capitalize("ärger"))
	assert.Equal(t, "", sanitize.Capitalize(""))
	// Only the first rune changes.
	assert.Equal(t, "O'neil", sanitize.Capitalize("o'neil"))
}
