package valid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/validgen/validgen/pkg/valid"
)

func TestEmail(t *testing.T) {
	accepted := []string{
		"a@b.co",
		"first.last@example.com",
		"user+tag@sub.domain.org",
	}
	for _, s := range accepted {
		assert.True(t, valid.Email(s), "should accept %q", s)
	}

	rejected := []string{
		"",
		"plain",
		"@example.com",
		"user@",
		"user@localhost",
		"user @example.com",
	}
	for _, s := range rejected {
		assert.False(t, valid.Email(s), "should reject %q", s)
	}
}

func TestPhone(t *testing.T) {
	assert.True(t, valid.Phone("+15551234567"))
	assert.True(t, valid.Phone("+4915112345678"))

	invalid := []string{
		"",
		"15551234567",     // missing +
		"+05551234567",    // leading zero
		"+1 555 123 4567", // separators
		"+1234",           // too short
		"+1234567890123456", // too long
	}
	for _, s := range invalid {
		assert.False(t, valid.Phone(s), "should reject %q", s)
	}
}

func TestURL(t *testing.T) {
	assert.True(t, valid.URL("https://example.com/path?q=1"))
	assert.True(t, valid.URL("http://localhost:8080"))

	assert.False(t, valid.URL(""))
	assert.False(t, valid.URL("example.com"))   // no scheme
	assert.False(t, valid.URL("/just/a/path"))  // no host
	assert.False(t, valid.URL("mailto:a@b.co")) // no host either
}

func TestIsZero(t *testing.T) {
	assert.True(t, valid.IsZero(nil))
	assert.True(t, valid.IsZero(""))
	assert.True(t, valid.IsZero(0))
	assert.True(t, valid.IsZero(0.0))
	assert.True(t, valid.IsZero([]string(nil)))
	assert.True(t, valid.IsZero([]string{}))
	assert.True(t, valid.IsZero(map[string]int{}))
	assert.True(t, valid.IsZero((*int)(nil)))
	assert.True(t, valid.IsZero(struct{ A int }{}))

	n := 7
	assert.False(t, valid.IsZero("x"))
	assert.False(t, valid.IsZero(1))
	assert.False(t, valid.IsZero([]string{""}))
	assert.False(t, valid.IsZero(map[string]int{"a": 0}))
	assert.False(t, valid.IsZero(&n))
}
