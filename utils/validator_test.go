package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"a@b.com",
		"john.doe@example.org",
		"first_last-99@mail.io",
	}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"invalid",
		"no-at-sign.com",
		"missing@tld",
		"@example.com",
		"user@.com",
		"with space@example.com",
		"user@Example.com",
		"user@example.com ",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}

func TestIsWeakPassword(t *testing.T) {
	assert.True(t, IsWeakPassword(""))
	assert.True(t, IsWeakPassword("12345"))
	assert.False(t, IsWeakPassword("123456"))
	assert.False(t, IsWeakPassword(strings.Repeat("x", 64)))

	for n := 0; n < 10; n++ {
		p := strings.Repeat("a", n)
		assert.Equal(t, n < MinPasswordLength, IsWeakPassword(p), "length %d", n)
	}
}

func TestIsWeakPassword_CountsCharacters(t *testing.T) {
	// five characters, more than six bytes
	assert.True(t, IsWeakPassword("ééééé"))
	assert.False(t, IsWeakPassword("éééééé"))
}

func TestIsValidRating(t *testing.T) {
	assert.True(t, IsValidRating(0))
	assert.True(t, IsValidRating(4))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(-0.5))
	assert.False(t, IsValidRating(5.5))
	assert.False(t, IsValidRating(math.NaN()))
}
