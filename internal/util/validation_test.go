package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("USER@EXAMPLE.COM"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.co",
		"user-name@sub.example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user@domain",
		"user name@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("1234567890"))
	assert.False(t, IsValidPhone("123456789"))
	assert.False(t, IsValidPhone("12345678901"))
	assert.False(t, IsValidPhone("123-456-7890"))
	assert.False(t, IsValidPhone(""))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("100"))
	assert.True(t, IsValidAmount("100.00"))
	assert.True(t, IsValidAmount("0.5"))
	assert.False(t, IsValidAmount("100.000"))
	assert.False(t, IsValidAmount("-5"))
	assert.False(t, IsValidAmount("abc"))
	assert.False(t, IsValidAmount(""))
}
