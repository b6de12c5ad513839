package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("a"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@x.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01912d68-783e-7a03-8467-5661c1a0f12a"))
	// v4, not v7
	assert.False(t, IsValidUUID("4f2d1c3b-9a8e-4d6f-b1c2-3e4f5a6b7c8d"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-40")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	allowed := []string{"low", "medium", "high"}
	assert.True(t, IsInSlice("medium", allowed))
	assert.False(t, IsInSlice("urgent", allowed))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Abcd123!"))
	assert.False(t, IsStrongPassword("short1!"))
	assert.False(t, IsStrongPassword("alllowercase1!"))
	assert.False(t, IsStrongPassword("ALLUPPERCASE1!"))
	assert.False(t, IsStrongPassword("NoDigits!!"))
	assert.False(t, IsStrongPassword("NoSpecial123"))
}
