package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUgandanPhone(t *testing.T) {
	valid := []string{
		"+256701234567",
		"+256 701 234 567",
		"0701234567",
		"0701 234 567",
	}
	for _, phone := range valid {
		assert.True(t, IsUgandanPhone(phone), phone)
	}

	invalid := []string{
		"",
		"+25670123456",    // too short
		"+2567012345678",  // too long
		"+254701234567",   // wrong country code
		"701234567",       // missing prefix
		"+256 7O1 234567", // letter O
	}
	for _, phone := range invalid {
		assert.False(t, IsUgandanPhone(phone), phone)
	}
}
