package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUGX(t *testing.T) {
	assert.Equal(t, "UGX 175,000", FormatUGX(175000))
	assert.Equal(t, "UGX 0", FormatUGX(0))
	assert.Equal(t, "UGX 4,300,000", FormatUGX(4300000))
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "5,000", FormatKg(5000))
	assert.Equal(t, "950", FormatKg(950))
	assert.Equal(t, "1,250.5", FormatKg(1250.5))
}

func TestFormatCompactUGX(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{2_500_000, "UGX 2.5M"},
		{1_800_000, "UGX 1.8M"},
		{4_000_000, "UGX 4M"},
		{1_200_000_000, "UGX 1.2B"},
		{956_500, "UGX 956.5K"},
		{750, "UGX 750"},
		{0, "UGX 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompactUGX(tt.amount))
	}
}
