package enum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreditStatusFor(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    CreditStatus
	}{
		{"due date passed", now.AddDate(0, 0, -3), CreditStatusOverdue},
		{"due yesterday", now.AddDate(0, 0, -1), CreditStatusOverdue},
		{"due today", now, CreditStatusDueSoon},
		{"due within the window", now.AddDate(0, 0, 5), CreditStatusDueSoon},
		{"due at the window edge", now.AddDate(0, 0, 7), CreditStatusDueSoon},
		{"due after the window", now.AddDate(0, 0, 8), CreditStatusActive},
		{"due next month", now.AddDate(0, 1, 0), CreditStatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreditStatusFor(tt.dueDate, now))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, DaysUntil(now.AddDate(0, 0, 15), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -4, DaysUntil(now.AddDate(0, 0, -4), now))
}
