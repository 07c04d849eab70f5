package enum

import "time"

// CreditStatus classifies a credit sale by how close it is to its due date
type CreditStatus string

const (
	CreditStatusActive  CreditStatus = "Active"
	CreditStatusDueSoon CreditStatus = "Due Soon"
	CreditStatusOverdue CreditStatus = "Overdue"
)

// dueSoonWindowDays is the number of days before the due date at which a
// credit sale starts being reported as due soon.
const dueSoonWindowDays = 7

// CreditStatusFor derives the status of a credit sale from its due date.
// A past due date is Overdue, one within the due-soon window is Due Soon.
func CreditStatusFor(dueDate, now time.Time) CreditStatus {
	days := DaysUntil(dueDate, now)
	if days < 0 {
		return CreditStatusOverdue
	}
	if days <= dueSoonWindowDays {
		return CreditStatusDueSoon
	}
	return CreditStatusActive
}

// DaysUntil returns the number of whole days between now and t, negative
// when t is in the past.
func DaysUntil(t, now time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

func (s CreditStatus) String() string {
	return string(s)
}
