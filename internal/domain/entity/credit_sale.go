package entity

import (
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/enum"
)

// CreditSale represents goods dispatched before full payment. All produce
// fields are snapshots taken at dispatch time; there is no reference back to
// a Sale or Produce record.
type CreditSale struct {
	ID             string           `json:"id"`
	BuyerName      string           `json:"buyer_name"`
	NationalID     string           `json:"national_id"`
	Location       string           `json:"location"`
	Contact        string           `json:"contact"`
	AmountDueUgx   int64            `json:"amount_due_ugx"`
	SalesAgentName string           `json:"sales_agent_name"`
	DueDate        time.Time        `json:"due_date"`
	ProduceName    string           `json:"produce_name"`
	ProduceType    enum.ProduceType `json:"produce_type"`
	TonnageKg      float64          `json:"tonnage_kg"`
	DispatchDate   time.Time        `json:"dispatch_date"`
	Branch         enum.Branch      `json:"branch"`
}

// Status derives the due classification of the credit sale as of now.
func (c *CreditSale) Status(now time.Time) enum.CreditStatus {
	return enum.CreditStatusFor(c.DueDate, now)
}
