package entity

import (
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/enum"
)

// Sale represents a completed, fully paid sale transaction.
//
// ProduceID is a weak reference used for lookup only; ProduceName is a
// snapshot taken at transaction time, so the record stays meaningful even if
// the produce lot is no longer in the collection.
type Sale struct {
	ID             string      `json:"id"`
	ProduceID      string      `json:"produce_id"`
	ProduceName    string      `json:"produce_name"`
	TonnageKg      float64     `json:"tonnage_kg"`
	AmountPaidUgx  int64       `json:"amount_paid_ugx"`
	BuyerName      string      `json:"buyer_name"`
	SalesAgentName string      `json:"sales_agent_name"`
	Date           time.Time   `json:"date"`
	Branch         enum.Branch `json:"branch"`
}
