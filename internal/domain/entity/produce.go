package entity

import (
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/enum"
)

// Produce represents one procured lot of produce held in stock at a branch
type Produce struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          enum.ProduceType `json:"type"`
	DateAdded     time.Time        `json:"date_added"`
	TonnageKg     float64          `json:"tonnage_kg"`
	CostUgx       int64            `json:"cost_ugx"`
	PriceUgx      int64            `json:"price_ugx"`
	DealerName    string           `json:"dealer_name"`
	DealerContact string           `json:"dealer_contact"`
	Branch        enum.Branch      `json:"branch"`
}

// PricePerKg derives the per-unit sale price for the lot. It returns zero
// for an empty lot, since the division is otherwise undefined.
func (p *Produce) PricePerKg() float64 {
	if p.TonnageKg == 0 {
		return 0
	}
	return float64(p.PriceUgx) / p.TonnageKg
}

// IsLowStock reports whether the lot is below the given stock threshold.
// The boundary itself does not count as low stock.
func (p *Produce) IsLowStock(thresholdKg float64) bool {
	return p.TonnageKg < thresholdKg
}
