package request

import "time"

// RecordSaleRequest represents a sale form submission
type RecordSaleRequest struct {
	ProduceID     string  `json:"produce_id" binding:"required"`
	TonnageKg     float64 `json:"tonnage_kg" binding:"required,gt=0"`
	AmountPaidUgx int64   `json:"amount_paid_ugx" binding:"required,gte=10000"`
	BuyerName     string  `json:"buyer_name" binding:"required,min=2,max=255"`
}

// SaleFilterRequest represents sales listing filter parameters
type SaleFilterRequest struct {
	Branch  string `form:"branch"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// RecordCreditSaleRequest represents a credit sale form submission
type RecordCreditSaleRequest struct {
	BuyerName    string    `json:"buyer_name" binding:"required,min=2,max=255"`
	NationalID   string    `json:"national_id" binding:"required,min=5,max=50"`
	Location     string    `json:"location" binding:"required,min=2,max=255"`
	Contact      string    `json:"contact" binding:"required,ugphone"`
	AmountDueUgx int64     `json:"amount_due_ugx" binding:"required,gte=10000"`
	ProduceName  string    `json:"produce_name" binding:"required,min=2,max=255"`
	ProduceType  string    `json:"produce_type" binding:"required"`
	TonnageKg    float64   `json:"tonnage_kg" binding:"required,gt=0"`
	DispatchDate time.Time `json:"dispatch_date" binding:"required"`
	DueDate      time.Time `json:"due_date" binding:"required"`
}

// CreditSaleFilterRequest represents credit sales listing filter parameters
type CreditSaleFilterRequest struct {
	Branch  string `form:"branch"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
