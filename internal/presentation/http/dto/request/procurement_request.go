package request

// RecordProcurementRequest represents a procurement form submission
type RecordProcurementRequest struct {
	ProduceName   string  `json:"produce_name" binding:"required,min=2,max=255"`
	ProduceType   string  `json:"produce_type" binding:"required"`
	TonnageKg     float64 `json:"tonnage_kg" binding:"required,gte=100"`
	CostUgx       int64   `json:"cost_ugx" binding:"required,gte=10000"`
	PriceUgx      int64   `json:"price_ugx" binding:"required,gte=10000"`
	DealerName    string  `json:"dealer_name" binding:"required,min=2,max=255"`
	DealerContact string  `json:"dealer_contact" binding:"required,ugphone"`
	Branch        string  `json:"branch" binding:"required"`
}

// InventoryFilterRequest represents inventory listing filter parameters
type InventoryFilterRequest struct {
	Search   string `form:"search"`
	Branch   string `form:"branch"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
